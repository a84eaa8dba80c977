package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var k2 = Placeholders{Identifier: "k2-sass", Scope: "k2-saas", Display: "K2-SaaS"}

func TestPlaceholdersTokens(t *testing.T) {
	tokens := k2.Tokens("my-app")

	assert.Equal(t, []Token{
		{Old: "@k2-saas/", New: "@my-app/"},
		{Old: "k2-sass", New: "my-app"},
		{Old: "K2-SaaS", New: "My-App"},
	}, tokens)
}

func TestPlaceholdersTokensOmitsEmpty(t *testing.T) {
	tokens := Placeholders{Identifier: "starter"}.Tokens("demo-app")
	assert.Equal(t, []Token{{Old: "starter", New: "demo-app"}}, tokens)
	assert.Empty(t, Placeholders{}.Tokens("demo-app"))
}

func TestReplaceTokens(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		tokens []Token
		want   string
	}{
		{
			name:   "scoped package and identifier",
			input:  "import { x } from '@k2-saas/shared-types';\n// k2-sass docs\n",
			tokens: k2.Tokens("my-app"),
			want:   "import { x } from '@my-app/shared-types';\n// my-app docs\n",
		},
		{
			name:   "every occurrence",
			input:  "k2-sass k2-sass k2-sass",
			tokens: k2.Tokens("my-app"),
			want:   "my-app my-app my-app",
		},
		{
			name:   "display token",
			input:  "# Welcome to K2-SaaS",
			tokens: k2.Tokens("my-app"),
			want:   "# Welcome to My-App",
		},
		{
			name:   "display token for a name starting with a digit",
			input:  "<title>K2-SaaS</title>",
			tokens: k2.Tokens("2fa-app"),
			want:   "<title>2fa-App</title>",
		},
		{
			name:   "case sensitive, undeclared variants untouched",
			input:  "K2-SASS k2-SaaS K2-Sass k2-saas",
			tokens: k2.Tokens("my-app"),
			want:   "K2-SASS k2-SaaS K2-Sass k2-saas",
		},
		{
			name:   "no other text altered",
			input:  "const port = 8787; // @other/pkg",
			tokens: k2.Tokens("my-app"),
			want:   "const port = 8787; // @other/pkg",
		},
		{
			name:  "overlapping tokens prefer the longer one",
			input: "@app/ui and app",
			tokens: []Token{
				{Old: "app", New: "blog"},
				{Old: "@app/", New: "@blog/"},
			},
			want: "@blog/ui and blog",
		},
		{
			name:   "replacement containing the placeholder is not substituted again",
			input:  "k2-sass",
			tokens: []Token{{Old: "k2-sass", New: "k2-sass-v2"}},
			want:   "k2-sass-v2",
		},
		{
			name:   "empty old strings are ignored",
			input:  "abc",
			tokens: []Token{{Old: "", New: "x"}},
			want:   "abc",
		},
		{
			name:   "no tokens",
			input:  "k2-sass",
			tokens: nil,
			want:   "k2-sass",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReplaceTokens(tt.input, tt.tokens))
		})
	}
}

func TestReplaceTokensOrderIndependent(t *testing.T) {
	input := "@k2-saas/shared-types k2-sass K2-SaaS"
	forward := k2.Tokens("demo-app")
	reversed := []Token{forward[2], forward[1], forward[0]}

	assert.Equal(t, ReplaceTokens(input, forward), ReplaceTokens(input, reversed))
}
