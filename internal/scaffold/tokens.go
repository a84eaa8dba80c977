package scaffold

import (
	"sort"
	"strings"
)

// Placeholders are the literal strings a template carries in place of the
// project identity.
type Placeholders struct {
	// Identifier is the lowercase hyphenated project identifier, e.g. "k2-sass".
	Identifier string
	// Scope is the package scope without "@" or "/", e.g. "k2-saas".
	Scope string
	// Display is the human readable name, e.g. "K2-SaaS". Optional.
	Display string
}

// ScopePrefix returns the scoped package prefix, e.g. "@k2-saas/".
func (p Placeholders) ScopePrefix() string {
	if p.Scope == "" {
		return ""
	}
	return "@" + p.Scope + "/"
}

// Token is one literal substitution.
type Token struct {
	Old string
	New string
}

// Tokens returns the substitutions that personalize free text for name,
// longest Old first.
func (p Placeholders) Tokens(name string) []Token {
	var tokens []Token
	if prefix := p.ScopePrefix(); prefix != "" {
		tokens = append(tokens, Token{Old: prefix, New: "@" + name + "/"})
	}
	if p.Identifier != "" {
		tokens = append(tokens, Token{Old: p.Identifier, New: name})
	}
	if p.Display != "" {
		tokens = append(tokens, Token{Old: p.Display, New: DisplayName(name)})
	}
	sortTokens(tokens)
	return tokens
}

func sortTokens(tokens []Token) {
	sort.SliceStable(tokens, func(i, j int) bool {
		return len(tokens[i].Old) > len(tokens[j].Old)
	})
}

// ReplaceTokens substitutes every occurrence of every token in s.
//
// Matching is literal and case-sensitive. All tokens are applied in a single
// left-to-right pass, so replaced text is never matched again and, where one
// token contains another, the longer one wins.
func ReplaceTokens(s string, tokens []Token) string {
	sorted := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Old != "" {
			sorted = append(sorted, t)
		}
	}
	if len(sorted) == 0 {
		return s
	}
	sortTokens(sorted)

	pairs := make([]string, 0, 2*len(sorted))
	for _, t := range sorted {
		pairs = append(pairs, t.Old, t.New)
	}
	return strings.NewReplacer(pairs...).Replace(s)
}
