package templates

import (
	"embed"
	"io/fs"

	"github.com/k2-saas/create-k2-saas/internal/scaffold"
)

// DefaultName is the name of the built-in starter template.
const DefaultName = "default"

//go:embed all:default
var defaultFS embed.FS

// DefaultPlaceholders are the tokens baked into the built-in starter tree.
var DefaultPlaceholders = scaffold.Placeholders{
	Identifier: "k2-sass",
	Scope:      "k2-saas",
	Display:    "K2-SaaS",
}

// DefaultRewriteFiles lists the files of the starter tree that carry
// placeholders.
var DefaultRewriteFiles = []string{
	"package.json",
	"apps/api/package.json",
	"apps/web/package.json",
	"packages/shared-types/package.json",
	"apps/api/src/index.ts",
	"apps/api/src/routes/users.ts",
	"apps/api/src/routes/posts.ts",
	"apps/web/src/utils/api.ts",
	"apps/web/src/store/posts.ts",
	"apps/web/src/pages/Documentation.tsx",
	"apps/api/wrangler.toml",
	"apps/web/index.html",
	"README.md",
}

var defaultNextSteps = []string{
	"cd {{.ProjectName}}",
	"pnpm install",
	"(Follow README for D1 setup - you still need to run `pnpm wrangler d1 create {{.ProjectName}}-db`)",
	"pnpm dev",
}

// NewDefaultTemplate creates the built-in pnpm/turbo SaaS starter: a Hono
// API on Cloudflare Workers with D1, a Vite React app and shared zod types.
func NewDefaultTemplate() *Template {
	sub, err := fs.Sub(defaultFS, "default")
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic(err)
	}

	return &Template{
		Name:         DefaultName,
		Description:  "Full-stack SaaS starter (Hono + D1 API, Vite React web, shared zod types)",
		Version:      "1.0.0",
		Source:       sub,
		Exclude:      scaffold.DefaultExclusions,
		RewriteFiles: DefaultRewriteFiles,
		Placeholders: DefaultPlaceholders,
		NextSteps:    defaultNextSteps,
		Metadata: map[string]string{
			"package_manager": "pnpm",
			"runtime":         "cloudflare-workers",
		},
	}
}
