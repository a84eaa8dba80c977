package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0644))
	}
}

func readFile(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

func TestRewriterRun(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"package.json":              rootManifest,
		"apps/web/package.json":     `{"name": "@k2-saas/web", "dependencies": {"@k2-saas/shared-types": "workspace:*"}}`,
		"apps/web/src/utils/api.ts": "import type { Post } from '@k2-saas/shared-types';\nconst app = 'k2-sass';\n",
		"README.md":                 "# K2-SaaS\n\nRun k2-sass locally.\n",
		"unlisted.ts":               "k2-sass stays\n",
	})

	rw := &Rewriter{Root: root, Name: "demo-app", Placeholders: k2}
	res := rw.Run([]string{
		"package.json",
		"apps/web/package.json",
		"apps/web/src/utils/api.ts",
		"README.md",
		"docs/missing.md",
	})

	assert.Empty(t, res.Warnings, "a missing listed file is skipped silently")
	assert.Equal(t, []string{"package.json", "apps/web/package.json", "apps/web/src/utils/api.ts", "README.md"}, res.Updated)

	assert.Contains(t, readFile(t, root, "package.json"), `"name": "demo-app"`)
	assert.Contains(t, readFile(t, root, "apps/web/package.json"), `"@demo-app/shared-types": "workspace:*"`)
	assert.Equal(t, "import type { Post } from '@demo-app/shared-types';\nconst app = 'demo-app';\n",
		readFile(t, root, "apps/web/src/utils/api.ts"))
	assert.Equal(t, "# Demo-App\n\nRun demo-app locally.\n", readFile(t, root, "README.md"))
	assert.Equal(t, "k2-sass stays\n", readFile(t, root, "unlisted.ts"), "files outside the list are never processed")
}

func TestRewriterContinuesAfterFailure(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"package.json":          `{"name": `,
		"apps/api/package.json": `{"name": "@k2-saas/api"}`,
		"README.md":             "k2-sass\n",
	})

	rw := &Rewriter{Root: root, Name: "demo-app", Placeholders: k2}
	res := rw.Run([]string{"package.json", "apps/api/package.json", "README.md"})

	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "package.json", res.Warnings[0].Path)
	assert.Equal(t, KindRewrite, KindOf(res.Warnings[0]))
	assert.Contains(t, res.Warnings[0].Error(), "could not update package.json")

	assert.Equal(t, `{"name": `, readFile(t, root, "package.json"), "failed file is left as copied")
	assert.Contains(t, readFile(t, root, "apps/api/package.json"), `"@demo-app/api"`)
	assert.Equal(t, "demo-app\n", readFile(t, root, "README.md"))
}

func TestRewriterRejectsInvalidPaths(t *testing.T) {
	root := t.TempDir()
	rw := &Rewriter{Root: root, Name: "demo-app", Placeholders: k2}

	res := rw.Run([]string{"../outside.txt", "/etc/passwd", "."})
	assert.Len(t, res.Warnings, 3)
}

func TestRewriterDirectoryEntry(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "README.md"), 0755))

	rw := &Rewriter{Root: root, Name: "demo-app", Placeholders: k2}
	res := rw.Run([]string{"README.md"})
	require.Len(t, res.Warnings, 1)
}

func TestRewriterUnchangedFileNotReported(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"README.md": "nothing to see\n"})

	rw := &Rewriter{Root: root, Name: "demo-app", Placeholders: k2}
	res := rw.Run([]string{"README.md"})

	assert.Empty(t, res.Updated)
	assert.Empty(t, res.Warnings)
}

func TestRewriterSeparatesReformattedManifests(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"package.json":          `{"name": "demo-app",   "private": true}`,
		"apps/api/package.json": `{"name": "api-worker", "version": "1.0.0"}`,
		"apps/web/package.json": `{"name": "@k2-saas/web"}`,
	})

	rw := &Rewriter{Root: root, Name: "demo-app", Placeholders: k2}
	res := rw.Run([]string{"package.json", "apps/api/package.json", "apps/web/package.json"})

	assert.Empty(t, res.Warnings)
	assert.Equal(t, []string{"apps/web/package.json"}, res.Updated)
	assert.Equal(t, []string{"package.json", "apps/api/package.json"}, res.Reformatted)
	assert.Equal(t, "{\n  \"name\": \"api-worker\",\n  \"version\": \"1.0.0\"\n}\n", readFile(t, root, "apps/api/package.json"))
}

func TestRewriterKeepsPermissions(t *testing.T) {
	root := t.TempDir()
	full := filepath.Join(root, "run.sh")
	require.NoError(t, os.WriteFile(full, []byte("#!/bin/sh\necho k2-sass\n"), 0755))

	rw := &Rewriter{Root: root, Name: "demo-app", Placeholders: k2}
	res := rw.Run([]string{"run.sh"})
	require.Empty(t, res.Warnings)

	info, err := os.Stat(full)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode().Perm()&0100)
	assert.Equal(t, "#!/bin/sh\necho demo-app\n", readFile(t, root, "run.sh"))
}
