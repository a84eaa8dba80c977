package templates

import (
	"fmt"
	"os"
	"path/filepath"
)

// CustomName is the name given to templates loaded from a directory.
const CustomName = "custom"

// FromDir wraps a template tree on disk. It reuses the exclusion,
// placeholder and rewrite settings of the built-in template, which is how
// the starter repository itself is laid out.
func FromDir(dir string) (*Template, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve template directory: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("template directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("template directory %s is not a directory", dir)
	}

	base := NewDefaultTemplate()
	tmpl := &Template{
		Name:         CustomName,
		Description:  fmt.Sprintf("Template tree at %s", abs),
		Version:      base.Version,
		Source:       os.DirFS(abs),
		Root:         abs,
		Exclude:      base.Exclude,
		RewriteFiles: base.RewriteFiles,
		Placeholders: base.Placeholders,
		NextSteps:    base.NextSteps,
		Metadata:     base.Metadata,
	}

	if err := tmpl.Validate(); err != nil {
		return nil, err
	}
	return tmpl, nil
}
