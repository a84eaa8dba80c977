package templates

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/k2-saas/create-k2-saas/internal/scaffold"
)

// Template represents a project template
type Template struct {
	Name        string
	Description string
	Version     string

	// Source is the template tree. Paths are slash-separated and relative
	// to the project root.
	Source fs.FS
	// Root is the on-disk location of Source. Empty for embedded templates.
	Root string

	Exclude      scaffold.Exclusion
	RewriteFiles []string
	Placeholders scaffold.Placeholders

	// NextSteps are text/template strings rendered with a TemplateContext.
	NextSteps []string

	// Metadata describes the generated project, e.g. its package manager.
	Metadata map[string]string
}

// TemplateContext contains all data for template execution
type TemplateContext struct {
	ProjectName string
	DisplayName string
}

// NewContext builds the rendering context for a project.
func NewContext(projectName string) *TemplateContext {
	return &TemplateContext{
		ProjectName: projectName,
		DisplayName: scaffold.DisplayName(projectName),
	}
}

// Engine is the template rendering engine
type Engine struct {
	funcs template.FuncMap
}

// NewEngine creates a new template engine
func NewEngine() *Engine {
	return &Engine{
		funcs: template.FuncMap{
			"upper": strings.ToUpper,
			"lower": strings.ToLower,
			"title": scaffold.DisplayName,
		},
	}
}

// Render renders a template string with the given context
func (e *Engine) Render(tmplStr string, ctx *TemplateContext) (string, error) {
	tmpl, err := e.parse(tmplStr)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func (e *Engine) parse(tmplStr string) (*template.Template, error) {
	return template.New("").Funcs(e.funcs).Option("missingkey=error").Parse(tmplStr)
}

// RenderNextSteps renders the post-scaffold instructions of tmpl for a
// project, in order.
func (e *Engine) RenderNextSteps(tmpl *Template, projectName string) ([]string, error) {
	ctx := NewContext(projectName)
	steps := make([]string, 0, len(tmpl.NextSteps))
	for i, step := range tmpl.NextSteps {
		out, err := e.Render(step, ctx)
		if err != nil {
			return nil, fmt.Errorf("next step %d: %w", i+1, err)
		}
		steps = append(steps, out)
	}
	return steps, nil
}

// Config returns the scaffolding configuration for tmpl. extra exclusion
// fragments are appended to the template's own set.
func (t *Template) Config(baseDir string, extra ...string) scaffold.Config {
	engine := NewEngine()
	return scaffold.Config{
		Template:     t.Source,
		TemplateRoot: t.Root,
		BaseDir:      baseDir,
		Exclude:      t.Exclude.With(extra...),
		RewriteFiles: t.RewriteFiles,
		Placeholders: t.Placeholders,
		NextSteps: func(name string) ([]string, error) {
			return engine.RenderNextSteps(t, name)
		},
	}
}

// Validate validates a template structure
func (t *Template) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("template name is required")
	}
	if t.Version == "" {
		return fmt.Errorf("template version is required")
	}
	if t.Source == nil {
		return fmt.Errorf("template %s has no source tree", t.Name)
	}
	if t.Placeholders.Identifier == "" || t.Placeholders.Scope == "" || t.Placeholders.Display == "" {
		return fmt.Errorf("template %s must define identifier, scope and display placeholders", t.Name)
	}

	seen := make(map[string]bool)
	for _, rel := range t.RewriteFiles {
		if !fs.ValidPath(rel) || rel == "." {
			return fmt.Errorf("invalid rewrite path: %q", rel)
		}
		if seen[rel] {
			return fmt.Errorf("duplicate rewrite path: %s", rel)
		}
		seen[rel] = true
	}

	engine := NewEngine()
	for i, step := range t.NextSteps {
		if _, err := engine.parse(step); err != nil {
			return fmt.Errorf("next step %d: %w", i+1, err)
		}
	}

	return nil
}

// Check inspects the files of the rewrite list inside the source tree.
// Missing files are reported as notes since a run skips them; manifests
// that do not parse are returned as errors.
func (t *Template) Check() (notes []string, err error) {
	var errs []error
	for _, rel := range t.RewriteFiles {
		data, readErr := fs.ReadFile(t.Source, rel)
		if errors.Is(readErr, fs.ErrNotExist) {
			notes = append(notes, fmt.Sprintf("%s is listed for rewriting but not present", rel))
			continue
		}
		if readErr != nil {
			errs = append(errs, fmt.Errorf("%s: %w", rel, readErr))
			continue
		}
		if scaffold.IsManifest(rel) {
			if err := scaffold.CheckManifest(data); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", rel, err))
			}
		}
	}
	return notes, errors.Join(errs...)
}
