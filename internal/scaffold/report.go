package scaffold

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Reporter prints the progress and outcome of a run.
type Reporter struct {
	w       io.Writer
	noColor bool
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer, noColor bool) *Reporter {
	if w == nil {
		w = io.Discard
	}
	return &Reporter{w: w, noColor: noColor}
}

func (r *Reporter) color(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if r.noColor {
		c.DisableColor()
	}
	return c
}

// Start announces the target directory.
func (r *Reporter) Start(target string) {
	r.color(color.FgGreen).Fprintf(r.w, "\n🚀 Scaffolding new project in %s...\n", target)
}

// Customizing announces the rewrite phase.
func (r *Reporter) Customizing() {
	r.color(color.FgCyan).Fprintln(r.w, "🔧 Customizing your files...")
}

// Warn prints a non-fatal problem.
func (r *Reporter) Warn(message string) {
	r.color(color.FgYellow).Fprintf(r.w, "⚠️  %s\n", message)
}

// Finish prints the success banner followed by the numbered next steps.
func (r *Reporter) Finish(res *Result, steps []string) {
	r.color(color.FgGreen, color.Bold).Fprintf(r.w, "\n✅ Project %s scaffolded successfully!\n", res.ProjectName)
	fmt.Fprintf(r.w, "   %d files copied, %d renamed for %s", res.Copy.Files, len(res.Updated), res.ProjectName)
	if n := len(res.Reformatted); n > 0 {
		fmt.Fprintf(r.w, ", %d manifests reformatted", n)
	}
	fmt.Fprintln(r.w)

	if len(steps) == 0 {
		return
	}
	fmt.Fprintln(r.w, "\nNext steps:")
	cyan := r.color(color.FgCyan)
	for i, step := range steps {
		cyan.Fprintf(r.w, "  %d. %s\n", i+1, step)
	}
	fmt.Fprintln(r.w)
}
