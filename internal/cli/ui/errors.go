package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// ErrorLevel represents the severity of an error message
type ErrorLevel int

const (
	ErrorLevelError ErrorLevel = iota
	ErrorLevelWarning
)

// ErrorOptions configures the error message formatting
type ErrorOptions struct {
	Level        ErrorLevel
	Context      string
	Problem      string
	Consequence  string
	Suggestions  []string
	HelpCommands []string
	NoColor      bool
}

// FormatError creates a standardized error message with suggestions and help commands
//
// Example output:
//
//	❌ TEMPLATE NOT FOUND
//	   Cannot find template 'defualt'.
//
//	   Did you mean: default?
//
//	   → See all templates: create-k2-saas template list
func FormatError(opts ErrorOptions) string {
	var b strings.Builder

	// Determine colors and symbol based on level
	var headerColor, bodyColor *color.Color
	var symbol string

	switch opts.Level {
	case ErrorLevelError:
		headerColor = color.New(color.FgRed, color.Bold)
		bodyColor = color.New(color.FgRed)
		symbol = "❌"
	case ErrorLevelWarning:
		headerColor = color.New(color.FgYellow, color.Bold)
		bodyColor = color.New(color.FgYellow)
		symbol = "⚠️"
	}

	// Disable colors if requested
	if opts.NoColor {
		headerColor.DisableColor()
		bodyColor.DisableColor()
	}

	// With a context the header names it and the problem goes below;
	// without one the problem is the header.
	if opts.Context != "" {
		headerColor.Fprintf(&b, "%s %s\n", symbol, strings.ToUpper(opts.Context))
		if opts.Problem != "" {
			bodyColor.Fprintf(&b, "   %s\n", opts.Problem)
		}
	} else {
		headerColor.Fprintf(&b, "%s %s\n", symbol, opts.Problem)
	}

	// Consequence (if provided)
	if opts.Consequence != "" {
		b.WriteString("\n")
		bodyColor.Fprintf(&b, "   %s\n", opts.Consequence)
	}

	// Suggestions
	if len(opts.Suggestions) > 0 {
		b.WriteString("\n")
		yellow := color.New(color.FgYellow)
		if opts.NoColor {
			yellow.DisableColor()
		}
		yellow.Fprintf(&b, "   Did you mean: %s?\n", strings.Join(opts.Suggestions, ", "))
	}

	// Help commands
	if len(opts.HelpCommands) > 0 {
		b.WriteString("\n")
		cyan := color.New(color.FgCyan)
		if opts.NoColor {
			cyan.DisableColor()
		}
		for _, cmd := range opts.HelpCommands {
			cyan.Fprintf(&b, "   → %s\n", cmd)
		}
	}

	return b.String()
}

// FormatSuccess creates a success message
func FormatSuccess(message string, noColor bool) string {
	green := color.New(color.FgGreen, color.Bold)
	if noColor {
		green.DisableColor()
	}
	return green.Sprintf("✓ %s", message)
}

// WriteSuccess writes a success message to the writer
func WriteSuccess(w io.Writer, message string, noColor bool) {
	fmt.Fprintln(w, FormatSuccess(message, noColor))
}

// InvalidNameError creates a standardized invalid project name error
func InvalidNameError(message string, noColor bool) string {
	opts := ErrorOptions{
		Level:   ErrorLevelError,
		Context: "INVALID PROJECT NAME",
		Problem: message,
		HelpCommands: []string{
			"Use lowercase letters, digits and hyphens: create-k2-saas my-awesome-app",
			"Get help: create-k2-saas --help",
		},
		NoColor: noColor,
	}
	return FormatError(opts)
}

// ConflictError creates a standardized error for an existing target directory
func ConflictError(target string, noColor bool) string {
	opts := ErrorOptions{
		Level:       ErrorLevelError,
		Context:     "DIRECTORY EXISTS",
		Problem:     fmt.Sprintf("Directory '%s' already exists.", target),
		Consequence: "Nothing was written. Choose another name or remove the directory.",
		NoColor:     noColor,
	}
	return FormatError(opts)
}

// CopyFailedError creates a standardized error for a failed template copy
func CopyFailedError(message, target string, noColor bool) string {
	opts := ErrorOptions{
		Level:       ErrorLevelError,
		Context:     "SCAFFOLDING FAILED",
		Problem:     message,
		Consequence: fmt.Sprintf("'%s' may be partially populated; remove it before retrying.", target),
		NoColor:     noColor,
	}
	return FormatError(opts)
}

// RewriteFailedError creates a standardized error for files that could not
// be customized in strict mode
func RewriteFailedError(message, target string, noColor bool) string {
	opts := ErrorOptions{
		Level:       ErrorLevelError,
		Context:     "CUSTOMIZATION FAILED",
		Problem:     message,
		Consequence: fmt.Sprintf("The project was copied to '%s' but some files still carry template names.", target),
		HelpCommands: []string{
			"Run without --strict to keep going on customization warnings",
		},
		NoColor: noColor,
	}
	return FormatError(opts)
}

// TemplateNotFoundError creates a standardized template not found error
func TemplateNotFoundError(name string, suggestions []string, noColor bool) string {
	opts := ErrorOptions{
		Level:       ErrorLevelError,
		Context:     "TEMPLATE NOT FOUND",
		Problem:     fmt.Sprintf("Cannot find template '%s'.", name),
		Suggestions: suggestions,
		HelpCommands: []string{
			"See all templates: create-k2-saas template list",
		},
		NoColor: noColor,
	}
	return FormatError(opts)
}

// ConfigError creates a standardized configuration error
func ConfigError(message string, suggestions []string, noColor bool) string {
	opts := ErrorOptions{
		Level:       ErrorLevelError,
		Context:     "CONFIGURATION ERROR",
		Problem:     message,
		Suggestions: suggestions,
		HelpCommands: []string{
			"View config: cat k2-saas.yaml",
			"Get help: create-k2-saas --help",
		},
		NoColor: noColor,
	}
	return FormatError(opts)
}

// Warning creates a standardized warning message
func Warning(message string, suggestions []string, noColor bool) string {
	opts := ErrorOptions{
		Level:       ErrorLevelWarning,
		Problem:     message,
		Suggestions: suggestions,
		NoColor:     noColor,
	}
	return FormatError(opts)
}
