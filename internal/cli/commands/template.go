package commands

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/k2-saas/create-k2-saas/internal/cli/ui"
	"github.com/k2-saas/create-k2-saas/internal/templates"
)

// NewTemplateCommand creates the template command
func NewTemplateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Inspect project templates",
		Long: `Inspect the templates create-k2-saas can scaffold from.

Examples:
  create-k2-saas template list
  create-k2-saas template validate default
  create-k2-saas template validate --dir ../k2-sass`,
	}

	cmd.AddCommand(NewTemplateListCommand())
	cmd.AddCommand(NewTemplateValidateCommand())

	return cmd
}

// NewTemplateListCommand creates the template list command
func NewTemplateListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available project templates",
		Long:  `Display all available project templates with their descriptions.`,
		Args:  cobra.NoArgs,
		RunE:  runTemplateList,
	}

	return cmd
}

func runTemplateList(cmd *cobra.Command, args []string) error {
	// Initialize built-in templates
	if err := templates.RegisterBuiltinTemplates(); err != nil {
		return fmt.Errorf("failed to register templates: %w", err)
	}

	out := cmd.OutOrStdout()
	tmplList := templates.DefaultRegistry().List()

	if len(tmplList) == 0 {
		fmt.Fprintln(out, "No templates available")
		return nil
	}

	noColor := color.NoColor
	fmt.Fprintln(out)
	color.New(color.FgGreen, color.Bold).Fprintln(out, "Available Templates:")
	fmt.Fprintln(out)

	table := ui.NewTable(out, []string{"NAME", "VERSION", "DESCRIPTION"}, &ui.TableOptions{NoColor: noColor})
	for _, tmpl := range tmplList {
		table.AddRow(tmpl.Name, tmpl.Version, tmpl.Description)
	}
	table.Render()

	fmt.Fprintln(out)
	color.New(color.FgYellow).Fprintln(out, "Use 'create-k2-saas <project-name> --template <name>' to create a project from a template")
	fmt.Fprintln(out)

	return nil
}

// NewTemplateValidateCommand creates the template validate command
func NewTemplateValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [template-name]",
		Short: "Validate a template",
		Long: `Validate the structure of a template and the files it rewrites.

Pass a registered template name, or --dir to check a template tree on disk.`,
		Args: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			if dir != "" {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: runTemplateValidate,
	}

	cmd.Flags().BoolP("verbose", "v", false, "Show detailed validation output")
	cmd.Flags().String("dir", "", "Validate a template tree on disk")

	return cmd
}

func runTemplateValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	noColor := color.NoColor
	verbose, _ := cmd.Flags().GetBool("verbose")
	dir, _ := cmd.Flags().GetString("dir")

	tmpl, err := lookupTemplate(dir, args, noColor)
	if err != nil {
		return err
	}

	if verbose {
		color.New(color.FgCyan).Fprintf(out, "Validating template: %s\n\n", tmpl.Name)
	}

	if err := tmpl.Validate(); err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(out, "✗ Template validation failed: %v\n", err)
		return err
	}

	notes, err := tmpl.Check()
	for _, note := range notes {
		fmt.Fprint(out, ui.Warning(note, nil, noColor))
	}
	if err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(out, "✗ Template validation failed: %v\n", err)
		return err
	}

	ui.WriteSuccess(out, fmt.Sprintf("Template '%s' is valid", tmpl.Name), noColor)

	if verbose {
		fmt.Fprintln(out)
		kv := ui.NewKeyValueTable(out, noColor)
		kv.AddRow("Name", tmpl.Name)
		kv.AddRow("Description", tmpl.Description)
		kv.AddRow("Version", tmpl.Version)
		if tmpl.Root != "" {
			kv.AddRow("Path", tmpl.Root)
		}
		kv.AddRow("Identifier", tmpl.Placeholders.Identifier)
		kv.AddRow("Scope", tmpl.Placeholders.ScopePrefix())
		kv.AddRow("Display name", tmpl.Placeholders.Display)
		kv.AddRow("Excluded", strings.Join(tmpl.Exclude, ", "))
		keys := make([]string, 0, len(tmpl.Metadata))
		for key := range tmpl.Metadata {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			kv.AddRow(key, tmpl.Metadata[key])
		}
		kv.Render()

		fmt.Fprintln(out, "\nRewrite files:")
		for _, f := range tmpl.RewriteFiles {
			fmt.Fprintf(out, "  • %s\n", f)
		}

		if len(tmpl.NextSteps) > 0 {
			fmt.Fprintln(out, "\nNext steps:")
			for _, step := range tmpl.NextSteps {
				fmt.Fprintf(out, "  • %s\n", step)
			}
		}
		fmt.Fprintln(out)
	}

	return nil
}

func lookupTemplate(dir string, args []string, noColor bool) (*templates.Template, error) {
	if dir != "" {
		return templates.FromDir(dir)
	}

	// Initialize built-in templates
	if err := templates.RegisterBuiltinTemplates(); err != nil {
		return nil, fmt.Errorf("failed to register templates: %w", err)
	}

	registry := templates.DefaultRegistry()
	tmpl, err := registry.Get(args[0])
	if err != nil {
		var notFound *templates.NotFoundError
		if errors.As(err, &notFound) {
			suggestions := ui.FindSimilar(args[0], registry.Names(), nil)
			return nil, &formattedError{err: err, message: ui.TemplateNotFoundError(args[0], suggestions, noColor)}
		}
		return nil, err
	}
	return tmpl, nil
}
