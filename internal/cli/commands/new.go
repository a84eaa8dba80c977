package commands

import (
	"github.com/spf13/cobra"
)

// NewNewCommand creates the new command
func NewNewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <project-name>",
		Short: "Create a new project from the command line",
		Long: `Create a new project without prompting.

The project name is required and must be lowercase letters, digits and
hyphens. The project is created in ./<project-name>, which must not exist.

Examples:
  create-k2-saas new my-awesome-app
  create-k2-saas new my-awesome-app --strict --git`,
		Args: func(cmd *cobra.Command, args []string) error {
			switch {
			case len(args) == 0:
				return &usageError{msg: "please specify a project name, e.g. create-k2-saas new my-app"}
			case len(args) > 1:
				return &usageError{msg: "new accepts a single project name"}
			}
			return nil
		},
		RunE: runCreate,
	}

	addScaffoldFlags(cmd)

	return cmd
}

func addScaffoldFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringP("template", "t", "default", "Template to scaffold from (see 'template list')")
	flags.String("template-dir", "", "Scaffold from a template tree on disk instead of a built-in template")
	flags.StringSlice("exclude", nil, "Extra path fragment to leave out of the copy (repeatable)")
	flags.Bool("strict", false, "Fail when a file cannot be customized")
	flags.Bool("git", false, "Run 'git init' in the new project")
}
