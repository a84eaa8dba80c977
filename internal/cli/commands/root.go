package commands

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = "unknown"
)

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "create-k2-saas [project-name]",
		Short: "Scaffold a new K2 SaaS project",
		Long: color.CyanString(`create-k2-saas - scaffold a full-stack SaaS starter

Copies the starter template into ./<project-name> and renames the packages,
workspace scope and display name after your project.

Without a project name you are prompted for one.`) + `

Examples:
  create-k2-saas
  create-k2-saas my-awesome-app
  create-k2-saas my-awesome-app --git
  create-k2-saas my-awesome-app --template-dir ../k2-sass`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          runCreate,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (default: ./k2-saas.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show debug logs")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	addScaffoldFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(NewNewCommand())
	rootCmd.AddCommand(NewTemplateCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display the create-k2-saas version, Git commit, build date, and Go version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			// Set GoVersion to actual runtime if not set at build time
			goVer := GoVersion
			if goVer == "unknown" {
				goVer = runtime.Version()
			}

			out := cmd.OutOrStdout()
			titleColor := color.New(color.FgCyan, color.Bold)

			titleColor.Fprint(out, "create-k2-saas version: ")
			fmt.Fprintln(out, Version)

			titleColor.Fprint(out, "Git commit: ")
			fmt.Fprintln(out, GitCommit)

			titleColor.Fprint(out, "Build date: ")
			fmt.Fprintln(out, BuildDate)

			titleColor.Fprint(out, "Go version: ")
			fmt.Fprintln(out, goVer)
		},
	}
}

// Execute runs the root command
func Execute() error {
	return execute(NewRootCommand())
}

// execute runs rootCmd and prints a failure to its error stream.
func execute(rootCmd *cobra.Command) error {
	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return nil
	}

	stderr := rootCmd.ErrOrStderr()
	var formatted *formattedError
	if errors.As(err, &formatted) {
		fmt.Fprint(stderr, formatted.message)
		return err
	}

	errorColor := color.New(color.FgRed, color.Bold)
	errorColor.Fprintf(stderr, "Error: %v\n", err)

	var usage *usageError
	if errors.As(err, &usage) {
		fmt.Fprintln(stderr)
		fmt.Fprint(stderr, cmd.UsageString())
	}
	return err
}

// formattedError carries a message already laid out for the terminal.
type formattedError struct {
	err     error
	message string
}

func (e *formattedError) Error() string { return e.err.Error() }

func (e *formattedError) Unwrap() error { return e.err }

// usageError is printed together with the command usage.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }
