package commands

import (
	"github.com/spf13/cobra"
)

// NewCompletionCommand creates the completion command for shell completions
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion script for create-k2-saas.

To load completions:

Bash:

  $ source <(create-k2-saas completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ create-k2-saas completion bash > /etc/bash_completion.d/create-k2-saas
  # macOS:
  $ create-k2-saas completion bash > $(brew --prefix)/etc/bash_completion.d/create-k2-saas

Zsh:

  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:

  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ create-k2-saas completion zsh > "${fpath[1]}/_create-k2-saas"

  # You will need to start a new shell for this setup to take effect.

Fish:

  $ create-k2-saas completion fish | source

  # To load completions for each session, execute once:
  $ create-k2-saas completion fish > ~/.config/fish/completions/create-k2-saas.fish

PowerShell:

  PS> create-k2-saas completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> create-k2-saas completion powershell > create-k2-saas.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			root := cmd.Root()

			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}

	return cmd
}
