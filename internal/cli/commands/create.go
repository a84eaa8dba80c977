package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/k2-saas/create-k2-saas/internal/cli/config"
	"github.com/k2-saas/create-k2-saas/internal/cli/ui"
	"github.com/k2-saas/create-k2-saas/internal/scaffold"
	"github.com/k2-saas/create-k2-saas/internal/templates"
)

// runCreate scaffolds a project. With a project name argument it runs
// without prompting; without one it asks for the name.
func runCreate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	verbose, _ := cmd.Flags().GetBool("verbose")
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return &formattedError{err: err, message: ui.ConfigError(err.Error(), nil, color.NoColor)}
	}
	noColor := cfg.NoColor || color.NoColor
	if noColor {
		color.NoColor = true
	}

	logger := newLogger(cmd.ErrOrStderr(), verbose).With(zap.String("run_id", uuid.NewString()))
	defer logger.Sync()
	if cfg.File != "" {
		logger.Debug("loaded config", zap.String("file", cfg.File))
	}

	interactive := len(args) == 0
	if interactive {
		color.New(color.FgBlue, color.Bold).Fprintln(out, "👋 Welcome to create-k2-saas!")
	}

	tmpl, err := resolveTemplate(cmd, cfg, interactive, noColor)
	if err != nil {
		return err
	}
	logger.Debug("using template", zap.String("template", tmpl.Name), zap.String("version", tmpl.Version))

	var names scaffold.NameSource
	if interactive {
		names = promptSource()
	} else {
		names = scaffold.ArgumentSource(args[0])
	}
	recorded := &recordingSource{src: names}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	scfg := tmpl.Config(wd, cfg.Exclude...)
	scfg.Strict = cfg.Strict
	scfg.GitInit = cfg.GitInit

	_, err = scaffold.Run(cmd.Context(), scfg, recorded, scaffold.Options{
		Out:     out,
		Logger:  logger,
		NoColor: noColor,
		Step:    ui.SpinnerStep(out, noColor),
	})
	if err != nil {
		target := ""
		if recorded.name != "" {
			target = filepath.Join(wd, recorded.name)
		}
		return scaffoldError(err, target, noColor)
	}
	return nil
}

// resolveTemplate picks the template of a run: a template directory when
// configured, otherwise a registered template by name.
func resolveTemplate(cmd *cobra.Command, cfg *config.Config, interactive, noColor bool) (*templates.Template, error) {
	if cfg.TemplateDir != "" {
		tmpl, err := templates.FromDir(cfg.TemplateDir)
		if err != nil {
			return nil, &formattedError{err: err, message: ui.ConfigError(err.Error(), nil, noColor)}
		}
		return tmpl, nil
	}

	if err := templates.RegisterBuiltinTemplates(); err != nil {
		return nil, fmt.Errorf("failed to register templates: %w", err)
	}
	registry := templates.DefaultRegistry()

	name := cfg.Template
	if interactive && !cmd.Flags().Changed("template") && len(registry.List()) > 1 {
		selected, err := promptTemplate(registry.List())
		if err != nil {
			return nil, err
		}
		name = selected
	}

	tmpl, err := registry.Get(name)
	if err != nil {
		var notFound *templates.NotFoundError
		if errors.As(err, &notFound) {
			suggestions := ui.FindSimilar(name, registry.Names(), nil)
			return nil, &formattedError{err: err, message: ui.TemplateNotFoundError(name, suggestions, noColor)}
		}
		return nil, err
	}
	return tmpl, nil
}

// scaffoldError lays out a failed run for the terminal.
func scaffoldError(err error, target string, noColor bool) error {
	var message string
	switch scaffold.KindOf(err) {
	case scaffold.KindInvalidInput:
		message = ui.InvalidNameError(err.Error(), noColor)
	case scaffold.KindConflict:
		message = ui.ConflictError(target, noColor)
	case scaffold.KindCopy:
		message = ui.CopyFailedError(err.Error(), target, noColor)
	case scaffold.KindRewrite:
		message = ui.RewriteFailedError(err.Error(), target, noColor)
	default:
		return err
	}
	return &formattedError{err: err, message: message}
}

// recordingSource remembers the name handed to the scaffolder.
type recordingSource struct {
	src  scaffold.NameSource
	name string
}

func (r *recordingSource) ProjectName() (string, error) {
	name, err := r.src.ProjectName()
	if err == nil {
		r.name = name
	}
	return name, err
}

