package scaffold

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"go.uber.org/zap"
)

// Config describes one scaffolding run.
type Config struct {
	// Template is the template tree. It is only read.
	Template fs.FS
	// TemplateRoot is the on-disk location of Template, if any. A target
	// inside it is left out of the copy.
	TemplateRoot string
	// BaseDir is the directory the project directory is created in.
	BaseDir string

	Exclude      Exclusion
	RewriteFiles []string
	Placeholders Placeholders

	// NextSteps renders the instructions printed after a successful run.
	NextSteps func(projectName string) ([]string, error)

	// Strict turns rewrite warnings into a failed run.
	Strict bool
	// GitInit runs "git init" in the new project.
	GitInit bool
}

// Options carries the ambient dependencies of a run.
type Options struct {
	Out     io.Writer
	Logger  *zap.Logger
	NoColor bool

	// Step wraps long-running external steps, e.g. with a spinner.
	// When nil the step runs directly.
	Step func(label string, fn func() error) error
}

// Result describes a finished run.
type Result struct {
	ProjectName string
	TargetDir   string
	Copy        CopyStats
	Updated     []string
	Reformatted []string
	Warnings    []RewriteWarning
	NextSteps   []string
}

// Run scaffolds a project: the name comes from names, the template is copied
// to BaseDir/<name>, the rewrite list is personalized and a report is
// printed to opts.Out.
//
// Invalid names and existing targets fail before anything is written. Copy
// failures fail the run and leave the partial tree. Rewrite failures are
// returned in Result.Warnings and only fail the run when cfg.Strict is set.
func Run(ctx context.Context, cfg Config, names NameSource, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	report := NewReporter(opts.Out, opts.NoColor)

	name, err := resolveName(names)
	if err != nil {
		return nil, err
	}

	if cfg.Template == nil {
		return nil, fmt.Errorf("no template tree configured")
	}

	baseDir, err := filepath.Abs(cfg.BaseDir)
	if err != nil {
		return nil, fmt.Errorf("resolving base directory: %w", err)
	}
	target := filepath.Join(baseDir, name)
	logger = logger.With(zap.String("project", name), zap.String("target", target))

	res := &Result{ProjectName: name, TargetDir: target}

	if err := checkTarget(target); err != nil {
		return nil, err
	}

	report.Start(target)
	skip := selfExclusion(cfg.TemplateRoot, target)
	if skip != "" {
		logger.Debug("target is inside the template tree", zap.String("skip", skip))
	}
	stats, err := copyTree(cfg.Template, target, cfg.Exclude, skip, logger)
	res.Copy = stats
	if err != nil {
		return res, err
	}
	logger.Debug("template copied",
		zap.Int("files", stats.Files),
		zap.Int("directories", stats.Directories),
		zap.Int("skipped", stats.Skipped))
	for _, rel := range stats.Special {
		report.Warn(fmt.Sprintf("skipped %s: not a regular file or directory", rel))
	}

	report.Customizing()
	rw := &Rewriter{
		Root:         target,
		Name:         name,
		Placeholders: cfg.Placeholders,
		Logger:       logger,
	}
	rewritten := rw.Run(cfg.RewriteFiles)
	res.Updated = rewritten.Updated
	res.Reformatted = rewritten.Reformatted
	res.Warnings = rewritten.Warnings
	for _, w := range res.Warnings {
		report.Warn(w.Error())
	}
	if cfg.Strict && len(res.Warnings) > 0 {
		return res, warningsError(res.Warnings)
	}

	if cfg.GitInit {
		runGitInit(ctx, target, report, logger, opts.Step)
	}

	if cfg.NextSteps != nil {
		steps, err := cfg.NextSteps(name)
		if err != nil {
			logger.Warn("could not render next steps", zap.Error(err))
		} else {
			res.NextSteps = steps
		}
	}

	report.Finish(res, res.NextSteps)
	return res, nil
}

func runGitInit(ctx context.Context, target string, report *Reporter, logger *zap.Logger, step func(string, func() error) error) {
	var skipped string
	fn := func() error {
		var err error
		skipped, err = InitGitRepo(ctx, target)
		return err
	}

	var err error
	if step != nil {
		err = step("Initializing git repository", fn)
	} else {
		err = fn()
	}

	switch {
	case err != nil:
		logger.Warn("git init failed", zap.Error(err))
		report.Warn(err.Error())
	case skipped != "":
		logger.Debug(skipped)
		report.Warn(skipped)
	}
}
