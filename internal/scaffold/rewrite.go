package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/k2-saas/create-k2-saas/internal/fsutil"
)

// RewriteStatus describes what happened to one file of the rewrite list.
type RewriteStatus int

const (
	RewriteMissing RewriteStatus = iota
	RewriteUnchanged
	RewriteUpdated
	// RewriteReformatted is a manifest that carried no template names and
	// was only re-indented.
	RewriteReformatted
	RewriteFailed
)

// Rewriter personalizes the files of a copied tree.
type Rewriter struct {
	Root         string // target root on disk
	Name         string // validated project name
	Placeholders Placeholders
	Logger       *zap.Logger
}

// RewriteResult holds the outcome of Rewriter.Run.
type RewriteResult struct {
	Updated     []string
	Reformatted []string
	Warnings    []RewriteWarning
}

// Run rewrites every file in files (slash paths relative to Root).
//
// Manifests get their identity fields set; every other file gets a literal
// token substitution. Listed files that do not exist are skipped. A failure
// on one file is recorded as a warning and processing continues.
func (r *Rewriter) Run(files []string) RewriteResult {
	var res RewriteResult
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	tokens := r.Placeholders.Tokens(r.Name)

	for _, rel := range files {
		status, err := r.rewriteFile(rel, tokens)
		switch status {
		case RewriteFailed:
			w := RewriteWarning{Path: rel, Err: err}
			logger.Warn("could not update file", zap.String("path", rel), zap.Error(err))
			res.Warnings = append(res.Warnings, w)
		case RewriteUpdated:
			logger.Debug("updated file", zap.String("path", rel))
			res.Updated = append(res.Updated, rel)
		case RewriteReformatted:
			logger.Debug("reformatted manifest", zap.String("path", rel))
			res.Reformatted = append(res.Reformatted, rel)
		case RewriteMissing:
			logger.Debug("rewrite target not present", zap.String("path", rel))
		}
	}
	return res
}

func (r *Rewriter) rewriteFile(rel string, tokens []Token) (RewriteStatus, error) {
	if !fs.ValidPath(rel) || rel == "." {
		return RewriteFailed, fmt.Errorf("invalid path %q", rel)
	}
	full := filepath.Join(r.Root, filepath.FromSlash(rel))

	info, err := os.Stat(full)
	if errors.Is(err, fs.ErrNotExist) {
		return RewriteMissing, nil
	}
	if err != nil {
		return RewriteFailed, err
	}
	if !info.Mode().IsRegular() {
		return RewriteFailed, fmt.Errorf("not a regular file")
	}

	data, err := os.ReadFile(full)
	if err != nil {
		return RewriteFailed, err
	}

	var out []byte
	renamed := true
	if IsManifest(rel) {
		out, renamed, err = rewriteManifest(data, rel, r.Name, r.Placeholders)
		if err != nil {
			return RewriteFailed, err
		}
	} else {
		out = []byte(ReplaceTokens(string(data), tokens))
	}

	if string(out) == string(data) {
		return RewriteUnchanged, nil
	}
	if err := fsutil.WriteFile(full, out, info.Mode().Perm()); err != nil {
		return RewriteFailed, err
	}
	if !renamed {
		return RewriteReformatted, nil
	}
	return RewriteUpdated, nil
}
