package scaffold

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// DefaultExclusions are skipped when copying any template tree.
var DefaultExclusions = Exclusion{
	"node_modules",
	".git",
	".turbo",
	"dist",
	"scripts/create.js",
}

// Exclusion is an ordered set of path fragments. A path is excluded when any
// fragment is a substring of its slash separated path relative to the
// template root, so ".git" also excludes ".gitignore".
type Exclusion []string

// Match reports whether rel is excluded.
func (e Exclusion) Match(rel string) bool {
	for _, fragment := range e {
		if fragment != "" && strings.Contains(rel, fragment) {
			return true
		}
	}
	return false
}

// With returns a new Exclusion holding e followed by fragments.
func (e Exclusion) With(fragments ...string) Exclusion {
	out := make(Exclusion, 0, len(e)+len(fragments))
	out = append(out, e...)
	for _, f := range fragments {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// CopyStats summarizes a completed copy.
type CopyStats struct {
	Files       int
	Directories int
	Skipped     int
	// Special lists files that are neither regular files nor directories,
	// such as sockets and device nodes. They are not copied.
	Special []string
}

// errSymlinkLoop is returned for a symlink that points at one of its own
// ancestor directories.
var errSymlinkLoop = errors.New("symlink points to an ancestor directory")

// CopyTree duplicates src into dst. dst must not exist; it is created along
// with any missing parents. Excluded entries are skipped before they are
// opened, so the contents of excluded directories are never visited.
//
// File bytes are copied verbatim. Symlinks are followed: a link to a file is
// copied as a regular file holding the target's bytes, a link to a directory
// is copied as a directory. Dangling and looping links fail the copy. Other
// non-regular files are skipped and listed in CopyStats.Special. On failure
// the partially written tree is left in place.
func CopyTree(src fs.FS, dst string, exclude Exclusion, logger *zap.Logger) (CopyStats, error) {
	return copyTree(src, dst, exclude, "", logger)
}

// copyTree is CopyTree with an extra relative path (and everything below it)
// to leave out, used when the target lies inside the template tree.
func copyTree(src fs.FS, dst string, exclude Exclusion, skip string, logger *zap.Logger) (CopyStats, error) {
	var stats CopyStats
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := checkTarget(dst); err != nil {
		return stats, err
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return stats, &CopyError{Path: ".", Err: err}
	}
	if err := os.Mkdir(dst, 0755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return stats, fmt.Errorf("%w: %s", ErrTargetExists, dst)
		}
		return stats, &CopyError{Path: ".", Err: err}
	}

	var visit fs.WalkDirFunc
	visit = func(rel string, d fs.DirEntry, err error) error {
		if err != nil {
			return &CopyError{Path: rel, Err: err}
		}
		if rel == "." {
			return nil
		}

		if exclude.Match(rel) || within(rel, skip) {
			logger.Debug("skipping excluded path", zap.String("path", rel))
			stats.Skipped++
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		target := filepath.Join(dst, filepath.FromSlash(rel))

		mode := d.Type()
		if mode&fs.ModeSymlink != 0 {
			info, err := fs.Stat(src, rel)
			if err != nil {
				return &CopyError{Path: rel, Err: err}
			}
			if info.IsDir() {
				if isAncestor(src, rel, info) {
					return &CopyError{Path: rel, Err: errSymlinkLoop}
				}
				logger.Debug("following symlinked directory", zap.String("path", rel))
				// WalkDir does not descend into links, so walk the link as
				// its own root. Its root entry is a directory.
				return fs.WalkDir(src, rel, visit)
			}
			mode = info.Mode().Type()
		}

		switch {
		case mode.IsDir():
			if err := os.MkdirAll(target, 0755); err != nil {
				return &CopyError{Path: rel, Err: err}
			}
			stats.Directories++
		case mode.IsRegular():
			if err := copyFile(src, rel, target); err != nil {
				return &CopyError{Path: rel, Err: err}
			}
			logger.Debug("copied file", zap.String("path", rel))
			stats.Files++
		default:
			logger.Debug("skipping special file", zap.String("path", rel), zap.Stringer("mode", mode))
			stats.Skipped++
			stats.Special = append(stats.Special, rel)
		}
		return nil
	}

	err := fs.WalkDir(src, ".", visit)
	return stats, err
}

// isAncestor reports whether dir, the resolved target of the link at rel, is
// one of the directories containing rel. Only file systems whose FileInfo
// comes from the os package can hold links, and os.SameFile understands
// exactly those.
func isAncestor(src fs.FS, rel string, dir fs.FileInfo) bool {
	for p := path.Dir(rel); ; p = path.Dir(p) {
		if info, err := fs.Stat(src, p); err == nil && os.SameFile(info, dir) {
			return true
		}
		if p == "." {
			return false
		}
	}
}

// checkTarget fails with ErrTargetExists when dst is already present.
func checkTarget(dst string) error {
	_, err := os.Lstat(dst)
	switch {
	case err == nil:
		return fmt.Errorf("%w: %s", ErrTargetExists, dst)
	case errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return &CopyError{Path: ".", Err: err}
	}
}

// copyFile copies one file from src to target. Permission bits are kept, with
// owner read/write added so the rewriter can update the copy.
func copyFile(src fs.FS, rel, target string) (err error) {
	in, err := src.Open(rel)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm()|0600)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(out, in)
	return err
}

func within(rel, dir string) bool {
	return dir != "" && (rel == dir || strings.HasPrefix(rel, dir+"/"))
}

// selfExclusion returns the slash path of target relative to templateRoot
// when target lies inside it, so a project created inside its own template
// is not copied into itself. It returns "" otherwise.
func selfExclusion(templateRoot, target string) string {
	if templateRoot == "" {
		return ""
	}
	rel, err := filepath.Rel(templateRoot, target)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return ""
	}
	return filepath.ToSlash(rel)
}
