// Package scaffold creates a new project from a template tree.
//
// A run is strictly sequential: the project name is obtained from a
// NameSource and validated, the template tree is copied into a fresh
// directory (honoring an exclusion set), placeholder tokens are rewritten in
// a declared list of files, and a report with the next steps is printed.
//
// Copy failures are fatal and leave the partially written tree on disk.
// Rewrite failures are collected as warnings and, unless Config.Strict is
// set, do not fail the run.
package scaffold
