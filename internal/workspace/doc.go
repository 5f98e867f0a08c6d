// Package workspace models an editor workspace descriptor (a
// .code-workspace file) and the rules for regenerating it.
//
// A workspace document has three parts:
//   - folders: rebuilt from scratch on every run
//   - tasks: the maintenance task set, replaced only when asked to or absent
//   - extraneous top-level keys: carried through untouched
//
// The package is pure apart from Merger, which reads the previous document
// through fsops.FS. Nothing here writes to disk.
package workspace
