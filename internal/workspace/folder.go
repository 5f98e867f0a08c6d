package workspace

import (
	"fmt"
	"path/filepath"
	"strings"
)

// NewFolder builds the folder entry for dir, with its path expressed
// relative to base (the directory holding the workspace file).
//
// When dir is the scan root itself, the entry points at the scan root's
// location under base, or "." if the scan root is not beneath base. All
// other directories use exact relative-path arithmetic, so they stay correct
// when the scan root and base differ.
func NewFolder(dir, base, scanRoot string) (Folder, error) {
	dir = filepath.Clean(dir)

	name := filepath.Base(dir)
	if dir == "" || name == "." || name == ".." || name == string(filepath.Separator) {
		return Folder{}, fmt.Errorf("%w: %q", ErrNoFolderName, dir)
	}

	var rel string
	if scanRoot != "" && dir == filepath.Clean(scanRoot) {
		rel = pathUnder(dir, filepath.Clean(base))
	} else {
		r, err := filepath.Rel(base, dir)
		if err != nil {
			return Folder{}, fmt.Errorf("%w for %q: %v", ErrRelativePath, dir, err)
		}
		rel = r
	}

	return Folder{
		Path: rel,
		Name: FolderEmblem + name,
	}, nil
}

// RootFolder returns the entry for the directory holding the workspace file.
func RootFolder(workspaceName string) Folder {
	return Folder{
		Path: ".",
		Name: RootEmblem + workspaceName,
	}
}

// pathUnder returns path relative to base when path lies beneath base, and
// "." otherwise.
func pathUnder(path, base string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "."
	}
	return rel
}

// BuildFolders assembles the folder list: the root entry first when
// includeRoot is set, then one entry per directory in the given order.
// The first directory that cannot be turned into an entry aborts the build.
func BuildFolders(dirs []string, base, scanRoot, workspaceName string, includeRoot bool) ([]Folder, error) {
	folders := make([]Folder, 0, len(dirs)+1)
	if includeRoot {
		folders = append(folders, RootFolder(workspaceName))
	}
	for _, dir := range dirs {
		f, err := NewFolder(dir, base, scanRoot)
		if err != nil {
			return nil, err
		}
		folders = append(folders, f)
	}
	return folders, nil
}
