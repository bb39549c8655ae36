// Package scan renders a directory tree as Unicode box-drawing text lines.
package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/temirov/structree/internal/utils"
)

const (
	treeBranchConnector = "├── "
	treeLastConnector   = "└── "
	treeBranchPadding   = "│   "
	treeLastPadding     = "    "

	rootDirectorySuffix = "/"
	lineSeparator       = "\n"

	// errorAbsolutePathFormat is used when the absolute path cannot be determined.
	errorAbsolutePathFormat = "getting absolute path for %s: %w"

	// errorReadDirectoryFormat is used when a directory cannot be read.
	errorReadDirectoryFormat = "reading directory %s: %w"
)

// Renderer walks a directory tree and renders every entry not present in the
// ignore set. Ignored names are matched exactly against entry base names at
// every depth; there is no glob or path matching.
type Renderer struct {
	ignoreNames map[string]struct{}
}

// NewRenderer constructs a Renderer that excludes the provided entry names.
func NewRenderer(ignoreNames []string) *Renderer {
	ignoreSet := make(map[string]struct{}, len(ignoreNames))
	for _, ignoreName := range ignoreNames {
		ignoreSet[ignoreName] = struct{}{}
	}
	return &Renderer{ignoreNames: ignoreSet}
}

// Render produces the tree text for the directory at rootDirectoryPath.
// The first line is the root's base name followed by a slash; every further
// line is one entry in depth-first, lexicographic order. Lines are joined
// with newlines and carry no trailing newline.
func (renderer *Renderer) Render(rootDirectoryPath string) (string, error) {
	absoluteRootPath, absolutePathError := filepath.Abs(rootDirectoryPath)
	if absolutePathError != nil {
		return utils.EmptyString, fmt.Errorf(errorAbsolutePathFormat, rootDirectoryPath, absolutePathError)
	}

	treeLines := []string{filepath.Base(absoluteRootPath) + rootDirectorySuffix}
	walkError := renderer.walkDirectory(absoluteRootPath, utils.EmptyString, &treeLines)
	if walkError != nil {
		return utils.EmptyString, walkError
	}
	return strings.Join(treeLines, lineSeparator), nil
}

// walkDirectory appends one line per visible entry of currentDirectoryPath and
// recurses into child directories with an extended line prefix.
//
// A directory that no longer exists at listing time (for example it was removed
// between enumeration and recursion) contributes no lines and no error; every
// other listing failure aborts the whole render. This asymmetry is intentional
// and must not be broadened.
func (renderer *Renderer) walkDirectory(currentDirectoryPath string, linePrefix string, treeLines *[]string) error {
	directoryEntries, readDirectoryError := os.ReadDir(currentDirectoryPath)
	if readDirectoryError != nil {
		if errors.Is(readDirectoryError, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf(errorReadDirectoryFormat, currentDirectoryPath, readDirectoryError)
	}

	// os.ReadDir returns entries sorted by name, so filtering preserves the
	// required lexicographic sibling order.
	visibleEntries := make([]os.DirEntry, 0, len(directoryEntries))
	for _, directoryEntry := range directoryEntries {
		if _, isIgnored := renderer.ignoreNames[directoryEntry.Name()]; isIgnored {
			continue
		}
		visibleEntries = append(visibleEntries, directoryEntry)
	}

	for entryIndex, directoryEntry := range visibleEntries {
		isLastEntry := entryIndex == len(visibleEntries)-1
		connector := treeBranchConnector
		prefixExtension := treeBranchPadding
		if isLastEntry {
			connector = treeLastConnector
			prefixExtension = treeLastPadding
		}

		*treeLines = append(*treeLines, linePrefix+connector+directoryEntry.Name())

		// Classification follows symbolic links, so a link to a directory is
		// traversed like the directory itself. A broken link fails the stat
		// and renders as a leaf.
		childDirectoryPath := filepath.Join(currentDirectoryPath, directoryEntry.Name())
		childInfo, childStatError := os.Stat(childDirectoryPath)
		if childStatError == nil && childInfo.IsDir() {
			walkError := renderer.walkDirectory(childDirectoryPath, linePrefix+prefixExtension, treeLines)
			if walkError != nil {
				return walkError
			}
		}
	}
	return nil
}
