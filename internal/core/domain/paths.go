package domain

import (
	"path"
	"strings"
)

const (
	// SourceRoot is the marker standing for the source root in logical paths.
	SourceRoot = "$S"
	// BuildRoot is the marker standing for the build root in logical paths.
	BuildRoot = "$B"
)

// ToBuildDir moves a logical path from the source tree to the build tree.
// "$S/foo/bar.bin" and "foo/bar.bin" both become "$B/foo/bar.bin".
// Paths already under the build root are returned unchanged.
func ToBuildDir(p string) string {
	p = path.Clean(p)
	switch {
	case p == SourceRoot:
		return BuildRoot
	case p == BuildRoot, strings.HasPrefix(p, BuildRoot+"/"):
		return p
	case strings.HasPrefix(p, SourceRoot+"/"):
		return BuildRoot + strings.TrimPrefix(p, SourceRoot)
	default:
		return BuildRoot + "/" + strings.TrimPrefix(p, "/")
	}
}

// StripExt removes the extension of the last path element.
func StripExt(p string) string {
	return strings.TrimSuffix(p, path.Ext(p))
}

// BaseName returns the last path element without its extension.
// It is the symbol name a resource is exposed under.
func BaseName(p string) string {
	return StripExt(path.Base(p))
}

// SourcePath anchors a slash-separated path relative to the source root at "$S".
func SourcePath(rel string) string {
	rel = path.Clean(strings.TrimPrefix(rel, "./"))
	if rel == "." {
		return SourceRoot
	}
	return SourceRoot + "/" + rel
}
