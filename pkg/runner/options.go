// Package runner parses many documents concurrently.
package runner

// Options controls discovery and parsing of a set of documents.
type Options struct {
	// Paths are the files or directories to process.
	// If empty, defaults to the working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths and to
	// match globs. If empty, the process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, with leading dot)
	// treated as documents. Defaults to DefaultExtensions().
	Extensions []string

	// IncludeGlobs restricts discovery to matching paths when non-empty.
	IncludeGlobs []string

	// ExcludeGlobs skips matching files and directories.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs is the number of concurrent workers.
	// 0 or negative means runtime.NumCPU().
	Jobs int

	// MaxFileSize bounds the size of a single document in bytes.
	// 0 or negative means fsutil.DefaultMaxFileSize.
	MaxFileSize int64
}

// DefaultExtensions returns the default document file extensions.
func DefaultExtensions() []string {
	return []string{".tr", ".txt", ".md"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
