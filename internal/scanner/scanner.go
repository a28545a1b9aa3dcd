package scanner

import (
	"os"
	"path/filepath"
	"strings"
)

// Scanner recursively finds C++ files in directories
type Scanner struct {
	Excludes []string
}

// NewScanner creates a new file scanner with exclusion patterns
func NewScanner(excludes []string) *Scanner {
	return &Scanner{Excludes: excludes}
}

// ScanPath scans a file or directory for C++ files. A file named
// explicitly is returned whatever its extension.
func (s *Scanner) ScanPath(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(filePath string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // Skip files/dirs with errors
		}

		if d.IsDir() {
			if filePath != path && s.shouldExclude(filePath) {
				return filepath.SkipDir
			}
			return nil
		}

		if IsSourceFile(filePath) && !s.shouldExclude(filePath) {
			files = append(files, filePath)
		}
		return nil
	})

	return files, err
}

// ScanPaths resolves paths into providers, one per source. "-" stands for
// standard input and is read at most once. Files are deduplicated by
// absolute path.
func (s *Scanner) ScanPaths(paths []string) ([]Provider, error) {
	var providers []Provider
	seen := make(map[string]bool)

	for _, path := range paths {
		if path == StdinName {
			if !seen[StdinName] {
				seen[StdinName] = true
				providers = append(providers, Reader(StdinName, os.Stdin))
			}
			continue
		}

		files, err := s.ScanPath(path)
		if err != nil {
			return nil, err
		}

		for _, f := range files {
			absPath, err := filepath.Abs(f)
			if err != nil {
				absPath = f
			}
			if !seen[absPath] {
				seen[absPath] = true
				providers = append(providers, File(absPath))
			}
		}
	}

	return providers, nil
}

// IsSourceFile reports whether path has a C++ source or header extension.
func IsSourceFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cpp", ".cc", ".cxx", ".h", ".hpp", ".hxx":
		return true
	}
	return false
}

func (s *Scanner) shouldExclude(path string) bool {
	for _, exclude := range s.Excludes {
		if exclude == "" {
			continue
		}
		// Match against directory name or path component
		if filepath.Base(path) == exclude {
			return true
		}
		if strings.Contains(path, string(filepath.Separator)+exclude+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
