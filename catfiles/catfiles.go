// Package catfiles concatenates the text files under a set of paths to a
// writer, for piping a project's sources into a review or a prompt. Ignore
// patterns come from .gitignore files; binary files are skipped.
package catfiles

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Extensions excluded from concatenation regardless of content.
var skippedExtensions = []string{".svg", ".json"}

const (
	binaryChunkSize = 512
	binaryMaxChunks = 512
)

// File is a candidate for concatenation. Rel is the path relative to the
// walk root, used for ignore-pattern matching; Path is used for I/O and
// display.
type File struct {
	Path string
	Rel  string
}

// IsBinary reports whether a file should be treated as binary. Skip-listed
// extensions count as binary; otherwise the first 256 KiB are scanned for a
// NUL byte. Unreadable files are treated as binary so they get skipped.
func IsBinary(path string) bool {
	for _, ext := range skippedExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return true
	}
	defer f.Close()

	buf := make([]byte, binaryChunkSize)
	for i := 0; i < binaryMaxChunks; i++ {
		n, err := f.Read(buf)
		if bytes.IndexByte(buf[:n], 0) >= 0 {
			return true
		}
		if err != nil {
			break
		}
	}
	return false
}

// ReadIgnorePatterns returns the non-empty lines of the .gitignore file in
// dir, or nil if there is none.
func ReadIgnorePatterns(dir string) []string {
	f, err := os.Open(filepath.Join(dir, ".gitignore"))
	if err != nil {
		return nil
	}
	defer f.Close()

	var patterns []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			patterns = append(patterns, line)
		}
	}
	return patterns
}

// ShouldIgnore reports whether a relative path matches any ignore pattern.
// Patterns match the whole relative path or its base name; a pattern ending
// in "/" ignores everything under that directory.
func ShouldIgnore(relPath string, patterns []string) bool {
	relPath = filepath.ToSlash(relPath)
	base := relPath
	if i := strings.LastIndex(relPath, "/"); i >= 0 {
		base = relPath[i+1:]
	}

	for _, pattern := range patterns {
		if strings.HasSuffix(pattern, "/") {
			if strings.HasPrefix(relPath, pattern) || strings.HasPrefix(relPath, strings.TrimSuffix(pattern, "/")+"/") {
				return true
			}
			continue
		}
		if ok, _ := filepath.Match(pattern, relPath); ok {
			return true
		}
		if ok, _ := filepath.Match(pattern, base); ok {
			return true
		}
	}
	return false
}

// Collect expands the argument paths into candidate files and gathers
// ignore patterns from the working directory and each argument directory.
func Collect(paths []string) ([]File, []string, error) {
	patterns := ReadIgnorePatterns(".")

	var files []File
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, nil, fmt.Errorf("stat %s: %w", path, err)
		}

		if !info.IsDir() {
			files = append(files, File{Path: path, Rel: filepath.Base(path)})
			continue
		}

		patterns = append(patterns, ReadIgnorePatterns(path)...)
		root := path
		err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			rel, err := filepath.Rel(root, p)
			if err != nil {
				rel = p
			}
			files = append(files, File{Path: p, Rel: rel})
			return nil
		})
		if err != nil {
			return nil, nil, fmt.Errorf("walk %s: %w", path, err)
		}
	}

	return files, patterns, nil
}

// Concatenate prints each text, non-ignored file between start/end marker
// lines, and a skip marker for everything else.
func Concatenate(w io.Writer, files []File, patterns []string) {
	for _, file := range files {
		if IsBinary(file.Path) || ShouldIgnore(file.Rel, patterns) {
			fmt.Fprintf(w, ">>>>> Skipping file: %s <<<<<\n", file.Path)
			continue
		}

		content, err := os.ReadFile(file.Path)
		if err != nil {
			fmt.Fprintf(w, "Error reading %s: %v\n", file.Path, err)
			continue
		}
		fmt.Fprintf(w, "# >>>>> Starting contents of file %s >>>>>\n%s\n# <<<<< End of contents of file %s <<<<<\n",
			file.Path, content, file.Path)
	}
}

// Run collects and concatenates in one step.
func Run(w io.Writer, paths []string) error {
	files, patterns, err := Collect(paths)
	if err != nil {
		return err
	}
	Concatenate(w, files, patterns)
	return nil
}
