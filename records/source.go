package records

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// maxLineBytes bounds a single input line; bufio.Scanner's 64 KiB default is
// raised so long labels do not truncate a load.
const maxLineBytes = 1 << 20

// LineSource yields the trimmed text lines of a named input.
type LineSource interface {
	Lines(name string) ([]string, error)
}

// FileSource reads lines from files on disk, relative to Dir when name is not absolute.
type FileSource struct {
	Dir string
}

// Lines opens name and returns its lines with surrounding whitespace trimmed.
// A missing file yields an error matching both ErrSourceNotFound and fs.ErrNotExist.
func (s FileSource) Lines(name string) ([]string, error) {
	path := name
	if s.Dir != "" && !filepath.IsAbs(name) {
		path = filepath.Join(s.Dir, name)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrSourceNotFound, path, err)
		}
		return nil, fmt.Errorf("records: open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		lines = append(lines, strings.TrimSpace(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("records: read %s: %w", path, err)
	}

	return lines, nil
}

// SliceSource serves lines from memory, keyed by name.
type SliceSource map[string][]string

// Lines returns the trimmed lines registered under name, or ErrSourceNotFound.
func (s SliceSource) Lines(name string) ([]string, error) {
	raw, ok := s[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, name)
	}
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = strings.TrimSpace(l)
	}

	return lines, nil
}
