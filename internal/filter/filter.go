// Package filter resolves batch inputs from files, directories and list files.
//
// Explicit files are taken as given. Directories are walked and their files are
// kept when the base name matches an include pattern (or no includes were given)
// and matches no exclude pattern. Patterns use filepath.Match syntax.
package filter

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Filter selects files by base name. Empty includes means "match all". Excludes always win.
type Filter struct {
	includes []string
	excludes []string
	skip     []string
}

// NewFilter checks the patterns and returns a reusable filter.
// Files ending in one of skipSuffixes are never selected from a directory walk.
func NewFilter(includes, excludes, skipSuffixes []string) (*Filter, error) {
	for _, p := range append(append([]string{}, includes...), excludes...) {
		if _, err := filepath.Match(p, ""); err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p, err)
		}
	}

	return &Filter{includes: includes, excludes: excludes, skip: skipSuffixes}, nil
}

// Match reports whether the file at path should be included.
func (f *Filter) Match(path string) bool {
	base := filepath.Base(path)

	for _, suffix := range f.skip {
		if suffix != "" && strings.HasSuffix(base, suffix) {
			return false
		}
	}

	included := len(f.includes) == 0 || matchAny(f.includes, base)

	return included && !matchAny(f.excludes, base)
}

func matchAny(patterns []string, name string) bool {
	for _, p := range patterns {
		// Patterns were checked in NewFilter.
		if ok, _ := filepath.Match(p, name); ok {
			return true
		}
	}

	return false
}

// Resolve expands args into a de-duplicated list of files.
// Returns matched files and total candidates scanned.
func Resolve(args []string, flt *Filter) (files []string, scanned int, err error) {
	seen := make(map[string]struct{})

	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}

		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, arg := range args {
		arg = filepath.Clean(arg)

		info, err := os.Stat(arg)
		if err != nil {
			return nil, 0, fmt.Errorf("stat %q: %w", arg, err)
		}

		if !info.IsDir() {
			// Explicit file: bypass filtering, add directly.
			scanned++

			add(arg)

			continue
		}

		walked, total, err := walkDir(arg, flt)
		if err != nil {
			return nil, 0, err
		}

		scanned += total

		for _, path := range walked {
			add(path)
		}
	}

	if len(files) == 0 {
		return nil, scanned, fmt.Errorf("no files matched the provided arguments: %v", args)
	}

	return files, scanned, nil
}

// walkDir walks root recursively, returning files that pass the filter.
func walkDir(root string, flt *Filter) (files []string, total int, err error) {
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.Type().IsRegular() {
			return nil
		}

		total++

		if flt.Match(path) {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("walking %q: %w", root, err)
	}

	return files, total, nil
}
