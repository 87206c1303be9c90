//go:build mage

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// packageLOC is the line count of one Go package directory.
type packageLOC struct {
	Package string `json:"package"`
	Prod    int    `json:"go_loc_prod"`
	Test    int    `json:"go_loc_test"`
}

// Stats prints one JSON line per package (pkg/hashtable, pkg/config, ...)
// with non-blank production and test lines, then a "total" line.
func Stats() error {
	loc, err := packageLines(".")
	if err != nil {
		return err
	}
	total := packageLOC{Package: "total"}
	for _, p := range loc {
		total.Prod += p.Prod
		total.Test += p.Test
		if err := printJSON(p); err != nil {
			return err
		}
	}
	return printJSON(total)
}

// packageLines walks root and groups Go line counts by directory, sorted by
// package path. Tooling and reference trees are skipped.
func packageLines(root string) ([]packageLOC, error) {
	byDir := map[string]*packageLOC{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (name == "magefiles" || name == "vendor" || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}
		n, err := countLines(path)
		if err != nil {
			return fmt.Errorf("count %s: %w", path, err)
		}
		dir := filepath.ToSlash(filepath.Dir(path))
		p, ok := byDir[dir]
		if !ok {
			p = &packageLOC{Package: dir}
			byDir[dir] = p
		}
		if strings.HasSuffix(path, "_test.go") {
			p.Test += n
		} else {
			p.Prod += n
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]packageLOC, 0, len(byDir))
	for _, p := range byDir {
		out = append(out, *p)
	}
	slices.SortFunc(out, func(a, b packageLOC) int { return strings.Compare(a.Package, b.Package) })
	return out, nil
}

func printJSON(v any) error {
	line, err := json.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Println(string(line))
	return nil
}

// countLines returns the number of non-blank lines in path.
func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) != "" {
			count++
		}
	}
	return count, scanner.Err()
}
