package scan

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

// extOrder lists the supported extensions in their canonical group order.
// Matching is case-insensitive; results keep one group per extension, emitted
// in this order.
var extOrder = []string{".jpg", ".jpeg", ".png", ".tif", ".tiff", ".webp"}

// ErrNotFound reports that the scan root is missing or not a directory.
var ErrNotFound = errors.New("input folder not found")

// Extensions returns the supported image extensions in their canonical order.
func Extensions() []string {
	return slices.Clone(extOrder)
}

// Images returns the paths of the supported images directly inside folder.
// Files are grouped by lowercased extension, groups follow the canonical
// extension order, names sort bytewise within a group, and a path never
// appears twice. An empty result is not an error; the caller decides whether
// zero images is fatal.
func Images(folder string) ([]string, error) {
	info, err := os.Stat(folder)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, folder)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", folder, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, folder)
	}

	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", folder, err)
	}

	groups := make(map[string][]string, len(extOrder))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !slices.Contains(extOrder, ext) {
			continue
		}
		groups[ext] = append(groups[ext], entry.Name())
	}

	seen := make(map[string]bool)
	var images []string
	for _, ext := range extOrder {
		names := groups[ext]
		sort.Strings(names)
		for _, name := range names {
			path := filepath.Join(folder, name)
			if seen[path] {
				continue
			}
			seen[path] = true
			images = append(images, path)
		}
	}
	return images, nil
}
