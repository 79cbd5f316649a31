// Package models defines the data objects shared across svnrevert packages.
package models

import (
	"slices"
	"strings"
)

// Select returns the entries whose classification satisfies keep, in input order.
func Select(entries []StatusEntry, keep func(Classification) bool) []StatusEntry {
	selected := make([]StatusEntry, 0, len(entries))
	for _, e := range entries {
		if keep(e.Item) {
			selected = append(selected, e)
		}
	}
	return selected
}

// SortByPath sorts entries by path in ascending byte order. Entries with equal
// paths keep their relative order.
func SortByPath(entries []StatusEntry) {
	slices.SortStableFunc(entries, func(a, b StatusEntry) int {
		return strings.Compare(a.Path, b.Path)
	})
}

// Paths returns the path of every entry.
func Paths(entries []StatusEntry) []string {
	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = e.Path
	}
	return paths
}
