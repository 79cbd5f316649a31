package cli

import (
	"fmt"
	"io"

	"github.com/chmouel/svnrevert/internal/models"
	"github.com/chmouel/svnrevert/internal/theme"
)

// SummarizeChanges prints every entry that is not an external, sorted by
// path, followed by a count. It reports whether anything was printed.
func SummarizeChanges(w io.Writer, thm *theme.Theme, entries []models.StatusEntry) bool {
	changes := models.Select(entries, func(c models.Classification) bool {
		return c != models.ItemExternal
	})
	models.SortByPath(changes)

	for _, e := range changes {
		fmt.Fprintln(w, thm.Warn(e.String()))
	}
	fmt.Fprintln(w, thm.Text(fmt.Sprintf("Found %d changes to revert", len(changes))))

	return len(changes) > 0
}

// Unversioned returns the sorted paths of unversioned entries.
func Unversioned(entries []models.StatusEntry) []string {
	unversioned := models.Select(entries, func(c models.Classification) bool {
		return c == models.ItemUnversioned
	})
	models.SortByPath(unversioned)
	return models.Paths(unversioned)
}

func printList(w io.Writer, thm *theme.Theme, header string, items []string) {
	fmt.Fprintln(w, thm.Text(header))
	for _, item := range items {
		fmt.Fprintln(w, thm.Warn(item))
	}
}
