package cli

import (
	"bytes"
	"testing"

	"github.com/chmouel/svnrevert/internal/models"
	"github.com/chmouel/svnrevert/internal/theme"
	"github.com/stretchr/testify/assert"
)

func TestSummarizeChanges(t *testing.T) {
	entries := []models.StatusEntry{
		{Path: "z.txt", Item: models.ItemAdded},
		{Path: "lib", Item: models.ItemExternal},
		{Path: "b.c", Item: models.ItemModified},
		{Path: "tmp", Item: models.ItemUnversioned},
	}
	var out bytes.Buffer

	assert.True(t, SummarizeChanges(&out, theme.None(), entries))
	assert.Equal(t, "modified: b.c\nunversioned: tmp\nadded: z.txt\nFound 3 changes to revert\n", out.String())
}

func TestSummarizeChangesOnlyExternals(t *testing.T) {
	var out bytes.Buffer

	assert.False(t, SummarizeChanges(&out, theme.None(), []models.StatusEntry{{Path: "lib", Item: models.ItemExternal}}))
	assert.Equal(t, "Found 0 changes to revert\n", out.String())
}

func TestUnversioned(t *testing.T) {
	entries := []models.StatusEntry{
		{Path: "tmp", Item: models.ItemUnversioned},
		{Path: "a", Item: models.ItemModified},
		{Path: "build", Item: models.ItemUnversioned},
		{Path: "old", Item: models.ItemIgnored},
	}

	assert.Equal(t, []string{"build", "tmp"}, Unversioned(entries))
	assert.Empty(t, Unversioned(nil))
}
