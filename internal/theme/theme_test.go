package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestGetTheme(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: DraculaName, want: DraculaName},
		{name: CleanLightName, want: CleanLightName},
		{name: NoneName, want: NoneName},
		{name: "", want: DraculaName},
		{name: "solarized", want: DraculaName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetTheme(tt.name).Name)
		})
	}
}

func TestAvailableThemesResolve(t *testing.T) {
	for _, name := range AvailableThemes() {
		assert.Equal(t, name, GetTheme(name).Name)
	}
}

func TestNoneRendersPlainText(t *testing.T) {
	thm := None()
	assert.Equal(t, "modified: a", thm.Warn("modified: a"))
	assert.Equal(t, "Removing: /tmp/x", thm.Error("Removing: /tmp/x"))
	assert.Equal(t, "Exiting", thm.Success("Exiting"))
	assert.Equal(t, "[1/2] .", thm.Muted("[1/2] ."))
	assert.Equal(t, "Parsing SVN results", thm.Text("Parsing SVN results"))
	assert.Equal(t, lipgloss.NoColor{}, thm.WarnFg)
}

func TestRenderKeepsText(t *testing.T) {
	thm := Dracula()
	assert.Contains(t, thm.Warn("modified: a"), "modified: a")
	assert.Contains(t, thm.Error("ERROR"), "ERROR")
	assert.Contains(t, thm.Text("Exiting"), "Exiting")
	assert.NotNil(t, thm.TextFg)
	assert.NotNil(t, CleanLight().TextFg)
}
