package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/chmouel/svnrevert/internal/svn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveExternalsFlat(t *testing.T) {
	svc := &fakeSvnService{externals: map[string][]string{
		"wc":     {"wc/lib", "wc/vendor"},
		"wc/lib": {"wc/lib/deep"},
	}}
	fs := &fakeFilesystem{existing: map[string]bool{"wc/lib": true}}
	var out bytes.Buffer

	got, err := ResolveExternals(context.Background(), svc, fs, &out, "wc", false)

	require.NoError(t, err)
	assert.Equal(t, []string{"wc/lib", "wc/vendor"}, got)
	assert.Equal(t, []string{"wc"}, svc.externalCalls)
	assert.Equal(t, "Getting svnexternals for: wc\n", out.String())
}

func TestResolveExternalsRecursive(t *testing.T) {
	svc := &fakeSvnService{externals: map[string][]string{
		"wc":          {"wc/lib", "wc/missing", "wc/vendor"},
		"wc/lib":      {"wc/lib/deep"},
		"wc/lib/deep": {"wc/lib/deep/x"},
		"wc/vendor":   {"wc/vendor/y"},
	}}
	fs := &fakeFilesystem{existing: map[string]bool{
		"wc/lib":      true,
		"wc/lib/deep": true,
		"wc/vendor":   true,
	}}
	var out bytes.Buffer

	got, err := ResolveExternals(context.Background(), svc, fs, &out, "wc", true)

	require.NoError(t, err)
	assert.Equal(t, []string{
		"wc/lib", "wc/missing", "wc/vendor",
		"wc/lib/deep", "wc/lib/deep/x",
		"wc/vendor/y",
	}, got)
	assert.NotContains(t, svc.externalCalls, "wc/missing")
	assert.Contains(t, out.String(), "Getting svnexternals for: wc/lib/deep\n")
}

// propgetRunner answers propget like svn 1.9+: a directory without
// svn:externals makes svn exit 1 with warning W200017.
type propgetRunner struct {
	externals map[string][]string
	calls     []string
}

func (p *propgetRunner) RunCombined(_ context.Context, args ...string) (string, error) {
	return "", fmt.Errorf("unexpected call: %v", args)
}

func (p *propgetRunner) RunLines(_ context.Context, args ...string) ([]string, error) {
	dir := args[len(args)-1]
	p.calls = append(p.calls, dir)
	if lines, ok := p.externals[dir]; ok {
		return lines, nil
	}
	return nil, &svn.CommandError{
		Binary: "svn",
		Args:   args,
		Output: fmt.Sprintf("svn: warning: W200017: Property 'svn:externals' not found on '%s'\nsvn: E200000: A problem occurred; see other errors for details", dir),
		Err:    errors.New("exit status 1"),
	}
}

func TestResolveExternalsNone(t *testing.T) {
	runner := &propgetRunner{}
	got, err := ResolveExternals(context.Background(), svn.NewClient(runner), &fakeFilesystem{}, &bytes.Buffer{}, ".", true)

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, []string{"."}, runner.calls)
}

func TestResolveExternalsLeafWithoutProperty(t *testing.T) {
	runner := &propgetRunner{externals: map[string][]string{
		"wc": {"^/libs/lib lib"},
	}}
	fs := &fakeFilesystem{existing: map[string]bool{filepath.Join("wc", "lib"): true}}

	got, err := ResolveExternals(context.Background(), svn.NewClient(runner), fs, &bytes.Buffer{}, "wc", true)

	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("wc", "lib")}, got)
	assert.Equal(t, []string{"wc", filepath.Join("wc", "lib")}, runner.calls)
}

func TestRevertSet(t *testing.T) {
	tests := []struct {
		name      string
		dir       string
		externals []string
		want      []string
	}{
		{name: "no externals", dir: ".", want: []string{"."}},
		{name: "sorted", dir: "wc", externals: []string{"wc/z", "wc/a"}, want: []string{"wc", "wc/a", "wc/z"}},
		{name: "duplicates kept", dir: "wc", externals: []string{"wc/lib", "wc/lib"}, want: []string{"wc", "wc/lib", "wc/lib"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RevertSet(tt.dir, tt.externals))
		})
	}
}
