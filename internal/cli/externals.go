package cli

import (
	"context"
	"fmt"
	"io"
	"sort"
)

type externalsLister interface {
	Externals(ctx context.Context, dir string) ([]string, error)
}

// ResolveExternals returns the external directories declared on dir. When
// recursive is set, externals of every external that exists on disk are
// appended after the shallow list, depth first.
func ResolveExternals(ctx context.Context, svc externalsLister, fs Filesystem, w io.Writer, dir string, recursive bool) ([]string, error) {
	fmt.Fprintf(w, "Getting svnexternals for: %s\n", dir)
	externals, err := svc.Externals(ctx, dir)
	if err != nil {
		return nil, err
	}
	if !recursive {
		return externals, nil
	}

	var nested []string
	for _, external := range externals {
		if !fs.Exists(external) {
			continue
		}
		found, err := ResolveExternals(ctx, svc, fs, w, external, true)
		if err != nil {
			return nil, err
		}
		nested = append(nested, found...)
	}
	return append(externals, nested...), nil
}

// RevertSet puts the working directory in front of the externals and sorts
// the result. Duplicates are kept.
func RevertSet(workingDir string, externals []string) []string {
	dirs := make([]string, 0, len(externals)+1)
	dirs = append(dirs, workingDir)
	dirs = append(dirs, externals...)
	sort.Strings(dirs)
	return dirs
}
