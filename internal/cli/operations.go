// Package cli runs the revert-and-clean pipeline against a working copy.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chmouel/svnrevert/internal/config"
	log "github.com/chmouel/svnrevert/internal/log"
	"github.com/chmouel/svnrevert/internal/models"
	"github.com/chmouel/svnrevert/internal/prompt"
	"github.com/chmouel/svnrevert/internal/svn"
	"github.com/chmouel/svnrevert/internal/theme"
)

// ErrAborted is returned when the user declines a confirmation.
var ErrAborted = errors.New("aborted")

const dryRunNotice = "No changes made in dry-run mode"

type svnService interface {
	Status(ctx context.Context, path string) ([]models.StatusEntry, error)
	Externals(ctx context.Context, dir string) ([]string, error)
	Revert(ctx context.Context, dir string) (string, error)
}

var _ svnService = (*svn.Client)(nil)

// Options is the run configuration. It is built once and never changed.
type Options struct {
	WorkingDir         string
	DryRun             bool
	RecursiveExternals bool
	RevertErrors       config.RevertErrorPolicy
}

// Reverter restores a working copy: revert everything, then delete what svn
// does not track.
type Reverter struct {
	svn      svnService
	fs       Filesystem
	confirm  prompt.Confirmer
	out      io.Writer
	thm      *theme.Theme
	opts     Options
	progress *progressLine
}

// NewReverter wires a Reverter. out receives the report; thm colours it.
func NewReverter(svc svnService, fs Filesystem, confirm prompt.Confirmer, out io.Writer, thm *theme.Theme, opts Options) *Reverter {
	if thm == nil {
		thm = theme.None()
	}
	if opts.WorkingDir == "" {
		opts.WorkingDir = "."
	}
	if opts.RevertErrors == "" {
		opts.RevertErrors = config.RevertErrorsContinue
	}
	return &Reverter{svn: svc, fs: fs, confirm: confirm, out: out, thm: thm, opts: opts}
}

// ShowProgress draws a one line progress indicator on w while reverting.
// width is the terminal width; zero disables truncation.
func (r *Reverter) ShowProgress(w io.Writer, width int) {
	r.progress = &progressLine{w: w, width: width, thm: r.thm}
}

// Run executes the whole pipeline. It returns nil when there is nothing to
// do, and ErrAborted when a confirmation is declined.
func (r *Reverter) Run(ctx context.Context) error {
	log.Printf("run: dir=%s dry-run=%t recursive=%t revert-errors=%s",
		r.opts.WorkingDir, r.opts.DryRun, r.opts.RecursiveExternals, r.opts.RevertErrors)

	entries, err := r.fetchStatus(ctx)
	if err != nil {
		return err
	}

	if !SummarizeChanges(r.out, r.thm, entries) {
		fmt.Fprintln(r.out, r.thm.Success("Exiting"))
		return nil
	}

	if err := r.RevertChanges(ctx); err != nil {
		return err
	}

	// reverting can turn added files into unversioned ones
	entries, err = r.fetchStatus(ctx)
	if err != nil {
		return err
	}

	return r.DeleteUnversioned(entries)
}

func (r *Reverter) fetchStatus(ctx context.Context) ([]models.StatusEntry, error) {
	fmt.Fprintln(r.out, r.thm.Text("Getting svn status for: "+r.opts.WorkingDir))
	entries, err := r.svn.Status(ctx, r.opts.WorkingDir)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(r.out, r.thm.Text("Parsing SVN results"))
	return entries, nil
}

func (r *Reverter) ask(question string) error {
	ok, err := r.confirm.Confirm(question)
	if err != nil {
		return err
	}
	if !ok {
		log.Printf("declined: %s", question)
		return ErrAborted
	}
	return nil
}

// RevertChanges resolves the externals, confirms, and reverts the working
// directory together with every external.
func (r *Reverter) RevertChanges(ctx context.Context) error {
	externals, err := ResolveExternals(ctx, r.svn, r.fs, r.out, r.opts.WorkingDir, r.opts.RecursiveExternals)
	if err != nil {
		return err
	}
	dirs := RevertSet(r.opts.WorkingDir, externals)

	printList(r.out, r.thm, "The following directories will be recursively reverted:", dirs)
	if err := r.ask(fmt.Sprintf("Recursively revert the above %d directories", len(dirs))); err != nil {
		return err
	}

	fmt.Fprintln(r.out, r.thm.Error("Reverting..."))
	result, err := r.RevertDirs(ctx, dirs)
	if result != "" {
		fmt.Fprintln(r.out, r.thm.Error(strings.TrimRight(result, "\n")))
	}
	if err != nil {
		return err
	}
	if r.opts.DryRun {
		fmt.Fprintln(r.out, r.thm.Success(dryRunNotice))
	}
	return nil
}

// RevertDirs runs svn revert -R on each directory and returns the combined
// output. Under the continue policy a failure is recorded in the output and
// the loop goes on; under the abort policy the first failure is returned
// along with the output gathered so far.
func (r *Reverter) RevertDirs(ctx context.Context, dirs []string) (string, error) {
	var result strings.Builder
	for i, dir := range dirs {
		r.progress.step(i+1, len(dirs), dir)
		if r.opts.DryRun {
			log.Printf("dry-run: skip revert of %s", dir)
			continue
		}

		out, err := r.svn.Revert(ctx, dir)
		if err != nil {
			if r.opts.RevertErrors == config.RevertErrorsAbort {
				r.progress.done()
				return result.String(), fmt.Errorf("reverting %s: %w", dir, err)
			}
			fmt.Fprintf(&result, "ERROR reverting %s: %v\n", dir, err)
			continue
		}
		result.WriteString(out)
	}
	r.progress.done()
	return result.String(), nil
}

// DeleteUnversioned lists unversioned entries and, once confirmed, deletes
// them. Nothing is asked when there is nothing to delete.
func (r *Reverter) DeleteUnversioned(entries []models.StatusEntry) error {
	unversioned := Unversioned(entries)
	printList(r.out, r.thm, "The following items are unversioned:", unversioned)
	if len(unversioned) == 0 {
		return nil
	}

	if err := r.ask(fmt.Sprintf("Delete the above %d files/directories", len(unversioned))); err != nil {
		return err
	}

	fmt.Fprintln(r.out, r.thm.Error("Deleting..."))
	return r.DeleteItems(unversioned)
}

// DeleteItems removes each path, as a tree when it is a directory. The first
// failure stops the run.
func (r *Reverter) DeleteItems(paths []string) error {
	for _, path := range paths {
		normalized, err := r.fs.Abs(path)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", path, err)
		}
		fmt.Fprintln(r.out, r.thm.Error("Removing: "+normalized))
		if r.opts.DryRun {
			log.Printf("dry-run: skip removal of %s", normalized)
			continue
		}

		if r.fs.IsDir(normalized) {
			err = r.fs.RemoveAll(normalized)
		} else {
			err = r.fs.Remove(normalized)
		}
		if err != nil {
			return fmt.Errorf("removing %s: %w", normalized, err)
		}
		log.Printf("removed: %s", normalized)
	}

	if r.opts.DryRun {
		fmt.Fprintln(r.out, r.thm.Success(dryRunNotice))
	}
	return nil
}
