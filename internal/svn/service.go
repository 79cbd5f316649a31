// Package svn wraps the svn commands used by svnrevert.
package svn

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/chmouel/svnrevert/internal/log"
	"github.com/chmouel/svnrevert/internal/models"
)

// ExternalsProperty is the property holding external definitions.
const ExternalsProperty = "svn:externals"

// warnPropertyNotFound is the warning svn 1.9 and later emit, with exit status
// 1, when propget asks for a property the target does not carry.
const warnPropertyNotFound = "W200017"

// Client runs svn operations against a working copy through a Runner.
type Client struct {
	runner Runner
}

// NewClient returns a client that sends every command through runner.
func NewClient(runner Runner) *Client {
	return &Client{runner: runner}
}

// Status returns the status of every item under path.
func (c *Client) Status(ctx context.Context, path string) ([]models.StatusEntry, error) {
	out, err := c.runner.RunCombined(ctx, "status", "--xml", path)
	if err != nil {
		return nil, err
	}
	entries, err := ParseStatus([]byte(out))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("status: %d entries under %s", len(entries), path)
	return entries, nil
}

// Externals returns the local directories of the externals defined directly
// on dir.
func (c *Client) Externals(ctx context.Context, dir string) ([]string, error) {
	lines, err := c.runner.RunLines(ctx, "propget", ExternalsProperty, dir)
	if isPropertyNotFound(err) {
		log.Printf("externals: none set on %s", dir)
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	externals := ParseExternals(dir, lines)
	log.Printf("externals: %d of %d lines usable for %s", len(externals), len(lines), dir)
	return externals, nil
}

// Revert recursively reverts dir and returns svn's output.
func (c *Client) Revert(ctx context.Context, dir string) (string, error) {
	return c.runner.RunCombined(ctx, "revert", "-R", dir)
}

func isPropertyNotFound(err error) bool {
	var cmdErr *CommandError
	return errors.As(err, &cmdErr) && strings.Contains(cmdErr.Output, warnPropertyNotFound)
}
