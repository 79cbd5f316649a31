package svn

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	log "github.com/chmouel/svnrevert/internal/log"
)

// Runner invokes the svn client. Client depends only on this interface so
// tests can replay canned output.
type Runner interface {
	// RunCombined returns stdout and stderr interleaved as one string.
	RunCombined(ctx context.Context, args ...string) (string, error)
	// RunLines returns stdout split into lines.
	RunLines(ctx context.Context, args ...string) ([]string, error)
}

// ExecRunner runs a real svn binary.
type ExecRunner struct {
	Binary     string
	GlobalArgs []string
}

var _ Runner = (*ExecRunner)(nil)

// NewExecRunner returns a runner for binary (defaults to "svn") that prepends
// globalArgs to every invocation.
func NewExecRunner(binary string, globalArgs []string) *ExecRunner {
	if strings.TrimSpace(binary) == "" {
		binary = "svn"
	}
	return &ExecRunner{Binary: binary, GlobalArgs: append([]string{}, globalArgs...)}
}

func (r *ExecRunner) command(ctx context.Context, args []string) *exec.Cmd {
	full := append(append([]string{}, r.GlobalArgs...), args...)
	log.Printf("run: %s %s", r.Binary, strings.Join(full, " "))
	// #nosec G204 -- the binary comes from local config and arguments are built internally
	return exec.CommandContext(ctx, r.Binary, full...)
}

// RunCombined implements Runner.
func (r *ExecRunner) RunCombined(ctx context.Context, args ...string) (string, error) {
	cmd := r.command(ctx, args)
	out, err := cmd.CombinedOutput()
	if err != nil {
		log.Printf("error: %s %s: %v", r.Binary, strings.Join(args, " "), err)
		return string(out), commandError(r.Binary, args, err, out)
	}
	return string(out), nil
}

// RunLines implements Runner.
func (r *ExecRunner) RunLines(ctx context.Context, args ...string) ([]string, error) {
	cmd := r.command(ctx, args)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		log.Printf("error: %s %s: %v", r.Binary, strings.Join(args, " "), err)
		return nil, commandError(r.Binary, args, err, stderr.Bytes())
	}
	return splitLines(stdout.String()), nil
}

// CommandError is returned when svn exits unsuccessfully. Output holds what
// svn wrote to stderr (stdout too for RunCombined).
type CommandError struct {
	Binary string
	Args   []string
	Output string
	Err    error
}

func (e *CommandError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("%s %s: %v", e.Binary, strings.Join(e.Args, " "), e.Err)
	}
	return fmt.Sprintf("%s %s: %v: %s", e.Binary, strings.Join(e.Args, " "), e.Err, e.Output)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

func commandError(binary string, args []string, err error, output []byte) error {
	return &CommandError{
		Binary: binary,
		Args:   append([]string{}, args...),
		Output: strings.TrimSpace(string(output)),
		Err:    err,
	}
}

// splitLines splits text on newlines, dropping a trailing empty line and any
// carriage returns.
func splitLines(text string) []string {
	var lines []string
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	return lines
}
