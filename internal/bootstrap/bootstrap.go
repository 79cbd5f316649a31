package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chmouel/svnrevert/internal/buildinfo"
	"github.com/chmouel/svnrevert/internal/cli"
	"github.com/chmouel/svnrevert/internal/config"
	"github.com/chmouel/svnrevert/internal/log"
	"github.com/chmouel/svnrevert/internal/prompt"
	"github.com/chmouel/svnrevert/internal/svn"
	"github.com/chmouel/svnrevert/internal/theme"
	urfavecli "github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// Streams are the standard streams the command talks to.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// OSStreams returns the process standard streams.
func OSStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// Main runs the command with args and returns the process exit status.
func Main(ctx context.Context, args []string, streams Streams) int {
	defer func() { _ = log.Close() }()

	err := NewCommand(streams).Run(ctx, args)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, cli.ErrAborted):
		fmt.Fprintln(streams.Err, "Aborted!")
	default:
		fmt.Fprintf(streams.Err, "Error: %v\n", err)
	}
	return 1
}

// NewCommand builds the root command.
func NewCommand(streams Streams) *urfavecli.Command {
	return &urfavecli.Command{
		Name:      "svnrevert",
		Usage:     "Revert a Subversion working copy and its externals, then delete unversioned files",
		ArgsUsage: "[PATH]",
		Version:   buildinfo.Get().String(),

		EnableShellCompletion: true,

		Flags:     globalFlags(),
		Reader:    streams.In,
		Writer:    streams.Out,
		ErrWriter: streams.Err,
		Action: func(ctx context.Context, cmd *urfavecli.Command) error {
			return runRevert(ctx, cmd, streams)
		},
	}
}

func runRevert(ctx context.Context, cmd *urfavecli.Command, streams Streams) error {
	if cmd.Args().Len() > 1 {
		return fmt.Errorf("expected at most one path, got %d", cmd.Args().Len())
	}
	workingDir := cmd.Args().First()
	if workingDir == "" {
		workingDir = "."
	}

	// Set up debug logging before loading config
	debugLog := cmd.String("debug-log")
	setupDebugLog(streams.Err, debugLog)

	cfg, err := loadCLIConfig(streams.Err, cmd.String("config-file"), cmd.StringSlice("config"))
	if err != nil {
		return err
	}
	if debugLog == "" && cfg.DebugLog != "" {
		setupDebugLog(streams.Err, cfg.DebugLog)
	}
	applyFlags(cmd, cfg)

	thm := theme.GetTheme(cfg.Theme)
	client := svn.NewClient(svn.NewExecRunner(cfg.SvnBinary, cfg.SvnArgs))
	reverter := cli.NewReverter(client, cli.OSFilesystem{}, prompt.New(streams.In, streams.Out, thm), streams.Out, thm, cli.Options{
		WorkingDir:         workingDir,
		DryRun:             cfg.DryRun,
		RecursiveExternals: cfg.RecursiveExternals,
		RevertErrors:       cfg.RevertErrors,
	})
	if width, ok := terminalWidth(streams.Err); ok {
		reverter.ShowProgress(streams.Err, width)
	}

	return reverter.Run(ctx)
}

// loadCLIConfig loads the configuration file and applies --config overrides.
// A broken config file is reported and the defaults are used instead.
func loadCLIConfig(errOut io.Writer, configFile string, overrides []string) (*config.AppConfig, error) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		fmt.Fprintf(errOut, "Error loading config: %v\n", err)
		cfg = config.DefaultConfig()
	}

	if len(overrides) > 0 {
		if err := cfg.ApplyCLIOverrides(overrides); err != nil {
			return nil, fmt.Errorf("error applying config overrides: %w", err)
		}
	}

	return cfg, nil
}

// applyFlags lets explicit flags win over the configuration file.
func applyFlags(cmd *urfavecli.Command, cfg *config.AppConfig) {
	if cmd.Bool("dry-run") {
		cfg.DryRun = true
	}
	if cmd.Bool("no-recursive") {
		cfg.RecursiveExternals = false
	}
	if bin := cmd.String("svn"); bin != "" {
		cfg.SvnBinary = bin
	}
	if name := cmd.String("theme"); name != "" {
		cfg.Theme = config.NormalizeThemeName(name)
	}
	if debugLog := cmd.String("debug-log"); debugLog != "" {
		cfg.DebugLog = debugLog
	}
}

func setupDebugLog(errOut io.Writer, path string) {
	if path == "" {
		return
	}
	expanded, err := config.ExpandPath(path)
	if err != nil {
		expanded = path
	}
	if err := log.SetFile(expanded); err != nil {
		fmt.Fprintf(errOut, "Error opening debug log file %q: %v\n", expanded, err)
	}
}

var isTerminal = func(fd int) bool { return term.IsTerminal(fd) }

// terminalWidth reports the width of w when it is a terminal.
func terminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !isTerminal(int(f.Fd())) { //nolint:gosec
		return 0, false
	}
	width, _, err := term.GetSize(int(f.Fd())) //nolint:gosec
	if err != nil {
		return 0, true
	}
	return width, true
}
