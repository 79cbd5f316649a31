// Package bootstrap builds the svnrevert command and wires its dependencies.
package bootstrap

import (
	urfavecli "github.com/urfave/cli/v3"
)

// globalFlags returns all flags of the command.
// Note: --version is provided automatically by urfave/cli via Command.Version
func globalFlags() []urfavecli.Flag {
	return []urfavecli.Flag{
		&urfavecli.BoolFlag{
			Name:    "dry-run",
			Aliases: []string{"n"},
			Usage:   "Show what would be reverted and deleted without touching anything",
		},
		&urfavecli.BoolFlag{
			Name:  "no-recursive",
			Usage: "Only revert externals declared on the working directory itself",
		},
		&urfavecli.StringFlag{
			Name:  "svn",
			Usage: "Path to the svn binary",
		},
		&urfavecli.StringFlag{
			Name:    "theme",
			Aliases: []string{"t"},
			Usage:   "Colour theme (dracula, clean-light, none)",
		},
		&urfavecli.StringFlag{
			Name:  "debug-log",
			Usage: "Path to debug log file",
		},
		&urfavecli.StringFlag{
			Name:  "config-file",
			Usage: "Path to configuration file",
		},
		&urfavecli.StringSliceFlag{
			Name:    "config",
			Aliases: []string{"C"},
			Usage:   "Override config values (repeatable): --config=key=value",
		},
	}
}
