// Package cmd implements the radiodemo CLI commands.
//
// The root command owns configuration and logging; subcommands (list,
// frames, inspect) read the resolved settings from it.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-drift/radiobutton/cmd/radiodemo/internal/config"
	"github.com/go-drift/radiobutton/internal/logger"
	"github.com/go-drift/radiobutton/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// app is the state shared by one invocation's commands.
type app struct {
	cfgFile  string
	settings *config.Settings
	log      logger.Logger
	logClose io.Closer
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{log: logger.Noop()}

	root := &cobra.Command{
		Use:   "radiodemo",
		Short: "Animated radio button demo",
		Long: `radiodemo drives the animated radio control outside a real UI host.

Settings come from defaults, an optional YAML file (--config), RADIODEMO_*
environment variables and flags, in increasing priority.

Examples:
  radiodemo list --rows 12
  radiodemo frames --out ./frames --scale 8
  radiodemo inspect layouts/plans.yaml`,
		Version:           fmt.Sprintf("%s (built %s)", Version, BuildTime),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (YAML)")
	pf.String(config.KeyLogFile, "", "write logs to a rotating file instead of stderr")
	pf.Bool(config.KeyDebug, false, "enable debug logging")
	pf.Float64(config.KeyDiameter, 0, "outer diameter of each control (default 18)")
	pf.String(config.KeySelectedColor, "", "selected color (#RRGGBB or color name)")
	pf.String(config.KeyDeselectedColor, "", "deselected color (#RRGGBB or color name)")

	root.AddCommand(newListCmd(a), newFramesCmd(a), newInspectCmd(a))
	return root, a
}

// setup resolves settings and routes logs and reported errors.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	s, err := config.Load(a.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	a.settings = s

	var out io.Writer = cmd.ErrOrStderr()
	if s.LogFile != "" {
		w := logger.OpenFile(logger.FileOptions{Path: s.LogFile})
		out, a.logClose = w, w
	}
	a.log = logger.New(out, "["+cmd.Name()+"]", s.Debug)
	logger.SetDefault(a.log)
	errors.SetHandler(&errors.LogHandler{Out: out, Verbose: s.Debug})

	a.log.Debug("settings: %+v", *s)
	return nil
}

// close releases the log file and restores the default error handler.
func (a *app) close() {
	if a.logClose != nil {
		a.logClose.Close()
		a.logClose = nil
	}
	errors.SetHandler(nil)
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return ExecuteArgs(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// ExecuteArgs runs the CLI with explicit arguments and streams.
func ExecuteArgs(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	root, a := newRootCmd()
	defer a.close()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
