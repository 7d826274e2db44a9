package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"ability/internal/cli"
	"ability/internal/config"
	"ability/internal/host"
	"ability/internal/registry"
	"ability/pkg/logging"
	pkgstrings "ability/pkg/strings"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a failure or a negative answer from exists or can-run.
	ExitCodeError = 1
)

// Environment variables providing persistent flag defaults.
const (
	envConfigPath = "ABILITY_CONFIG_PATH"
	envDebug      = "ABILITY_DEBUG"
)

// rootCmd represents the base command for the ability application.
var rootCmd = NewRootCmd(nil)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	debug      bool

	// logOutput receives log records once a command opens the registry.
	logOutput io.Writer
}

// session hands commands the registry for the current invocation.
type session struct {
	options *rootOptions
	open    registry.Opener
}

// NewRootCmd builds the ability command tree. Commands obtain their registry
// from open; a nil open loads the file-backed host from --config-path.
func NewRootCmd(open registry.Opener) *cobra.Command {
	opts := &rootOptions{logOutput: os.Stderr}
	if open == nil {
		open = opts.openHost
	}
	s := &session{options: opts, open: open}

	cmd := &cobra.Command{
		Use:   "ability",
		Short: "Inspect, validate and run abilities registered with the host",
		Long: `ability lists and inspects the abilities and categories registered with
the host, checks input against an ability's schema, asks whether an ability
may run, and runs it.

exists and can-run answer through their exit status only, so they can be
used directly in shell conditions.`,
		// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
		SilenceUsage: true,
		// Errors are printed once by Execute as a single "Error:" line.
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate(`{{printf "ability version %s\n" .Version}}`)

	cmd.PersistentFlags().StringVar(&opts.configPath, "config-path", defaultConfigPath(), "Configuration directory (env "+envConfigPath+")")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", defaultDebug(), "Enable debug logging (env "+envDebug+")")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newListCmd(s))
	cmd.AddCommand(newGetCmd(s))
	cmd.AddCommand(newRunCmd(s))
	cmd.AddCommand(newExistsCmd(s))
	cmd.AddCommand(newCanRunCmd(s))
	cmd.AddCommand(newValidateCmd(s))
	cmd.AddCommand(newCategoryCmd(s))

	return cmd
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// This function is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		if !cli.IsSilent(err) {
			fmt.Fprintln(os.Stderr, cli.FormatError(err))
		}
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the exit code for an error returned by a command.
func getExitCode(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}

	var exitErr *cli.ExitStatusError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitCodeError
}

func defaultConfigPath() string {
	if path := os.Getenv(envConfigPath); path != "" {
		return path
	}
	return config.GetDefaultConfigPathOrPanic()
}

func defaultDebug() bool {
	debug, err := pkgstrings.ParseBool(os.Getenv(envDebug))
	return err == nil && debug
}

// registry initialises logging for the command and opens the registry.
// Opening includes the host version gate, so a failing precondition is
// reported before the command does anything else.
func (s *session) registry(cmd *cobra.Command) (registry.Registry, error) {
	s.options.logOutput = cmd.ErrOrStderr()

	level := logging.LevelWarn
	if s.options.debug {
		level = logging.LevelDebug
	}
	logging.InitForCLI(level, s.options.logOutput)

	return s.open(cmd.Context())
}

// openHost loads the configuration and the host definitions below it, then
// checks that the host is recent enough.
func (o *rootOptions) openHost(_ context.Context) (registry.Registry, error) {
	fs := afero.NewOsFs()

	cfg, err := config.LoadConfig(fs, o.configPath)
	if err != nil {
		return nil, err
	}
	if !o.debug {
		if level, err := logging.ParseLevel(cfg.Log.Level); err == nil {
			logging.InitForCLI(level, o.logOutput)
		}
	}

	h, err := host.Load(fs, cfg)
	if err != nil {
		return nil, err
	}
	if err := h.CheckVersion(); err != nil {
		return nil, err
	}

	logging.Debug("Host", "Opened host %s from %s", h.Version(), o.configPath)
	return h, nil
}
