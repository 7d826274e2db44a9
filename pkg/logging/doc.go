// Package logging provides the structured logging facade used across the
// ability command-line tool.
//
// Entries are written through log/slog as text records carrying a subsystem
// attribute, so diagnostics from the host adapter, configuration loading and
// individual commands can be told apart on stderr.
//
// # Levels
//
//   - Debug: diagnostics, including host failures swallowed by can-run
//   - Info: loading progress (definitions found, config file used)
//   - Warn: skipped definitions and other recoverable problems (default level)
//   - Error: failures that are also reported to the user
//
// # Usage
//
//	logging.InitForCLI(logging.LevelWarn, os.Stderr)
//
//	logging.Debug("Host", "loaded %d abilities from %s", n, dir)
//	logging.Warn("Host", "skipping %s: %v", path, err)
//	logging.Error("Run", err, "execution of %s failed", name)
//
// Stdout is reserved for command output; logging never writes there.
package logging
