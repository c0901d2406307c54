package cmd

import (
	"errors"
	"os"
	"os/exec"
	"strconv"

	"github.com/google/subcommands"
)

// ExtensionPrefix prefixes the name of external subcommands binaries.
const ExtensionPrefix = "scr-"

// IsRegistered reports whether 'name' is a subcommand of the commander.
func IsRegistered(c *subcommands.Commander, name string) (found bool) {
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		if cmd.Name() == name {
			found = true
		}
	})
	return found
}

// RunExtension attempts to find and execute an external scr-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
//
// The effective configuration is passed to the extension through the
// environment, using the same variables as LoadConfig.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := ExtensionPrefix + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		logger.Debug().Str("extension", name).Err(err).Msg("extension not found")
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.Env = append(os.Environ(),
		EnvMinValuation+"="+strconv.FormatFloat(config.MinValuation, 'f', -1, 64),
		EnvMaxRisk+"="+strconv.FormatFloat(config.MaxRisk, 'f', -1, 64),
		EnvLogLevel+"="+logger.GetLevel().String(),
	)

	logger.Debug().Str("extension", lp).Strs("args", args).Msg("running extension")
	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		logger.Error().Str("extension", name).Err(err).Msg("cannot run extension")
		return true, 1
	}
	return true, 0
}
