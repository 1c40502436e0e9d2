// Package logging configures the zap logger shared by all commands.
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"repobook/pkg/version"
)

// New builds the application logger. Verbose mode switches to the development
// configuration with debug-level output.
func New(verbose bool) (*zap.Logger, error) {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	cfg.InitialFields = map[string]interface{}{
		"appName":    "repobook",
		"appVersion": version.Get().Version,
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}

// Sync flushes the logger. Syncing stderr fails with EINVAL when it is
// neither a terminal nor a regular file, so that case is ignored.
func Sync(logger *zap.Logger) {
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return
	}
	if err := logger.Sync(); err != nil {
		if !strings.Contains(strings.ToLower(err.Error()), "invalid argument") {
			logger.Warn("Logger sync failed", zap.Error(err))
		}
	}
}

func isRegularFile(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
