package testutil

import (
	"testing"

	"github.com/recordkit/recordkit/internal/pkg/config"
	"github.com/recordkit/recordkit/internal/pkg/logger"
)

// SetupTestLogger sets up a console logger for testing purposes.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	return logger.NewConsoleLogger(config.LogLevelInfo)
}
