// pkg/logger/logger.go

package logger

import (
	"os"
	"path/filepath"

	"github.com/CodeMonkeyCybersecurity/argus/pkg/shared"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger

// SetLogger installs the logger as the zap and otelzap global so that
// otelzap.Ctx(ctx) picks it up everywhere.
func SetLogger(l *zap.Logger) {
	log = l
	zap.ReplaceGlobals(l)
	otelzap.ReplaceGlobals(otelzap.New(l))
}

// L returns the global logger instance, or nil if uninitialized.
func L() *zap.Logger {
	return log
}

// GetLogger returns the global logger, initializing a console fallback if needed.
func GetLogger() *zap.Logger {
	if log == nil {
		SetLogger(NewFallbackLogger())
	}
	return log
}

// EnsureLogPermissions ensures the log directory and file exist with owner-only
// permissions before zap starts appending to them.
func EnsureLogPermissions(logFilePath string) error {
	dir := filepath.Dir(logFilePath)

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, shared.FilePermOwnerRWX); err != nil {
			return err
		}
	} else if err := os.Chmod(dir, shared.FilePermOwnerRWX); err != nil {
		return err
	}

	if _, err := os.Stat(logFilePath); os.IsNotExist(err) {
		file, err := os.Create(logFilePath)
		if err != nil {
			return err
		}
		if err := file.Close(); err != nil {
			return err
		}
	}

	return os.Chmod(logFilePath, shared.FilePermOwnerReadWrite)
}

// GetLogFileWriter tries to create a file writer at the specified path.
func GetLogFileWriter(path string) (zapcore.WriteSyncer, error) {
	if err := EnsureLogPermissions(path); err != nil {
		return zapcore.AddSync(os.Stdout), err
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, shared.FilePermOwnerReadWrite)
	if err != nil {
		return zapcore.AddSync(os.Stdout), err
	}

	return zapcore.AddSync(file), nil
}
