package logging

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitLogger(t *testing.T) {
	err := InitLogger()
	require.NoError(t, err)
	assert.NotNil(t, Logger)
	assert.NotNil(t, Logger.logger)
}

func TestInitLogger_WithLogLevel(t *testing.T) {
	// Set log level environment variable
	os.Setenv("LOG_LEVEL", "debug")
	defer os.Unsetenv("LOG_LEVEL")

	err := InitLogger()
	require.NoError(t, err)
	assert.NotNil(t, Logger)
}

func TestInitLogger_WithInvalidLogLevel(t *testing.T) {
	// Set invalid log level - should still succeed with default
	os.Setenv("LOG_LEVEL", "invalid")
	defer os.Unsetenv("LOG_LEVEL")

	err := InitLogger()
	require.NoError(t, err)
	assert.NotNil(t, Logger)
}

func TestNewSafeLogger(t *testing.T) {
	zapLogger := zap.NewNop()
	logger := NewSafeLogger(zapLogger)

	require.NotNil(t, logger)
	assert.Equal(t, zapLogger, logger.logger)
}

func TestSafeLogger_Logging(t *testing.T) {
	logger := &SafeLogger{logger: zap.NewNop()}

	// Should not panic
	logger.Debug("test debug", zap.Bool("flag", true))
	logger.Info("test message", zap.String("key", "value"))
	logger.Warn("test warning", zap.Int("count", 42))
	logger.Error("test error", zap.String("error", "something went wrong"))
}

func TestSafeLogger_NilLogger(t *testing.T) {
	logger := &SafeLogger{logger: nil}

	// All methods should be safe to call with nil logger
	logger.Debug("test")
	logger.Info("test")
	logger.Warn("test")
	logger.Error("test")
	assert.NoError(t, logger.Sync())
}

func TestSafeLogger_NilSafeLogger(t *testing.T) {
	var logger *SafeLogger = nil

	// Should not panic even with nil SafeLogger
	logger.Debug("test")
	logger.Info("test")
	logger.Warn("test")
	logger.Error("test")
	assert.NoError(t, logger.Sync())
}

func TestSafeLogger_With(t *testing.T) {
	logger := &SafeLogger{logger: zap.NewNop()}

	newLogger := logger.With(zap.String("key", "value"), zap.Int("count", 42))

	require.NotNil(t, newLogger)
	assert.NotNil(t, newLogger.logger)

	// Should be able to use the new logger
	newLogger.Info("test message")
}

func TestSafeLogger_With_NilLogger(t *testing.T) {
	logger := &SafeLogger{logger: nil}

	newLogger := logger.With(zap.String("key", "value"))

	assert.Equal(t, logger, newLogger)
}

func TestSafeLogger_With_NilSafeLogger(t *testing.T) {
	var logger *SafeLogger = nil

	newLogger := logger.With(zap.String("key", "value"))

	assert.Nil(t, newLogger)
}

func TestSafeLogger_Unwrap(t *testing.T) {
	zapLogger := zap.NewNop()
	logger := &SafeLogger{logger: zapLogger}

	unwrapped := logger.Unwrap()

	assert.Equal(t, zapLogger, unwrapped)
}

func TestSafeLogger_Unwrap_NilLogger(t *testing.T) {
	logger := &SafeLogger{logger: nil}

	// Should return a nop logger rather than nil
	assert.NotNil(t, logger.Unwrap())
}

func TestSafeLogger_Unwrap_NilSafeLogger(t *testing.T) {
	var logger *SafeLogger = nil

	assert.NotNil(t, logger.Unwrap())
}

func TestSafeLogger_ChainedWith(t *testing.T) {
	logger := &SafeLogger{logger: zap.NewNop()}

	logger1 := logger.With(zap.String("key1", "value1"))
	logger2 := logger1.With(zap.String("key2", "value2"))

	require.NotNil(t, logger1)
	require.NotNil(t, logger2)

	logger2.Info("test with chained context")
}

func TestInitLogger_MultipleInit(t *testing.T) {
	// Should be safe to call InitLogger multiple times
	require.NoError(t, InitLogger())
	require.NoError(t, InitLogger())

	assert.NotNil(t, Logger)
}
