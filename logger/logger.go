package logger

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu  sync.RWMutex
	log = newDefault()
)

// newDefault is the logger used until Init runs, so startup failures
// still reach stderr.
func newDefault() *zap.Logger {
	l, err := zap.NewProductionConfig().Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// Init swaps the backing logger. Passing nil restores the default
// stderr logger.
func Init(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	if l == nil {
		l = newDefault()
	}
	log = l
}

// New builds a production zap logger, at debug level when verbose is set.
func New(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	l, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return l, nil
}

// L returns the current backing logger for callers that want typed fields.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

func Sync() {
	_ = L().Sync()
}

func Info(message string, args ...interface{}) {
	L().Info(fmt.Sprintf(message, args...))
}

func Warn(message string, args ...interface{}) {
	L().Warn(fmt.Sprintf(message, args...))
}

func Error(message string, args ...interface{}) {
	L().Error(fmt.Sprintf(message, args...))
}

func Debug(message string, args ...interface{}) {
	L().Debug(fmt.Sprintf(message, args...))
}
