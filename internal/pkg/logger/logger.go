// Package logger configures the application-wide zap logger.
package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a console zap logger writing to stderr and installs it as the
// global logger. The standard library log output is redirected through it so
// third-party packages share the same sink.
func New() *zap.Logger {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)

	core := zapcore.NewCore(
		consoleEncoder,
		zapcore.AddSync(os.Stderr),
		zapcore.InfoLevel,
	)

	zapLogger := zap.New(core, zap.AddCaller())

	zap.ReplaceGlobals(zapLogger)
	log.SetOutput(zap.NewStdLog(zapLogger).Writer())

	return zapLogger
}
