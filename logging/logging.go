// Package logging builds the process logger
// Output goes to a file under the log directory, never to stdout or stderr,
// since the terminal belongs to the renderer
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abey79/rusteroid/config"
	"github.com/abey79/rusteroid/parameter"
)

// New creates the logger described by cfg, tagging every record with runID
// When logging is disabled it returns a no-op logger and a nil file
// The caller closes the returned file after syncing the logger
func New(cfg config.LogConfig, runID uuid.UUID) (*zap.Logger, *os.File, error) {
	if !cfg.Enabled {
		return zap.NewNop(), nil, nil
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(cfg.Dir, parameter.LogFileName)
	if err := rotate(path, cfg.MaxSize); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if cfg.Format == "json" {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(f), zap.NewAtomicLevelAt(level))
	logger := zap.New(core, zap.ErrorOutput(zapcore.AddSync(f))).
		With(zap.String("run", runID.String()))

	return logger, f, nil
}

// rotate moves an oversized log aside under a timestamped name
func rotate(path string, maxSize int64) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat log file: %w", err)
	}
	if info.Size() <= maxSize {
		return nil
	}

	ext := filepath.Ext(path)
	base := path[:len(path)-len(ext)]
	rotated := fmt.Sprintf("%s-%s%s", base, time.Now().Format("20060102-150405"), ext)
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	return nil
}
