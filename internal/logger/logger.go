package logger

import (
	"github.com/SamMcCormick61/ultidiff/internal/config"
	"github.com/rs/zerolog"
)

// New creates a new zerolog logger from application log configuration.
func New(cfg config.LogConfig) (zerolog.Logger, error) {
	level, err := ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	loggerCfg := LoggerConfig{
		Level:         level,
		Format:        ParseFormat(cfg.LogFormat),
		EnableConsole: cfg.EnableConsole,
		EnableFile:    cfg.EnableFile && cfg.LogFile != "",
		FilePath:      cfg.LogFile,
		MaxSizeMB:     maxSizeOrDefault(cfg.MaxLogSizeMB),
		MaxBackups:    maxBackupsOrDefault(cfg.MaxLogBackups),
	}

	return NewLoggerBuilder().WithLoggerConfig(loggerCfg).Build()
}

func maxSizeOrDefault(maxSize int) int {
	if maxSize <= 0 {
		return 100
	}
	return maxSize
}

func maxBackupsOrDefault(maxBackups int) int {
	if maxBackups <= 0 {
		return 3
	}
	return maxBackups
}
