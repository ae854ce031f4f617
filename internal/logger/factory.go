package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// WriterFactory creates log writers based on format
type WriterFactory struct{}

// NewWriterFactory creates a new writer factory
func NewWriterFactory() *WriterFactory {
	return &WriterFactory{}
}

// CreateConsoleWriter creates a console writer
func (wf *WriterFactory) CreateConsoleWriter(format LogFormat) io.Writer {
	return wf.wrapWriter(os.Stderr, format, false)
}

// CreateFileWriter creates a file writer with rotation
func (wf *WriterFactory) CreateFileWriter(config LoggerConfig) io.Writer {
	// Best effort; lumberjack reports the real failure on first write.
	_ = os.MkdirAll(filepath.Dir(config.FilePath), 0755)

	rotating := &lumberjack.Logger{
		Filename:   config.FilePath,
		MaxSize:    config.MaxSizeMB,
		LocalTime:  true,
		MaxBackups: config.MaxBackups,
	}

	return wf.wrapWriter(rotating, config.Format, true)
}

// wrapWriter applies the format to a destination writer
func (wf *WriterFactory) wrapWriter(dest io.Writer, format LogFormat, noColor bool) io.Writer {
	switch format {
	case FormatConsole:
		return zerolog.ConsoleWriter{Out: dest, NoColor: noColor, TimeFormat: time.RFC3339}
	case FormatText:
		return zerolog.ConsoleWriter{Out: dest, NoColor: true, TimeFormat: time.RFC3339}
	default:
		return dest
	}
}
