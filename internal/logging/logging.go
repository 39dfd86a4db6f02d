package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/htmlpg/pvfll-portal/internal/constants"
)

// SetupRollingLogFile creates the log file with its directory and returns a rotating writer.
func SetupRollingLogFile(filename string) (logWriter *lumberjack.Logger, err error) {
	// create log dir if not exists
	if err = os.MkdirAll(filepath.Dir(filename), constants.FilePerm); err != nil {
		return logWriter, fmt.Errorf("SetupRollingLogFile: %w", err)
	}

	if _, statErr := os.Stat(filename); statErr != nil {
		if !os.IsNotExist(statErr) {
			return logWriter, fmt.Errorf("SetupRollingLogFile: %w", statErr)
		}

		// create new log file
		logFile, err := os.OpenFile(filename, os.O_CREATE, constants.LogFilePerm)
		if err != nil {
			return logWriter, fmt.Errorf("SetupRollingLogFile: %w", err)
		}
		defer logFile.Close()
	}

	return &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    15,   // megabytes per log file
		MaxAge:     30,   // store retained log files for 30 days
		MaxBackups: 10,   // store maximum 10 retained log files
		Compress:   true, // compress files via gzip
	}, nil
}

// SetLogLevel sets the global zerolog level.
func SetLogLevel(level string) (err error) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("SetLogLevel: %w", err)
	}

	zerolog.SetGlobalLevel(parsed)
	return nil
}

// SetupDaemon routes the global logger into a rolling file. Debug level also mirrors to stderr.
func SetupDaemon(filename, level string) (logWriter *lumberjack.Logger, err error) {
	if logWriter, err = SetupRollingLogFile(filename); err != nil {
		return logWriter, fmt.Errorf("SetupDaemon: %w", err)
	}

	if err = SetLogLevel(level); err != nil {
		return logWriter, fmt.Errorf("SetupDaemon: %w", err)
	}

	var output io.Writer = logWriter
	if level == constants.LogLevelDebug {
		output = zerolog.MultiLevelWriter(logWriter, NewConsoleWriter(os.Stderr))
	}

	log.Logger = log.Output(output)
	return logWriter, nil
}

// NewConsoleWriter returns a human readable writer for operator facing tools.
func NewConsoleWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.TimeOnly,
	}
}

// SetupConsole routes the global logger to a console writer.
func SetupConsole(out io.Writer, level string) (err error) {
	if err = SetLogLevel(level); err != nil {
		return fmt.Errorf("SetupConsole: %w", err)
	}

	log.Logger = log.Output(NewConsoleWriter(out))
	return nil
}
