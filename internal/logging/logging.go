package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/vancomm/minefield/internal/config"
)

type Options struct {
	Development bool
	File        *config.LogFile
	Out         io.Writer
}

func New(opts Options) (*logrus.Logger, error) {
	log := logrus.New()

	if opts.Out != nil {
		log.SetOutput(opts.Out)
	} else {
		log.SetOutput(os.Stderr)
	}

	level := logrus.InfoLevel
	if opts.Development {
		level = logrus.DebugLevel
		log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	log.SetLevel(level)

	if opts.File != nil {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   opts.File.Path,
			MaxSize:    opts.File.MaxSizeMB,
			MaxBackups: opts.File.MaxBackups,
			MaxAge:     opts.File.MaxAgeDays,
			Level:      level,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return nil, err
		}
		log.AddHook(hook)
	}

	return log, nil
}

// FromEnv builds a logger from DEVELOPMENT and LOG_* variables.
func FromEnv() (*logrus.Logger, error) {
	file, err := config.NewLogFile()
	if err != nil {
		return nil, err
	}
	return New(Options{Development: config.Development(), File: file})
}
