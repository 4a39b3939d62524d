package main

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/surfaces/internal/config"
	"github.com/alexisbeaulieu97/surfaces/internal/logger"
	"github.com/alexisbeaulieu97/surfaces/internal/mapper"
	"github.com/alexisbeaulieu97/surfaces/internal/mappings"
)

const envLogLevel = "SURFACES_LOG_LEVEL"

// environment is what every command needs: the project file, the effective
// table built from it and a logger.
type environment struct {
	cfg        *config.Config
	configPath string
	table      *mappings.Table
	log        *logger.Logger
}

func loadEnvironment(cmd *cobra.Command, flags *rootFlags, operation string) (*environment, error) {
	log, err := newCommandLogger(cmd.ErrOrStderr(), flags.verbose)
	if err != nil {
		return nil, newCommandError(operation, "creating logger", err, "Set SURFACES_LOG_LEVEL to one of debug, info, warn or error.")
	}

	cfg, path, err := config.Load(flags.configPath)
	if err != nil {
		return nil, newCommandError(operation, "loading project file "+path, err, "Fix the reported field or pass a different file with --config.")
	}

	table, err := cfg.Table()
	if err != nil {
		return nil, newCommandError(operation, "building the mapping table", err, "Check the mappings section of "+displayPath(path)+".")
	}

	log.Debug("environment loaded", "config", displayPath(path), "mappings", table.Len())
	return &environment{cfg: cfg, configPath: path, table: table, log: log}, nil
}

func (e *environment) processor() *mapper.Processor {
	return mapper.New(e.table, e.log, e.cfg.ProcessorSettings()...)
}

func newCommandLogger(w io.Writer, verbose bool) (*logger.Logger, error) {
	level := "info"
	if env := strings.TrimSpace(os.Getenv(envLogLevel)); env != "" {
		level = env
	}
	if verbose {
		level = "debug"
	}
	return logger.New(logger.Options{Level: level, HumanReadable: isTerminal(w), Writer: w})
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func displayPath(path string) string {
	if path == "" {
		return "built-in defaults"
	}
	return path
}
