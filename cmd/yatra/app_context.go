package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/yatra/internal/api"
	"github.com/alexisbeaulieu97/yatra/internal/config"
	"github.com/alexisbeaulieu97/yatra/internal/logger"
)

// AppContext bundles long-lived services created for one command run.
type AppContext struct {
	Config config.Config
	Logger *logger.Logger
	API    *api.Client

	closers []io.Closer
}

// Close releases files opened for the run.
func (a *AppContext) Close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
}

// CommandLogger returns the logger tagged with the command name.
func (a *AppContext) CommandLogger(name string) *logger.Logger {
	return a.Logger.WithFields(map[string]any{"command": name})
}

// newAppContext loads configuration, applies flag overrides and builds the
// logger and API client. With logToFile set the log goes to the configured
// file instead of stderr so it cannot corrupt a full screen UI.
func newAppContext(cmd *cobra.Command, flags *rootFlags, logToFile bool) (*AppContext, error) {
	path := flags.configPath
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, newCommandError("start", "loading configuration", err, "Fix the config file or pass --config with a valid path.")
	}

	if flags.apiURL != "" {
		cfg.API.BaseURL = flags.apiURL
	}
	if flags.theme != "" {
		cfg.Theme = flags.theme
	}
	if flags.verbose {
		cfg.Log.Level = "debug"
	}
	if err := config.Validate(cfg); err != nil {
		return nil, newCommandError("start", "validating flags", err, "Check --api-url and --theme values.")
	}

	app := &AppContext{Config: cfg}

	var log *logger.Logger
	if logToFile {
		logPath := cfg.Log.File
		if logPath == "" {
			logPath = config.DefaultLogPath()
		}
		var closer io.Closer
		log, closer, err = logger.NewFile(logPath, cfg.Log.Level)
		if err != nil {
			return nil, newCommandError("start", "opening log file", err, "Set log.file in the config to a writable path and log.level to one of debug, info, warn or error.")
		}
		app.closers = append(app.closers, closer)
	} else {
		log, err = logger.New(logger.Options{Level: cfg.Log.Level, HumanReadable: true, Writer: cmd.ErrOrStderr()})
		if err != nil {
			return nil, newCommandError("start", "creating logger", err, "Use one of debug, info, warn or error for log.level.")
		}
	}

	app.Logger = log
	app.API = api.NewFromConfig(cfg, log)
	return app, nil
}
