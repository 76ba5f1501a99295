// cmd/vie/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	stlog "log" // for fatal errors before the logger is ready
	"os"

	"github.com/bethropolis/vie/internal/app"
	"github.com/bethropolis/vie/internal/config"
	"github.com/bethropolis/vie/internal/logger"
)

func main() {
	flags := config.NewFlags(config.AppName, flag.ExitOnError)
	args, _ := flags.Parse(os.Args[1:])

	if flags.ShowVersion() {
		fmt.Printf("%s %s\n", config.AppName, config.Version)
		return
	}

	var filePath string
	if len(args) > 0 {
		filePath = args[0]
	}

	cfg, cfgErr := config.Load("", flags)

	logOutput, closeLog, err := openLogOutput(cfg.Logger.LogFilePath)
	if err != nil {
		stlog.Fatalf("Failed to open log file '%s': %v", cfg.Logger.LogFilePath, err)
	}
	defer closeLog()

	logger.SetFilterDebug(flags.FilterDebug())
	logger.Init(cfg.Logger, logOutput)

	logger.Infof("Starting %s %s", config.AppName, config.Version)
	if cfgErr != nil {
		logger.Warnf("Config: %v; using defaults", cfgErr)
	}
	cfg.LogWarnings()
	if filePath != "" {
		logger.Debugf("File path specified: %s", filePath)
	} else {
		logger.Debugf("No file specified, starting empty.")
	}

	vieApp, err := app.NewApp(filePath, cfg)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		closeLog()
		os.Exit(1)
	}

	if err := vieApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		closeLog()
		os.Exit(1)
	}

	logger.Infof("%s finished.", config.AppName)
}

// openLogOutput opens path for appending. "-" means stderr.
func openLogOutput(path string) (io.Writer, func(), error) {
	if path == "-" {
		return os.Stderr, func() {}, nil
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return nil, nil, err
	}
	return logFile, func() { _ = logFile.Close() }, nil
}
