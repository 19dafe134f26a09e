package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"Waystation/internal/config"
	"Waystation/internal/logger"
	"Waystation/internal/termhost"
)

func main() {
	configPath := flag.String("config", "", "station config file (built-in station when empty)")
	logPath := flag.String("log", filepath.Join(os.TempDir(), "waystation-tui.log"), "log file, used when the config names none")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	// stderr belongs to the terminal screen, so logs always go to a file.
	path := cfg.LogFile
	if path == "" {
		path = *logPath
	}
	if err := logger.InitFile(path, cfg.Debug); err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	var watcher *config.Watcher
	if *configPath != "" {
		w, err := config.NewWatcher(*configPath)
		if err != nil {
			logger.Log.Warn("Config hot reload disabled", zap.Error(err))
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	if err := termhost.New(cfg, watcher).Run(); err != nil {
		logger.Log.Error("Waystation stopped", zap.Error(err))
		logger.Sync()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
