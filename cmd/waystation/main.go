package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"Waystation/internal/config"
	"Waystation/internal/engine"
	"Waystation/internal/logger"
)

func main() {
	configPath := flag.String("config", "", "station config file (built-in station when empty)")
	watch := flag.Bool("watch", true, "retune objects when the config file changes")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if cfg.LogFile != "" {
		err = logger.InitFile(cfg.LogFile, cfg.Debug)
	} else {
		err = logger.Init(cfg.Debug)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	var watcher *config.Watcher
	if *configPath != "" && *watch {
		watcher, err = config.NewWatcher(*configPath)
		if err != nil {
			logger.Log.Warn("Config hot reload disabled", zap.Error(err))
		} else {
			defer watcher.Close()
		}
	}

	if err := engine.New(cfg, watcher).Run(); err != nil {
		logger.Log.Error("Waystation stopped", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
