package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"codeberg.org/mutker/senecd/internal/collector"
	"codeberg.org/mutker/senecd/internal/config"
	"codeberg.org/mutker/senecd/internal/device"
	"codeberg.org/mutker/senecd/internal/errors"
	"codeberg.org/mutker/senecd/internal/logger"
	"codeberg.org/mutker/senecd/internal/pid"
)

var cfg *config.Config

func init() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Debug, cfg.Verbose, logger.IsService())
	if !cfg.Debug && !cfg.Verbose {
		if level, ok := config.LogLevel(cfg.LogLevel).LoggerLevel(); ok {
			logger.SetLogLevel(level)
		}
	}
	logger.Debug().Msg("Config loaded")
}

func main() {
	errFactory := errors.New()

	if cfg.Host == "" {
		logger.ErrorWithCode(errFactory.New(errors.ErrMissingHost)).Send()
		os.Exit(1)
	}

	if err := pid.Write(); err != nil {
		logger.Error().Err(err).Msg("failed to write pid file")
		os.Exit(1)
	}
	defer func() {
		if err := pid.Remove(); err != nil {
			logger.Error().Err(err).Msg("failed to remove pid file")
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleSignals(cancel)

	if err := run(ctx); err != nil {
		logger.Error().Err(err).Msg("error in main loop")
	}
	logger.Info().Msg("Exiting...")
}

func run(ctx context.Context) error {
	c, err := collector.New(collector.Config{
		Host:     cfg.Host,
		Interval: cfg.PollInterval(),
	}, device.NewClient(0))
	if err != nil {
		return err
	}

	if err := c.Start(); err != nil {
		return err
	}

	// stop the collector once a termination signal cancels the context;
	// the blocked GetData below wakes with nil when the loop has exited
	// and the queue is drained
	go func() {
		<-ctx.Done()
		c.Stop()
	}()

	for {
		status := c.GetData(true)
		if status == nil {
			break
		}
		logStatus(status)
	}

	<-c.Done()

	return nil
}

func handleSignals(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	logger.Info().Msg("Received termination signal.")
	cancel()
}

func logStatus(status device.RawStatus) {
	payload, err := json.Marshal(status)
	if err != nil {
		logger.Error().Err(err).Msg("failed to encode status record")
		return
	}

	logger.Info().RawJSON("status", payload).Msg("status collected")
}
