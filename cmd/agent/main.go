// Package main is the entry point for the device-status agent.
// It initializes configuration, builds the platform adapter, and serves
// gateway requests over stdin/stdout until interrupted. The -once flag
// answers a single request and exits instead.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/devlink-app/agent/internal/config"
	"github.com/devlink-app/agent/internal/gateway"
	"github.com/devlink-app/agent/internal/models"
	"github.com/devlink-app/agent/internal/platform"
	"github.com/devlink-app/agent/internal/status"
)

var (
	// version and build are set at build time via -ldflags.
	version = ""
	build   = ""

	configPath  = flag.String("config", "", "Path to configuration file (default: search standard locations)")
	showVersion = flag.Bool("version", false, "Show version and exit")
	once        = flag.String("once", "", "Answer a single request (status or info) and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("device-agent %s\n", versionString())
		os.Exit(0)
	}

	path := *configPath
	if path == "" {
		path = config.Locate()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)
	defer logger.Sync()

	pf := platform.New()
	adapter := status.New(pf, logger, status.Options{
		AppVersion:     version,
		AppBuild:       build,
		NameOverride:   cfg.Device.Name,
		ModelOverride:  cfg.Device.Model,
		LocaleOverride: cfg.Device.Locale,
	})

	if *once != "" {
		if err := runOnce(adapter, cfg, *once); err != nil {
			logger.Fatal("Request failed", zap.Error(err))
		}
		return
	}

	logger.Info("Starting device agent",
		zap.String("version", versionString()),
		zap.String("platform", pf.Name()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle OS signals for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Info("Received signal, shutting down",
			zap.String("signal", sig.String()))
		cancel()
	}()

	dispatcher := gateway.NewDispatcher(adapter, logger)
	session := gateway.NewSession(dispatcher, logger, cfg.Gateway.RequestTimeout.Duration)

	if err := session.Run(ctx, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
		logger.Fatal("Session failed", zap.Error(err))
	}
	logger.Info("Agent stopped")
}

// runOnce answers a single status or info request on stdout.
func runOnce(adapter *status.Adapter, cfg *config.Config, method string) error {
	timeout := cfg.Gateway.RequestTimeout.Duration
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var payload any
	switch method {
	case "status":
		payload = adapter.Status(ctx)
	case "info":
		payload = adapter.Info(ctx)
	default:
		return fmt.Errorf("unknown request %q (want status or info)", method)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(models.ReportEnvelope{
		Method:    "device." + method,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	})
}

func versionString() string {
	v := version
	if v == "" {
		v = "dev"
	}
	if build != "" {
		return v + "+" + build
	}
	return v
}

// initLogger creates a zap logger based on the configuration.
// Console output goes to stderr so stdout stays a clean response stream;
// a JSON log file is added when configured.
func initLogger(cfg *config.Config) *zap.Logger {
	var level zapcore.Level
	switch cfg.Logging.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		level,
	)

	cores := []zapcore.Core{consoleCore}

	if cfg.Logging.File != "" {
		file, err := os.OpenFile(cfg.Logging.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
		if err == nil {
			fileCore := zapcore.NewCore(
				zapcore.NewJSONEncoder(encoderConfig),
				zapcore.AddSync(file),
				level,
			)
			cores = append(cores, fileCore)
		}
	}

	return zap.New(zapcore.NewTee(cores...))
}
