package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/holdem/internal/server"
)

var CLI struct {
	Config   string `short:"c" default:"holdem-server.hcl" help:"Path to HCL configuration file"`
	Addr     string `short:"a" help:"Listen address (overrides config)"`
	LogLevel string `short:"l" help:"Log level: debug, info, warn, error (overrides config)"`
}

func main() {
	kctx := kong.Parse(&CLI)

	cfg, err := server.LoadConfig(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
		kctx.Exit(1)
	}

	if CLI.Addr != "" {
		host, port, err := net.SplitHostPort(CLI.Addr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid addr %q: %v\n", CLI.Addr, err)
			kctx.Exit(1)
		}
		portNum, err := strconv.Atoi(port)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid port %q: %v\n", port, err)
			kctx.Exit(1)
		}
		cfg.Server.Address = host
		cfg.Server.Port = portNum
	}
	if CLI.LogLevel != "" {
		cfg.Server.LogLevel = CLI.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		kctx.Exit(1)
	}

	logger := log.New(os.Stderr)
	switch cfg.Server.LogLevel {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}

	logger.Info("starting holdem server",
		"addr", cfg.ListenAddress(),
		"tables", len(cfg.Tables))

	srv := server.New(cfg, quartz.NewReal(), logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := srv.Run(ctx); err != nil {
		logger.Error("server exited", "error", err)
		kctx.Exit(1)
	}
	logger.Info("shutdown complete")
}
