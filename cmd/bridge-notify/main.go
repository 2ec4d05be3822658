package main

import (
	"fmt"
	"os"

	"github.com/pedromcd/balta-desafio-carnacode-2026-7-bridge/pkg/config"
	flag "github.com/spf13/pflag"
)

func main() {
	var (
		configPath string
		quiet      bool
		help       bool
	)

	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.BoolVar(&quiet, "quiet", false, "Disable all output")
	flag.BoolVar(&help, "help", false, "Show help message")
	flag.Parse()

	if help {
		printUsage()
		os.Exit(0)
	}

	// Make the flag win over the standard config locations
	if configPath != "" {
		if err := os.Setenv("BRIDGE_NOTIFY_CONFIG", configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error setting config path: %v\n", err)
			os.Exit(1)
		}
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if quiet {
		cfg.Quiet = true
	}

	// Debug output if verbose
	if os.Getenv("BRIDGE_NOTIFY_DEBUG") == "1" {
		fmt.Fprintf(os.Stderr, "bridge-notify: %d notifications, quiet=%v\n",
			len(cfg.Notifications), cfg.Quiet)
	}

	// Create and run the application
	deps := NewDependencies(cfg, os.Stdout)
	app := NewApplication(deps)
	app.Run()
}

func printUsage() {
	fmt.Println("bridge-notify - preview notifications across platform renderers")
	fmt.Println()
	fmt.Println("Usage: bridge-notify [OPTIONS]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  BRIDGE_NOTIFY_CONFIG  Path to config file")
	fmt.Println("  BRIDGE_NOTIFY_QUIET   Disable all output (true/false)")
	fmt.Println("  BRIDGE_NOTIFY_DEBUG   Print diagnostics to stderr (1)")
	fmt.Println()
	fmt.Println("Configuration file: ~/.config/bridge-notify/config.yaml")
}
