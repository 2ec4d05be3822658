package main

import (
	"io"

	"github.com/pedromcd/balta-desafio-carnacode-2026-7-bridge/pkg/config"
	"github.com/pedromcd/balta-desafio-carnacode-2026-7-bridge/pkg/showcase"
)

// Dependencies holds all the dependencies for the application
type Dependencies struct {
	Config *config.Config
	Out    io.Writer
	Runner *showcase.Runner
}

// NewDependencies creates all dependencies with the given configuration
func NewDependencies(cfg *config.Config, out io.Writer) *Dependencies {
	return &Dependencies{
		Config: cfg,
		Out:    out,
		Runner: showcase.NewRunner(cfg, out),
	}
}

// Application represents the main application
type Application struct {
	deps *Dependencies
}

// NewApplication creates a new application with the given dependencies
func NewApplication(deps *Dependencies) *Application {
	return &Application{
		deps: deps,
	}
}

// Run renders the configured showcase
func (a *Application) Run() {
	a.deps.Runner.Run()
}
