package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/skilltreego/internal/analyzer"
	"github.com/vk/skilltreego/internal/catalog"
	"github.com/vk/skilltreego/internal/ctxlog"
	"github.com/vk/skilltreego/internal/dag"
	"github.com/vk/skilltreego/internal/emitter"
	"github.com/vk/skilltreego/internal/validator"
)

// ErrIssuesFound marks a validation run that surfaced structural issues.
// The catalog itself loaded fine; the CLI maps this to a failing exit code.
var ErrIssuesFound = errors.New("catalog has structural issues")

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	loader *catalog.Loader
}

// NewApp is the constructor for the main application. Reports and summaries
// go to outW; log output goes to logW so machine-readable output stays
// clean.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		loader: catalog.NewLoader(cfg.Duplicates),
	}
}

// Run executes one analysis pass based on the provided configuration.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	cat, err := a.loader.Load(ctx, cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("could not load catalog: %w", err)
	}
	a.logger.Debug("Catalog loaded.", "skills", cat.Len())

	graph := dag.Build(ctx, cat)
	a.logger.Debug("Prerequisite graph built.", "nodes", graph.Len(), "edges", graph.EdgeCount())

	if cfg.Validate {
		return a.runValidation(ctx, graph, cat)
	}
	return a.runAnalysis(ctx, graph, cat, cfg)
}

// runValidation prints the categorized validation findings and reports
// non-empty results through ErrIssuesFound.
func (a *App) runValidation(ctx context.Context, graph *dag.Graph, cat *catalog.Catalog) error {
	report := validator.Validate(ctx, graph, cat)
	if err := emitter.WriteValidation(a.outW, report); err != nil {
		return fmt.Errorf("failed to write validation output: %w", err)
	}
	if !report.Empty() {
		return ErrIssuesFound
	}
	return nil
}

// runAnalysis prints the summary and writes the optional report and layout
// artifacts.
func (a *App) runAnalysis(ctx context.Context, graph *dag.Graph, cat *catalog.Catalog, cfg *Config) error {
	result := analyzer.Analyze(ctx, graph, cat)

	if err := emitter.WriteSummary(a.outW, result); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	if cfg.ReportPath != "" {
		if err := writeFile(cfg.ReportPath, func(w io.Writer) error {
			return emitter.WriteReport(w, result, cat)
		}); err != nil {
			return fmt.Errorf("failed to write report to %s: %w", cfg.ReportPath, err)
		}
		a.logger.Info("Analytics report written.", "path", cfg.ReportPath)
	}

	if cfg.GraphPath != "" {
		positions := emitter.Layout(result, graph, cfg.Layout)
		if err := writeFile(cfg.GraphPath, func(w io.Writer) error {
			return emitter.WriteLayout(w, cfg.Layout, positions)
		}); err != nil {
			return fmt.Errorf("failed to write layout to %s: %w", cfg.GraphPath, err)
		}
		a.logger.Info("Layout export written.", "path", cfg.GraphPath, "layout", string(cfg.Layout))
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// writeFile creates path and streams the emit function into it.
func writeFile(path string, emit func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := emit(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
