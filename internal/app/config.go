package app

import (
	"errors"

	"github.com/vk/skilltreego/internal/catalog"
	"github.com/vk/skilltreego/internal/emitter"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// CatalogPath points at a catalog file or a directory of catalog files.
	CatalogPath string

	// Validate switches the run from analytics to structural validation.
	Validate bool
	// ReportPath, when set, receives the full textual analytics report.
	ReportPath string
	// GraphPath, when set, receives the layout export; Layout selects the
	// placement strategy.
	GraphPath string
	Layout    emitter.LayoutMode

	// Duplicates is the load-time duplicate-id policy.
	Duplicates catalog.DuplicatePolicy

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it, filling defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.CatalogPath == "" {
		return nil, errors.New("CatalogPath is a required configuration field and cannot be empty")
	}
	if cfg.Layout == "" {
		cfg.Layout = emitter.LayoutHierarchical
	}
	return &cfg, nil
}
