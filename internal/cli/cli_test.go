package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/skilltreego/internal/catalog"
	"github.com/vk/skilltreego/internal/emitter"
)

func TestParse(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var out bytes.Buffer
		cfg, exit, err := Parse([]string{"analyze", "catalog.hcl"}, &out)
		require.NoError(t, err)
		require.False(t, exit)
		require.NotNil(t, cfg)

		assert.Equal(t, "catalog.hcl", cfg.CatalogPath)
		assert.False(t, cfg.Validate)
		assert.Empty(t, cfg.ReportPath)
		assert.Empty(t, cfg.GraphPath)
		assert.Equal(t, emitter.LayoutHierarchical, cfg.Layout)
		assert.Equal(t, catalog.FirstWins, cfg.Duplicates)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("flags after the positional argument", func(t *testing.T) {
		var out bytes.Buffer
		cfg, exit, err := Parse([]string{
			"analyze", "catalog.hcl",
			"--validate",
			"--report", "report.txt",
			"--graph", "layout.json",
			"--layout", "force",
			"--duplicates", "reject",
			"--log-level", "debug",
		}, &out)
		require.NoError(t, err)
		require.False(t, exit)

		assert.True(t, cfg.Validate)
		assert.Equal(t, "report.txt", cfg.ReportPath)
		assert.Equal(t, "layout.json", cfg.GraphPath)
		assert.Equal(t, emitter.LayoutForce, cfg.Layout)
		assert.Equal(t, catalog.Reject, cfg.Duplicates)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("no arguments prints usage", func(t *testing.T) {
		var out bytes.Buffer
		cfg, exit, err := Parse(nil, &out)
		require.NoError(t, err)
		assert.True(t, exit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "Usage:")
	})

	t.Run("missing catalog path prints usage", func(t *testing.T) {
		var out bytes.Buffer
		cfg, exit, err := Parse([]string{"analyze"}, &out)
		require.NoError(t, err)
		assert.True(t, exit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "CATALOG_PATH")
	})

	t.Run("unknown command", func(t *testing.T) {
		var out bytes.Buffer
		_, _, err := Parse([]string{"frobnicate", "x"}, &out)
		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
		assert.Contains(t, exitErr.Message, "unknown command")
	})

	t.Run("extra positional argument", func(t *testing.T) {
		var out bytes.Buffer
		_, _, err := Parse([]string{"analyze", "one.hcl", "two.hcl"}, &out)
		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
		assert.Contains(t, exitErr.Message, "unexpected argument")
	})

	t.Run("invalid option values", func(t *testing.T) {
		cases := map[string][]string{
			"invalid log-format":       {"analyze", "c.hcl", "--log-format", "xml"},
			"invalid log-level":        {"analyze", "c.hcl", "--log-level", "loud"},
			"invalid duplicate policy": {"analyze", "c.hcl", "--duplicates", "maybe"},
			"invalid layout":           {"analyze", "c.hcl", "--layout", "circular"},
		}
		for want, args := range cases {
			var out bytes.Buffer
			_, _, err := Parse(args, &out)
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr, want)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, want)
		}
	})
}
