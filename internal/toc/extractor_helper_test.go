package toc_test

import (
	"testing"

	"github.com/rohmanhakim/docs-toc/internal/config"
	"github.com/stretchr/testify/require"
)

func buildConfig(t *testing.T, cfg *config.Config) config.Config {
	t.Helper()
	built, err := cfg.Build()
	require.NoError(t, err)
	return built
}

func defaultConfig(t *testing.T) config.Config {
	return buildConfig(t, config.WithDefault())
}

func flatConfig(t *testing.T) config.Config {
	return buildConfig(t, config.WithDefault().WithHierarchical(false))
}
