package cmd_test

import (
	"os"
	"path/filepath"
	"testing"

	cmd "github.com/rohmanhakim/docs-toc/internal/cli"
	"github.com/stretchr/testify/require"
)

const guidePage = `<html><head><title>Guide</title></head><body>` +
	`<h1>Guide</h1><p>intro</p>` +
	`<h2>Install</h2><p>steps</p>` +
	`<h2>Usage</h2><p>run it</p>` +
	`<h3>Flags</h3><p>all of them</p>` +
	`</body></html>`

// resetFlags clears every flag before and after the test.
func resetFlags(t *testing.T) {
	t.Helper()
	cmd.ResetFlags()
	t.Cleanup(cmd.ResetFlags)
}

func writeInput(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
