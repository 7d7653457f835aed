package freeze

import (
	"os"
	"path/filepath"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	info := &debug.BuildInfo{
		Deps: []*debug.Module{
			{Path: "gopkg.in/yaml.v3", Version: "v3.0.1"},
			{Path: "github.com/spf13/cobra", Version: "v1.10.2"},
			{Path: "github.com/example/forked", Version: "v1.0.0", Replace: &debug.Module{Path: "../forked", Version: "v1.0.1"}},
		},
	}

	assert.Equal(t, []string{
		"github.com/example/forked==v1.0.1",
		"github.com/spf13/cobra==v1.10.2",
		"gopkg.in/yaml.v3==v3.0.1",
	}, Lines(info))
}

func TestLinesEmpty(t *testing.T) {
	assert.Empty(t, Lines(&debug.BuildInfo{}))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requirements.txt")
	require.NoError(t, WriteFile(path))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
