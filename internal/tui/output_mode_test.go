package tui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectOutputMode(t *testing.T) {
	regular, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = regular.Close() })

	t.Run("plain flag wins", func(t *testing.T) {
		assert.Equal(t, OutputModePlain, DetectOutputMode(true, os.Stdout))
	})

	t.Run("NO_COLOR forces plain", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.Equal(t, OutputModePlain, DetectOutputMode(false, os.Stdout))
	})

	t.Run("non-terminal output is plain", func(t *testing.T) {
		assert.Equal(t, OutputModePlain, DetectOutputMode(false, regular))
	})

	t.Run("nil file is plain", func(t *testing.T) {
		assert.Equal(t, OutputModePlain, DetectOutputMode(false, nil))
	})
}

func TestRenderError(t *testing.T) {
	err := errors.New("browse requires an interactive terminal")

	t.Run("plain", func(t *testing.T) {
		assert.Equal(t, "Error: browse requires an interactive terminal",
			RenderError(err, OutputModePlain))
	})

	t.Run("styled", func(t *testing.T) {
		assert.Contains(t, RenderError(err, OutputModeStyled),
			"Error: browse requires an interactive terminal")
	})
}
