package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/pageflip/internal/cli"
	"github.com/rshade/pageflip/pkg/version"
)

func TestMainComponents(t *testing.T) {
	t.Run("version available", func(t *testing.T) {
		assert.NotEmpty(t, version.GetVersion())
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.GetVersion())
		assert.NotNil(t, root)
		assert.NotEmpty(t, root.Use)
	})
}
