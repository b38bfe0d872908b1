package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soypat/gear"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlagsErrors(t *testing.T) {
	for _, args := range [][]string{
		{"-p", "48", "-a", "20", "-s", "x.svg"},
		{"-n", "32", "-a", "20", "-s", "x.svg"},
		{"-n", "32", "-p", "48", "-s", "x.svg"},
		{"-n", "-3", "-p", "48", "-a", "20", "-s", "x.svg"},
		{"-n", "32", "-p", "48", "-a", "20", "-r", "0", "-s", "x.svg"},
		{"-n", "32", "-p", "48", "-a", "20", "-b", "-1", "-s", "x.svg"},
		{"-n", "32", "-p", "48", "-a", "20", "-svg_scale", "0", "-s", "x.svg"},
		{"-n", "32", "-p", "48", "-a", "20"},
		{"-n", "32", "-p", "48", "-a", "20", "-s", "x.svg", "extra"},
		{"-n", "many"},
	} {
		_, err := parseFlags(args, &bytes.Buffer{})
		assert.Error(t, err, "%q", args)
	}
}

func TestParseFlagsDefaults(t *testing.T) {
	c, err := parseFlags([]string{"-n", "32", "-p", "48", "-a", "20", "-d", "x.dxf"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, gear.DefaultAddendum, c.addendum)
	assert.Equal(t, gear.DefaultDedendum, c.dedendum)
	assert.Equal(t, gear.DefaultApproximationSteps, c.steps)
	assert.Equal(t, 1.0, c.svgScale)
	assert.Zero(t, c.kerf)
	assert.Zero(t, c.bore)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	svgPath := filepath.Join(dir, "gear.svg")
	dxfPath := filepath.Join(dir, "gear.dxf")
	pngPath := filepath.Join(dir, "gear.png")
	var stderr bytes.Buffer
	err := run([]string{
		"-n", "32", "-p", "48", "-a", "20", "-b", "0.125", "-k", "0.0078125", "-r", "8",
		"-s", svgPath, "-svg_scale", "500", "-d", dxfPath, "-png", pngPath, "-v",
	}, &stderr)
	require.NoError(t, err)
	for _, path := range []string{svgPath, dxfPath, pngPath} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.NotZero(t, info.Size(), path)
	}
	log := stderr.String()
	assert.Contains(t, log, "polylines=64")
	assert.Contains(t, log, "level=DEBUG", "-v enables debug logs")
}

func TestRunDegenerate(t *testing.T) {
	var stderr bytes.Buffer
	err := run([]string{"-n", "200", "-p", "48", "-a", "20", "-s", filepath.Join(t.TempDir(), "x.svg")}, &stderr)
	assert.True(t, errors.Is(err, gear.ErrDegenerate), "got %v", err)
	assert.False(t, strings.Contains(stderr.String(), "wrote file"))
}
