package main

import (
	"encoding/json"
	"testing"

	"github.com/cristianoliveira/commentview/internal/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd(t *testing.T) {
	origVersion, origCommit := version.Version, version.Commit
	defer func() {
		version.Version, version.Commit = origVersion, origCommit
	}()
	version.Version, version.Commit = "1.0.0", "abc1234"

	out, err := execute(t, NewVersionCmd())

	require.NoError(t, err)
	assert.Contains(t, out, "commentview version 1.0.0+abc1234 (")
}

func TestVersionCmdJSON(t *testing.T) {
	out, err := execute(t, NewVersionCmd(), "--format", "json")
	require.NoError(t, err)

	var info version.Info
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, version.Current(), info)
}
