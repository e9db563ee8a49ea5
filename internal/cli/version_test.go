package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/calcdemo/internal/buildinfo"
)

func TestVersion_Text(t *testing.T) {
	stdout, _, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "calcdemo "+buildinfo.Summary()+"\n", stdout)
}

func TestVersion_JSON(t *testing.T) {
	stdout, _, err := executeCommand(t, "--format", "json", "version")
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   VersionInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, buildinfo.Version, resp.Data.Version)
	assert.NotEmpty(t, resp.Data.GoVersion)
	assert.Contains(t, resp.Data.Platform, "/")
}
