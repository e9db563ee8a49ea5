package cli

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with args and captures its output.
func executeCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	cmd := NewRootCommand()
	outBuf := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	cmd.SetOut(outBuf)
	cmd.SetErr(errBuf)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

// tempDB returns a path for a not-yet-created database.
func tempDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "calcdemo.db")
}

// execSQL runs a statement directly against a journal file.
func execSQL(t *testing.T, path, query string, args ...any) {
	t.Helper()

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(query, args...)
	require.NoError(t, err)
}

// decodeErrorResponse parses a JSON error document written to stdout.
func decodeErrorResponse(t *testing.T, stdout string) CLIResponse {
	t.Helper()

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp), "stdout: %q", stdout)
	require.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	return resp
}
