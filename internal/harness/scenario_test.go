package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario(t *testing.T) {
	s, err := LoadScenario(filepath.Join("testdata", "scenarios", "basic_arithmetic.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "basic_arithmetic", s.Name)
	assert.Equal(t, "golden-run", s.RunToken)
	require.Len(t, s.Steps, 6)
	assert.Equal(t, "add", s.Steps[0].Op)
	assert.Equal(t, int32(5), s.Steps[0].A)
	require.NotNil(t, s.Steps[0].Expect)
	assert.Equal(t, int32(8), *s.Steps[0].Expect)
	assert.Len(t, s.Assertions, 3)
}

func TestLoadScenario_NotFound(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestParseScenario_DefaultRunToken(t *testing.T) {
	s, err := ParseScenario([]byte("name: x\nsteps:\n  - op: add\n    a: 1\n    b: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultRunToken, s.RunToken)
	assert.Nil(t, s.Steps[0].Expect)
}

func TestParseScenario_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		msg  string
	}{
		{"missing name", "steps:\n  - {op: add, a: 1, b: 2}\n", "name is required"},
		{"no steps", "name: x\n", "steps list is required"},
		{"unknown op", "name: x\nsteps:\n  - {op: divide, a: 1, b: 2}\n", "steps[0]"},
		{"unknown field", "name: x\nstep:\n  - {op: add, a: 1, b: 2}\n", "failed to parse YAML"},
		{"operand overflow", "name: x\nsteps:\n  - {op: add, a: 2147483648, b: 2}\n", "failed to parse YAML"},
		{"assertion without type", "name: x\nsteps:\n  - {op: add, a: 1, b: 2}\nassertions:\n  - {op: add}\n", "type is required"},
		{"unknown assertion", "name: x\nsteps:\n  - {op: add, a: 1, b: 2}\nassertions:\n  - {type: final_state}\n", "unknown assertion type"},
		{"negative count", "name: x\nsteps:\n  - {op: add, a: 1, b: 2}\nassertions:\n  - {type: trace_count, op: add, count: -1}\n", "non-negative"},
		{"empty order", "name: x\nsteps:\n  - {op: add, a: 1, b: 2}\nassertions:\n  - {type: trace_order}\n", "ops list is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoadScenario_AllTestdata(t *testing.T) {
	entries, err := os.ReadDir(filepath.Join("testdata", "scenarios"))
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, e := range entries {
		t.Run(e.Name(), func(t *testing.T) {
			_, err := LoadScenario(filepath.Join("testdata", "scenarios", e.Name()))
			assert.NoError(t, err)
		})
	}
}
