package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculationIDKnownVector(t *testing.T) {
	// sha256("calcdemo/calculation/v1" + 0x00 +
	//   `{"a":5,"b":3,"op":"add","run_token":"run-1","seq":1}`)
	id, err := CalculationID("run-1", "add", 5, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, "df72e4ff71bb46ade9e6f163b79a4776372967a91704a5963038f9f21ae0dde1", id)
}

func TestCalculationIDDeterminism(t *testing.T) {
	id1 := mustCalculationID("run-1", "add", 5, 3, 1)
	id2 := mustCalculationID("run-1", "add", 5, 3, 1)

	assert.Equal(t, id1, id2, "CalculationID must be deterministic")
	assert.Len(t, id1, 64, "SHA-256 hex is 64 characters")
}

func TestCalculationIDChangesWithInput(t *testing.T) {
	base := mustCalculationID("run-1", "add", 5, 3, 1)

	variants := map[string]string{
		"run token": mustCalculationID("run-2", "add", 5, 3, 1),
		"op":        mustCalculationID("run-1", "multiply", 5, 3, 1),
		"a":         mustCalculationID("run-1", "add", 6, 3, 1),
		"b":         mustCalculationID("run-1", "add", 5, 4, 1),
		"seq":       mustCalculationID("run-1", "add", 5, 3, 2),
		"swapped":   mustCalculationID("run-1", "add", 3, 5, 1),
	}

	for name, id := range variants {
		assert.NotEqual(t, base, id, "changing %s must change the ID", name)
	}
}

func TestHashWithDomainSeparation(t *testing.T) {
	data := []byte(`{"a":1}`)
	assert.NotEqual(t, hashWithDomain("calcdemo/calculation/v1", data), hashWithDomain("calcdemo/other/v1", data))
}

func mustCalculationID(runToken, op string, a, b int32, seq int64) string {
	id, err := CalculationID(runToken, op, a, b, seq)
	if err != nil {
		panic(err)
	}
	return id
}
