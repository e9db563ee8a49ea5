package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// DomainCalculation separates calculation IDs from any other hash the
// project may compute. The version suffix allows algorithm migration.
const DomainCalculation = "calcdemo/calculation/v1"

// hashWithDomain computes SHA256(domain + 0x00 + data).
// The null byte prevents domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// CalculationID computes the content-addressed ID of a calculation.
// The ID is stable across restarts and replays given the same inputs.
func CalculationID(runToken, op string, a, b int32, seq int64) (string, error) {
	obj := map[string]any{
		"run_token": runToken,
		"op":        op,
		"a":         a,
		"b":         b,
		"seq":       seq,
	}

	canonical, err := MarshalCanonical(obj)
	if err != nil {
		return "", fmt.Errorf("CalculationID: failed to marshal: %w", err)
	}

	return hashWithDomain(DomainCalculation, canonical), nil
}
