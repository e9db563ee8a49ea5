package ir

// Version constants for journaled records.
const (
	// RecordVersion is the calculation record schema version.
	RecordVersion = "1"
)
