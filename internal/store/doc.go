// Package store provides the SQLite-backed calculation journal.
//
// The journal is append-only. Each row is one ir.Calculation keyed by its
// content-addressed ID:
//   - Writes use ON CONFLICT(id) DO NOTHING, so re-recording is a no-op
//   - UNIQUE(run_token, seq) rejects two different calculations at the
//     same position of a run
//   - Reads order by seq ASC, id COLLATE BINARY ASC
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//
// IDs are computed by ir.CalculationID; the store never derives them.
package store
