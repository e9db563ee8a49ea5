// Package ir defines the canonical records that calcdemo journals and
// hashes.
//
// ir imports nothing internal. Every other package may depend on it.
//
// Constraints:
//   - Integers only, no floats
//   - JSON tags use snake_case
//   - Ordering uses the logical clock (seq), never wall-clock time
package ir
