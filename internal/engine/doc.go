// Package engine evaluates arithmetic operations into journaled
// calculation records.
//
// A Calculator belongs to one run. Every calculation it produces is
// stamped with the next value of the run's logical clock and a
// content-addressed ID (see ir.CalculationID). When a Recorder is
// configured the record is written before Calculate returns.
//
// Verify recomputes a stored record from its operands. Replay uses it to
// show that a journal is reproducible.
package engine
