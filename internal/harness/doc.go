// Package harness runs arithmetic scenarios and compares their traces with
// golden files.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: basic_arithmetic
//	description: "The demo's add and multiply cases"
//	run_token: golden-run
//	steps:
//	  - op: add
//	    a: 5
//	    b: 3
//	    expect: 8
//	  - op: multiply
//	    a: -2
//	    b: 5
//	assertions:
//	  - type: trace_count
//	    op: add
//	    count: 1
//	  - type: trace_order
//	    ops: [add, multiply]
//
// # Assertion Types
//
//   - trace_count: the op appears exactly count times
//   - trace_order: the listed ops appear in this relative order
//
// # Deterministic Testing
//
// Every scenario runs on a fresh in-memory journal with a fixed run token
// and a clock starting at 0, and its trace is read back from the journal.
// Traces are therefore identical across runs and can be compared
// byte-for-byte with golden files.
package harness
