package harness

// TraceEvent is one journaled calculation as it appears in a trace.
type TraceEvent struct {
	Seq    int64  `json:"seq"`
	Op     string `json:"op"`
	A      int32  `json:"a"`
	B      int32  `json:"b"`
	Result int32  `json:"result"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true when every expectation and assertion held.
	Pass bool `json:"pass"`

	// Trace lists the calculations in seq order.
	Trace []TraceEvent `json:"trace"`

	// Errors describes each failed expectation or assertion.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError records a failure and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
