package ir

// Calculation is one evaluated arithmetic operation.
//
// ID is content-addressed over (RunToken, Op, A, B, Seq). Result is not
// hashed; replay recomputes it from the operands.
type Calculation struct {
	ID       string `json:"id"`
	RunToken string `json:"run_token"`
	Seq      int64  `json:"seq"`
	Op       string `json:"op"`
	A        int32  `json:"a"`
	B        int32  `json:"b"`
	Result   int32  `json:"result"`
}
