package domain

// VoiceAction is one structured command produced by the upstream NLU
// interpreter. It is immutable and consumed once by the dispatch pipeline.
type VoiceAction struct {
	Intent     string                 `json:"intent"`
	Data       map[string]interface{} `json:"data"`
	Confidence float64                `json:"confidence"` // 0..1
}

// ActingUser identifies who issued a batch of voice actions.
type ActingUser struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}

// ActionResult is the per-action outcome of a dispatched batch. The result
// list always matches the input actions in length and order.
type ActionResult struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}
