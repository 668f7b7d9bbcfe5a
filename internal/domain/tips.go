package domain

// Tip is a single financial quote from the tips provider.
type Tip struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

// TipsStatus is the fetch state machine for the tips panel.
type TipsStatus string

const (
	TipsStatusIdle      TipsStatus = "idle"
	TipsStatusLoading   TipsStatus = "loading"
	TipsStatusSucceeded TipsStatus = "succeeded"
	TipsStatusFailed    TipsStatus = "failed"
)

// TipsState is a snapshot of the tips panel. A failed fetch keeps the
// previously fetched tips and records the error message.
type TipsState struct {
	Status TipsStatus `json:"status"`
	Tips   []Tip      `json:"tips"`
	Error  string     `json:"error,omitempty"`
}
