package entity

// Notification is the completion summary derived from a profile snapshot.
// It is recomputed on every change and never sent to the backend.
type Notification struct {
	HasNotification      bool     `json:"hasNotification"`
	MissingFields        []string `json:"missingFields"`
	Message              string   `json:"message"`
	CompletionPercentage int      `json:"completionPercentage"`
	Badge                string   `json:"badge,omitempty"`
}

// View is what the presentation layer reads: the current snapshot and its summary.
type View struct {
	Profile      Profile      `json:"profile"`
	Notification Notification `json:"notification"`
}
