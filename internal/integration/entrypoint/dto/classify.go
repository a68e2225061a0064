package dto

// ClassifyRequest is the body for POST /api/classify and POST /api/capture.
type ClassifyRequest struct {
	Text string `json:"text" binding:"required"`
	Kind string `json:"kind" binding:"required"`
}

// ClassifyResponse reports the outcome of a classification attempt.
type ClassifyResponse struct {
	Matched bool        `json:"matched"`
	Record  interface{} `json:"record,omitempty"`
	Source  string      `json:"source,omitempty"`
	Queued  bool        `json:"queued,omitempty"`
}

// SyncStatusResponse describes the state of the sync pipeline.
type SyncStatusResponse struct {
	Online       bool   `json:"online"`
	Pending      int64  `json:"pending"`
	Degraded     bool   `json:"degraded"`
	SnapshotTime string `json:"snapshotTime,omitempty"`
}
