package models

// Severity classifies a user-visible message.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
)

// Message is one user-visible outcome line of a sync run.
type Message struct {
	Severity Severity `json:"severity"`
	Text     string   `json:"text"`
}

// SyncResult is returned by a sync run.
type SyncResult struct {
	// Artifact is the delivered file name, empty if nothing was delivered.
	Artifact  string    `json:"artifact,omitempty"`
	Delivered []string  `json:"delivered,omitempty"`
	Messages  []Message `json:"messages"`
}

// Add appends a message with the given severity.
func (r *SyncResult) Add(severity Severity, text string) {
	r.Messages = append(r.Messages, Message{Severity: severity, Text: text})
}

// HasErrors reports whether any error message was recorded.
func (r SyncResult) HasErrors() bool {
	for _, m := range r.Messages {
		if m.Severity == SeverityError {
			return true
		}
	}
	return false
}

// ModuleInfo describes a registered sync module.
type ModuleInfo struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	AccessLevel  int      `json:"access_level"`
	Tables       []string `json:"tables"`
	DumpFile     string   `json:"dump_file,omitempty"`
	UsesSyncList bool     `json:"uses_sync_list"`
}

// WaitingFiles reports the artifacts waiting in a target directory.
type WaitingFiles struct {
	Target    string   `json:"target"`
	Locked    bool     `json:"locked"`
	Files     []string `json:"files"`
	TotalSize int64    `json:"total_size"`
	OldestAge int64    `json:"oldest_age_seconds"`
	Severity  Severity `json:"severity,omitempty"`
}
