package models

// NotifyKind selects how a target is told that new artifacts arrived.
type NotifyKind string

const (
	NotifyNone    NotifyKind = "none"
	NotifyHTTP    NotifyKind = "http"
	NotifyURLFile NotifyKind = "urlfile"
)

// Target is a destination environment.
type Target struct {
	Name      string     `yaml:"name" json:"name"`
	Directory string     `yaml:"directory" json:"directory"`
	URLPath   string     `yaml:"url_path" json:"url_path"`
	Notify    NotifyKind `yaml:"notify" json:"notify"`
	NotifyURL string     `yaml:"notify_url" json:"notify_url,omitempty"`
	// Hide keeps a target out of editor selection; hidden targets always receive artifacts.
	Hide bool `yaml:"hide" json:"hide"`
}

// Area is a configured page subtree scope.
type Area struct {
	ID              int64    `yaml:"id" json:"id"`
	Name            string   `yaml:"name" json:"name"`
	Targets         []Target `yaml:"targets" json:"targets"`
	DocTypesExclude []int    `yaml:"doc_types_exclude" json:"doc_types_exclude"`
}

// Page is the subset of a pages row used by the subtree walk.
type Page struct {
	UID            int64
	PID            int64
	DocType        int
	Deleted        bool
	PermsUserID    int64
	PermsEverybody int
	// IsSiteRoot marks the root of another area.
	IsSiteRoot bool
}
