package models

// SyncListEntryType tells whether an entry covers a page or a page tree.
type SyncListEntryType string

const (
	EntryPage SyncListEntryType = "page"
	EntryTree SyncListEntryType = "tree"
)

// SyncListEntry is one page selection queued for sync.
type SyncListEntry struct {
	PageID int64             `json:"page_id"`
	Type   SyncListEntryType `json:"type"`
	// LevelMax bounds the subtree walk, 0 is unbounded.
	LevelMax  int  `json:"levelmax"`
	Removable bool `json:"removable"`
	Count     int  `json:"count"`
	Deleted   int  `json:"deleted"`
	NoAccess  int  `json:"noaccess"`
}

// SyncListData maps an area id to its queued entries.
type SyncListData map[int64][]SyncListEntry

// PageCount is the result of a subtree walk.
type PageCount struct {
	Count    int
	Deleted  int
	NoAccess int
}
