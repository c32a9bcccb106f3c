package models

// RelationKind distinguishes the two relation shapes a table column can carry.
type RelationKind string

const (
	// RelationInline is an ownership relation: child rows live in ForeignTable.
	RelationInline RelationKind = "inline"
	// RelationMM is a many-to-many relation stored in a join table.
	RelationMM RelationKind = "mm"
)

// FormTypeUser marks a media-reference relation whose join rows point at sys_file.
const FormTypeUser = "user"

// RelationConfig describes one relation found on a source table column.
type RelationConfig struct {
	Kind         RelationKind
	ForeignTable string
	// MMTable is the join table name; empty for inline relations.
	MMTable string
	// ForeignField is the column of the join table that points back to the owner row.
	// Defaults to uid_foreign when empty.
	ForeignField string
	MatchFields  map[string]string
	FormType     string
}

// ControlFields names the columns used for obsolete-row cleanup.
// An empty name means the table has no such column.
type ControlFields struct {
	Delete   string
	Disabled string
	Endtime  string
}

// IsEmpty reports whether no control column is configured.
func (c ControlFields) IsEmpty() bool {
	return c.Delete == "" && c.Disabled == "" && c.Endtime == ""
}

// Row is one database row with its columns kept in select order.
type Row struct {
	Columns []string
	Values  []any
}

// Get returns the value of column name and whether it exists.
func (r Row) Get(name string) (any, bool) {
	for i, c := range r.Columns {
		if c == name {
			return r.Values[i], true
		}
	}
	return nil, false
}
