package models

// StatementType is the kind of a change line.
type StatementType string

const (
	StatementDelete StatementType = "DELETE"
	StatementInsert StatementType = "INSERT"
)

// LineKey identifies a change line within one dump run.
type LineKey struct {
	Type  StatementType
	Table string
	// ID is the numeric primary key for ordinary rows, or a synthetic
	// predicate/hash key for join-table rows.
	ID string
}

// ChangeLine is one SQL statement destined for the dump artifact.
type ChangeLine struct {
	Key       LineKey
	Statement string
	// RowUID is the numeric uid of the row the line belongs to, 0 when the
	// row has no uid column (pure join rows).
	RowUID int64
	// Join is set for lines produced from a many-to-many relation.
	Join bool
}

// ChangeSet holds the delete and insert lines of one batch in emission order.
type ChangeSet struct {
	Deletes []ChangeLine
	Inserts []ChangeLine
}

// Len returns the number of lines in the set.
func (c ChangeSet) Len() int {
	return len(c.Deletes) + len(c.Inserts)
}

// Append adds other's lines after the receiver's lines.
func (c *ChangeSet) Append(other ChangeSet) {
	c.Deletes = append(c.Deletes, other.Deletes...)
	c.Inserts = append(c.Inserts, other.Inserts...)
}
