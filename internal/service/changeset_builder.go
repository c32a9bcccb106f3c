package service

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-content-sync/internal/logger"
	"github.com/MKhiriev/go-content-sync/internal/store"
	"github.com/MKhiriev/go-content-sync/models"
)

const (
	pagesTable         = "pages"
	fileTable          = "sys_file"
	fileReferenceTable = "sys_file_reference"

	joinTableSuffix   = "_mm"
	defaultMMField    = "uid_foreign"
	tablenamesColumn  = "tablenames"
	maxPendingDeletes = 50
)

// flushFunc receives a batch of lines in emission order.
type flushFunc func(ctx context.Context, set models.ChangeSet) error

// changeSetBuilder turns rows into delete and insert lines, following the
// relations of every row. A builder belongs to one dump run.
type changeSetBuilder struct {
	meta     MetadataProvider
	exporter store.TableExporter
	flush    flushFunc

	// obsolete is called once for every dumped table when set.
	obsolete func(table string) error

	pending models.ChangeSet
	visited map[string]struct{}
	depth   int
}

func newChangeSetBuilder(meta MetadataProvider, exporter store.TableExporter, flush flushFunc) *changeSetBuilder {
	return &changeSetBuilder{
		meta:     meta,
		exporter: exporter,
		flush:    flush,
		visited:  make(map[string]struct{}),
	}
}

// buildChangesForRows emits lines for the rows of table selected by ids.
// ids are matched against uid for the pages table or when asContentIDs is
// set, against pid otherwise.
func (b *changeSetBuilder) buildChangesForRows(ctx context.Context, table string, ids []int64, asContentIDs bool) error {
	if strings.HasSuffix(table, joinTableSuffix) {
		return fmt.Errorf("%w: %s", ErrInvalidTable, table)
	}
	if len(ids) == 0 {
		return nil
	}

	field := "pid"
	if table == pagesTable || asContentIDs {
		field = "uid"
	}
	return b.dumpRows(ctx, table, sq.Eq{field: ids})
}

func (b *changeSetBuilder) dumpRows(ctx context.Context, table string, where sq.Sqlizer) error {
	log := logger.FromContext(ctx)

	b.depth++
	defer func() { b.depth-- }()

	columns, err := b.meta.Columns(ctx, table)
	if err != nil {
		return err
	}

	rows, err := b.exporter.ExportTable(ctx, table, where)
	if err != nil {
		log.Err(err).Str("func", "*changeSetBuilder.dumpRows").Str("table", table).Msg("failed to export rows")
		return fmt.Errorf("exporting %s: %w", table, err)
	}

	for _, row := range rows {
		uid := rowUID(row)
		visitKey := table + ":" + strconv.FormatInt(uid, 10)
		if _, ok := b.visited[visitKey]; ok {
			continue
		}
		b.visited[visitKey] = struct{}{}

		id := strconv.FormatInt(uid, 10)
		b.pending.Deletes = append(b.pending.Deletes, models.ChangeLine{
			Key:       models.LineKey{Type: models.StatementDelete, Table: table, ID: id},
			Statement: deleteLine(table, uid),
			RowUID:    uid,
		})
		b.pending.Inserts = append(b.pending.Inserts, models.ChangeLine{
			Key:       models.LineKey{Type: models.StatementInsert, Table: table, ID: id},
			Statement: insertUpdateLine(table, columns, rowValues(row, columns)),
			RowUID:    uid,
		})

		if err := b.writeRelations(ctx, table, row); err != nil {
			return err
		}

		if len(b.pending.Deletes) > maxPendingDeletes {
			if err := b.flushPending(ctx); err != nil {
				return err
			}
		}
	}

	if b.obsolete != nil {
		if err := b.obsolete(table); err != nil {
			return err
		}
	}

	if b.depth == 1 {
		return b.flushPending(ctx)
	}
	return nil
}

func (b *changeSetBuilder) flushPending(ctx context.Context) error {
	if b.pending.Len() == 0 {
		return nil
	}
	set := b.pending
	b.pending = models.ChangeSet{}
	return b.flush(ctx, set)
}

// writeRelations follows the inline and mm relations configured on table.
func (b *changeSetBuilder) writeRelations(ctx context.Context, table string, row models.Row) error {
	relations, err := b.meta.Relations(table)
	if err != nil {
		return err
	}

	uid := rowUID(row)
	for _, rel := range relations {
		switch rel.Kind {
		case models.RelationInline:
			where := sq.Eq{"pid": uid}
			if rel.ForeignField != "" {
				where = sq.Eq{rel.ForeignField: uid}
			}
			for name, value := range rel.MatchFields {
				where[name] = value
			}
			if err := b.dumpRows(ctx, rel.ForeignTable, where); err != nil {
				return err
			}
		case models.RelationMM:
			if err := b.writeMMRelation(ctx, table, uid, rel); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeMMRelation replaces the join rows owned by row uid of table: one
// delete by the owner predicate, then one insert per join row found.
func (b *changeSetBuilder) writeMMRelation(ctx context.Context, table string, uid int64, rel models.RelationConfig) error {
	log := logger.FromContext(ctx)

	columns, err := b.meta.Columns(ctx, rel.MMTable)
	if err != nil {
		return err
	}

	field := rel.ForeignField
	if field == "" {
		field = defaultMMField
	}

	where := sq.Eq{field: uid}
	conditions := []string{quoteIdentifier(field) + " = " + quoteValue(uid)}

	names := make([]string, 0, len(rel.MatchFields))
	for name := range rel.MatchFields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		where[name] = rel.MatchFields[name]
		conditions = append(conditions, quoteIdentifier(name)+" = "+quoteValue(rel.MatchFields[name]))
	}

	if slices.Contains(columns, tablenamesColumn) {
		where[tablenamesColumn] = table
		conditions = append(conditions, quoteIdentifier(tablenamesColumn)+" = "+quoteValue(table))
	}
	predicate := strings.Join(conditions, " AND ")

	rows, err := b.exporter.ExportTable(ctx, rel.MMTable, where)
	if err != nil {
		log.Err(err).Str("func", "*changeSetBuilder.writeMMRelation").Str("table", rel.MMTable).Msg("failed to export join rows")
		return fmt.Errorf("exporting %s: %w", rel.MMTable, err)
	}

	b.pending.Deletes = append(b.pending.Deletes, models.ChangeLine{
		Key:       models.LineKey{Type: models.StatementDelete, Table: rel.MMTable, ID: predicate},
		Statement: deleteWhereLine(rel.MMTable, predicate),
		Join:      true,
	})

	media := rel.MMTable == fileReferenceTable && rel.FormType == models.FormTypeUser && table != fileTable
	for _, row := range rows {
		values := rowValues(row, columns)
		b.pending.Inserts = append(b.pending.Inserts, models.ChangeLine{
			Key:       models.LineKey{Type: models.StatementInsert, Table: rel.MMTable, ID: mmRowKey(predicate, values)},
			Statement: insertUpdateLine(rel.MMTable, columns, values),
			RowUID:    rowUID(row),
			Join:      true,
		})

		if !media {
			continue
		}
		local, ok := row.Get("uid_local")
		if !ok {
			continue
		}
		fileUID := rowUID(models.Row{Columns: []string{"uid"}, Values: []any{local}})
		if err := b.dumpRows(ctx, fileTable, sq.Eq{"uid": []int64{fileUID}}); err != nil {
			return err
		}
	}
	return nil
}

// mmRowKey is a stable identifier of a join row: the owner predicate plus
// every value of the row.
func mmRowKey(predicate string, values []any) string {
	h := sha1.New()
	h.Write([]byte(predicate))
	h.Write([]byte{0})
	h.Write([]byte(valueList(values)))
	return "mm:" + hex.EncodeToString(h.Sum(nil))
}
