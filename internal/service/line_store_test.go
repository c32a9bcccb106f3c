package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-content-sync/models"
)

func deleteOf(table, id string) models.ChangeLine {
	return models.ChangeLine{
		Key:       models.LineKey{Type: models.StatementDelete, Table: table, ID: id},
		Statement: "DELETE " + table + " " + id,
	}
}

func insertOf(table, id string) models.ChangeLine {
	return models.ChangeLine{
		Key:       models.LineKey{Type: models.StatementInsert, Table: table, ID: id},
		Statement: "INSERT " + table + " " + id,
	}
}

func TestLineStore_SecondIdenticalBatchIsEmpty(t *testing.T) {
	store := newLineStore()
	batch := models.ChangeSet{
		Deletes: []models.ChangeLine{deleteOf("sys_category_record_mm", "`uid_foreign` = 5")},
		Inserts: []models.ChangeLine{insertOf("pages", "1"), insertOf("tt_content", "5")},
	}

	first := store.recordAndDedupe(batch)
	second := store.recordAndDedupe(batch)

	assert.Equal(t, 3, first.Len())
	assert.Zero(t, second.Len())
	assert.Equal(t, 3, store.len())
}

func TestLineStore_InsertCancelsDeleteOfSameRow(t *testing.T) {
	store := newLineStore()

	out := store.recordAndDedupe(models.ChangeSet{
		Deletes: []models.ChangeLine{deleteOf("tt_content", "5"), deleteOf("tt_content", "6")},
		Inserts: []models.ChangeLine{insertOf("tt_content", "5")},
	})

	assert.Equal(t, []models.ChangeLine{deleteOf("tt_content", "6")}, out.Deletes)
	assert.Equal(t, []models.ChangeLine{insertOf("tt_content", "5")}, out.Inserts)
}

func TestLineStore_DuplicatesWithinBatch(t *testing.T) {
	store := newLineStore()

	out := store.recordAndDedupe(models.ChangeSet{
		Inserts: []models.ChangeLine{insertOf("sys_file", "3"), insertOf("sys_file", "3"), insertOf("sys_file", "4")},
	})

	assert.Len(t, out.Inserts, 2)
}

func TestLineStore_AlreadyFlushedInsertStillCancelsDelete(t *testing.T) {
	store := newLineStore()
	store.recordAndDedupe(models.ChangeSet{Inserts: []models.ChangeLine{insertOf("sys_file", "3")}})

	out := store.recordAndDedupe(models.ChangeSet{
		Deletes: []models.ChangeLine{deleteOf("sys_file", "3")},
		Inserts: []models.ChangeLine{insertOf("sys_file", "3")},
	})

	assert.Zero(t, out.Len())
}
