package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-content-sync/internal/config"
	"github.com/MKhiriev/go-content-sync/internal/store"
	"github.com/MKhiriev/go-content-sync/models"
)

// defaultTstampField is used for row timestamps when the catalog names none.
const defaultTstampField = "tstamp"

type metadataProvider struct {
	catalog config.TableCatalog
	schema  store.SchemaRepository
}

// NewMetadataProvider combines the table catalog (relations, control and
// timestamp fields) with the live column lists read from the database.
func NewMetadataProvider(catalog config.TableCatalog, schema store.SchemaRepository) MetadataProvider {
	return &metadataProvider{catalog: catalog, schema: schema}
}

// Tables returns the catalog table names in lexical order.
func (m *metadataProvider) Tables() []string {
	tables := make([]string, 0, len(m.catalog))
	for name := range m.catalog {
		tables = append(tables, name)
	}
	slices.Sort(tables)
	return tables
}

func (m *metadataProvider) HasTable(table string) bool {
	_, ok := m.catalog[table]
	return ok
}

// Columns returns the live column list of table in ordinal order.
func (m *metadataProvider) Columns(ctx context.Context, table string) ([]string, error) {
	if !m.HasTable(table) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}

	columns, err := m.schema.Columns(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("reading columns of %s: %w", table, err)
	}
	return columns, nil
}

func (m *metadataProvider) Relations(table string) ([]models.RelationConfig, error) {
	if !m.HasTable(table) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}
	return relationsOf(m.catalog, table), nil
}

func (m *metadataProvider) Control(table string) (models.ControlFields, error) {
	def, ok := m.catalog[table]
	if !ok {
		return models.ControlFields{}, fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}
	return models.ControlFields{
		Delete:   def.Control.Delete,
		Disabled: def.Control.Disabled,
		Endtime:  def.Control.Endtime,
	}, nil
}

// TstampField returns the modification column of table, empty when the
// table is always dumped in full.
func (m *metadataProvider) TstampField(table string) (string, error) {
	def, ok := m.catalog[table]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}
	return def.Tstamp, nil
}

// relationsOf lists the relations configured on the columns of table.
// Columns with an MM table yield mm relations, inline columns with a
// foreign table yield inline relations; everything else is ignored.
func relationsOf(catalog config.TableCatalog, table string) []models.RelationConfig {
	def, ok := catalog[table]
	if !ok {
		return nil
	}

	var relations []models.RelationConfig
	for _, col := range def.Columns {
		switch {
		case col.MM != "":
			relations = append(relations, models.RelationConfig{
				Kind:         models.RelationMM,
				ForeignTable: col.ForeignTable,
				MMTable:      col.MM,
				ForeignField: col.ForeignField,
				MatchFields:  col.ForeignMatchFields,
				FormType:     col.FormType,
			})
		case col.Type == "inline" && col.ForeignTable != "":
			relations = append(relations, models.RelationConfig{
				Kind:         models.RelationInline,
				ForeignTable: col.ForeignTable,
				ForeignField: col.ForeignField,
				MatchFields:  col.ForeignMatchFields,
			})
		}
	}
	return relations
}
