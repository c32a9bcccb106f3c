package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/MKhiriev/go-content-sync/models"
	"gopkg.in/yaml.v3"
)

//go:embed defaults/areas.yaml
var defaultAreas []byte

//go:embed defaults/tables.yaml
var defaultTables []byte

// AreaCatalog is the decoded areas file.
type AreaCatalog struct {
	Areas []models.Area `yaml:"areas"`
}

// TableCatalog is the decoded table relation catalog keyed by table name.
type TableCatalog map[string]TableDefinition

// TableDefinition is the catalog entry of one table.
type TableDefinition struct {
	Tstamp  string             `yaml:"tstamp"`
	Control ControlDefinition  `yaml:"control"`
	Columns []ColumnDefinition `yaml:"columns"`
}

// ControlDefinition names the soft-delete, disabled and end-time columns.
type ControlDefinition struct {
	Delete   string `yaml:"delete"`
	Disabled string `yaml:"disabled"`
	Endtime  string `yaml:"endtime"`
}

// ColumnDefinition is the relation-relevant part of a column configuration.
type ColumnDefinition struct {
	Name               string            `yaml:"name"`
	Type               string            `yaml:"type"`
	ForeignTable       string            `yaml:"foreign_table"`
	MM                 string            `yaml:"MM"`
	ForeignField       string            `yaml:"foreign_field"`
	ForeignMatchFields map[string]string `yaml:"foreign_match_fields"`
	FormType           string            `yaml:"form_type"`
}

// LoadAreas reads the areas file at path, or the built-in areas when path is empty.
func LoadAreas(path string) ([]models.Area, error) {
	data, err := readCatalog(path, defaultAreas)
	if err != nil {
		return nil, err
	}

	var catalog AreaCatalog
	if err := decodeStrict(data, &catalog); err != nil {
		return nil, fmt.Errorf("%w: areas: %w", ErrInvalidCatalog, err)
	}

	if len(catalog.Areas) == 0 {
		return nil, fmt.Errorf("%w: no areas configured", ErrInvalidCatalog)
	}

	for _, area := range catalog.Areas {
		for _, target := range area.Targets {
			if target.Name == "" || target.Directory == "" {
				return nil, fmt.Errorf("%w: area %d has a target without name or directory", ErrInvalidCatalog, area.ID)
			}
		}
	}

	return catalog.Areas, nil
}

// LoadTableCatalog reads the table catalog at path, or the built-in catalog when path is empty.
func LoadTableCatalog(path string) (TableCatalog, error) {
	data, err := readCatalog(path, defaultTables)
	if err != nil {
		return nil, err
	}

	var catalog struct {
		Tables TableCatalog `yaml:"tables"`
	}
	if err := decodeStrict(data, &catalog); err != nil {
		return nil, fmt.Errorf("%w: tables: %w", ErrInvalidCatalog, err)
	}

	return catalog.Tables, nil
}

func readCatalog(path string, fallback []byte) ([]byte, error) {
	if path == "" {
		return fallback, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	return data, nil
}

func decodeStrict(data []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(v)
}
