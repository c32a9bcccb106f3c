package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-content-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAreas_Defaults(t *testing.T) {
	areas, err := LoadAreas("")
	require.NoError(t, err)
	require.Len(t, areas, 1)

	targets := areas[0].Targets
	require.Len(t, targets, 3)
	assert.Equal(t, "Production", targets[0].Name)
	assert.Equal(t, models.NotifyURLFile, targets[0].Notify)
	assert.True(t, targets[2].Hide)
}

func TestLoadAreas_File(t *testing.T) {
	p := filepath.Join(t.TempDir(), "areas.yaml")
	require.NoError(t, os.WriteFile(p, []byte(`
areas:
  - id: 7
    name: Shop
    targets:
      - {name: Live, directory: live, notify: http, notify_url: "http://live/hook"}
`), 0o600))

	areas, err := LoadAreas(p)
	require.NoError(t, err)
	require.Len(t, areas, 1)
	assert.Equal(t, int64(7), areas[0].ID)
	assert.Equal(t, "http://live/hook", areas[0].Targets[0].NotifyURL)
}

func TestLoadAreas_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unknown field", body: "areas:\n  - id: 1\n    colour: red\n"},
		{name: "empty", body: "areas: []\n"},
		{name: "target without directory", body: "areas:\n  - id: 1\n    targets:\n      - {name: Live}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := filepath.Join(t.TempDir(), "areas.yaml")
			require.NoError(t, os.WriteFile(p, []byte(tt.body), 0o600))

			_, err := LoadAreas(p)
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestLoadTableCatalog_Defaults(t *testing.T) {
	catalog, err := LoadTableCatalog("")
	require.NoError(t, err)

	content, ok := catalog["tt_content"]
	require.True(t, ok)
	assert.Equal(t, "tstamp", content.Tstamp)
	assert.Equal(t, "deleted", content.Control.Delete)
	require.Len(t, content.Columns, 2)
	assert.Equal(t, "sys_file_reference", content.Columns[0].MM)
	assert.Equal(t, "user", content.Columns[0].FormType)

	_, ok = catalog["sys_category_record_mm"]
	assert.True(t, ok)
}

func TestLoadTableCatalog_MissingFile(t *testing.T) {
	_, err := LoadTableCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}
