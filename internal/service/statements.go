package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-content-sync/models"
)

// Dump statements target MySQL on the receiving side.

const (
	insertBannerPrefix = "-- Insert lines for Table: "
	obsoleteBanner     = "-- Delete obsolete Rows on live"
)

func quoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

var mysqlEscaper = strings.NewReplacer(
	"\\", "\\\\",
	"'", "\\'",
	"\"", "\\\"",
	"\x00", "\\0",
	"\n", "\\n",
	"\r", "\\r",
	"\x1a", "\\Z",
)

// quoteValue renders v as a MySQL literal. Go numeric values stay unquoted,
// everything else is escaped and quoted.
func quoteValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint32:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		if val {
			return "1"
		}
		return "0"
	case time.Time:
		return "'" + val.Format(time.DateTime) + "'"
	case []byte:
		return "'" + mysqlEscaper.Replace(string(val)) + "'"
	case string:
		return "'" + mysqlEscaper.Replace(val) + "'"
	default:
		return "'" + mysqlEscaper.Replace(fmt.Sprint(val)) + "'"
	}
}

// rowValues orders the values of row by columns. Columns missing from the
// row are rendered as NULL.
func rowValues(row models.Row, columns []string) []any {
	values := make([]any, len(columns))
	for i, col := range columns {
		values[i], _ = row.Get(col)
	}
	return values
}

// rowUID returns the numeric uid of row, 0 when it has none.
func rowUID(row models.Row) int64 {
	v, ok := row.Get("uid")
	if !ok {
		return 0
	}
	switch val := v.(type) {
	case int64:
		return val
	case int:
		return int64(val)
	case int32:
		return int64(val)
	case float64:
		return int64(val)
	case string:
		n, _ := strconv.ParseInt(val, 10, 64)
		return n
	}
	return 0
}

func deleteLine(table string, uid int64) string {
	return "DELETE FROM " + quoteIdentifier(table) + " WHERE uid = " + strconv.FormatInt(uid, 10) + ";"
}

func deleteWhereLine(table, predicate string) string {
	return "DELETE FROM " + quoteIdentifier(table) + " WHERE " + predicate + ";"
}

func columnList(columns []string) string {
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = quoteIdentifier(c)
	}
	return strings.Join(quoted, ", ")
}

func valueList(values []any) string {
	rendered := make([]string, len(values))
	for i, v := range values {
		rendered[i] = quoteValue(v)
	}
	return strings.Join(rendered, ", ")
}

// insertUpdateLine renders an upsert so replaying the artifact is idempotent.
func insertUpdateLine(table string, columns []string, values []any) string {
	updates := make([]string, len(columns))
	for i, c := range columns {
		updates[i] = quoteIdentifier(c) + " = VALUES(" + quoteIdentifier(c) + ")"
	}

	return "INSERT INTO " + quoteIdentifier(table) +
		" (" + columnList(columns) + ") VALUES (" + valueList(values) + ")\n" +
		" ON DUPLICATE KEY UPDATE " + strings.Join(updates, ", ") + ";"
}

func replaceLine(table string, columns []string, values []any) string {
	return "REPLACE INTO " + quoteIdentifier(table) +
		" (" + columnList(columns) + ") VALUES (" + valueList(values) + ");"
}

func insertLine(table string, columns []string, values []any) string {
	return "INSERT INTO " + quoteIdentifier(table) +
		" (" + columnList(columns) + ") VALUES (" + valueList(values) + ");"
}

func truncateLine(table string) string {
	return "TRUNCATE TABLE " + quoteIdentifier(table) + ";"
}

// obsoleteRowsStatement builds the cleanup DELETE for table. today is the
// unix time of the current day's midnight. An empty string means the table
// has no control fields.
func obsoleteRowsStatement(table string, control models.ControlFields, today int64) string {
	var parts []string
	if control.Delete != "" {
		parts = append(parts, control.Delete+" = 1")
	}
	if control.Disabled != "" {
		parts = append(parts, control.Disabled+" = 1")
	}
	if control.Endtime != "" {
		parts = append(parts, fmt.Sprintf("(%[1]s < %[2]d AND %[1]s <> 0)", control.Endtime, today))
	}

	if len(parts) == 0 {
		return ""
	}
	return "DELETE FROM " + quoteIdentifier(table) + " WHERE " + strings.Join(parts, " OR ") + ";"
}

// midnight returns the unix time of the start of t's day in t's location.
func midnight(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location()).Unix()
}
