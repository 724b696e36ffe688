// Package csvfile writes extracted records to a comma-delimited file.
//
// The output format is a plain comma join: one header line naming the columns,
// then one line per record with values in header order. Values are written
// as-is with no quoting or escaping, matching the file format this tool has
// always produced. Writing zero records is a validation error; the file is
// only created once there is something to put in it.
package csvfile

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrNoRecords is returned when Write is called with an empty record set.
var ErrNoRecords = errors.New("no records to serialize")

// Write serializes header and rows to path in truncate-and-create mode.
// Every row must have one value per header column.
func Write(path string, header []string, rows [][]string) error {
	if len(rows) == 0 {
		return ErrNoRecords
	}

	var b strings.Builder
	b.WriteString(strings.Join(header, ","))
	b.WriteString("\n")

	for i, row := range rows {
		if len(row) != len(header) {
			return fmt.Errorf("row %d has %d values for %d columns", i, len(row), len(header))
		}
		b.WriteString(strings.Join(row, ","))
		b.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
