// Package rows loads table rows from CSV dumps.
//
// Document-table extraction itself is owned by an external collaborator; the
// contract is that each table arrives as rows of trimmed text cells. CSV is
// the interchange format the CLI accepts for those rows. A cell holding two
// employee names keeps its embedded newline inside a quoted CSV field.
package rows

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Load reads one table's rows from the CSV file at path. Cells are trimmed
// and rows whose cells are all empty are dropped, matching what the table
// extractor collaborator hands the parsers. Rows may have varying cell
// counts.
func Load(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	raw, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read table file %s: %w", path, err)
	}

	out := make([][]string, 0, len(raw))
	for _, row := range raw {
		empty := true
		for i, cell := range row {
			row[i] = strings.TrimSpace(cell)
			if row[i] != "" {
				empty = false
			}
		}
		if !empty {
			out = append(out, row)
		}
	}
	return out, nil
}
