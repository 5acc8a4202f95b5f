package influx

import (
	"encoding/csv"
	"io"
	"strings"
)

// Row is one result row, keyed by column name. Values stay raw strings;
// coercion happens at the vitals boundary where the default policy lives.
type Row map[string]string

// Table is an ordered tabular query result.
type Table struct {
	Columns []string
	Rows    []Row
}

func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// Last returns the most recent row, which queries sort to the end.
func (t Table) Last() (Row, bool) {
	if t.Empty() {
		return nil, false
	}
	return t.Rows[len(t.Rows)-1], true
}

// ParseAnnotatedCSV decodes the annotated CSV the query endpoint responds
// with. Annotation records (leading "#") reset the header so multi-table
// responses concatenate into one Table.
func ParseAnnotatedCSV(r io.Reader) (Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	table := Table{}
	var header []string
	expectHeader := true

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Table{}, err
		}
		if len(record) == 0 {
			continue
		}
		if strings.HasPrefix(record[0], "#") {
			expectHeader = true
			continue
		}
		if expectHeader || header == nil {
			header = record
			if len(table.Columns) == 0 {
				table.Columns = record
			}
			expectHeader = false
			continue
		}

		row := make(Row, len(header))
		for i, col := range header {
			if col == "" || i >= len(record) {
				continue
			}
			row[col] = record[i]
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}
