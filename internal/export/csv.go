package export

import (
	"encoding/csv"
	"io"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

const DefaultDelimiter = ','

// CSVWriter writes a report as delimited text. Quoting follows RFC 4180:
// cells holding the delimiter, a quote or a line break are quoted and quotes are doubled.
type CSVWriter struct {
	out io.Writer
	w   *csv.Writer
}

func NewCSVWriter(w io.Writer, delimiter rune) *CSVWriter {
	writer := csv.NewWriter(w)
	if delimiter != 0 {
		writer.Comma = delimiter
	}
	return &CSVWriter{out: w, w: writer}
}

func (c *CSVWriter) WriteHeader(header []string) error {
	return c.write(header)
}

func (c *CSVWriter) WriteRow(row []string) error {
	return c.write(row)
}

// Flush pushes buffered records to the underlying writer
func (c *CSVWriter) Flush() error {
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		return errors.Wrap(err, "export: flush csv")
	}
	return nil
}

func (c *CSVWriter) write(record []string) error {
	// encoding/csv emits a blank line for a lone empty cell, which readers skip
	if len(record) == 1 && record[0] == "" {
		if err := c.Flush(); err != nil {
			return err
		}
		if _, err := io.WriteString(c.out, "\"\"\n"); err != nil {
			return errors.Wrap(err, "export: write csv record")
		}
		return nil
	}

	if err := c.w.Write(record); err != nil {
		return errors.Wrap(err, "export: write csv record")
	}
	return nil
}

// WriteCSV writes the header row followed by every body row, then flushes
func WriteCSV(w io.Writer, table domain.ReportTable, delimiter rune) error {
	writer := NewCSVWriter(w, delimiter)

	if err := writer.WriteHeader(table.Header); err != nil {
		return err
	}
	for _, row := range table.Rows {
		if err := writer.WriteRow(row); err != nil {
			return err
		}
	}

	return writer.Flush()
}
