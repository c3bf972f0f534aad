// Package export renders report tables as an HTML preview or a delimited file.
package export

import (
	"html/template"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

const noRecordsMessage = "No records found"

var previewTemplate = template.Must(template.New("preview").Parse(
	`<table class="widefat fixed striped">` +
		`<thead><tr>{{range .Header}}<th>{{.}}</th>{{end}}</tr></thead>` +
		`<tbody>` +
		`{{if .HasRows}}{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>{{end}}` +
		`{{else}}<tr><td colspan="{{.Colspan}}">{{.Empty}}</td></tr>{{end}}` +
		`</tbody></table>`,
))

type previewData struct {
	Header  []string
	Rows    [][]string
	HasRows bool
	Colspan int
	Empty   string
}

// RenderPreview renders the table as an HTML snippet. Cells are escaped.
// A table without rows or columns gets a single full-width "No records found" row.
func RenderPreview(table domain.ReportTable) (string, error) {
	data := previewData{
		Header:  table.Header,
		Rows:    table.Rows,
		HasRows: len(table.Rows) > 0 && len(table.Header) > 0,
		Colspan: max(1, len(table.Header)),
		Empty:   noRecordsMessage,
	}

	var b strings.Builder
	if err := previewTemplate.Execute(&b, data); err != nil {
		return "", errors.Wrap(err, "export: render preview")
	}

	return b.String(), nil
}
