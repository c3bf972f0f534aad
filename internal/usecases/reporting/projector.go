package reporting

import (
	"html"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type column struct {
	label string
	value func(row domain.AggregateRow, product domain.Product) string
}

// columns maps every recognized field to its header label and cell value
var columns = map[domain.Field]column{
	domain.FieldProductID: {
		label: "Product ID",
		value: func(row domain.AggregateRow, _ domain.Product) string {
			return strconv.FormatInt(row.ProductID, 10)
		},
	},
	domain.FieldVariationID: {
		label: "Variation ID",
		value: func(row domain.AggregateRow, _ domain.Product) string {
			if row.VariationID == 0 {
				return ""
			}
			return strconv.FormatInt(row.VariationID, 10)
		},
	},
	domain.FieldProductSKU: {
		label: "Product SKU",
		value: func(_ domain.AggregateRow, product domain.Product) string {
			return product.SKU
		},
	},
	domain.FieldProductName: {
		label: "Product Name",
		value: func(_ domain.AggregateRow, product domain.Product) string {
			return html.UnescapeString(product.Name)
		},
	},
	domain.FieldProductCategories: {
		label: "Product Categories",
		value: func(_ domain.AggregateRow, product domain.Product) string {
			return formatCategories(product.Categories)
		},
	},
	domain.FieldQuantitySold: {
		label: "Quantity Sold",
		value: func(row domain.AggregateRow, _ domain.Product) string {
			return strconv.FormatInt(row.QuantitySum, 10)
		},
	},
	domain.FieldGrossSales: {
		label: "Gross Sales",
		value: func(row domain.AggregateRow, _ domain.Product) string {
			return FormatMoney(row.GrossSum)
		},
	},
	domain.FieldGrossAfterDiscount: {
		label: "Gross Sales (After Discounts)",
		value: func(row domain.AggregateRow, _ domain.Product) string {
			return FormatMoney(row.GrossAfterDiscountSum)
		},
	},
}

// FieldLabel returns the header label of a recognized field
func FieldLabel(field domain.Field) (string, bool) {
	col, ok := columns[field]
	return col.label, ok
}

// Project lays out one row per aggregate with one cell per field, in field order.
// Unknown fields produce no column. Missing catalog entries render as empty cells.
func Project(rows []domain.AggregateRow, fields []domain.Field, catalog map[int64]domain.Product) domain.ReportTable {
	selected := make([]column, 0, len(fields))
	header := make([]string, 0, len(fields))
	for _, field := range fields {
		col, ok := columns[field]
		if !ok {
			continue
		}
		selected = append(selected, col)
		header = append(header, col.label)
	}

	body := make([][]string, 0, len(rows))
	for _, row := range rows {
		product := catalog[row.ProductID]
		cells := make([]string, 0, len(selected))
		for _, col := range selected {
			cells = append(cells, col.value(row, product))
		}
		body = append(body, cells)
	}

	return domain.ReportTable{
		Header: header,
		Rows:   body,
	}
}

func formatCategories(names []string) string {
	if len(names) == 0 {
		return ""
	}

	formatted := make([]string, 0, len(names))
	for _, name := range names {
		formatted = append(formatted, capitalizeWords(html.UnescapeString(name)))
	}
	return strings.Join(formatted, ", ")
}

// capitalizeWords lower-cases s and upper-cases the first letter after each run of
// whitespace only, so "t-shirts" becomes "T-shirts"
func capitalizeWords(s string) string {
	lower := cases.Lower(language.Und).String(s)

	var b strings.Builder
	b.Grow(len(lower))
	wordStart := true
	for _, r := range lower {
		if wordStart && !unicode.IsSpace(r) {
			r = unicode.ToUpper(r)
		}
		wordStart = unicode.IsSpace(r)
		b.WriteRune(r)
	}
	return b.String()
}

// FormatMoney renders an amount with two decimals and comma-grouped thousands, e.g. 1,234.50
func FormatMoney(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}

	integer, fraction, _ := strings.Cut(fixed, ".")
	if len(integer) <= 3 {
		return sign + integer + "." + fraction
	}

	var b strings.Builder
	lead := len(integer) % 3
	if lead > 0 {
		b.WriteString(integer[:lead])
	}
	for i := lead; i < len(integer); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(integer[i : i+3])
	}

	return sign + b.String() + "." + fraction
}
