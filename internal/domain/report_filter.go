package domain

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ReportPeriod is the symbolic time range selector of a sales report
type ReportPeriod string

const (
	PeriodToday      ReportPeriod = "0d"
	PeriodYesterday  ReportPeriod = "1d"
	PeriodLast7Days  ReportPeriod = "7d"
	PeriodLast30Days ReportPeriod = "30d"
	PeriodThisMonth  ReportPeriod = "0cm"
	PeriodLastMonth  ReportPeriod = "1cm"
	PeriodNext7Days  ReportPeriod = "+7d"
	PeriodNext30Days ReportPeriod = "+30d"
	PeriodNextMonth  ReportPeriod = "+1cm"
	PeriodAllTime    ReportPeriod = "all"
	PeriodCustom     ReportPeriod = "custom"
)

var reportPeriods = map[ReportPeriod]struct{}{
	PeriodToday:      {},
	PeriodYesterday:  {},
	PeriodLast7Days:  {},
	PeriodLast30Days: {},
	PeriodThisMonth:  {},
	PeriodLastMonth:  {},
	PeriodNext7Days:  {},
	PeriodNext30Days: {},
	PeriodNextMonth:  {},
	PeriodAllTime:    {},
	PeriodCustom:     {},
}

func (p ReportPeriod) IsValid() bool {
	_, ok := reportPeriods[p]
	return ok
}

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusOnHold     OrderStatus = "on-hold"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
	OrderStatusFailed     OrderStatus = "failed"
)

// orderStatusPrefix is accepted on input for compatibility with the shop's status keys
const orderStatusPrefix = "wc-"

var knownOrderStatuses = map[OrderStatus]struct{}{
	OrderStatusPending:    {},
	OrderStatusProcessing: {},
	OrderStatusOnHold:     {},
	OrderStatusCompleted:  {},
	OrderStatusCancelled:  {},
	OrderStatusRefunded:   {},
	OrderStatusFailed:     {},
}

// ParseOrderStatus strips the optional prefix and reports whether the status is known
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	status := OrderStatus(strings.TrimPrefix(strings.TrimSpace(raw), orderStatusPrefix))
	_, ok := knownOrderStatuses[status]
	return status, ok
}

type ScopeMode string

const (
	ScopeAll        ScopeMode = "all"
	ScopeCategories ScopeMode = "categories"
	ScopeIDs        ScopeMode = "ids"
)

// ProductScope restricts the report to a subset of the catalog
type ProductScope struct {
	Mode        ScopeMode `json:"mode"`
	CategoryIDs []int64   `json:"category_ids"`
	ProductIDs  []int64   `json:"product_ids"`
}

type SortField string

const (
	SortByProductID          SortField = "product_id"
	SortByQuantity           SortField = "quantity"
	SortByGross              SortField = "gross"
	SortByGrossAfterDiscount SortField = "gross_after_discount"
)

type SortDirection string

const (
	SortAscending  SortDirection = "ASC"
	SortDescending SortDirection = "DESC"
)

// Field identifies one output column of the report
type Field string

const (
	FieldProductID          Field = "product_id"
	FieldVariationID        Field = "variation_id"
	FieldProductSKU         Field = "product_sku"
	FieldProductName        Field = "product_name"
	FieldProductCategories  Field = "product_categories"
	FieldQuantitySold       Field = "quantity_sold"
	FieldGrossSales         Field = "gross_sales"
	FieldGrossAfterDiscount Field = "gross_after_discount"
)

// AllFields lists every recognized output field in the order the report form shows them
var AllFields = []Field{
	FieldProductID,
	FieldVariationID,
	FieldProductSKU,
	FieldProductName,
	FieldProductCategories,
	FieldQuantitySold,
	FieldGrossSales,
	FieldGrossAfterDiscount,
}

func (f Field) IsValid() bool {
	for _, known := range AllFields {
		if f == known {
			return true
		}
	}
	return false
}

// FilterSpec holds every user-selectable option of the sales report.
// The JSON tags match the keys of the persisted settings record.
type FilterSpec struct {
	Period           ReportPeriod  `json:"report_time"`
	CustomStart      string        `json:"report_start"`
	CustomEnd        string        `json:"report_end"`
	Statuses         []OrderStatus `json:"order_status"`
	Scope            ProductScope  `json:"products"`
	SortField        SortField     `json:"orderby"`
	SortDirection    SortDirection `json:"order"`
	Fields           []Field       `json:"fields"`
	ExcludeFreeLines bool          `json:"exclude_free"`
}

// DefaultFilterSpec returns the complete set of defaults relative to the store's current date
func DefaultFilterSpec(today time.Time) FilterSpec {
	return FilterSpec{
		Period:      PeriodLast30Days,
		CustomStart: today.AddDate(0, 0, -31).Format(time.DateOnly),
		CustomEnd:   today.AddDate(0, 0, -1).Format(time.DateOnly),
		Statuses: []OrderStatus{
			OrderStatusProcessing,
			OrderStatusOnHold,
			OrderStatusCompleted,
		},
		Scope:         ProductScope{Mode: ScopeAll},
		SortField:     SortByQuantity,
		SortDirection: SortDescending,
		Fields: []Field{
			FieldProductID,
			FieldProductSKU,
			FieldProductName,
			FieldQuantitySold,
			FieldGrossSales,
		},
		ExcludeFreeLines: false,
	}
}

// Normalize coerces every option to a valid value, filling gaps from defaults.
// An empty field selection is kept as is: it is a valid (if useless) choice.
func (f FilterSpec) Normalize(defaults FilterSpec) FilterSpec {
	out := f

	if !out.Period.IsValid() {
		out.Period = defaults.Period
	}
	if strings.TrimSpace(out.CustomStart) == "" {
		out.CustomStart = defaults.CustomStart
	}
	if strings.TrimSpace(out.CustomEnd) == "" {
		out.CustomEnd = defaults.CustomEnd
	}

	statuses := make([]OrderStatus, 0, len(out.Statuses))
	seen := make(map[OrderStatus]struct{}, len(out.Statuses))
	for _, raw := range out.Statuses {
		status, ok := ParseOrderStatus(string(raw))
		if !ok {
			continue
		}
		if _, dup := seen[status]; dup {
			continue
		}
		seen[status] = struct{}{}
		statuses = append(statuses, status)
	}
	if len(statuses) == 0 {
		statuses = append(statuses, defaults.Statuses...)
	}
	out.Statuses = statuses

	switch out.Scope.Mode {
	case ScopeAll, ScopeCategories, ScopeIDs:
	case "cats":
		out.Scope.Mode = ScopeCategories
	default:
		out.Scope.Mode = ScopeAll
	}
	if out.Scope.CategoryIDs == nil {
		out.Scope.CategoryIDs = []int64{}
	}
	if out.Scope.ProductIDs == nil {
		out.Scope.ProductIDs = []int64{}
	}

	switch out.SortField {
	case SortByProductID, SortByQuantity, SortByGross, SortByGrossAfterDiscount:
	default:
		out.SortField = SortByQuantity
	}

	switch direction := SortDirection(strings.ToUpper(string(out.SortDirection))); direction {
	case SortAscending, SortDescending:
		out.SortDirection = direction
	default:
		out.SortDirection = defaults.SortDirection
	}

	out.Fields = NormalizeFields(out.Fields)

	return out
}

// NormalizeFields drops unknown identifiers and collapses duplicates, keeping first occurrence order
func NormalizeFields(fields []Field) []Field {
	out := make([]Field, 0, len(fields))
	seen := make(map[Field]struct{}, len(fields))
	for _, field := range fields {
		field = Field(strings.TrimSpace(string(field)))
		if !field.IsValid() {
			continue
		}
		if _, dup := seen[field]; dup {
			continue
		}
		seen[field] = struct{}{}
		out = append(out, field)
	}
	return out
}

// ApplyForm overlays the keys present in the submitted form onto the base spec.
// Keys that are absent keep the base value; unrecognized keys are ignored.
// The result still needs Normalize.
func (f FilterSpec) ApplyForm(form url.Values) FilterSpec {
	out := f

	if v, ok := formValue(form, "report_time"); ok {
		out.Period = ReportPeriod(v)
	}
	if v, ok := formValue(form, "report_start"); ok {
		out.CustomStart = v
	}
	if v, ok := formValue(form, "report_end"); ok {
		out.CustomEnd = v
	}
	if values, ok := formList(form, "order_status"); ok {
		out.Statuses = make([]OrderStatus, 0, len(values))
		for _, v := range values {
			out.Statuses = append(out.Statuses, OrderStatus(v))
		}
	}
	if v, ok := formValue(form, "products"); ok {
		out.Scope.Mode = ScopeMode(v)
	}
	if values, ok := formList(form, "product_cats"); ok {
		out.Scope.CategoryIDs = ParseIDList(values)
	}
	if v, ok := formValue(form, "product_ids"); ok {
		out.Scope.ProductIDs = ParseIDList(strings.Split(v, ","))
	}
	if v, ok := formValue(form, "orderby"); ok {
		out.SortField = SortField(v)
	}
	if v, ok := formValue(form, "order"); ok {
		out.SortDirection = SortDirection(v)
	}
	if values, ok := formList(form, "fields"); ok {
		out.Fields = make([]Field, 0, len(values))
		for _, v := range values {
			out.Fields = append(out.Fields, Field(v))
		}
	}
	if v, ok := formValue(form, "exclude_free"); ok {
		out.ExcludeFreeLines = isTruthy(v)
	}

	return out
}

// ParseIDList keeps the numeric entries of the list in order; blanks and non-numeric entries are dropped
func ParseIDList(values []string) []int64 {
	ids := make([]int64, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func formValue(form url.Values, key string) (string, bool) {
	values, ok := form[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return strings.TrimSpace(values[0]), true
}

// formList accepts both "key" and "key[]" and skips blank entries,
// so a present-but-empty key clears the list
func formList(form url.Values, key string) ([]string, bool) {
	plain, ok := form[key]
	raw := append([]string(nil), plain...)
	if bracketed, has := form[key+"[]"]; has {
		raw = append(raw, bracketed...)
		ok = true
	}
	if !ok {
		return nil, false
	}

	values := make([]string, 0, len(raw))
	for _, v := range raw {
		v = strings.TrimSpace(v)
		if v != "" {
			values = append(values, v)
		}
	}
	return values, true
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "yes", "on", "true":
		return true
	default:
		return false
	}
}
