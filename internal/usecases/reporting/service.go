package reporting

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-report-api/infrastructure/repository"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/internal/export"
	"github.com/vfg2006/sales-report-api/pkg/log"
)

// SalesReporter is the product sales report feature as seen by the HTTP layer
type SalesReporter interface {
	// LoadSettings returns the saved filter merged with the defaults
	LoadSettings(ctx context.Context) (domain.FilterSpec, error)
	// SaveSettings overlays the submitted form onto the saved filter and persists the result
	SaveSettings(ctx context.Context, form url.Values) (domain.FilterSpec, error)
	BuildTable(ctx context.Context, spec domain.FilterSpec) (domain.ReportTable, error)
	RenderPreview(ctx context.Context, spec domain.FilterSpec) (string, error)
	// PrepareDownload builds the table of the saved filter, refusing an empty field selection
	PrepareDownload(ctx context.Context) (domain.ReportTable, error)
	WriteCSV(w io.Writer, table domain.ReportTable) error
	DownloadFilename() string
}

type Service struct {
	settingsRepo repository.ReportSettingsRepository
	catalogRepo  repository.CatalogRepository
	scopeBuilder *ScopeBuilder
	aggregator   *Aggregator
	settingsName string
	location     *time.Location
	delimiter    rune
	now          func() time.Time
}

func NewService(
	settingsRepo repository.ReportSettingsRepository,
	orderLineRepo repository.OrderLineRepository,
	catalogRepo repository.CatalogRepository,
	cfg *config.Config,
) SalesReporter {
	delimiter, err := cfg.Report.Delimiter()
	if err != nil {
		log.L.WithError(err).Warn("sales-report: invalid csv delimiter, using comma")
		delimiter = export.DefaultDelimiter
	}

	location := cfg.Report.Location
	if location == nil {
		location = time.UTC
	}

	return &Service{
		settingsRepo: settingsRepo,
		catalogRepo:  catalogRepo,
		scopeBuilder: NewScopeBuilder(catalogRepo),
		aggregator:   NewAggregator(orderLineRepo),
		settingsName: cfg.Report.SettingsName,
		location:     location,
		delimiter:    delimiter,
		now:          time.Now,
	}
}

func (s *Service) today() time.Time {
	return midnight(s.now().In(s.location))
}

func (s *Service) defaults() domain.FilterSpec {
	return domain.DefaultFilterSpec(s.today())
}

func (s *Service) LoadSettings(ctx context.Context) (domain.FilterSpec, error) {
	defaults := s.defaults()
	spec := defaults

	found, err := s.settingsRepo.Load(ctx, s.settingsName, &spec)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("sales-report: failed to load settings")
		return domain.FilterSpec{}, NewReportError(ErrSettingsUnavailable, err.Error())
	}
	if !found {
		log.ForContext(ctx).Debug("sales-report: no saved settings, using defaults")
	}

	return spec.Normalize(defaults), nil
}

func (s *Service) SaveSettings(ctx context.Context, form url.Values) (domain.FilterSpec, error) {
	current, err := s.LoadSettings(ctx)
	if err != nil {
		return domain.FilterSpec{}, err
	}

	spec := current.ApplyForm(form).Normalize(s.defaults())

	if err := s.settingsRepo.Save(ctx, s.settingsName, spec); err != nil {
		log.ForContext(ctx).WithError(err).Error("sales-report: failed to save settings")
		return domain.FilterSpec{}, NewReportError(ErrSettingsUnavailable, err.Error())
	}

	return spec, nil
}

// BuildTable runs the whole report pipeline for one filter. An invalid custom
// range falls back to the default period instead of failing the request.
func (s *Service) BuildTable(ctx context.Context, spec domain.FilterSpec) (domain.ReportTable, error) {
	if len(spec.Fields) == 0 {
		return domain.ReportTable{Header: []string{}, Rows: [][]string{}}, nil
	}

	period, err := s.resolvePeriod(ctx, spec)
	if err != nil {
		return domain.ReportTable{}, err
	}

	scope, err := s.scopeBuilder.Build(ctx, spec.Scope)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("sales-report: failed to resolve product scope")
		return domain.ReportTable{}, err
	}

	rows, err := s.aggregator.Aggregate(ctx, AggregateQuery{
		Period:           period,
		Statuses:         spec.Statuses,
		Scope:            scope,
		ExcludeFreeLines: spec.ExcludeFreeLines,
		SortField:        spec.SortField,
		SortDirection:    spec.SortDirection,
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("sales-report: failed to aggregate order lines")
		return domain.ReportTable{}, err
	}

	catalog, err := s.lookupProducts(ctx, rows, spec.Fields)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("sales-report: failed to load products")
		return domain.ReportTable{}, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"period": spec.Period,
		"rows":   len(rows),
	}).Debug("sales-report: table built")

	return Project(rows, spec.Fields, catalog), nil
}

func (s *Service) resolvePeriod(ctx context.Context, spec domain.FilterSpec) (domain.ResolvedPeriod, error) {
	period, err := ResolvePeriod(spec.Period, spec.CustomStart, spec.CustomEnd, s.today())
	if err == nil {
		return period, nil
	}
	if !errors.Is(err, ErrInvalidRange) {
		return domain.ResolvedPeriod{}, err
	}

	log.ForContext(ctx).WithError(err).Warnf("sales-report: falling back to period %s", domain.PeriodLast30Days)
	return ResolvePeriod(domain.PeriodLast30Days, "", "", s.today())
}

// lookupProducts only hits the catalog when a selected field needs product data
func (s *Service) lookupProducts(ctx context.Context, rows []domain.AggregateRow, fields []domain.Field) (map[int64]domain.Product, error) {
	if len(rows) == 0 || !needsCatalog(fields) {
		return map[int64]domain.Product{}, nil
	}

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ProductID)
	}

	products, err := s.catalogRepo.GetProducts(ctx, ids)
	if err != nil {
		return nil, NewReportError(ErrStoreUnavailable, err.Error())
	}
	return products, nil
}

func needsCatalog(fields []domain.Field) bool {
	for _, field := range fields {
		switch field {
		case domain.FieldProductSKU, domain.FieldProductName, domain.FieldProductCategories:
			return true
		}
	}
	return false
}

func (s *Service) RenderPreview(ctx context.Context, spec domain.FilterSpec) (string, error) {
	table, err := s.BuildTable(ctx, spec)
	if err != nil {
		return "", err
	}

	return export.RenderPreview(table)
}

func (s *Service) PrepareDownload(ctx context.Context) (domain.ReportTable, error) {
	spec, err := s.LoadSettings(ctx)
	if err != nil {
		return domain.ReportTable{}, err
	}

	if len(spec.Fields) == 0 {
		return domain.ReportTable{}, NewReportError(ErrEmptyFieldSelection, "")
	}

	return s.BuildTable(ctx, spec)
}

func (s *Service) WriteCSV(w io.Writer, table domain.ReportTable) error {
	return export.WriteCSV(w, table, s.delimiter)
}

// DownloadFilename names the file after the store's current date and that day's midnight timestamp
func (s *Service) DownloadFilename() string {
	today := s.today()
	return fmt.Sprintf("Product Sales - %s-%d.csv", today.Format(time.DateOnly), today.Unix())
}
