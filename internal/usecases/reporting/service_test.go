package reporting

import (
	"bytes"
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-report-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"go.uber.org/mock/gomock"
)

const settingsName = "wc_download_sales_report_settings"

type serviceMocks struct {
	settings   *mocks.MockReportSettingsRepository
	orderLines *mocks.MockOrderLineRepository
	catalog    *mocks.MockCatalogRepository
}

func newTestService(t *testing.T, delimiter string) (*Service, serviceMocks) {
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		settings:   mocks.NewMockReportSettingsRepository(ctrl),
		orderLines: mocks.NewMockOrderLineRepository(ctrl),
		catalog:    mocks.NewMockCatalogRepository(ctrl),
	}

	cfg := &config.Config{
		Report: config.Report{
			SettingsName: settingsName,
			CSVDelimiter: delimiter,
			Location:     time.UTC,
		},
	}

	svc := NewService(m.settings, m.orderLines, m.catalog, cfg).(*Service)
	svc.now = func() time.Time { return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC) }

	return svc, m
}

func storedSettings(apply func(spec *domain.FilterSpec)) func(context.Context, string, *domain.FilterSpec) (bool, error) {
	return func(_ context.Context, _ string, spec *domain.FilterSpec) (bool, error) {
		apply(spec)
		return true, nil
	}
}

func TestService_LoadSettings(t *testing.T) {
	defaults := domain.DefaultFilterSpec(date(2024, 3, 15))

	t.Run("no saved record returns the defaults", func(t *testing.T) {
		svc, m := newTestService(t, ",")
		m.settings.EXPECT().Load(gomock.Any(), settingsName, gomock.Any()).Return(false, nil)

		spec, err := svc.LoadSettings(context.Background())
		require.NoError(t, err)
		assert.Equal(t, defaults.Normalize(defaults), spec)
		assert.Equal(t, "2024-02-13", spec.CustomStart)
		assert.Equal(t, "2024-03-14", spec.CustomEnd)
	})

	t.Run("saved record is merged and normalized", func(t *testing.T) {
		svc, m := newTestService(t, ",")
		m.settings.EXPECT().
			Load(gomock.Any(), settingsName, gomock.Any()).
			DoAndReturn(storedSettings(func(spec *domain.FilterSpec) {
				spec.Statuses = []domain.OrderStatus{"wc-completed", "wc-draft"}
				spec.Fields = []domain.Field{domain.FieldProductName, "bogus", domain.FieldProductName}
				spec.SortDirection = "asc"
			}))

		spec, err := svc.LoadSettings(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []domain.OrderStatus{domain.OrderStatusCompleted}, spec.Statuses)
		assert.Equal(t, []domain.Field{domain.FieldProductName}, spec.Fields)
		assert.Equal(t, domain.SortAscending, spec.SortDirection)
		assert.Equal(t, domain.PeriodLast30Days, spec.Period)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, m := newTestService(t, ",")
		m.settings.EXPECT().Load(gomock.Any(), settingsName, gomock.Any()).Return(false, errors.New("timeout"))

		_, err := svc.LoadSettings(context.Background())
		assert.ErrorIs(t, err, ErrSettingsUnavailable)
	})
}

func TestService_SaveSettings(t *testing.T) {
	svc, m := newTestService(t, ",")

	m.settings.EXPECT().
		Load(gomock.Any(), settingsName, gomock.Any()).
		DoAndReturn(storedSettings(func(spec *domain.FilterSpec) {
			spec.ExcludeFreeLines = true
			spec.SortField = domain.SortByGross
		}))

	form := url.Values{
		"report_time":    {"custom"},
		"report_start":   {"2024-01-01"},
		"report_end":     {"2024-01-31"},
		"order_status[]": {"wc-completed"},
		"products":       {"ids"},
		"product_ids":    {"42, abc, ,7"},
		"fields[]":       {"product_id", "quantity_sold", "gross_sales"},
		"unrelated":      {"ignored"},
	}

	var saved domain.FilterSpec
	m.settings.EXPECT().
		Save(gomock.Any(), settingsName, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, spec domain.FilterSpec) error {
			saved = spec
			return nil
		})

	spec, err := svc.SaveSettings(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, saved, spec)

	assert.Equal(t, domain.PeriodCustom, spec.Period)
	assert.Equal(t, "2024-01-01", spec.CustomStart)
	assert.Equal(t, "2024-01-31", spec.CustomEnd)
	assert.Equal(t, []domain.OrderStatus{domain.OrderStatusCompleted}, spec.Statuses)
	assert.Equal(t, domain.ScopeIDs, spec.Scope.Mode)
	assert.Equal(t, []int64{42, 7}, spec.Scope.ProductIDs)
	assert.Equal(t, []domain.Field{domain.FieldProductID, domain.FieldQuantitySold, domain.FieldGrossSales}, spec.Fields)
	// keys absent from the form keep their saved values
	assert.True(t, spec.ExcludeFreeLines)
	assert.Equal(t, domain.SortByGross, spec.SortField)
	assert.Equal(t, domain.SortDescending, spec.SortDirection)
}

func TestService_SaveSettings_StoreFailure(t *testing.T) {
	svc, m := newTestService(t, ",")
	m.settings.EXPECT().Load(gomock.Any(), settingsName, gomock.Any()).Return(false, nil)
	m.settings.EXPECT().Save(gomock.Any(), settingsName, gomock.Any()).Return(errors.New("read-only transaction"))

	_, err := svc.SaveSettings(context.Background(), url.Values{})
	assert.ErrorIs(t, err, ErrSettingsUnavailable)
}

func TestService_BuildTable(t *testing.T) {
	customJanuary := domain.FilterSpec{
		Period:        domain.PeriodCustom,
		CustomStart:   "2024-01-01",
		CustomEnd:     "2024-01-31",
		Statuses:      []domain.OrderStatus{domain.OrderStatusCompleted},
		Scope:         domain.ProductScope{Mode: domain.ScopeAll},
		SortField:     domain.SortByQuantity,
		SortDirection: domain.SortDescending,
		Fields:        []domain.Field{domain.FieldProductID, domain.FieldQuantitySold, domain.FieldGrossSales},
	}

	t.Run("two lines of one product in January", func(t *testing.T) {
		svc, m := newTestService(t, ",")
		from, until := date(2024, 1, 1), date(2024, 2, 1)
		m.orderLines.EXPECT().
			ListLineItems(gomock.Any(), domain.LineItemFilter{
				Statuses: []domain.OrderStatus{domain.OrderStatusCompleted},
				From:     &from,
				Until:    &until,
			}).
			Return([]domain.LineItem{
				lineItem(1, 42, 2, "10.00", "10.00"),
				lineItem(2, 42, 3, "15.00", "15.00"),
			}, nil)

		table, err := svc.BuildTable(context.Background(), customJanuary)
		require.NoError(t, err)
		assert.Equal(t, []string{"Product ID", "Quantity Sold", "Gross Sales"}, table.Header)
		assert.Equal(t, [][]string{{"42", "5", "25.00"}}, table.Rows)
	})

	t.Run("inverted custom range falls back to the last 30 days", func(t *testing.T) {
		svc, m := newTestService(t, ",")
		spec := customJanuary
		spec.CustomStart, spec.CustomEnd = "2024-02-01", "2024-01-01"

		from, until := date(2024, 2, 14), date(2024, 3, 15)
		m.orderLines.EXPECT().
			ListLineItems(gomock.Any(), domain.LineItemFilter{
				Statuses: []domain.OrderStatus{domain.OrderStatusCompleted},
				From:     &from,
				Until:    &until,
			}).
			Return([]domain.LineItem{}, nil)

		table, err := svc.BuildTable(context.Background(), spec)
		require.NoError(t, err)
		assert.Empty(t, table.Rows)
		assert.Len(t, table.Header, 3)
	})

	t.Run("catalog lookup for product fields", func(t *testing.T) {
		svc, m := newTestService(t, ",")
		spec := customJanuary
		spec.Fields = []domain.Field{domain.FieldProductName, domain.FieldProductSKU}

		m.orderLines.EXPECT().
			ListLineItems(gomock.Any(), gomock.Any()).
			Return([]domain.LineItem{
				lineItem(1, 2, 1, "1.00", "1.00"),
				lineItem(2, 1, 5, "1.00", "1.00"),
			}, nil)
		m.catalog.EXPECT().
			GetProducts(gomock.Any(), []int64{1, 2}).
			Return(map[int64]domain.Product{
				1: {ID: 1, SKU: "A-1", Name: "Mug"},
				2: {ID: 2, SKU: "B-2", Name: "Hat"},
			}, nil)

		table, err := svc.BuildTable(context.Background(), spec)
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"Mug", "A-1"}, {"Hat", "B-2"}}, table.Rows)
	})

	t.Run("catalog failure", func(t *testing.T) {
		svc, m := newTestService(t, ",")
		spec := customJanuary
		spec.Fields = []domain.Field{domain.FieldProductSKU}

		m.orderLines.EXPECT().
			ListLineItems(gomock.Any(), gomock.Any()).
			Return([]domain.LineItem{lineItem(1, 2, 1, "1.00", "1.00")}, nil)
		m.catalog.EXPECT().GetProducts(gomock.Any(), []int64{2}).Return(nil, errors.New("boom"))

		_, err := svc.BuildTable(context.Background(), spec)
		assert.ErrorIs(t, err, ErrStoreUnavailable)
	})

	t.Run("empty scopes never query the store", func(t *testing.T) {
		svc, _ := newTestService(t, ",")

		for _, scope := range []domain.ProductScope{
			{Mode: domain.ScopeIDs, ProductIDs: []int64{}},
			{Mode: domain.ScopeCategories, CategoryIDs: []int64{}},
		} {
			spec := customJanuary
			spec.Scope = scope

			table, err := svc.BuildTable(context.Background(), spec)
			require.NoError(t, err)
			assert.Empty(t, table.Rows, string(scope.Mode))
		}
	})
}

func TestService_RenderPreview_EmptyFields(t *testing.T) {
	svc, _ := newTestService(t, ",")
	spec := domain.DefaultFilterSpec(date(2024, 3, 15))
	spec.Fields = []domain.Field{}

	html, err := svc.RenderPreview(context.Background(), spec)
	require.NoError(t, err)
	assert.Contains(t, html, `<thead><tr></tr></thead>`)
	assert.Contains(t, html, `<td colspan="1">No records found</td>`)
}

func TestService_PrepareDownload(t *testing.T) {
	t.Run("empty field selection is refused", func(t *testing.T) {
		svc, m := newTestService(t, ",")
		m.settings.EXPECT().
			Load(gomock.Any(), settingsName, gomock.Any()).
			DoAndReturn(storedSettings(func(spec *domain.FilterSpec) {
				spec.Fields = []domain.Field{}
			}))

		_, err := svc.PrepareDownload(context.Background())
		require.ErrorIs(t, err, ErrEmptyFieldSelection)
		var reportErr *ReportError
		require.ErrorAs(t, err, &reportErr)
	})

	t.Run("builds the saved report", func(t *testing.T) {
		svc, m := newTestService(t, ";")
		m.settings.EXPECT().
			Load(gomock.Any(), settingsName, gomock.Any()).
			DoAndReturn(storedSettings(func(spec *domain.FilterSpec) {
				spec.Period = domain.PeriodAllTime
				spec.Fields = []domain.Field{domain.FieldProductID, domain.FieldGrossAfterDiscount}
			}))
		m.orderLines.EXPECT().
			ListLineItems(gomock.Any(), domain.LineItemFilter{
				Statuses: []domain.OrderStatus{
					domain.OrderStatusProcessing,
					domain.OrderStatusOnHold,
					domain.OrderStatusCompleted,
				},
			}).
			Return([]domain.LineItem{lineItem(1, 8, 1, "1500.00", "1234.5")}, nil)

		table, err := svc.PrepareDownload(context.Background())
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, svc.WriteCSV(&buf, table))
		assert.Equal(t, "Product ID;Gross Sales (After Discounts)\n8;1,234.50\n", buf.String())
	})
}

func TestService_DownloadFilename(t *testing.T) {
	svc, _ := newTestService(t, ",")
	assert.Equal(t, "Product Sales - 2024-03-15-1710460800.csv", svc.DownloadFilename())
}
