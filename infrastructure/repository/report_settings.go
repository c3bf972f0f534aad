package repository

//go:generate mockgen -source=report_settings.go -destination=mocks/report_settings.go -package=mocks

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

const (
	reportSettingsTable = "report_settings"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ReportSettingsRepository persists the last submitted report filter under a single named record
type ReportSettingsRepository interface {
	// Load decodes the saved record over spec, so keys missing from the record keep
	// whatever spec already held. It reports whether a record exists.
	Load(ctx context.Context, name string, spec *domain.FilterSpec) (bool, error)
	Save(ctx context.Context, name string, spec domain.FilterSpec) error
}

type reportSettingsRepository struct {
	conn postgres.Queryer
}

func NewReportSettingsRepository(conn postgres.Queryer) ReportSettingsRepository {
	return &reportSettingsRepository{
		conn: conn,
	}
}

func (r *reportSettingsRepository) Load(ctx context.Context, name string, spec *domain.FilterSpec) (bool, error) {
	query, args, err := squirrel.
		Select("value").
		From(reportSettingsTable).
		Where(squirrel.Eq{"name": name}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, errors.Wrap(err, "report-settings: build query")
	}

	var raw []byte
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&raw)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "report-settings: scan record")
	}

	if err := json.Unmarshal(raw, spec); err != nil {
		return false, errors.Wrapf(err, "report-settings: decode record %q", name)
	}

	return true, nil
}

func (r *reportSettingsRepository) Save(ctx context.Context, name string, spec domain.FilterSpec) error {
	raw, err := json.Marshal(spec)
	if err != nil {
		return errors.Wrap(err, "report-settings: encode record")
	}

	query, args, err := squirrel.StatementBuilder.
		Insert(reportSettingsTable).
		Columns("name", "value").
		Values(name, raw).
		Suffix(`
			ON CONFLICT (name) DO UPDATE SET
				value = EXCLUDED.value,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "report-settings: build upsert")
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "report-settings: execute upsert")
	}

	return nil
}
