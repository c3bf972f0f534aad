package migration

import (
	"context"
	"database/sql"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-report-api/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

// Step is one idempotent schema change
type Step struct {
	Name      string
	Statement string
}

// Steps lists the schema of the report store in dependency order
var Steps = []Step{
	{
		Name: "create users",
		Statement: `CREATE TABLE IF NOT EXISTS users (
			id            SERIAL PRIMARY KEY,
			name          VARCHAR(120) NOT NULL,
			lastname      VARCHAR(120) NOT NULL DEFAULT '',
			email         VARCHAR(255) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			active        BOOLEAN NOT NULL DEFAULT TRUE,
			role_id       INTEGER NOT NULL,
			deleted       BOOLEAN NOT NULL DEFAULT FALSE,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		Name: "create orders",
		Statement: `CREATE TABLE IF NOT EXISTS orders (
			id           BIGSERIAL PRIMARY KEY,
			order_type   VARCHAR(32) NOT NULL DEFAULT 'shop_order',
			status       VARCHAR(32) NOT NULL,
			date_created TIMESTAMPTZ NOT NULL
		)`,
	},
	{
		Name:      "index orders by status and date",
		Statement: `CREATE INDEX IF NOT EXISTS orders_status_date_idx ON orders (status, date_created)`,
	},
	{
		Name: "create products",
		Statement: `CREATE TABLE IF NOT EXISTS products (
			id    BIGINT PRIMARY KEY,
			sku   VARCHAR(100),
			title TEXT NOT NULL
		)`,
	},
	{
		Name: "create categories",
		Statement: `CREATE TABLE IF NOT EXISTS categories (
			id   BIGINT PRIMARY KEY,
			name VARCHAR(200) NOT NULL
		)`,
	},
	{
		Name: "create product_categories",
		Statement: `CREATE TABLE IF NOT EXISTS product_categories (
			product_id  BIGINT NOT NULL REFERENCES products (id) ON DELETE CASCADE,
			category_id BIGINT NOT NULL REFERENCES categories (id) ON DELETE CASCADE,
			PRIMARY KEY (product_id, category_id)
		)`,
	},
	{
		Name: "create order_items",
		Statement: `CREATE TABLE IF NOT EXISTS order_items (
			id            BIGSERIAL PRIMARY KEY,
			order_id      BIGINT NOT NULL REFERENCES orders (id) ON DELETE CASCADE,
			item_type     VARCHAR(32) NOT NULL DEFAULT 'line_item',
			product_id    BIGINT NOT NULL DEFAULT 0,
			variation_id  BIGINT NOT NULL DEFAULT 0,
			quantity      BIGINT NOT NULL DEFAULT 0,
			line_subtotal NUMERIC(19, 4) NOT NULL DEFAULT 0,
			line_total    NUMERIC(19, 4) NOT NULL DEFAULT 0
		)`,
	},
	{
		Name:      "index order_items by order",
		Statement: `CREATE INDEX IF NOT EXISTS order_items_order_idx ON order_items (order_id, id)`,
	},
	{
		Name: "create report_settings",
		Statement: `CREATE TABLE IF NOT EXISTS report_settings (
			name       VARCHAR(191) PRIMARY KEY,
			value      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
}

// Apply runs every step in a single transaction
func Apply(ctx context.Context, conn postgres.Conn) error {
	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i, step := range Steps {
			if _, err := tx.ExecContext(ctx, step.Statement); err != nil {
				return errors.Wrapf(err, "migration: step %d (%s)", i+1, step.Name)
			}
			log.L.Infof("migration: [%d/%d] %s", i+1, len(Steps), step.Name)
		}
		return nil
	})
}

// AdminUser describes the account created by SeedAdmin
type AdminUser struct {
	Name     string
	Email    string
	Password string
	RoleID   int
}

func adminInsert(user AdminUser, passwordHash string) squirrel.InsertBuilder {
	return squirrel.
		Insert("users").
		Columns("name", "email", "password_hash", "active", "role_id").
		Values(user.Name, strings.ToLower(strings.TrimSpace(user.Email)), passwordHash, true, user.RoleID).
		Suffix("ON CONFLICT (email) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)
}

// SeedAdmin creates the first account able to read reports. An existing email is left untouched.
func SeedAdmin(ctx context.Context, conn postgres.Conn, user AdminUser) (bool, error) {
	if strings.TrimSpace(user.Email) == "" || user.Password == "" {
		return false, errors.New("migration: admin email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return false, errors.Wrap(err, "migration: hash admin password")
	}

	query, args, err := adminInsert(user, string(hash)).ToSql()
	if err != nil {
		return false, errors.Wrap(err, "migration: build admin insert")
	}

	created := false
	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		created = affected > 0
		return nil
	})
	if err != nil {
		return false, errors.Wrap(err, "migration: insert admin")
	}

	return created, nil
}
