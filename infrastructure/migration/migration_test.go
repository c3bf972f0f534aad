package migration

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSteps(t *testing.T) {
	seen := map[string]int{}
	for i, step := range Steps {
		assert.Contains(t, step.Statement, "IF NOT EXISTS", step.Name)
		seen[step.Name] = i
	}

	// referenced tables come first
	assert.Less(t, seen["create products"], seen["create product_categories"])
	assert.Less(t, seen["create categories"], seen["create product_categories"])
	assert.Less(t, seen["create orders"], seen["create order_items"])
}

func TestStepsCoverRepositoryTables(t *testing.T) {
	var all strings.Builder
	for _, step := range Steps {
		all.WriteString(step.Statement)
	}
	schema := all.String()

	for _, table := range []string{"users", "orders", "order_items", "products", "categories", "product_categories", "report_settings"} {
		assert.Contains(t, schema, "CREATE TABLE IF NOT EXISTS "+table+" (", table)
	}
}

func TestAdminInsert(t *testing.T) {
	query, args, err := adminInsert(AdminUser{Name: "Admin", Email: " Admin@Shop.test ", RoleID: 1}, "hash").ToSql()
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO users (name,email,password_hash,active,role_id) VALUES ($1,$2,$3,$4,$5) ON CONFLICT (email) DO NOTHING", query)
	assert.Equal(t, []interface{}{"Admin", "admin@shop.test", "hash", true, 1}, args)
}

func TestSeedAdminRequiresCredentials(t *testing.T) {
	created, err := SeedAdmin(context.Background(), nil, AdminUser{Email: "admin@shop.test"})

	assert.Error(t, err)
	assert.False(t, created)
}
