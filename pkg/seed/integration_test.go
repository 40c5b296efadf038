package seed_test

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alou/yoga-journal/pkg/seed"
	"github.com/alou/yoga-journal/pkg/testhelpers"
)

func TestLoad_EmbeddedPayloadDecodes(t *testing.T) {
	data, err := seed.Load()
	require.NoError(t, err)

	assert.NotEmpty(t, data.Locations)
	assert.NotEmpty(t, data.ClassTypes)
	assert.NotEmpty(t, data.Themes)
	assert.NotEmpty(t, data.SampleClasses)
}

// Re-provisioning is documented as non-idempotent for data: every run
// inserts a fresh copy of each seed row while the schema migrations
// stay untouched.
func TestApplyTwice_DuplicatesRowsLeavesSchemaAlone(t *testing.T) {
	testDB := testhelpers.GetTestDB(t)
	ctx := context.Background()

	db, err := sql.Open("pgx", testDB.ConnStr)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	data, err := seed.Load()
	require.NoError(t, err)

	apply := func() {
		require.NoError(t, seed.InsertReference(ctx, db, data))
		require.NoError(t, seed.InsertSampleClasses(ctx, db, data))
	}

	tablesBefore := countTables(t, ctx, db)

	apply()
	assert.Equal(t, len(data.Locations), countRows(t, ctx, db, "locations"))
	assert.Equal(t, len(data.ClassTypes), countRows(t, ctx, db, "class_types"))
	assert.Equal(t, len(data.Themes), countRows(t, ctx, db, "themes"))
	assert.Equal(t, len(data.SampleClasses), countRows(t, ctx, db, "classes_taught"))

	apply()
	assert.Equal(t, 2*len(data.Locations), countRows(t, ctx, db, "locations"))
	assert.Equal(t, 2*len(data.ClassTypes), countRows(t, ctx, db, "class_types"))
	assert.Equal(t, 2*len(data.Themes), countRows(t, ctx, db, "themes"))
	assert.Equal(t, 2*len(data.SampleClasses), countRows(t, ctx, db, "classes_taught"))

	assert.Equal(t, tablesBefore, countTables(t, ctx, db), "data reruns must not alter the schema")
}

func countRows(t *testing.T, ctx context.Context, db *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM app_data."+table).Scan(&n))
	return n
}

func countTables(t *testing.T, ctx context.Context, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM information_schema.tables
		 WHERE table_schema IN ('app_data', 'analytics')`).Scan(&n))
	return n
}
