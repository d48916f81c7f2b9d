package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"machone/internal/domain/entity"
	"machone/internal/infra/persistence/model"
)

// openTestDB connects to the database named by TEST_DATABASE_DSN and prepares
// the diecasts table with the pg_trgm extension. Tests calling it are skipped
// when the variable is not set.
//
// Example:
//
//	TEST_DATABASE_DSN="host=localhost user=postgres dbname=machone_test" go test ./internal/infra/persistence/postgres/ -run Similarity -v
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("Skipping database test: TEST_DATABASE_DSN env var not set")
	}

	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to connect to test database")

	require.NoError(t, db.Exec("CREATE EXTENSION IF NOT EXISTS pg_trgm").Error)
	require.NoError(t, db.AutoMigrate(&model.DiecastModel{}))

	t.Cleanup(func() {
		db.Exec("DELETE FROM diecasts")
	})

	return db
}

func TestDiecastRepository_SearchBySimilarity_OrdersByScore(t *testing.T) {
	db := openTestDB(t)
	repo := NewDiecastRepository(db)
	ctx := context.Background()

	for _, name := range []string{"Must", "Mustang GT", "Bone Shaker"} {
		require.NoError(t, repo.Create(ctx, &entity.Diecast{ModelName: name}))
	}

	results, err := repo.SearchBySimilarity(ctx, "Mustang", 0.3, 10, 0)
	require.NoError(t, err)

	// "Mustang GT" shares more trigrams with the query than "Must", so it
	// must come back first; "Bone Shaker" falls below the threshold.
	require.Len(t, results, 2)
	assert.Equal(t, "Mustang GT", results[0].ModelName)
	assert.Equal(t, "Must", results[1].ModelName)

	total, err := repo.CountBySimilarity(ctx, "Mustang", 0.3)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestDiecastRepository_SearchBySimilarity_PaginatesStably(t *testing.T) {
	db := openTestDB(t)
	repo := NewDiecastRepository(db)
	ctx := context.Background()

	for _, name := range []string{"Mustang", "Mustang GT", "Mustang Mach 1"} {
		require.NoError(t, repo.Create(ctx, &entity.Diecast{ModelName: name}))
	}

	first, err := repo.SearchBySimilarity(ctx, "Mustang", 0.3, 2, 0)
	require.NoError(t, err)
	second, err := repo.SearchBySimilarity(ctx, "Mustang", 0.3, 2, 2)
	require.NoError(t, err)

	// The exact match scores 1.0 and leads; the pages never overlap.
	require.Len(t, first, 2)
	require.Len(t, second, 1)
	assert.Equal(t, "Mustang", first[0].ModelName)
	assert.NotContains(t, []string{first[0].ModelName, first[1].ModelName}, second[0].ModelName)
}
