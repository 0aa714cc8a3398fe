package historyrepo_test

import (
	"testing"

	"github.com/Ramos-Maykol/project/internal/adapters/out/postgres/historyrepo"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gorm_postgres.New(gorm_postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

var exampleColumns = []string{
	"product_type_id", "quantity", "width", "height", "depth",
	"priority", "base_production_time", "complexity_factor", "actual_hours",
}

func TestGormTrainingDataReader_GetTrainingExamples(t *testing.T) {
	t.Run("maps_delivered_orders_to_examples", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(`(?s)SELECT.*FROM orders o.*WHERE o.status = .*ORDER BY o.completed_at DESC`).
			WithArgs("delivered").
			WillReturnRows(sqlmock.NewRows(exampleColumns).
				AddRow(3, 2, 100.0, 50.0, 30.0, 1, 4.0, 1.5, 13.5).
				AddRow(1, 1, 0.0, 0.0, 0.0, 2, 2.5, 1.2, 3.25))

		reader := historyrepo.NewGormTrainingDataReader(db)
		examples, err := reader.GetTrainingExamples(t.Context(), 0)

		require.NoError(t, err)
		require.Len(t, examples, 2)
		assert.Equal(t, 3, examples[0].ProductTypeID)
		assert.Equal(t, 13.5, examples[0].ActualHours)
		assert.Equal(t, []float64{3, 2, 100, 50, 30, 1, 4.0, 1.5, 150000}, examples[0].Features())
		assert.Equal(t, 3.25, examples[1].Label())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("applies_limit_when_positive", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(`(?s)SELECT.*FROM orders o.*ORDER BY o.completed_at DESC.*LIMIT`).
			WithArgs("delivered", 5).
			WillReturnRows(sqlmock.NewRows(exampleColumns))

		reader := historyrepo.NewGormTrainingDataReader(db)
		examples, err := reader.GetTrainingExamples(t.Context(), 5)

		require.NoError(t, err)
		assert.Empty(t, examples)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
