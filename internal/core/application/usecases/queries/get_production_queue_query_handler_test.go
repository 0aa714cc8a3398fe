package queries_test

import (
	"testing"
	"time"

	"github.com/Ramos-Maykol/project/internal/core/application/usecases/queries"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProductionQueueQueryHandler_Handle(t *testing.T) {
	queueColumns := []string{
		"id", "order_number", "customer_name", "name", "quantity",
		"priority", "status", "estimated_hours", "estimated_delivery_date", "placed_at",
	}

	t.Run("empty_queue", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(`(?s)SELECT.*FROM orders o.*JOIN product_types pt.*WHERE o.status IN`).
			WithArgs("pending", "in_progress").
			WillReturnRows(sqlmock.NewRows(queueColumns))

		h := queries.NewGetProductionQueueQueryHandler(db)
		result, err := h.Handle(t.Context(), queries.NewGetProductionQueueQuery())

		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("maps_rows_in_query_order", func(t *testing.T) {
		db, mock := setupMockDB(t)
		now := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)
		firstID := uuid.New()
		secondID := uuid.New()

		mock.ExpectQuery(`(?s)SELECT.*FROM orders o.*JOIN product_types pt.*WHERE o.status IN`).
			WithArgs("pending", "in_progress").
			WillReturnRows(sqlmock.NewRows(queueColumns).
				AddRow(firstID.String(), "ORD-2026-002", "Jorge Ramos", "Silla de metal", 4,
					5, "in_progress", 16.0, now.AddDate(0, 0, 2), now).
				AddRow(secondID.String(), "ORD-2026-001", "Maria Lopez", "Mesa de madera", 2,
					1, "pending", 12.0, now.AddDate(0, 0, 3), now.Add(-time.Hour)))

		h := queries.NewGetProductionQueueQueryHandler(db)
		result, err := h.Handle(t.Context(), queries.NewGetProductionQueueQuery())

		require.NoError(t, err)
		require.Len(t, result, 2)

		assert.Equal(t, "ORD-2026-002", result[0].OrderNumber)
		assert.Equal(t, "Silla de metal", result[0].ProductTypeName)
		assert.Equal(t, 5, result[0].Priority)
		assert.Equal(t, "in_progress", result[0].Status)
		assert.Equal(t, firstID.String(), result[0].ID.String())

		assert.Equal(t, "ORD-2026-001", result[1].OrderNumber)
		assert.Equal(t, 12.0, result[1].EstimatedHours)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unconstructed_query_is_rejected", func(t *testing.T) {
		db, _ := setupMockDB(t)
		h := queries.NewGetProductionQueueQueryHandler(db)

		_, err := h.Handle(t.Context(), queries.GetProductionQueueQuery{})
		require.ErrorIs(t, err, queries.ErrGetProductionQueueQueryIsNotConstructed)
	})
}

func TestGetProductTypesQueryHandler_Handle(t *testing.T) {
	catalogColumns := []string{"id", "name", "material_type", "base_production_time", "complexity_factor"}

	t.Run("returns_catalog_ordered_by_id", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(`(?s)SELECT.*FROM product_types.*ORDER BY id`).
			WillReturnRows(sqlmock.NewRows(catalogColumns).
				AddRow(1, "Mesa de madera", "madera", 4.0, 1.5).
				AddRow(2, "Silla de metal", "metal", 2.5, 1.2))

		h := queries.NewGetProductTypesQueryHandler(db)
		result, err := h.Handle(t.Context(), queries.NewGetProductTypesQuery())

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "Mesa de madera", result[0].Name)
		assert.Equal(t, 1.2, result[1].ComplexityFactor)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unconstructed_query_is_rejected", func(t *testing.T) {
		db, _ := setupMockDB(t)
		h := queries.NewGetProductTypesQueryHandler(db)

		_, err := h.Handle(t.Context(), queries.GetProductTypesQuery{})
		require.ErrorIs(t, err, queries.ErrGetProductTypesQueryIsNotConstructed)
	})
}
