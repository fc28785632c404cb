package inventory

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

var variantColumns = []string{
	"id", "product_id", "size", "color", "pack", "price",
	"stock", "base_stock", "use_shared_stock",
}

// Deduct must take all the group's row locks in one id-ordered statement, so
// two checkouts hitting different pack sizes of the same pool cannot acquire
// them in opposite orders.
func TestDeductLocksGroupInSingleOrderedQuery(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "product_variants" WHERE \(product_id, color, size\) IN .+ ORDER BY id FOR UPDATE`).
		WithArgs(uint(2)).
		WillReturnRows(sqlmock.NewRows(variantColumns).
			AddRow(1, 10, "M", "Black", 1, 29900, 0, 12, true).
			AddRow(2, 10, "M", "Black", 2, 54900, 0, 12, true))
	mock.ExpectExec(`UPDATE "product_variants" SET "base_stock"=base_stock - \$1`).
		WithArgs(4, sqlmock.AnyArg(), uint(10), "Black", "M", true).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := Deduct(db, 2, 2) // pack of 2, quantity 2 -> 4 units
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeductSharedPoolInsufficientUnits(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`FOR UPDATE`).
		WithArgs(uint(2)).
		WillReturnRows(sqlmock.NewRows(variantColumns).
			AddRow(1, 10, "M", "Black", 1, 29900, 0, 3, true).
			AddRow(2, 10, "M", "Black", 2, 54900, 0, 3, true))

	err := Deduct(db, 2, 2) // needs 4 units, pool has 3
	var stockErr ErrInsufficientStock
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 4, stockErr.Requested)
	assert.Equal(t, 3, stockErr.Available)
}

func TestDeductOwnStockVariant(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`FOR UPDATE`).
		WithArgs(uint(7)).
		WillReturnRows(sqlmock.NewRows(variantColumns).
			AddRow(7, 10, "L", "White", 1, 39900, 5, 0, false))
	mock.ExpectExec(`UPDATE "product_variants" SET "stock"=stock - \$1`).
		WithArgs(3, sqlmock.AnyArg(), uint(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := Deduct(db, 7, 3)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
