package couponcontroller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
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

func TestCreateCouponStoresTypedDiscountAndUppercaseCode(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := newMockDB(t)

	mock.ExpectQuery(`INSERT INTO "coupons"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	r := gin.New()
	r.POST("/api/admin/coupons", CreateCouponHandler(db))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/coupons",
		strings.NewReader(`{"code":"welcome10","discount_type":"PERCENTAGE","discount_value":10,"max_discount":20000}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"WELCOME10"`)
	assert.Contains(t, w.Body.String(), `"discount_type":"PERCENTAGE"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCouponRejectsPercentageOverHundred(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, _ := newMockDB(t)

	r := gin.New()
	r.POST("/api/admin/coupons", CreateCouponHandler(db))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/coupons",
		strings.NewReader(`{"code":"TOOBIG","discount_type":"PERCENTAGE","discount_value":150}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
