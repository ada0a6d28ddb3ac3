package dashboard

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"healthrocket-backend/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func dashboardRouter(userID string) *gin.Engine {
	r := testutils.SetupTestRouter()
	r.GET("/dashboard/billing", testutils.AuthAs(userID), GetBillingSummary)
	r.GET("/dashboard/metrics", GetMetrics)
	return r
}

func TestGetBillingSummary_WithSubscription(t *testing.T) {
	userID := uuid.NewString()

	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	start := time.Unix(1700000000, 0)
	end := time.Unix(1702592000, 0)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WithArgs(userID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "plan", "plan_status", "subscription_start_date", "subscription_end_date"}).
			AddRow(userID, "pilot@healthrocket.test", "Pro Plan", "Active", start, end))

	mock.ExpectQuery(`SELECT \* FROM "subscriptions" WHERE user_id = \$1`).
		WithArgs(userID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "stripe_customer_id", "stripe_subscription_id", "status"}).
			AddRow("row-uuid", userID, "cus_1", "sub_1", "active"))

	resp := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/dashboard/billing", nil)
	dashboardRouter(userID).ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var payload struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
	}
	json.Unmarshal(resp.Body.Bytes(), &payload)
	assert.True(t, payload.Success)
	assert.Equal(t, "Pro Plan", payload.Data["plan"])
	assert.Equal(t, "Active", payload.Data["planStatus"])
	assert.NotNil(t, payload.Data["subscription"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBillingSummary_FreeUser(t *testing.T) {
	userID := uuid.NewString()

	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WithArgs(userID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "plan"}).
			AddRow(userID, "pilot@healthrocket.test", "Free Plan"))

	mock.ExpectQuery(`SELECT \* FROM "subscriptions" WHERE user_id = \$1`).
		WithArgs(userID, 1).
		WillReturnError(gorm.ErrRecordNotFound)

	resp := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/dashboard/billing", nil)
	dashboardRouter(userID).ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var payload struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
	}
	json.Unmarshal(resp.Body.Bytes(), &payload)
	assert.True(t, payload.Success)
	assert.Equal(t, "Free Plan", payload.Data["plan"])
	assert.Nil(t, payload.Data["subscription"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMetrics(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE plan <> \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "subscriptions" WHERE status IN`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	resp := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/dashboard/metrics", nil)
	dashboardRouter(uuid.NewString()).ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var payload struct {
		Success bool             `json:"success"`
		Data    map[string]int64 `json:"data"`
	}
	json.Unmarshal(resp.Body.Bytes(), &payload)
	assert.True(t, payload.Success)
	assert.Equal(t, int64(42), payload.Data["totalUsers"])
	assert.Equal(t, int64(7), payload.Data["payingUsers"])
	assert.Equal(t, int64(7), payload.Data["activeSubscriptions"])

	assert.NoError(t, mock.ExpectationsWereMet())
}
