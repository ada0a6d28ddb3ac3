package users

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"healthrocket-backend/models"
	"healthrocket-backend/testutils"

	"github.com/DATA-DOG/go-sqlmock"
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

func TestGetMe_Success(t *testing.T) {
	userID := uuid.NewString()

	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WithArgs(userID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "plan"}).
			AddRow(userID, "pilot@healthrocket.test", "Test Pilot", "Pro Plan"))

	r := testutils.SetupTestRouter()
	r.GET("/users/me", testutils.AuthAs(userID), GetMe)

	resp := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/users/me", nil)
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var user models.User
	json.Unmarshal(resp.Body.Bytes(), &user)
	assert.Equal(t, "pilot@healthrocket.test", user.Email)
	assert.Equal(t, "Pro Plan", user.Plan)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMe_NotFound(t *testing.T) {
	userID := uuid.NewString()

	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WithArgs(userID, 1).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.GET("/users/me", testutils.AuthAs(userID), GetMe)

	resp := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/users/me", nil)
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}
