package testutils

import (
	"io"
	"log"
	"net/http/httptest"
	"testing"

	"healthrocket-backend/db"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	stripeapi "github.com/stripe/stripe-go/v82"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB swaps the global db.DB for a sqlmock-backed connection and
// returns it together with the mock and a cleanup restoring the original.
func SetupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error creating the SQL mock connection: %s", err)
	}

	newLogger := logger.New(
		log.New(io.Discard, "", log.LstdFlags),
		logger.Config{
			LogLevel: logger.Silent,
		},
	)

	dialector := postgres.New(postgres.Config{
		Conn:       sqlDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		t.Fatalf("error opening the GORM connection: %s", err)
	}

	originalDB := db.DB
	db.DB = gormDB

	cleanup := func() {
		db.DB = originalDB
		sqlDB.Close()
	}

	return gormDB, mock, cleanup
}

// SetupStripeStub points the stripe-go backend at the given test server so
// handlers exercise the real client against canned API responses. The
// returned cleanup restores the default backend.
func SetupStripeStub(t *testing.T, server *httptest.Server) func() {
	t.Helper()

	stripeapi.Key = "sk_test_stub"
	stripeapi.SetBackend(stripeapi.APIBackend, stripeapi.GetBackendWithConfig(stripeapi.APIBackend, &stripeapi.BackendConfig{
		URL: stripeapi.String(server.URL),
	}))

	return func() {
		stripeapi.SetBackend(stripeapi.APIBackend, nil)
		server.Close()
	}
}

func SetupTestRouter() *gin.Engine {
	r := gin.New()
	return r
}

// AuthAs returns a middleware injecting the given user id, standing in for
// the JWT middleware in handler tests.
func AuthAs(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func InitTestMain() {
	gin.SetMode(gin.TestMode)
}
