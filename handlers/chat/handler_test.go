package chat

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"healthrocket-backend/models"
	"healthrocket-backend/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func chatRouter(userID string) *gin.Engine {
	r := testutils.SetupTestRouter()
	r.GET("/chat/messages", testutils.AuthAs(userID), GetRecentMessages)
	r.POST("/chat/messages", testutils.AuthAs(userID), SendMessage)
	return r
}

func TestGetRecentMessages_OldestFirst(t *testing.T) {
	userID := uuid.NewString()

	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "cosmo_chat_messages" WHERE user_id = \$1`).
		WithArgs(userID, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "content", "is_user_message", "created_at"}).
			AddRow("msg-2", userID, "Keep your streak going!", false, now).
			AddRow("msg-1", userID, "How do I earn FP?", true, now.Add(-time.Minute)))

	resp := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/chat/messages", nil)
	chatRouter(userID).ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var messages []models.ChatMessage
	json.Unmarshal(resp.Body.Bytes(), &messages)
	assert.Len(t, messages, 2)
	assert.Equal(t, "msg-1", messages[0].ID)
	assert.Equal(t, "msg-2", messages[1].ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRecentMessages_SeedsWelcome(t *testing.T) {
	userID := uuid.NewString()

	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "cosmo_chat_messages" WHERE user_id = \$1`).
		WithArgs(userID, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "content", "is_user_message", "created_at"}))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "cosmo_chat_messages" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("welcome-uuid"))
	mock.ExpectCommit()

	resp := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/chat/messages", nil)
	chatRouter(userID).ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var messages []models.ChatMessage
	json.Unmarshal(resp.Body.Bytes(), &messages)
	assert.Len(t, messages, 1)
	assert.False(t, messages[0].IsUserMessage)
	assert.Contains(t, messages[0].Content, "Cosmo")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendMessage_Success(t *testing.T) {
	userID := uuid.NewString()

	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "cosmo_chat_messages" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("msg-uuid"))
	mock.ExpectCommit()

	body, _ := json.Marshal(map[string]string{"content": "What should I focus on today?"})
	req, _ := http.NewRequest(http.MethodPost, "/chat/messages", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	chatRouter(userID).ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var message models.ChatMessage
	json.Unmarshal(resp.Body.Bytes(), &message)
	assert.True(t, message.IsUserMessage)
	assert.Equal(t, "What should I focus on today?", message.Content)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendMessage_MalformedBody(t *testing.T) {
	userID := uuid.NewString()

	req, _ := http.NewRequest(http.MethodPost, "/chat/messages", bytes.NewBufferString(`{"content": `))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	chatRouter(userID).ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "Invalid request body")
	assert.Contains(t, resp.Body.String(), `"success":false`)
}

func TestSendMessage_EmptyContent(t *testing.T) {
	userID := uuid.NewString()

	body, _ := json.Marshal(map[string]string{"content": ""})
	req, _ := http.NewRequest(http.MethodPost, "/chat/messages", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	chatRouter(userID).ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "content cannot be empty")
}

func TestSendMessage_InvalidSessionID(t *testing.T) {
	userID := uuid.NewString()

	body, _ := json.Marshal(map[string]string{"content": "hello", "sessionId": "not-a-uuid"})
	req, _ := http.NewRequest(http.MethodPost, "/chat/messages", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	chatRouter(userID).ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "Invalid session ID")
}
