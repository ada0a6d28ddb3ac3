package chat

import (
	"net/http"
	"sort"
	"strconv"

	"healthrocket-backend/db"
	"healthrocket-backend/models"
	"healthrocket-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const welcomeMessage = "Hi! I'm Cosmo, your Health Rocket guide. How can I help you optimize your health journey?"

type MessageInput struct {
	Content   string `json:"content"`
	SessionID string `json:"sessionId"`
}

// @Summary Recent Cosmo chat messages
// @Description Return a page of the caller's chat transcript, oldest first. Seeds the welcome message when the transcript is empty.
// @Tags chat
// @Accept json
// @Produce json
// @Param limit query int false "Page size (default 10)"
// @Param page query int false "Page number (default 1)"
// @Security BearerAuth
// @Success 200 {array} models.ChatMessage
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /chat/messages [get]
func GetRecentMessages(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		limit = 10
	}
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	var messages []models.ChatMessage
	err = db.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error fetching chat messages")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching chat messages"})
		return
	}

	// empty first page: seed the transcript with Cosmo's greeting
	if len(messages) == 0 && page == 1 {
		welcome := models.ChatMessage{
			UserID:        userID.(string),
			Content:       welcomeMessage,
			IsUserMessage: false,
		}
		if err := db.DB.Create(&welcome).Error; err != nil {
			utils.LogErrorWithUser(userID, err, "Error creating the welcome message")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating the welcome message"})
			return
		}
		c.JSON(http.StatusOK, []models.ChatMessage{welcome})
		return
	}

	// query is newest-first for paging; display wants oldest first
	sort.Slice(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})

	c.JSON(http.StatusOK, messages)
}

// @Summary Send a chat message
// @Description Append a message to the caller's Cosmo transcript
// @Tags chat
// @Accept json
// @Produce json
// @Param input body MessageInput true "Message content"
// @Security BearerAuth
// @Success 201 {object} models.ChatMessage
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /chat/messages [post]
func SendMessage(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input MessageInput
	if !utils.ValidateRequestBody(c, &input) {
		return
	}
	if input.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The message content cannot be empty"})
		return
	}
	if input.SessionID != "" {
		if _, err := uuid.Parse(input.SessionID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
			return
		}
	}

	message := models.ChatMessage{
		UserID:        userID.(string),
		Content:       input.Content,
		IsUserMessage: true,
		SessionID:     input.SessionID,
	}

	if err := db.DB.Create(&message).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error saving the chat message")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving the chat message"})
		return
	}

	c.JSON(http.StatusCreated, message)
}
