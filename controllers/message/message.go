package controllers

import (
	"encoding/json"
	"log"
	"time"

	"github.com/fishperson113/letslearn-backend/database"
	"github.com/fishperson113/letslearn-backend/middleware"
	"github.com/fishperson113/letslearn-backend/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// conversationPair normalizes a user pair so the smaller id is always first.
func conversationPair(a, b uint) (uint, uint) {
	if a < b {
		return a, b
	}
	return b, a
}

// findOrCreateConversation returns the single conversation row for a pair.
func findOrCreateConversation(db *gorm.DB, a, b uint) (*models.Conversation, error) {
	one, two := conversationPair(a, b)

	var conversation models.Conversation
	err := db.Where("user_one_id = ? AND user_two_id = ?", one, two).First(&conversation).Error
	if err == nil {
		return &conversation, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	conversation = models.Conversation{UserOneID: one, UserTwoID: two}
	if err := db.Create(&conversation).Error; err != nil {
		// the unique pair index guards the create race; retry the lookup
		if lookupErr := db.Where("user_one_id = ? AND user_two_id = ?", one, two).
			First(&conversation).Error; lookupErr == nil {
			return &conversation, nil
		}
		return nil, err
	}
	return &conversation, nil
}

// SendMessage sends a direct message to another user.
func SendMessage(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var sender models.User
	if err := database.Database.Db.First(&sender, "id = ? AND is_deleted = ?", userId, false).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedMessage").(*struct {
		RecipientID uint   `json:"recipientId"`
		Content     string `json:"content"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.RecipientID == userId {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You cannot message yourself!", nil)
	}

	var recipient models.User
	if err := database.Database.Db.
		First(&recipient, "id = ? AND is_deleted = ?", reqData.RecipientID, false).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Recipient not found!", nil)
	}

	conversation, err := findOrCreateConversation(database.Database.Db, userId, reqData.RecipientID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}

	message := models.ChatMessage{
		ConversationID: conversation.ID,
		SenderID:       userId,
		Content:        reqData.Content,
	}

	now := time.Now()
	err = database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&message).Error; err != nil {
			return err
		}
		return tx.Model(conversation).Update("last_message_at", now).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send message!", nil)
	}

	payload, _ := json.Marshal(fiber.Map{"conversationId": conversation.ID, "senderId": userId})
	notification := models.Notification{
		UserID:  recipient.ID,
		Type:    models.NotificationMessage,
		Title:   "New message",
		Body:    sender.Name + " sent you a message",
		Payload: datatypes.JSON(payload),
	}
	if err := database.Database.Db.Create(&notification).Error; err != nil {
		log.Printf("[MESSAGE] failed to create notification: %v", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Message sent successfully!", message)
}

// GetConversations lists the current user's conversations, most recent first.
func GetConversations(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var conversations []models.Conversation
	if err := database.Database.Db.
		Where("user_one_id = ? OR user_two_id = ?", userId, userId).
		Order("last_message_at DESC").
		Find(&conversations).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Conversations fetched successfully!", conversations)
}

// GetConversationMessages returns a conversation's messages and marks the
// other party's messages as read.
func GetConversationMessages(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	conversationID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid conversation id!", nil)
	}

	var conversation models.Conversation
	if err := database.Database.Db.First(&conversation, "id = ?", conversationID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Conversation not found!", nil)
	}

	if conversation.UserOneID != userId && conversation.UserTwoID != userId {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	var messages []models.ChatMessage
	if err := database.Database.Db.
		Where("conversation_id = ?", conversation.ID).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}

	database.Database.Db.Model(&models.ChatMessage{}).
		Where("conversation_id = ? AND sender_id <> ? AND is_read = ?", conversation.ID, userId, false).
		Update("is_read", true)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Messages fetched successfully!", messages)
}
