package store

import (
	"errors"
	"fmt"

	"github.com/zulandar/clerk/internal/models"
	"gorm.io/gorm"
)

// FindOrCreateChatSession returns the ChatSession row for a platform/channel/
// user triple, creating it on the first message.
func FindOrCreateChatSession(db *gorm.DB, platform, channelID, userID string) (*models.ChatSession, error) {
	var session models.ChatSession
	err := db.Where("platform = ? AND channel_id = ? AND user_id = ?",
		platform, channelID, userID).First(&session).Error
	if err == nil {
		return &session, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("store: chat: find session: %w", err)
	}

	session = models.ChatSession{
		Platform:  platform,
		ChannelID: channelID,
		UserID:    userID,
	}
	if err := db.Create(&session).Error; err != nil {
		return nil, fmt.Errorf("store: chat: create session: %w", err)
	}
	return &session, nil
}

// AppendTurn records a message in a session's transcript with the next
// sequence number.
func AppendTurn(db *gorm.DB, sessionID uint, role, content, intent, tool string) error {
	var maxSeq int
	if err := db.Model(&models.ChatTurn{}).
		Where("session_id = ?", sessionID).
		Select("COALESCE(MAX(sequence), 0)").Scan(&maxSeq).Error; err != nil {
		return fmt.Errorf("store: chat: next sequence: %w", err)
	}

	turn := models.ChatTurn{
		SessionID: sessionID,
		Sequence:  maxSeq + 1,
		Role:      role,
		Content:   content,
		Intent:    intent,
		Tool:      tool,
	}
	if err := db.Create(&turn).Error; err != nil {
		return fmt.Errorf("store: chat: append turn: %w", err)
	}
	return nil
}

// Transcript returns a session's turns ordered by sequence.
func Transcript(db *gorm.DB, sessionID uint) ([]models.ChatTurn, error) {
	var turns []models.ChatTurn
	if err := db.Where("session_id = ?", sessionID).
		Order("sequence").Find(&turns).Error; err != nil {
		return nil, fmt.Errorf("store: chat: transcript: %w", err)
	}
	return turns, nil
}
