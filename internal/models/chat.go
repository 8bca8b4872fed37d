package models

import "time"

// ChatSession records one conversation between a user and the assistant on a
// channel. The live slot-filling state is held in memory by the engine; this
// row exists so transcripts survive restarts and can be audited.
type ChatSession struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Platform  string `gorm:"size:16;not null;index"` // "discord", "slack", "http"
	ChannelID string `gorm:"size:128;index:idx_channel_user"`
	UserID    string `gorm:"size:64;index:idx_channel_user"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Turns []ChatTurn `gorm:"foreignKey:SessionID"`
}

// ChatTurn stores a single message in a chat session's transcript.
type ChatTurn struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	SessionID uint   `gorm:"not null;index"`
	Sequence  int    `gorm:"not null"`
	Role      string `gorm:"size:16;not null"` // "user", "assistant"
	Content   string `gorm:"type:text;not null"`
	Intent    string `gorm:"size:32"` // classified intent for assistant turns
	Tool      string `gorm:"size:32"` // dispatched tool, if any
	CreatedAt time.Time

	Session ChatSession `gorm:"foreignKey:SessionID"`
}
