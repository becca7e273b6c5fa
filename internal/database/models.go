package database

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID              uuid.UUID
	Name            string
	Email           string
	PasswordHash    string
	TargetRole      string
	ResumeData      json.RawMessage
	ResumeObjectKey string
	ResumeFilename  string
	CurrentChat     json.RawMessage
	ChatArchive     json.RawMessage
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
