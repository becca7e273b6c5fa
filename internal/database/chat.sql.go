package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	UserMessage string    `json:"user_message"`
	AiMessage   string    `json:"ai_message"`
	Timestamp   time.Time `json:"timestamp"`
}

const appendChatMessage = `-- name: AppendChatMessage :exec
UPDATE users
SET current_chat = coalesce(current_chat, '[]'::jsonb) || $1::jsonb,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $2
`

type AppendChatMessageParams struct {
	UserMessage string
	AiMessage   string
	ID          uuid.UUID
}

func (q *Queries) AppendChatMessage(ctx context.Context, arg AppendChatMessageParams) error {
	msg, err := json.Marshal(ChatMessage{
		UserMessage: arg.UserMessage,
		AiMessage:   arg.AiMessage,
		Timestamp:   time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	_, err = q.db.ExecContext(ctx, appendChatMessage, msg, arg.ID)
	return err
}

const archiveAndClearChat = `-- name: ArchiveAndClearChat :one
UPDATE users
SET chat_archive = coalesce(chat_archive, '[]'::jsonb) || jsonb_build_array(
        jsonb_build_object('messages', current_chat, 'archived_at', CURRENT_TIMESTAMP)
    ),
    current_chat = '[]'::jsonb,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND jsonb_array_length(coalesce(current_chat, '[]'::jsonb)) > 0
RETURNING jsonb_array_length(chat_archive -> -1 -> 'messages')
`

// ArchiveAndClearChat atomically moves the current chat into the archive and
// returns the number of messages moved, 0 when there was nothing to archive.
func (q *Queries) ArchiveAndClearChat(ctx context.Context, id uuid.UUID) (int64, error) {
	var moved int64
	err := q.db.QueryRowContext(ctx, archiveAndClearChat, id).Scan(&moved)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return moved, err
}
