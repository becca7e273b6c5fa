package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDB struct {
	query string
	args  []interface{}
}

func (r *recordingDB) ExecContext(_ context.Context, query string, args ...interface{}) (sql.Result, error) {
	r.query = query
	r.args = args
	return nil, nil
}

func (r *recordingDB) PrepareContext(context.Context, string) (*sql.Stmt, error) { return nil, nil }

func (r *recordingDB) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (r *recordingDB) QueryRowContext(context.Context, string, ...interface{}) *sql.Row { return nil }

func TestAppendChatMessageBuildsSingleMessage(t *testing.T) {
	db := &recordingDB{}
	q := New(db)
	id := uuid.New()

	err := q.AppendChatMessage(context.Background(), AppendChatMessageParams{
		UserMessage: "What should I learn first?",
		AiMessage:   "Start with React fundamentals.",
		ID:          id,
	})

	require.NoError(t, err)
	assert.Contains(t, db.query, "current_chat")
	assert.Contains(t, db.query, "updated_at")
	require.Len(t, db.args, 2)

	var msg ChatMessage
	require.NoError(t, json.Unmarshal(db.args[0].([]byte), &msg))
	assert.Equal(t, "What should I learn first?", msg.UserMessage)
	assert.Equal(t, "Start with React fundamentals.", msg.AiMessage)
	assert.False(t, msg.Timestamp.IsZero())
	assert.Equal(t, id, db.args[1])
}
