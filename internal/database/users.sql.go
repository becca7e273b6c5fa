package database

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

const userColumns = `id, name, email, password_hash, target_role, resume_data, resume_object_key, resume_filename, current_chat, chat_archive, created_at, updated_at`

func scanUser(row interface{ Scan(...interface{}) error }) (User, error) {
	var i User
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.PasswordHash,
		&i.TargetRole,
		&i.ResumeData,
		&i.ResumeObjectKey,
		&i.ResumeFilename,
		&i.CurrentChat,
		&i.ChatArchive,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createUser = `-- name: CreateUser :one
INSERT INTO users (id, name, email, password_hash)
VALUES ($1, $2, $3, $4)
RETURNING id
`

type CreateUserParams struct {
	Name         string
	Email        string
	PasswordHash string
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := q.db.QueryRowContext(ctx, createUser, uuid.New(), arg.Name, arg.Email, arg.PasswordHash).Scan(&id)
	return id, err
}

const getUserByEmail = `-- name: GetUserByEmail :one
SELECT ` + userColumns + ` FROM users WHERE email=$1
`

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (User, error) {
	return scanUser(q.db.QueryRowContext(ctx, getUserByEmail, email))
}

const getUserByID = `-- name: GetUserByID :one
SELECT ` + userColumns + ` FROM users WHERE id=$1
`

func (q *Queries) GetUserByID(ctx context.Context, id uuid.UUID) (User, error) {
	return scanUser(q.db.QueryRowContext(ctx, getUserByID, id))
}

const updateTargetRole = `-- name: UpdateTargetRole :exec
UPDATE users
SET target_role=$1,
    updated_at=CURRENT_TIMESTAMP
WHERE id=$2
`

type UpdateTargetRoleParams struct {
	TargetRole string
	ID         uuid.UUID
}

func (q *Queries) UpdateTargetRole(ctx context.Context, arg UpdateTargetRoleParams) error {
	_, err := q.db.ExecContext(ctx, updateTargetRole, arg.TargetRole, arg.ID)
	return err
}

const updateResumeData = `-- name: UpdateResumeData :exec
UPDATE users
SET resume_data=$1,
    updated_at=CURRENT_TIMESTAMP
WHERE id=$2
`

type UpdateResumeDataParams struct {
	ResumeData json.RawMessage
	ID         uuid.UUID
}

func (q *Queries) UpdateResumeData(ctx context.Context, arg UpdateResumeDataParams) error {
	_, err := q.db.ExecContext(ctx, updateResumeData, arg.ResumeData, arg.ID)
	return err
}

const setResumeObject = `-- name: SetResumeObject :exec
UPDATE users
SET resume_object_key=$1,
    resume_filename=$2,
    updated_at=CURRENT_TIMESTAMP
WHERE id=$3
`

type SetResumeObjectParams struct {
	ResumeObjectKey string
	ResumeFilename  string
	ID              uuid.UUID
}

func (q *Queries) SetResumeObject(ctx context.Context, arg SetResumeObjectParams) error {
	_, err := q.db.ExecContext(ctx, setResumeObject, arg.ResumeObjectKey, arg.ResumeFilename, arg.ID)
	return err
}

const getResumeObject = `-- name: GetResumeObject :one
SELECT resume_object_key, resume_filename FROM users WHERE id=$1
`

type GetResumeObjectRow struct {
	ResumeObjectKey string
	ResumeFilename  string
}

func (q *Queries) GetResumeObject(ctx context.Context, id uuid.UUID) (GetResumeObjectRow, error) {
	var i GetResumeObjectRow
	err := q.db.QueryRowContext(ctx, getResumeObject, id).Scan(&i.ResumeObjectKey, &i.ResumeFilename)
	return i, err
}

const listUsersWithNonEmptyRole = `-- name: ListUsersWithNonEmptyRole :many
SELECT ` + userColumns + ` FROM users WHERE target_role <> ''
`

func (q *Queries) ListUsersWithNonEmptyRole(ctx context.Context) ([]User, error) {
	rows, err := q.db.QueryContext(ctx, listUsersWithNonEmptyRole)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []User
	for rows.Next() {
		i, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
