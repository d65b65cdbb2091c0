package model

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

var ErrUserNotFound = errors.New("user not found")

type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const userColumns = `id, username, email, password, created_at, updated_at`

func scanUser(row *sql.Row) (*User, error) {
	var user User
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.Password, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername retrieves a user by username or email.
func GetUserByUsername(ctx context.Context, db *sql.DB, username string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = ? OR email = ?`
	return scanUser(db.QueryRowContext(ctx, query, username, username))
}

func GetUserByID(ctx context.Context, db *sql.DB, userID int64) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	return scanUser(db.QueryRowContext(ctx, query, userID))
}

// EnsureUser inserts the single application user if no row with that id exists.
// hashPassword is only called when the row has to be created.
func EnsureUser(ctx context.Context, db *sql.DB, userID int64, username, email, password string, hashPassword func(string) (string, error)) (*User, error) {
	user, err := GetUserByID(ctx, db, userID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("looking up user %d: %w", userID, err)
	}

	hashed, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password for user %d: %w", userID, err)
	}
	_, err = db.ExecContext(ctx, `INSERT INTO users (id, username, email, password) VALUES (?, ?, ?, ?)`,
		userID, username, email, hashed)
	if err != nil {
		return nil, fmt.Errorf("creating user %d: %w", userID, err)
	}
	return GetUserByID(ctx, db, userID)
}
