package service

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Madhacks12/drinktrack/internal/model"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong
	// password; the distinction is deliberately not surfaced.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrEmailExists        = errors.New("email already registered")
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register adds a user to the registered-user ledger. Passwords are
// stored as bcrypt hashes, never in plaintext.
func Register(db *sql.DB, email, name, password string) error {
	email = normalizeEmail(email)
	if email == "" {
		return fmt.Errorf("email is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if len(password) < 8 {
		return ErrWeakPassword
	}

	var exists int
	err := db.QueryRow(`SELECT 1 FROM users WHERE email = ?`, email).Scan(&exists)
	if err == nil {
		return ErrEmailExists
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("check registered email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if _, err := db.Exec(`INSERT INTO users(email, name, password_hash) VALUES(?, ?, ?)`, email, name, string(hash)); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// Authenticate verifies credentials against the ledger and returns the
// matching user.
func Authenticate(db *sql.DB, email, password string) (*model.User, error) {
	email = normalizeEmail(email)

	var u model.User
	var hash string
	err := db.QueryRow(`SELECT email, name, password_hash FROM users WHERE email = ?`, email).Scan(&u.Email, &u.Name, &hash)
	if err == sql.ErrNoRows {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("look up user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &u, nil
}

// RegisteredUserCount reports the ledger size.
func RegisteredUserCount(db *sql.DB) (int, error) {
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count registered users: %w", err)
	}
	return n, nil
}
