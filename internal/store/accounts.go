package store

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Account is a registered user. PasswordHash is an opaque value the
// client submits pre-hashed; the server only ever compares it for
// equality and never echoes it back.
type Account struct {
	Username     string
	FirstName    string
	LastName     string
	PasswordHash string
	CreatedAt    int64
}

type AccountStore struct {
	db *sql.DB
}

func NewAccountStore(db *sql.DB) *AccountStore {
	return &AccountStore{db: db}
}

// Create inserts a new account. Returns ErrDuplicate if the username is
// already taken; the accounts primary key backs this under concurrent
// signups for the same name.
func (s *AccountStore) Create(ctx context.Context, a Account) error {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	var exists int
	err = conn.QueryRowContext(ctx, `SELECT 1 FROM accounts WHERE username=$1`, a.Username).Scan(&exists)
	if err == nil {
		return ErrDuplicate
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	_, err = conn.ExecContext(ctx,
		`INSERT INTO accounts (username, first_name, last_name, password_hash, created_at)
		 VALUES ($1,$2,$3,$4,$5)`,
		a.Username, a.FirstName, a.LastName, a.PasswordHash, time.Now().Unix())
	return err
}

// GetByUsername returns the account for username, or ErrNotFound.
func (s *AccountStore) GetByUsername(ctx context.Context, username string) (Account, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return Account{}, err
	}
	defer conn.Close()

	var a Account
	row := conn.QueryRowContext(ctx,
		`SELECT username, first_name, last_name, password_hash, created_at
		 FROM accounts WHERE username=$1`, username)
	if err := row.Scan(&a.Username, &a.FirstName, &a.LastName, &a.PasswordHash, &a.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Account{}, ErrNotFound
		}
		return Account{}, err
	}
	return a, nil
}
