package user

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/oklog/ulid/v2"
	"github.com/ribgsilva/notes-server/sys"
	"time"
)

// Store reads and writes users. Email uniqueness is not enforced here.
type Store struct {
	db        *sql.DB
	dbTimeout time.Duration
}

func NewStore(res sys.Resources, cfg sys.Config) Store {
	return Store{
		db:        res.Database,
		dbTimeout: cfg.Database.OperationTimeout,
	}
}

// FindByEmail returns the first user with the email. A missing user is returned with an empty Id.
func (s Store) FindByEmail(ctx context.Context, email string) (User, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.dbTimeout)
	defer dbCancel()

	var (
		u       User
		profile string
	)
	err := s.db.QueryRowContext(dbCtx, "SELECT id, email, profile, createdAt FROM users WHERE email = ? ORDER BY id LIMIT 1", email).
		Scan(&u.Id, &u.Email, &profile, &u.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return User{}, nil
	case err != nil:
		return User{}, fmt.Errorf("failed to query find user stmt: %w", err)
	}

	if err := json.Unmarshal([]byte(profile), &u.Profile); err != nil {
		return User{}, fmt.Errorf("error parsing user profile: %w", err)
	}
	return u, nil
}

func (s Store) Insert(ctx context.Context, newU NewUser) (InsertResult, error) {
	profile := newU.Profile
	if profile == nil {
		profile = map[string]any{}
	}
	data, err := json.Marshal(profile)
	if err != nil {
		return InsertResult{}, fmt.Errorf("error parsing user profile: %w", err)
	}

	id := ulid.Make().String()

	dbCtx, dbCancel := context.WithTimeout(ctx, s.dbTimeout)
	defer dbCancel()
	_, err = s.db.ExecContext(dbCtx, "INSERT INTO users (id, email, profile, createdAt) VALUES (?, ?, ?, ?)",
		id, newU.Email, string(data), time.Now().UTC())
	if err != nil {
		return InsertResult{}, fmt.Errorf("failed to exec insert user stmt: %w", err)
	}
	return InsertResult{Acknowledged: true, InsertedId: id}, nil
}
