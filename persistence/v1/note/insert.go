package note

import (
	"context"
	"fmt"
	"github.com/oklog/ulid/v2"
	"time"
)

func (s Store) Insert(ctx context.Context, newN NewNote) (InsertResult, error) {
	id := ulid.Make().String()
	n := time.Now().UTC()

	dbCtx, dbCancel := context.WithTimeout(ctx, s.dbTimeout)
	defer dbCancel()
	stmt, err := s.db.PrepareContext(dbCtx, "INSERT INTO notes ("+columns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return InsertResult{}, fmt.Errorf("failed to prepare insert stmt: %w", err)
	}
	defer stmt.Close()
	_, err = stmt.ExecContext(dbCtx, id, newN.Email, newN.Title, newN.Content, newN.Category, newN.PhotoLink, n, n)
	if err != nil {
		return InsertResult{}, fmt.Errorf("failed to exec insert stmt: %w", err)
	}
	return InsertResult{Acknowledged: true, InsertedId: id}, nil
}
