package note

import (
	"context"
	"fmt"
	"time"
)

// Update replaces the editable fields of the note. When no note has the id, a new
// note is created with that id and only those fields.
func (s Store) Update(ctx context.Context, id string, up UpdateNote) (UpdateResult, error) {
	defer s.evict(ctx, id)
	n := time.Now().UTC()

	dbCtx, dbCancel := context.WithTimeout(ctx, s.dbTimeout)
	defer dbCancel()
	res, err := s.db.ExecContext(dbCtx,
		"UPDATE notes SET title = ?, content = ?, category = ?, photoLink = ?, updatedAt = ? WHERE id = ?",
		up.Title, up.Content, up.Category, up.PhotoLink, n, id)
	if err != nil {
		return UpdateResult{}, fmt.Errorf("failed to exec update stmt: %w", err)
	}
	matched, err := res.RowsAffected()
	if err != nil {
		return UpdateResult{}, fmt.Errorf("failed to read update result: %w", err)
	}
	if matched > 0 {
		return UpdateResult{Acknowledged: true, MatchedCount: matched, ModifiedCount: matched}, nil
	}

	// not atomic with the update above, a concurrent upsert of the same id fails on the primary key
	_, err = s.db.ExecContext(dbCtx,
		"INSERT INTO notes ("+columns+") VALUES (?, '', ?, ?, ?, ?, ?, ?)",
		id, up.Title, up.Content, up.Category, up.PhotoLink, n, n)
	if err != nil {
		return UpdateResult{}, fmt.Errorf("failed to exec upsert stmt: %w", err)
	}
	return UpdateResult{Acknowledged: true, UpsertedId: id, UpsertedCount: 1}, nil
}

// UpdatePhoto sets only the photo link, missing notes are left alone.
func (s Store) UpdatePhoto(ctx context.Context, id, link string) (UpdateResult, error) {
	defer s.evict(ctx, id)

	dbCtx, dbCancel := context.WithTimeout(ctx, s.dbTimeout)
	defer dbCancel()
	res, err := s.db.ExecContext(dbCtx,
		"UPDATE notes SET photoLink = ?, updatedAt = ? WHERE id = ?",
		link, time.Now().UTC(), id)
	if err != nil {
		return UpdateResult{}, fmt.Errorf("failed to exec update photo stmt: %w", err)
	}
	matched, err := res.RowsAffected()
	if err != nil {
		return UpdateResult{}, fmt.Errorf("failed to read update photo result: %w", err)
	}
	return UpdateResult{Acknowledged: true, MatchedCount: matched, ModifiedCount: matched}, nil
}
