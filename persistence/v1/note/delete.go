package note

import (
	"context"
	"fmt"
)

func (s Store) Delete(ctx context.Context, id string) (DeleteResult, error) {
	defer s.evict(ctx, id)

	dbCtx, dbCancel := context.WithTimeout(ctx, s.dbTimeout)
	defer dbCancel()
	res, err := s.db.ExecContext(dbCtx, "DELETE FROM notes WHERE id = ?", id)
	if err != nil {
		return DeleteResult{}, fmt.Errorf("failed to exec delete stmt: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return DeleteResult{}, fmt.Errorf("failed to read delete result: %w", err)
	}
	return DeleteResult{Acknowledged: true, DeletedCount: deleted}, nil
}
