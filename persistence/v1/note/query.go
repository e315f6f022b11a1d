package note

import (
	"context"
	"fmt"
	"strings"
)

const likeEscape = "!"

var likeReplacer = strings.NewReplacer(likeEscape, likeEscape+likeEscape, "%", likeEscape+"%", "_", likeEscape+"_")

// likePattern turns a search term into a case-insensitive substring pattern,
// matched against LOWER(column) with ESCAPE '!'.
func likePattern(term string) string {
	return "%" + likeReplacer.Replace(strings.ToLower(term)) + "%"
}

func (s Store) QueryByEmail(ctx context.Context, email string) ([]Note, error) {
	return s.query(ctx, "SELECT "+columns+" FROM notes WHERE email = ? ORDER BY id", email)
}

// Search matches the term against title or content of the notes owned by email.
func (s Store) Search(ctx context.Context, email, term string) ([]Note, error) {
	p := likePattern(term)
	return s.query(ctx,
		"SELECT "+columns+" FROM notes WHERE email = ? AND "+
			"(LOWER(title) LIKE ? ESCAPE '"+likeEscape+"' OR LOWER(content) LIKE ? ESCAPE '"+likeEscape+"') ORDER BY id",
		email, p, p)
}

// SearchAll matches the term against title or category of every note, whoever owns it.
func (s Store) SearchAll(ctx context.Context, term string) ([]Note, error) {
	p := likePattern(term)
	return s.query(ctx,
		"SELECT "+columns+" FROM notes WHERE "+
			"LOWER(title) LIKE ? ESCAPE '"+likeEscape+"' OR LOWER(category) LIKE ? ESCAPE '"+likeEscape+"' ORDER BY id",
		p, p)
}

func (s Store) query(ctx context.Context, q string, args ...any) ([]Note, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.dbTimeout)
	defer dbCancel()
	rows, err := s.db.QueryContext(dbCtx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()
	return scan(rows)
}
