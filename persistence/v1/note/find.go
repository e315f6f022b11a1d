package note

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/go-redis/redis/v8"
)

// Find looks the note up in the cache first. A missing note is returned with an empty Id.
func (s Store) Find(ctx context.Context, id string) (Note, error) {
	key := fmt.Sprintf(noteKey, id)

	tcCtx, tcCancel := context.WithTimeout(ctx, s.cacheTimeout)
	defer tcCancel()
	get, err := s.cache.Get(tcCtx, key).Result()
	if err != nil && err != redis.Nil {
		s.log.Error("failure to get notes ", id, " from cache: ", err.Error())
	}
	if get != "" {
		var note Note
		if err := json.Unmarshal([]byte(get), &note); err != nil {
			s.log.Errorf("error parsing cached response for key %s: %s", key, err)
		} else {
			return note, nil
		}
	}

	return s.fill(ctx, id, s.read)
}

// fill loads the note with read and caches it. The version key of the note is watched
// during the load, so a note written in between is left out of the cache.
func (s Store) fill(ctx context.Context, id string, read func(context.Context, string) (Note, error)) (Note, error) {
	key := fmt.Sprintf(noteKey, id)

	var (
		note    Note
		readErr error
		loaded  bool
	)
	wCtx, wCancel := context.WithTimeout(ctx, 2*s.cacheTimeout+s.dbTimeout)
	defer wCancel()
	err := s.cache.Watch(wCtx, func(tx *redis.Tx) error {
		note, readErr = read(ctx, id)
		loaded = true
		if readErr != nil || note.Id == "" {
			return nil
		}

		data, err := json.Marshal(note)
		if err != nil {
			return fmt.Errorf("error parsing data to cache: %w", err)
		}
		_, err = tx.TxPipelined(wCtx, func(pipe redis.Pipeliner) error {
			pipe.Set(wCtx, key, string(data), s.cacheTTL)
			return nil
		})
		return err
	}, fmt.Sprintf(versionKey, id))

	switch {
	case errors.Is(err, redis.TxFailedErr):
		s.log.Infof("notes %s changed while loading, skipping cache", id)
	case err != nil:
		s.log.Error("failure to set notes ", id, " into cache: ", err.Error())
	}

	// the cache was unreachable before the load started
	if !loaded {
		return read(ctx, id)
	}
	return note, readErr
}

func (s Store) read(ctx context.Context, id string) (Note, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.dbTimeout)
	defer dbCancel()
	stmt, err := s.db.PrepareContext(dbCtx, "SELECT "+columns+" FROM notes WHERE id = ?")
	if err != nil {
		return Note{}, fmt.Errorf("failed to prepare find stmt: %w", err)
	}
	defer stmt.Close()

	var note Note
	err = stmt.QueryRowContext(dbCtx, id).
		Scan(&note.Id, &note.Email, &note.Title, &note.Content, &note.Category, &note.PhotoLink, &note.CreatedAt, &note.UpdatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return Note{}, nil
	case err != nil:
		return Note{}, fmt.Errorf("failed to query find stmt: %w", err)
	}
	return note, nil
}
