package note

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/notes-server/sys"
	"go.uber.org/zap"
	"time"
)

// Store reads and writes notes in the database, caching single notes in redis.
type Store struct {
	log   *zap.SugaredLogger
	db    *sql.DB
	cache *redis.Client

	dbTimeout    time.Duration
	cacheTimeout time.Duration
	cacheTTL     time.Duration
}

func NewStore(res sys.Resources, cfg sys.Config) Store {
	return Store{
		log:          res.Log,
		db:           res.Database,
		cache:        res.Cache,
		dbTimeout:    cfg.Database.OperationTimeout,
		cacheTimeout: cfg.Cache.OperationTimeout,
		cacheTTL:     cfg.Cache.CacheTTL,
	}
}

func (s Store) evict(ctx context.Context, id string) {
	key := fmt.Sprintf(noteKey, id)
	version := fmt.Sprintf(versionKey, id)

	tcCtx, tcCancel := context.WithTimeout(ctx, s.cacheTimeout)
	defer tcCancel()
	_, err := s.cache.TxPipelined(tcCtx, func(pipe redis.Pipeliner) error {
		pipe.Incr(tcCtx, version)
		pipe.Expire(tcCtx, version, s.cacheTTL)
		pipe.Del(tcCtx, key)
		return nil
	})
	if err != nil {
		s.log.Error("failure to evict notes ", id, " from cache: ", err.Error())
	}
}

func scan(rows *sql.Rows) ([]Note, error) {
	notes := []Note{}
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.Id, &n.Email, &n.Title, &n.Content, &n.Category, &n.PhotoLink, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error parsing db data: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading db data: %w", err)
	}
	return notes, nil
}
