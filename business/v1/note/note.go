package note

import (
	"context"
	"errors"
	"github.com/oklog/ulid/v2"
	"github.com/ribgsilva/notes-server/persistence/v1/note"
)

var (
	// ErrInvalidID is returned when an id is not in the format the store generates
	ErrInvalidID = errors.New("invalid id")
	// ErrInvalidData is returned when a required field is missing
	ErrInvalidData = errors.New("invalid data")
	// ErrNotFound is returned when a note looked up by id does not exist
	ErrNotFound = errors.New("notes not found")
)

// Core holds the note operations exposed to the apps.
type Core struct {
	store note.Store
}

func NewCore(store note.Store) Core {
	return Core{store: store}
}

func validID(id string) error {
	if _, err := ulid.ParseStrict(id); err != nil {
		return ErrInvalidID
	}
	return nil
}

func notes(found []note.Note) []Note {
	out := make([]Note, len(found))
	for i, n := range found {
		out[i] = Note(n)
	}
	return out
}

func (c Core) Create(ctx context.Context, newN NewNote) (InsertResult, error) {
	res, err := c.store.Insert(ctx, note.NewNote(newN))
	if err != nil {
		return InsertResult{}, err
	}
	return InsertResult(res), nil
}

func (c Core) Find(ctx context.Context, id string) (Note, error) {
	if err := validID(id); err != nil {
		return Note{}, err
	}
	find, err := c.store.Find(ctx, id)
	if err != nil {
		return Note{}, err
	}
	if find.Id == "" {
		return Note{}, ErrNotFound
	}
	return Note(find), nil
}

func (c Core) QueryByEmail(ctx context.Context, email string) ([]Note, error) {
	found, err := c.store.QueryByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return notes(found), nil
}

// Search is a case-insensitive substring match on title or content, limited to the notes of email.
func (c Core) Search(ctx context.Context, email, term string) ([]Note, error) {
	found, err := c.store.Search(ctx, email, term)
	if err != nil {
		return nil, err
	}
	return notes(found), nil
}

// SearchAll is a case-insensitive substring match on title or category across all users.
func (c Core) SearchAll(ctx context.Context, term string) ([]Note, error) {
	found, err := c.store.SearchAll(ctx, term)
	if err != nil {
		return nil, err
	}
	return notes(found), nil
}

func (c Core) Update(ctx context.Context, id string, up UpdateNote) (UpdateResult, error) {
	if err := validID(id); err != nil {
		return UpdateResult{}, err
	}
	res, err := c.store.Update(ctx, id, note.UpdateNote(up))
	if err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult(res), nil
}

func (c Core) UpdateImage(ctx context.Context, img Image) (UpdateResult, error) {
	if img.CardId == "" || img.ImageUrl == "" {
		return UpdateResult{}, ErrInvalidData
	}
	if err := validID(img.CardId); err != nil {
		return UpdateResult{}, err
	}
	res, err := c.store.UpdatePhoto(ctx, img.CardId, img.ImageUrl)
	if err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult(res), nil
}

func (c Core) Delete(ctx context.Context, id string) (DeleteResult, error) {
	if err := validID(id); err != nil {
		return DeleteResult{}, err
	}
	res, err := c.store.Delete(ctx, id)
	if err != nil {
		return DeleteResult{}, err
	}
	return DeleteResult(res), nil
}
