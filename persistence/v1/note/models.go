package note

import "time"

const noteKey = "notes.%s"

// versionKey is bumped on every write of the note, a read that started before the bump is not cached.
const versionKey = "notes.%s.version"

const columns = "id, email, title, content, category, photoLink, createdAt, updatedAt"

type Note struct {
	Id        string
	Email     string
	Title     string
	Content   string
	Category  string
	PhotoLink string
	UpdatedAt time.Time
	CreatedAt time.Time
}

type NewNote struct {
	Email     string
	Title     string
	Content   string
	Category  string
	PhotoLink string
}

type UpdateNote struct {
	Title     string
	Content   string
	Category  string
	PhotoLink string
}

type InsertResult struct {
	Acknowledged bool
	InsertedId   string
}

type UpdateResult struct {
	Acknowledged  bool
	MatchedCount  int64
	ModifiedCount int64
	UpsertedId    string
	UpsertedCount int64
}

type DeleteResult struct {
	Acknowledged bool
	DeletedCount int64
}
