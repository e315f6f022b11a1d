package note

import (
	"encoding/json"
	"time"
)

type Note struct {
	Id        string    `json:"id" example:"01HZX3M6Q7Y8ZK2W4T5V6B7N8C"`
	Email     string    `json:"email" example:"a@x.com"`
	Title     string    `json:"title" example:"Grocery List"`
	Content   string    `json:"content" example:"milk, eggs"`
	Category  string    `json:"category" example:"home"`
	PhotoLink string    `json:"photoLink" example:"https://img.example.com/1.png"`
	UpdatedAt time.Time `json:"updatedAt" example:"2006-01-02T15:04:05Z"`
	CreatedAt time.Time `json:"createdAt" example:"2006-01-02T15:04:05Z"`
}

type NewNote struct {
	Email     string `json:"email" example:"a@x.com"`
	Title     string `json:"title" example:"Grocery List"`
	Content   string `json:"content" example:"milk, eggs"`
	Category  string `json:"category" example:"home"`
	PhotoLink string `json:"photoLink" example:""`
}

type UpdateNote struct {
	Title     string `json:"title" example:"Grocery List"`
	Content   string `json:"content" example:"milk, eggs, bread"`
	Category  string `json:"category" example:"home"`
	PhotoLink string `json:"photoLink" example:""`
}

type Image struct {
	CardId   string `json:"cardId" example:"01HZX3M6Q7Y8ZK2W4T5V6B7N8C"`
	ImageUrl string `json:"imageUrl" example:"https://img.example.com/1.png"`
}

type InsertResult struct {
	Acknowledged bool   `json:"acknowledged" example:"true"`
	InsertedId   string `json:"insertedId" example:"01HZX3M6Q7Y8ZK2W4T5V6B7N8C"`
}

type UpdateResult struct {
	Acknowledged  bool   `json:"acknowledged" example:"true"`
	MatchedCount  int64  `json:"matchedCount" example:"1"`
	ModifiedCount int64  `json:"modifiedCount" example:"1"`
	UpsertedId    string `json:"upsertedId,omitempty" example:""`
	UpsertedCount int64  `json:"upsertedCount" example:"0"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged" example:"true"`
	DeletedCount int64 `json:"deletedCount" example:"1"`
}

// Event is a note operation received through messaging
type Event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}
