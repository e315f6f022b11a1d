package user

import "time"

type User struct {
	Id        string
	Email     string
	Profile   map[string]any
	CreatedAt time.Time
}

type NewUser struct {
	Email   string
	Profile map[string]any
}

type InsertResult struct {
	Acknowledged bool
	InsertedId   string
}
