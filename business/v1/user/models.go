package user

type NewUser struct {
	Email   string
	Profile map[string]any
}

type InsertResult struct {
	Acknowledged bool   `json:"acknowledged" example:"true"`
	InsertedId   string `json:"insertedId" example:"01HZX3M6Q7Y8ZK2W4T5V6B7N8C"`
}

// Registration tells whether the email was already registered, Result is only set when it was not.
type Registration struct {
	Exists bool
	Result InsertResult
}
