package user

import (
	"context"
	"errors"
	"github.com/ribgsilva/notes-server/persistence/v1/user"
)

// ErrInvalidEmail is returned when the email field is present but not a string
var ErrInvalidEmail = errors.New("invalid email")

type Core struct {
	store user.Store
}

func NewCore(store user.Store) Core {
	return Core{store: store}
}

// Parse splits a raw registration body into the email and the remaining profile fields.
func Parse(body map[string]any) (NewUser, error) {
	var email string
	if v, ok := body["email"]; ok && v != nil {
		s, ok := v.(string)
		if !ok {
			return NewUser{}, ErrInvalidEmail
		}
		email = s
	}
	profile := make(map[string]any, len(body))
	for k, v := range body {
		if k == "email" {
			continue
		}
		profile[k] = v
	}
	return NewUser{Email: email, Profile: profile}, nil
}

// Register inserts the user unless one with the same email exists. The check and the
// insert are separate statements, so concurrent registrations of one email can both insert.
func (c Core) Register(ctx context.Context, newU NewUser) (Registration, error) {
	found, err := c.store.FindByEmail(ctx, newU.Email)
	if err != nil {
		return Registration{}, err
	}
	if found.Id != "" {
		return Registration{Exists: true}, nil
	}

	res, err := c.store.Insert(ctx, user.NewUser(newU))
	if err != nil {
		return Registration{}, err
	}
	return Registration{Result: InsertResult(res)}, nil
}
