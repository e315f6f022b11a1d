package user_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ribgsilva/notes-server/business/v1/user"
	puser "github.com/ribgsilva/notes-server/persistence/v1/user"
	"github.com/ribgsilva/notes-server/platform/dbtest"
)

func TestParse(t *testing.T) {
	u, err := user.Parse(map[string]any{"email": "a@x.com", "name": "A"})
	if err != nil {
		t.Fatalf("Test Parse: %s", err)
	}
	if u.Email != "a@x.com" || u.Profile["name"] != "A" {
		t.Fatalf("Test Parse: Should split email and profile: %+v", u)
	}
	if _, ok := u.Profile["email"]; ok {
		t.Fatalf("Test Parse: Should not keep the email in the profile: %+v", u)
	}

	if _, err := user.Parse(map[string]any{"email": 10.0}); !errors.Is(err, user.ErrInvalidEmail) {
		t.Fatalf("Test Parse: Should reject a non string email: %v", err)
	}
}

func TestRegisterTwice(t *testing.T) {
	env := dbtest.New(t)
	core := user.NewCore(puser.NewStore(env.Res, env.Cfg))
	ctx := context.Background()

	first, err := core.Register(ctx, user.NewUser{Email: "a@x.com", Profile: map[string]any{"name": "A"}})
	if err != nil {
		t.Fatalf("Test Register: %s", err)
	}
	if first.Exists || first.Result.InsertedId == "" {
		t.Fatalf("Test Register: Should insert the first time: %+v", first)
	}

	second, err := core.Register(ctx, user.NewUser{Email: "a@x.com"})
	if err != nil {
		t.Fatalf("Test Register: %s", err)
	}
	if !second.Exists {
		t.Fatalf("Test Register: Should report the existing user: %+v", second)
	}

	var count int
	if err := env.Res.Database.QueryRow("SELECT COUNT(*) FROM users WHERE email = ?", "a@x.com").Scan(&count); err != nil {
		t.Fatalf("Test Register: %s", err)
	}
	if count != 1 {
		t.Fatalf("Test Register: Should have one user, got %d", count)
	}

	found, err := puser.NewStore(env.Res, env.Cfg).FindByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("Test Register: %s", err)
	}
	if found.Profile["name"] != "A" {
		t.Fatalf("Test Register: Should keep the profile fields: %+v", found)
	}
}
