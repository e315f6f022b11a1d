package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
	"github.com/ribgsilva/notes-server/app/api/handlers"
	"github.com/ribgsilva/notes-server/business/v1/note"
	"github.com/ribgsilva/notes-server/platform/auth"
	"github.com/ribgsilva/notes-server/platform/dbtest"
	"github.com/ribgsilva/notes-server/platform/web/mid"
)

type NoteTests struct {
	app   http.Handler
	env   dbtest.Env
	auth  *auth.Auth
	token string
}

func newNoteTests(t *testing.T) NoteTests {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// =======================================================================================================
	// Setup resources
	env := dbtest.New(t)

	a, err := auth.New(env.Cfg.Auth.Secret, env.Cfg.Auth.TokenTTL)
	if err != nil {
		t.Fatal(err)
	}

	// =======================================================================================================
	// Setup router
	engine := gin.New()
	engine.Use(mid.RequestID())

	cfg := handlers.Config{Res: env.Res, Cfg: env.Cfg, Auth: a}
	handlers.MapDefaults(engine, cfg)
	handlers.MapApi(engine, cfg)

	token, err := a.Issue(map[string]any{"email": "a@x.com"})
	if err != nil {
		t.Fatal(err)
	}

	return NoteTests{app: engine, env: env, auth: a, token: token}
}

func (nt *NoteTests) do(t *testing.T, method, target string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("could not encode request body: %s", err)
		}
	}
	r := httptest.NewRequest(method, target, &buf)
	r.Header.Set("Content-Type", "application/json")
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	nt.app.ServeHTTP(w, r)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Should be able to unmarshal the response : %v", err)
	}
}

func TestNote(t *testing.T) {
	tests := newNoteTests(t)

	// =======================================================================================================
	// Tun tests

	id := tests.addNote200(t)
	tests.getNote200(t, "/getNote/a@x.com", id, "T")
	tests.getNote200(t, "/api/notes/a@x.com", id, "T")
	tests.getNoteOtherEmail200(t)
	tests.update200(t, id)
	tests.getNote200(t, "/getNote/a@x.com", id, "T2")
	tests.findById200(t, id)
	tests.delete200(t, id)
	tests.getNoteEmpty200(t)
}

func (nt *NoteTests) addNote200(t *testing.T) string {
	w := nt.do(t, http.MethodPost, "/addNote", note.NewNote{
		Email:    "a@x.com",
		Title:    "T",
		Content:  "C",
		Category: "cat",
	}, "")

	if w.Code != http.StatusOK {
		t.Fatalf("Test addNote200: Should receive a status code of 200 for the response : %v", w.Code)
	}
	var resp note.InsertResult
	decode(t, w, &resp)
	if !resp.Acknowledged || resp.InsertedId == "" {
		t.Fatalf("Test addNote200: Should have received an id in the response: %v", resp)
	}
	return resp.InsertedId
}

func (nt *NoteTests) getNote200(t *testing.T, target, id, title string) {
	w := nt.do(t, http.MethodGet, target, nil, nt.token)

	if w.Code != http.StatusOK {
		t.Fatalf("Test getNote200: Should receive a status code of 200 for the response : %v", w.Code)
	}
	var resp []note.Note
	decode(t, w, &resp)
	if len(resp) != 1 {
		t.Fatalf("Test getNote200: Should have received exactly one note: %v", resp)
	}
	if resp[0].Id != id || resp[0].Email != "a@x.com" {
		t.Fatalf("Test getNote200: Should have received note %s of a@x.com: %v", id, resp)
	}
	if resp[0].Title != title {
		t.Fatalf("Test getNote200: Should have received %q as title in the response: %v", title, resp)
	}
}

func (nt *NoteTests) getNoteOtherEmail200(t *testing.T) {
	w := nt.do(t, http.MethodGet, "/getNote/b@x.com", nil, nt.token)

	if w.Code != http.StatusOK {
		t.Fatalf("Test getNoteOtherEmail200: Should receive a status code of 200 for the response : %v", w.Code)
	}
	var resp []note.Note
	decode(t, w, &resp)
	if len(resp) != 0 {
		t.Fatalf("Test getNoteOtherEmail200: Should not receive notes of another email: %v", resp)
	}
}

func (nt *NoteTests) update200(t *testing.T, id string) {
	w := nt.do(t, http.MethodPut, "/update/"+id, note.UpdateNote{
		Title:    "T2",
		Content:  "C",
		Category: "cat",
	}, "")

	if w.Code != http.StatusOK {
		t.Fatalf("Test update200: Should receive a status code of 200 for the response : %v", w.Code)
	}
	var resp note.UpdateResult
	decode(t, w, &resp)
	if resp.MatchedCount != 1 || resp.UpsertedCount != 0 {
		t.Fatalf("Test update200: Should have matched the note: %v", resp)
	}
}

func (nt *NoteTests) findById200(t *testing.T, id string) {
	w := nt.do(t, http.MethodGet, "/v1/notes/"+id, nil, nt.token)

	if w.Code != http.StatusOK {
		t.Fatalf("Test findById200: Should receive a status code of 200 for the response : %v", w.Code)
	}
	var resp note.Note
	decode(t, w, &resp)
	if resp.Id != id || resp.Title != "T2" {
		t.Fatalf("Test findById200: Should have received the updated note: %v", resp)
	}
}

func (nt *NoteTests) delete200(t *testing.T, id string) {
	for i, want := range []int64{1, 0} {
		w := nt.do(t, http.MethodDelete, "/addNoteDelete/"+id, nil, "")

		if w.Code != http.StatusOK {
			t.Fatalf("Test delete200: Should receive a status code of 200 for the response : %v", w.Code)
		}
		var resp note.DeleteResult
		decode(t, w, &resp)
		if resp.DeletedCount != want {
			t.Fatalf("Test delete200: Should have deleted %d notes on call %d: %v", want, i+1, resp)
		}
	}
}

func (nt *NoteTests) getNoteEmpty200(t *testing.T) {
	w := nt.do(t, http.MethodGet, "/getNote/a@x.com", nil, nt.token)

	if w.Code != http.StatusOK {
		t.Fatalf("Test getNoteEmpty200: Should receive a status code of 200 for the response : %v", w.Code)
	}
	if body := bytes.TrimSpace(w.Body.Bytes()); string(body) != "[]" {
		t.Fatalf("Test getNoteEmpty200: Should have received an empty array: %s", body)
	}
}

func TestUpsert(t *testing.T) {
	tests := newNoteTests(t)

	id := ulid.Make().String()
	w := tests.do(t, http.MethodPut, "/update/"+id, note.UpdateNote{Title: "fresh"}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Test upsert: Should receive a status code of 200 for the response : %v", w.Code)
	}
	var resp note.UpdateResult
	decode(t, w, &resp)
	if resp.UpsertedId != id || resp.UpsertedCount != 1 {
		t.Fatalf("Test upsert: Should have upserted the note: %v", resp)
	}

	w = tests.do(t, http.MethodGet, "/v1/notes/"+id, nil, tests.token)
	var found note.Note
	decode(t, w, &found)
	if found.Title != "fresh" || found.Email != "" {
		t.Fatalf("Test upsert: Should have created a note with only the updated fields: %v", found)
	}
}

func TestInvalidId(t *testing.T) {
	tests := newNoteTests(t)

	for _, c := range []struct {
		method, target string
		body           any
		token          string
	}{
		{http.MethodPut, "/update/64b7f0c2e1a2b3c4d5e6f708", note.UpdateNote{Title: "x"}, ""},
		{http.MethodDelete, "/addNoteDelete/nope", nil, ""},
		{http.MethodGet, "/v1/notes/nope", nil, tests.token},
	} {
		w := tests.do(t, c.method, c.target, c.body, c.token)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("Test invalidId: %s %s should receive a status code of 400 for the response : %v", c.method, c.target, w.Code)
		}
	}

	w := tests.do(t, http.MethodGet, "/v1/notes/"+ulid.Make().String(), nil, tests.token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Test invalidId: a missing note should receive a status code of 404 for the response : %v", w.Code)
	}
}

func TestUpdateImage(t *testing.T) {
	tests := newNoteTests(t)
	id := tests.addNote200(t)

	for _, body := range []map[string]string{
		{},
		{"cardId": id},
		{"imageUrl": "https://img/1.png"},
		{"cardId": "not-an-id", "imageUrl": "https://img/1.png"},
	} {
		w := tests.do(t, http.MethodPost, "/cards/updateImage", body, "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("Test updateImage: %v should receive a status code of 400 for the response : %v", body, w.Code)
		}
	}

	w := tests.do(t, http.MethodPost, "/cards/updateImage", map[string]string{"cardId": id, "imageUrl": "https://img/1.png"}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Test updateImage: Should receive a status code of 200 for the response : %v", w.Code)
	}
	var msg map[string]string
	decode(t, w, &msg)
	if msg["message"] != "Image URL updated successfully!" {
		t.Fatalf("Test updateImage: Should have received the success message: %v", msg)
	}

	w = tests.do(t, http.MethodGet, "/v1/notes/"+id, nil, tests.token)
	var found note.Note
	decode(t, w, &found)
	if found.PhotoLink != "https://img/1.png" {
		t.Fatalf("Test updateImage: Should have updated the photo link: %v", found)
	}
}

func TestSearch(t *testing.T) {
	tests := newNoteTests(t)

	for _, n := range []note.NewNote{
		{Email: "a@x.com", Title: "Grocery List", Content: "milk", Category: "home"},
		{Email: "a@x.com", Title: "Work", Content: "grocery budget", Category: "job"},
		{Email: "b@x.com", Title: "grocery run", Content: "bread", Category: "errands"},
	} {
		if w := tests.do(t, http.MethodPost, "/addNote", n, ""); w.Code != http.StatusOK {
			t.Fatalf("Test search: Should be able to add note: %v", w.Code)
		}
	}

	w := tests.do(t, http.MethodGet, "/api/search?userEmail=a@x.com&term=grocery", nil, tests.token)
	if w.Code != http.StatusOK {
		t.Fatalf("Test search: Should receive a status code of 200 for the response : %v", w.Code)
	}
	var scoped []note.Note
	decode(t, w, &scoped)
	if len(scoped) != 2 {
		t.Fatalf("Test search: Should match title or content of a@x.com only: %v", scoped)
	}
	for _, n := range scoped {
		if n.Email != "a@x.com" {
			t.Fatalf("Test search: Should not return notes of other users: %v", scoped)
		}
	}

	w = tests.do(t, http.MethodGet, "/search?query=GROCERY", nil, tests.token)
	if w.Code != http.StatusOK {
		t.Fatalf("Test searchAll: Should receive a status code of 200 for the response : %v", w.Code)
	}
	var all []note.Note
	decode(t, w, &all)
	if len(all) != 2 {
		t.Fatalf("Test searchAll: Should match titles across users and skip content: %v", all)
	}
}

func TestUnauthorized(t *testing.T) {
	tests := newNoteTests(t)
	id := tests.addNote200(t)
	key := "notes." + id

	expiredAuth, err := auth.New(dbtest.Secret, -time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	expired, err := expiredAuth.Issue(map[string]any{"email": "a@x.com"})
	if err != nil {
		t.Fatal(err)
	}
	foreignAuth, err := auth.New("another-secret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	foreign, err := foreignAuth.Issue(map[string]any{"email": "a@x.com"})
	if err != nil {
		t.Fatal(err)
	}

	commands := tests.env.Redis.CommandCount()
	for _, target := range []string{
		"/getNote/a@x.com",
		"/api/notes/a@x.com",
		"/api/search?userEmail=a@x.com&term=x",
		"/search?query=x",
		"/v1/notes/" + ulid.Make().String(),
		"/v1/notes/" + id,
	} {
		for name, token := range map[string]string{"missing": "", "expired": expired, "tampered": foreign} {
			w := tests.do(t, http.MethodGet, target, nil, token)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("Test unauthorized: %s token on %s should receive a status code of 401 for the response : %v", name, target, w.Code)
			}
			var resp map[string]any
			decode(t, w, &resp)
			if resp["message"] != "unauthorized access" || resp["error"] != true {
				t.Fatalf("Test unauthorized: Should have received the unauthorized body: %v", resp)
			}
		}
	}

	// rejected requests never reach the cache
	if n := tests.env.Redis.CommandCount(); n != commands {
		t.Fatalf("Test unauthorized: rejected requests should not touch the cache, %d commands ran", n-commands)
	}
	if tests.env.Redis.Exists(key) {
		t.Fatalf("Test unauthorized: note %s should not be cached by a rejected request", id)
	}

	w := tests.do(t, http.MethodGet, "/v1/notes/"+id, nil, tests.token)
	if w.Code != http.StatusOK {
		t.Fatalf("Test unauthorized: Should receive a status code of 200 for the response : %v", w.Code)
	}
	if !tests.env.Redis.Exists(key) {
		t.Fatalf("Test unauthorized: note %s should be cached by an accepted request", id)
	}
}

func TestToken(t *testing.T) {
	tests := newNoteTests(t)

	w := tests.do(t, http.MethodPost, "/jwt", map[string]string{"email": "z@x.com"}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Test token: Should receive a status code of 200 for the response : %v", w.Code)
	}
	var resp map[string]string
	decode(t, w, &resp)

	claims, err := tests.auth.Verify("Bearer " + resp["token"])
	if err != nil {
		t.Fatalf("Test token: Should have received a valid token: %s", err)
	}
	if claims.Email != "z@x.com" {
		t.Fatalf("Test token: Should have signed the posted email: %v", claims)
	}

	w = tests.do(t, http.MethodGet, "/getNote/z@x.com", nil, resp["token"])
	if w.Code != http.StatusOK {
		t.Fatalf("Test token: Should be able to use the issued token : %v", w.Code)
	}
}

func TestUsers(t *testing.T) {
	tests := newNoteTests(t)

	user := map[string]any{"email": "a@x.com", "name": "A"}

	w := tests.do(t, http.MethodPost, "/users", user, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Test users: Should receive a status code of 200 for the response : %v", w.Code)
	}
	var inserted map[string]any
	decode(t, w, &inserted)
	if inserted["insertedId"] == "" || inserted["insertedId"] == nil {
		t.Fatalf("Test users: Should have received the inserted id: %v", inserted)
	}

	w = tests.do(t, http.MethodPost, "/users", user, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Test users: Should receive a status code of 200 for the response : %v", w.Code)
	}
	var existing map[string]any
	decode(t, w, &existing)
	if existing["message"] != "user already exists" {
		t.Fatalf("Test users: Should have received the existing user notice: %v", existing)
	}

	w = tests.do(t, http.MethodPost, "/users", map[string]any{"email": 42}, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Test users: a non string email should receive a status code of 400 for the response : %v", w.Code)
	}
}

func TestDefaults(t *testing.T) {
	tests := newNoteTests(t)

	w := tests.do(t, http.MethodGet, "/", nil, "")
	if w.Code != http.StatusOK || w.Body.String() != handlers.Liveness {
		t.Fatalf("Test defaults: Should receive the liveness string: %v %s", w.Code, w.Body.String())
	}

	w = tests.do(t, http.MethodGet, "/v1/healthcheck", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Test defaults: Should receive a status code of 200 for the healthcheck : %v", w.Code)
	}
	if w.Header().Get(mid.RequestIDHeader) == "" {
		t.Fatalf("Test defaults: Should have received a request id")
	}
}
