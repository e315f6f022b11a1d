package tests

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ribgsilva/notes-server/app/messaging/consumers/v1/notes"
	"github.com/ribgsilva/notes-server/business/v1/note"
	pnote "github.com/ribgsilva/notes-server/persistence/v1/note"
	"github.com/ribgsilva/notes-server/platform/dbtest"
	"gocloud.dev/pubsub"
	"gocloud.dev/pubsub/mempubsub"
)

type NoteTests struct {
	topic *pubsub.Topic
	core  note.Core
}

func TestNote(t *testing.T) {
	// =======================================================================================================
	// Setup resources
	env := dbtest.New(t)
	core := note.NewCore(pnote.NewStore(env.Res, env.Cfg))

	// =======================================================================================================
	// Messaging configuration

	topic := mempubsub.NewTopic()
	defer func() {
		_ = topic.Shutdown(context.Background())
	}()
	subscription := mempubsub.NewSubscription(topic, 1*time.Second)

	defer func() {
		stdCtx, stdCancel := context.WithTimeout(context.Background(), env.Cfg.Messaging.ShutdownTimeout)
		defer stdCancel()

		_ = subscription.Shutdown(stdCtx)
	}()

	withCancel, cancelFunc := context.WithCancel(context.Background())
	consumer := notes.Consumer{Log: env.Res.Log, Core: core}

	done := make(chan error, 1)
	go func() {
		done <- consumer.Consume(withCancel, subscription, env.Cfg.Messaging.MaxWorkers)
	}()

	// the consumer must be stopped before the test logger goes away
	defer func() {
		cancelFunc()
		select {
		case err := <-done:
			if err != nil {
				t.Errorf("listener error: %s", err)
			}
		case <-time.After(10 * time.Second):
			t.Errorf("listener did not stop")
		}
	}()

	// =======================================================================================================
	// Tun tests

	noteTests := NoteTests{topic: topic, core: core}

	noteTests.testCrud(t)
	noteTests.testUnknownEvent(t)
}

func (nt *NoteTests) send(t *testing.T, typ string, data any) {
	t.Helper()
	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("failed to parse event data: %s", err)
	}
	body, err := json.Marshal(note.Event{Type: typ, Data: raw})
	if err != nil {
		t.Fatalf("failed to parse event: %s", err)
	}
	if err := nt.topic.Send(context.Background(), &pubsub.Message{Body: body}); err != nil {
		t.Fatal("failed to post message to topic: ", err)
	}
}

// waitFor polls the notes of email until check accepts them.
func (nt *NoteTests) waitFor(t *testing.T, email string, check func([]note.Note) bool) []note.Note {
	t.Helper()
	deadline := time.Now().Add(10 * time.Second)
	for {
		found, err := nt.core.QueryByEmail(context.Background(), email)
		if err != nil {
			t.Fatalf("failed to query notes: %s", err)
		}
		if check(found) {
			return found
		}
		if time.Now().After(deadline) {
			t.Fatalf("notes of %s never reached the expected state: %+v", email, found)
		}
		time.Sleep(50 * time.Millisecond)
	}
}

func (nt *NoteTests) testCrud(t *testing.T) {
	nt.send(t, notes.Create, note.NewNote{Email: "m@x.com", Title: "other", Content: "other text"})
	found := nt.waitFor(t, "m@x.com", func(n []note.Note) bool { return len(n) == 1 })
	if found[0].Title != "other" || found[0].Content != "other text" {
		t.Fatalf("Test testCrud: Should have created the note: %+v", found)
	}
	id := found[0].Id

	nt.send(t, notes.Update, map[string]string{"id": id, "title": "changed", "content": "other text"})
	nt.waitFor(t, "m@x.com", func(n []note.Note) bool { return len(n) == 1 && n[0].Title == "changed" })

	nt.send(t, notes.Image, note.Image{CardId: id, ImageUrl: "https://img/1.png"})
	nt.waitFor(t, "m@x.com", func(n []note.Note) bool { return len(n) == 1 && n[0].PhotoLink == "https://img/1.png" })

	nt.send(t, notes.Delete, map[string]string{"id": id})
	nt.waitFor(t, "m@x.com", func(n []note.Note) bool { return len(n) == 0 })
}

func (nt *NoteTests) testUnknownEvent(t *testing.T) {
	// an unknown event is acked and skipped, the next one is still applied
	nt.send(t, "archive", map[string]string{"id": "x"})
	nt.send(t, notes.Create, note.NewNote{Email: "u@x.com", Title: "after"})
	nt.waitFor(t, "u@x.com", func(n []note.Note) bool { return len(n) == 1 })
}
