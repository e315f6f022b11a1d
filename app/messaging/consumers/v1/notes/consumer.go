package notes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/ribgsilva/notes-server/business/v1/note"
	"go.uber.org/zap"
	"gocloud.dev/pubsub"
)

// Event types understood by the consumer
const (
	Create = "create"
	Update = "update"
	Image  = "image"
	Delete = "delete"
)

type updateData struct {
	Id string `json:"id"`
	note.UpdateNote
}

type deleteData struct {
	Id string `json:"id"`
}

// Consumer applies note events received from a subscription
type Consumer struct {
	Log   *zap.SugaredLogger
	Core  note.Core
	NrApp *newrelic.Application
}

// Consume receives until ctx is done, handling up to maxWorkers messages at once.
// It returns after every message in flight was handled.
func (c Consumer) Consume(ctx context.Context, sub *pubsub.Subscription, maxWorkers int) error {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	workers := make(chan struct{}, maxWorkers)

	var err error
	for {
		var message *pubsub.Message
		message, err = sub.Receive(ctx)
		if err != nil {
			break
		}

		workers <- struct{}{}
		go func(m *pubsub.Message) {
			defer func() { <-workers }()
			defer m.Ack()

			txn := c.NrApp.StartTransaction("notes-event")
			defer txn.End()

			// in flight messages finish even when ctx is cancelled
			if err := c.Handle(newrelic.NewContext(context.Background(), txn), m.Body); err != nil {
				txn.NoticeError(err)
				c.Log.Errorw("message", "body", string(m.Body), "ERROR", err)
			}
		}(message)
	}

	for w := 0; w < maxWorkers; w++ {
		workers <- struct{}{}
	}

	if ctx.Err() != nil || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Handle applies a single event.
func (c Consumer) Handle(ctx context.Context, body []byte) error {
	c.Log.Infof("message received: %s", string(body))

	var e note.Event
	if err := json.Unmarshal(body, &e); err != nil {
		return fmt.Errorf("failed to parse body: %w", err)
	}

	switch e.Type {
	case Create:
		var n note.NewNote
		if err := json.Unmarshal(e.Data, &n); err != nil {
			return fmt.Errorf("failed to parse %s data: %w", e.Type, err)
		}
		res, err := c.Core.Create(ctx, n)
		if err != nil {
			return fmt.Errorf("failed to create note: %w", err)
		}
		c.Log.Infow("message", "type", e.Type, "id", res.InsertedId)
	case Update:
		var d updateData
		if err := json.Unmarshal(e.Data, &d); err != nil {
			return fmt.Errorf("failed to parse %s data: %w", e.Type, err)
		}
		if _, err := c.Core.Update(ctx, d.Id, d.UpdateNote); err != nil {
			return fmt.Errorf("failed to update note %s: %w", d.Id, err)
		}
	case Image:
		var img note.Image
		if err := json.Unmarshal(e.Data, &img); err != nil {
			return fmt.Errorf("failed to parse %s data: %w", e.Type, err)
		}
		if _, err := c.Core.UpdateImage(ctx, img); err != nil {
			return fmt.Errorf("failed to update image of note %s: %w", img.CardId, err)
		}
	case Delete:
		var d deleteData
		if err := json.Unmarshal(e.Data, &d); err != nil {
			return fmt.Errorf("failed to parse %s data: %w", e.Type, err)
		}
		if _, err := c.Core.Delete(ctx, d.Id); err != nil {
			return fmt.Errorf("failed to delete note %s: %w", d.Id, err)
		}
	default:
		return fmt.Errorf("unknown event type: %q", e.Type)
	}
	return nil
}
