// Package messaging serves vehicle lookups over NATS request/reply.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"vehicle-lookup-api/internal/model"
	"vehicle-lookup-api/internal/service"
)

// Responder answers SearchRequest messages with SearchResponse replies.
// Each message is handled on its own; nothing is shared between requests
// except the read-only catalog.
type Responder struct {
	nc      *nats.Conn
	svc     *service.LookupService
	logger  *slog.Logger
	subject string
	queue   string
	sub     *nats.Subscription
}

func NewResponder(nc *nats.Conn, svc *service.LookupService, logger *slog.Logger, subject, queue string) *Responder {
	return &Responder{
		nc:      nc,
		svc:     svc,
		logger:  logger,
		subject: subject,
		queue:   queue,
	}
}

// Start subscribes to the lookup subject in the queue group.
func (r *Responder) Start() error {
	sub, err := r.nc.QueueSubscribe(r.subject, r.queue, r.handle)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", r.subject, err)
	}
	r.sub = sub
	r.logger.Info("nats responder started", "subject", r.subject, "queue", r.queue)
	return nil
}

// Stop drains the subscription so in-flight requests still get replies.
func (r *Responder) Stop() error {
	if r.sub == nil {
		return nil
	}
	return r.sub.Drain()
}

func (r *Responder) handle(msg *nats.Msg) {
	var req model.SearchRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		r.reply(msg, model.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid JSON request body",
		})
		return
	}

	r.reply(msg, r.svc.Search(context.Background(), req.Query))
}

func (r *Responder) reply(msg *nats.Msg, v any) {
	if msg.Reply == "" {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		r.logger.Error("failed to encode nats reply", "error", err)
		return
	}
	if err := msg.Respond(data); err != nil {
		r.logger.Warn("failed to send nats reply", "subject", msg.Subject, "error", err)
	}
}

// Lookup sends a query to a responder and decodes the reply.
func Lookup(ctx context.Context, nc *nats.Conn, subject, query string) (*model.SearchResponse, error) {
	data, err := json.Marshal(model.SearchRequest{Query: query})
	if err != nil {
		return nil, err
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
	}

	msg, err := nc.RequestWithContext(ctx, subject, data)
	if err != nil {
		return nil, fmt.Errorf("nats request %s: %w", subject, err)
	}

	var resp model.SearchResponse
	if err := json.Unmarshal(msg.Data, &resp); err != nil {
		return nil, fmt.Errorf("decode nats reply: %w", err)
	}
	return &resp, nil
}
