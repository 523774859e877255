package ws

import (
	"context"
	"log"
	"strings"
	"time"

	"job-board/internal/domain/chat"
	"job-board/internal/observability/metrics"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type Status string

const (
	// StatusDelivered: stored and pushed to the receiver's connection.
	StatusDelivered Status = "delivered"
	// StatusStored: stored, receiver offline.
	StatusStored   Status = "stored"
	StatusRejected Status = "rejected"
	StatusFailed   Status = "failed"
)

// Rejection reasons reported in Outcome.Reason.
const (
	ReasonMissingSender   = "missing sender"
	ReasonMissingReceiver = "missing receiver"
	ReasonEmptyMessage    = "empty message"
)

const defaultPersistTimeout = 5 * time.Second

type SendInput struct {
	SenderID   string
	ReceiverID string
	Message    string
}

// Outcome reports what happened to a send. Rejected and failed sends emit
// nothing on the socket; the outcome is how callers and tests observe them.
type Outcome struct {
	Status  Status
	Reason  string
	Message chat.Message
	Err     error
}

type emitter interface {
	emit(connID string, frame []byte) bool
}

type Relay struct {
	messages chat.Repository
	presence *Presence
	conns    emitter
	logger   *log.Logger
	tracer   trace.Tracer

	persistTimeout time.Duration
}

func NewRelay(messages chat.Repository, presence *Presence, conns emitter, logger *log.Logger) *Relay {
	if logger == nil {
		logger = log.Default()
	}
	return &Relay{
		messages:       messages,
		presence:       presence,
		conns:          conns,
		logger:         logger,
		tracer:         otel.Tracer("job-board/ws"),
		persistTimeout: defaultPersistTimeout,
	}
}

// Send validates, persists and relays one chat message. fromConnID is the
// sending connection, or empty when the send did not come over a socket; in
// that case no echo is emitted.
func (r *Relay) Send(ctx context.Context, fromConnID string, in SendInput) Outcome {
	ctx, span := r.tracer.Start(ctx, "chat.send")
	defer span.End()

	out := r.send(ctx, fromConnID, in)

	span.SetAttributes(attribute.String("chat.outcome", string(out.Status)))
	if out.Err != nil {
		span.RecordError(out.Err)
		span.SetStatus(codes.Error, out.Reason)
	}
	metrics.ObserveChatMessage(string(out.Status))
	return out
}

func (r *Relay) send(ctx context.Context, fromConnID string, in SendInput) Outcome {
	if reason := validateSend(in); reason != "" {
		r.logger.Printf("WS message rejected | conn=%s reason=%s", fromConnID, reason)
		return Outcome{Status: StatusRejected, Reason: reason}
	}

	pctx, cancel := context.WithTimeout(ctx, r.persistTimeout)
	defer cancel()

	msg, err := r.messages.Create(pctx, chat.Message{
		SenderID:   in.SenderID,
		ReceiverID: in.ReceiverID,
		Message:    in.Message,
	})
	if err != nil {
		r.logger.Printf("WS message persist error | sender=%s receiver=%s error=%v", in.SenderID, in.ReceiverID, err)
		return Outcome{Status: StatusFailed, Reason: "persist failed", Err: err}
	}

	frame, err := encodeEvent(EventReceiveMessage, msg)
	if err != nil {
		r.logger.Printf("WS message encode error | id=%s error=%v", msg.ID, err)
		return Outcome{Status: StatusFailed, Reason: "encode failed", Message: msg, Err: err}
	}

	status := StatusStored
	receiverConnID, online := r.presence.Lookup(in.ReceiverID)
	if online {
		if r.conns.emit(receiverConnID, frame) {
			status = StatusDelivered
		} else {
			r.logger.Printf("WS message undelivered | id=%s receiver=%s conn=%s", msg.ID, in.ReceiverID, receiverConnID)
		}
	}

	if fromConnID != "" && fromConnID != receiverConnID {
		if !r.conns.emit(fromConnID, frame) {
			r.logger.Printf("WS message ack dropped | id=%s conn=%s", msg.ID, fromConnID)
		}
	}

	r.logger.Printf("WS message | id=%s sender=%s receiver=%s status=%s", msg.ID, in.SenderID, in.ReceiverID, status)
	return Outcome{Status: status, Message: msg}
}

// History returns the conversation between a and b, oldest first.
func (r *Relay) History(ctx context.Context, a, b string) ([]chat.Message, error) {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == "" || b == "" {
		return []chat.Message{}, nil
	}
	return r.messages.Conversation(ctx, a, b)
}

func validateSend(in SendInput) string {
	switch {
	case strings.TrimSpace(in.SenderID) == "":
		return ReasonMissingSender
	case strings.TrimSpace(in.ReceiverID) == "":
		return ReasonMissingReceiver
	case strings.TrimSpace(in.Message) == "":
		return ReasonEmptyMessage
	default:
		return ""
	}
}
