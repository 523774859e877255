package ws

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"sort"
	"sync"
	"testing"
	"time"

	"job-board/internal/domain/chat"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	id string

	mu     sync.Mutex
	frames [][]byte
	full   bool
}

func newFakeConn(id string) *fakeConn {
	return &fakeConn{id: id}
}

func (c *fakeConn) ID() string { return c.id }

func (c *fakeConn) Send(frame []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.full {
		return false
	}
	c.frames = append(c.frames, frame)
	return true
}

func (c *fakeConn) events(t *testing.T) []Envelope {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Envelope, 0, len(c.frames))
	for _, f := range c.frames {
		var env Envelope
		require.NoError(t, json.Unmarshal(f, &env))
		out = append(out, env)
	}
	return out
}

func decodeMessage(t *testing.T, env Envelope) chat.Message {
	t.Helper()
	var m chat.Message
	require.NoError(t, json.Unmarshal(env.Data, &m))
	return m
}

type memoryMessages struct {
	mu   sync.Mutex
	seq  int64
	msgs []chat.Message
	now  func() time.Time
	err  error
}

func newMemoryMessages() *memoryMessages {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var tick int64
	return &memoryMessages{now: func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Millisecond)
	}}
}

func (m *memoryMessages) Create(_ context.Context, msg chat.Message) (chat.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return chat.Message{}, m.err
	}
	m.seq++
	msg.ID = uuid.New()
	msg.Seq = m.seq
	msg.Timestamp = m.now()
	m.msgs = append(m.msgs, msg)
	return msg, nil
}

func (m *memoryMessages) Conversation(_ context.Context, a, b string) ([]chat.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]chat.Message, 0)
	for _, msg := range m.msgs {
		if (msg.SenderID == a && msg.ReceiverID == b) || (msg.SenderID == b && msg.ReceiverID == a) {
			out = append(out, msg)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Seq < out[j].Seq
		}
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}

func (m *memoryMessages) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.msgs)
}

var errStoreDown = errors.New("store down")

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}
