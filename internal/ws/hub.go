package ws

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"job-board/internal/domain/chat"
	"job-board/internal/observability/metrics"
)

// Conn is the server side of one live socket.
type Conn interface {
	ID() string
	// Send queues a frame without blocking; false means it was dropped.
	Send(frame []byte) bool
}

type State int

const (
	StateOpen State = iota
	StateRegistered
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateRegistered:
		return "registered"
	default:
		return "closed"
	}
}

type session struct {
	conn   Conn
	state  State
	userID string
}

// Hub owns the connection table and is the only writer to Presence.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]*session

	presence *Presence
	relay    *Relay
	logger   *log.Logger
}

func NewHub(presence *Presence, messages chat.Repository, logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	if presence == nil {
		presence = NewPresence()
	}
	h := &Hub{
		sessions: make(map[string]*session),
		presence: presence,
		logger:   logger,
	}
	h.relay = NewRelay(messages, presence, h, logger)
	return h
}

func (h *Hub) Relay() *Relay {
	if h == nil {
		return nil
	}
	return h.relay
}

func (h *Hub) Connect(c Conn) {
	if h == nil || c == nil {
		return
	}
	h.mu.Lock()
	h.sessions[c.ID()] = &session{conn: c, state: StateOpen}
	total := len(h.sessions)
	h.mu.Unlock()

	metrics.ConnectionOpened()
	h.logger.Printf("WS connected | conn=%s total_clients=%d", c.ID(), total)
}

// Disconnect closes the session and drops its presence entries. Calling it
// twice for the same connection is a no-op.
func (h *Hub) Disconnect(connID string) {
	if h == nil {
		return
	}
	h.mu.Lock()
	s, ok := h.sessions[connID]
	if !ok {
		h.mu.Unlock()
		return
	}
	s.state = StateClosed
	delete(h.sessions, connID)
	removed := h.presence.Remove(connID)
	total := len(h.sessions)
	h.mu.Unlock()

	metrics.ConnectionClosed()
	metrics.SetOnlineUsers(h.presence.Online())
	h.logger.Printf("WS disconnected | conn=%s total_clients=%d", connID, total)
	for _, userID := range removed {
		h.logger.Printf("WS user offline | user=%s conn=%s", userID, connID)
	}
}

// RegisterUser binds userID to connID. Unknown or closed connections are ignored.
func (h *Hub) RegisterUser(connID, userID string) bool {
	if h == nil || userID == "" {
		return false
	}
	h.mu.Lock()
	s, ok := h.sessions[connID]
	if !ok || s.state == StateClosed {
		h.mu.Unlock()
		return false
	}
	h.presence.Register(userID, connID)
	s.state = StateRegistered
	s.userID = userID
	h.mu.Unlock()

	metrics.SetOnlineUsers(h.presence.Online())
	h.logger.Printf("WS user registered | user=%s conn=%s", userID, connID)
	return true
}

// State reports the lifecycle state of connID; unknown connections are closed.
func (h *Hub) State(connID string) State {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if s, ok := h.sessions[connID]; ok {
		return s.state
	}
	return StateClosed
}

// HandleFrame dispatches one client frame.
func (h *Hub) HandleFrame(ctx context.Context, connID string, raw []byte) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		h.logger.Printf("WS invalid frame | conn=%s error=%v", connID, err)
		return
	}

	switch env.Event {
	case EventRegisterUser:
		userID, err := decodeUserID(env.Data)
		if err != nil {
			h.logger.Printf("WS register ignored | conn=%s error=%v", connID, err)
			return
		}
		h.RegisterUser(connID, userID)

	case EventSendMessage:
		var p SendMessagePayload
		if len(env.Data) > 0 {
			if err := json.Unmarshal(env.Data, &p); err != nil {
				h.logger.Printf("WS sendMessage ignored | conn=%s error=%v", connID, err)
				return
			}
		}
		h.relay.Send(ctx, connID, SendInput{SenderID: p.SenderID, ReceiverID: p.ReceiverID, Message: p.Message})

	default:
		h.logger.Printf("WS unknown event | conn=%s event=%q", connID, env.Event)
	}
}

// NotifyUser pushes an event to userID's connection if the user is online.
func (h *Hub) NotifyUser(userID, event string, data any) bool {
	if h == nil {
		return false
	}
	connID, ok := h.presence.Lookup(userID)
	if !ok {
		return false
	}
	frame, err := encodeEvent(event, data)
	if err != nil {
		h.logger.Printf("WS notify encode error | event=%s error=%v", event, err)
		return false
	}
	return h.emit(connID, frame)
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

func (h *Hub) OnlineUsers() int {
	if h == nil {
		return 0
	}
	return h.presence.Online()
}

func (h *Hub) emit(connID string, frame []byte) bool {
	h.mu.RLock()
	s, ok := h.sessions[connID]
	h.mu.RUnlock()
	if !ok {
		return false
	}
	return s.conn.Send(frame)
}
