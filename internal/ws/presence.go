package ws

import "sync"

// Presence maps a user ID to the connection that last registered for it.
// An absent entry means the user is offline.
type Presence struct {
	mu    sync.RWMutex
	users map[string]string
}

func NewPresence() *Presence {
	return &Presence{users: make(map[string]string)}
}

// Register points userID at connID. A previous connection for the same user
// stays open but no longer receives deliveries.
func (p *Presence) Register(userID, connID string) {
	p.mu.Lock()
	p.users[userID] = connID
	p.mu.Unlock()
}

func (p *Presence) Lookup(userID string) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	connID, ok := p.users[userID]
	return connID, ok
}

// Remove drops every user entry that points at connID and returns the
// affected user IDs. It scans the whole map; there is no reverse index.
func (p *Presence) Remove(connID string) []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	var removed []string
	for userID, c := range p.users {
		if c == connID {
			delete(p.users, userID)
			removed = append(removed, userID)
		}
	}
	return removed
}

func (p *Presence) Online() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.users)
}
