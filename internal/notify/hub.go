package notify

import "sync"

// Hub fans in-app notifications out to live websocket subscribers.
type Hub struct {
	mu   sync.RWMutex
	subs map[uint]map[chan Notice]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[uint]map[chan Notice]struct{})}
}

// Subscribe registers a buffered channel for userID; call the returned
// func to unsubscribe.
func (h *Hub) Subscribe(userID uint) (<-chan Notice, func()) {
	ch := make(chan Notice, 16)
	h.mu.Lock()
	if h.subs[userID] == nil {
		h.subs[userID] = make(map[chan Notice]struct{})
	}
	h.subs[userID][ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs[userID], ch)
			if len(h.subs[userID]) == 0 {
				delete(h.subs, userID)
			}
			h.mu.Unlock()
			close(ch)
		})
	}
}

// Push delivers n to every subscriber of its recipient; slow subscribers
// miss the message rather than block the dispatcher.
func (h *Hub) Push(n Notice) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	delivered := 0
	for ch := range h.subs[n.Recipient.UserID] {
		select {
		case ch <- n:
			delivered++
		default:
		}
	}
	return delivered
}
