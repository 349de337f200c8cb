// Package history keeps a per-user trail of recently viewed items.
// It lives only in process memory and resets on restart; it is not
// part of the durable data model.
package history

import "sync"

const defaultPerUserCap = 100

// ViewHistory records item views per user: ordered, duplicate-free,
// re-viewing an item moves it to the most-recent position. Each
// user's trail is trimmed to a fixed cap, dropping the least
// recently viewed entries first.
type ViewHistory struct {
	mu     sync.Mutex
	byUser map[int64][]int64
	cap    int
}

func New(perUserCap int) *ViewHistory {
	if perUserCap <= 0 {
		perUserCap = defaultPerUserCap
	}
	return &ViewHistory{byUser: make(map[int64][]int64), cap: perUserCap}
}

func (h *ViewHistory) Record(userID, itemID int64) {
	if userID <= 0 || itemID <= 0 {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	trail := h.byUser[userID]
	for i, id := range trail {
		if id == itemID {
			trail = append(trail[:i], trail[i+1:]...)
			break
		}
	}
	trail = append(trail, itemID)
	if len(trail) > h.cap {
		trail = trail[len(trail)-h.cap:]
	}
	h.byUser[userID] = trail
}

// ForUser returns the user's trail, oldest first.
func (h *ViewHistory) ForUser(userID int64) []int64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	trail := h.byUser[userID]
	out := make([]int64, len(trail))
	copy(out, trail)
	return out
}
