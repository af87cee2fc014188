package telegram

import "sync"

// seenSet remembers recently processed update ids so a redelivered webhook is
// acknowledged without running the adapter twice. It is process-local and
// bounded: once capacity is hit the older half of the entries is dropped,
// which is enough to absorb the platform's short retry window.
type seenSet struct {
	mu    sync.Mutex
	cap   int
	ids   map[int64]struct{}
	order []int64
}

func newSeenSet(capacity int) *seenSet {
	if capacity <= 0 {
		capacity = 4096
	}
	return &seenSet{
		cap: capacity,
		ids: make(map[int64]struct{}, capacity),
	}
}

// MarkSeen records id and reports whether it was already present.
func (s *seenSet) MarkSeen(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ids[id]; ok {
		return true
	}

	if len(s.order) >= s.cap {
		half := len(s.order) / 2
		for _, old := range s.order[:half] {
			delete(s.ids, old)
		}
		s.order = append(s.order[:0], s.order[half:]...)
	}

	s.ids[id] = struct{}{}
	s.order = append(s.order, id)
	return false
}
