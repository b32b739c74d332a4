package services

import (
	"sync"
)

// Event คือสัญญาณว่า read view ฝั่งไหน stale แล้ว
// ชั้น cache ภายนอกเป็นคน subscribe เอง — core ไม่รู้จัก cache
type Event string

const (
	EventMenuChanged     Event = "menu_changed"
	EventCommentsChanged Event = "comments_changed"
)

type EventBus struct {
	mu   sync.RWMutex
	subs map[Event][]func(Event)
}

func NewEventBus() *EventBus {
	return &EventBus{subs: make(map[Event][]func(Event))}
}

func (b *EventBus) Subscribe(e Event, fn func(Event)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs[e] = append(b.subs[e], fn)
}

// Publish เรียก subscriber แบบ synchronous หลัง commit แล้วเท่านั้น
func (b *EventBus) Publish(e Event) {
	if b == nil {
		return
	}
	b.mu.RLock()
	fns := b.subs[e]
	b.mu.RUnlock()
	for _, fn := range fns {
		fn(e)
	}
}
