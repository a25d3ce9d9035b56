package service

import (
	"sync"

	"github.com/MKhiriev/go-hub-channel/models"
)

type listener struct {
	id uint64
	fn func(models.Event)
}

// eventBus delivers local events to listeners in registration order.
type eventBus struct {
	mu        sync.Mutex
	nextID    uint64
	listeners map[models.EventKind][]listener
}

func newEventBus() *eventBus {
	return &eventBus{listeners: make(map[models.EventKind][]listener)}
}

func (b *eventBus) add(kind models.EventKind, fn func(models.Event)) func() {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.listeners[kind] = append(b.listeners[kind], listener{id: id, fn: fn})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(kind, id) })
	}
}

func (b *eventBus) remove(kind models.EventKind, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ls := b.listeners[kind]
	for i, l := range ls {
		if l.id == id {
			b.listeners[kind] = append(ls[:i:i], ls[i+1:]...)
			return
		}
	}
}

func (b *eventBus) emit(event models.Event) {
	b.mu.Lock()
	ls := append([]listener(nil), b.listeners[event.Kind]...)
	b.mu.Unlock()

	for _, l := range ls {
		l.fn(event)
	}
}
