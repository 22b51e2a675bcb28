package vlc

import (
	"context"
	"sync/atomic"
)

const defaultSubscriptionBuffer = 16

// Notification is an event delivered through a Subscription. Media
// references inside Event have already expired when it is received.
type Notification struct {
	Event  Event
	Source Object
}

// Subscription forwards events from libvlc threads to a channel.
type Subscription struct {
	Events <-chan Notification
	Done   <-chan struct{}

	events  chan Notification
	done    chan struct{}
	dropped atomic.Uint64
}

// Subscribe attaches a forwarding callback for each of types. Sends never
// block; events that find the buffer full are dropped and counted.
// Cancelling ctx stops forwarding and closes Done. Events is never closed.
func (em *EventManager) Subscribe(ctx context.Context, buffer int, types ...EventType) (*Subscription, error) {
	if buffer <= 0 {
		buffer = defaultSubscriptionBuffer
	}
	s := &Subscription{
		events: make(chan Notification, buffer),
		done:   make(chan struct{}),
	}
	s.Events = s.events
	s.Done = s.done

	if _, err := em.AttachAll(s.send, types...); err != nil {
		close(s.done)
		return nil, err
	}

	go func() {
		<-ctx.Done()
		close(s.done)
	}()
	return s, nil
}

func (s *Subscription) send(ev Event, src Object) {
	select {
	case <-s.done:
		return
	default:
	}
	select {
	case s.events <- Notification{Event: ev, Source: src}:
	default:
		s.dropped.Add(1)
	}
}

// Dropped returns the number of events lost to a full buffer.
func (s *Subscription) Dropped() uint64 {
	return s.dropped.Load()
}
