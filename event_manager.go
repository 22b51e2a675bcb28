package vlc

import "fmt"

// EventManager is the event source of a libvlc object. It borrows from the
// object that returned it and stops working once that object is closed.
type EventManager struct {
	owner *nativeHandle
	api   *libvlcAPI
	ptr   uintptr
}

func newEventManager(owner *nativeHandle, api *libvlcAPI, get func(uintptr) uintptr) (*EventManager, error) {
	var em uintptr
	if err := owner.with(func(ptr uintptr) { em = get(ptr) }); err != nil {
		return nil, err
	}
	if em == 0 {
		return nil, fmt.Errorf("%s event manager: %w", owner.kind, ErrCreateFailed)
	}
	return &EventManager{owner: owner, api: api, ptr: em}, nil
}

// Attach registers cb for events of type t. The callback stays registered
// for the life of the process.
func (em *EventManager) Attach(t EventType, cb EventCallback) (*Registration, error) {
	if !t.Known() {
		return nil, &UnknownEventError{Type: int32(t)}
	}
	if cb == nil {
		return nil, fmt.Errorf("attach %s: nil callback", t)
	}
	if !em.owner.live() {
		return nil, fmt.Errorf("attach %s: %s: %w", t, em.owner.kindName(), ErrReleased)
	}

	id := registry.add(&registration{
		kind:      callbackEvent,
		eventType: t,
		event:     cb,
		api:       em.api,
	})
	var rc int32
	err := em.owner.with(func(uintptr) { rc = em.api.eventAttach(em.ptr, int32(t), em.api.eventCallback, id) })
	if err != nil {
		registry.remove(id)
		return nil, fmt.Errorf("attach %s: %w", t, err)
	}
	if rc != 0 {
		registry.remove(id)
		return nil, fmt.Errorf("attach %s: %w", t, ErrOperationFailed)
	}
	return &Registration{id: id, eventType: t}, nil
}

// AttachAll registers cb for each of types, stopping at the first failure.
func (em *EventManager) AttachAll(cb EventCallback, types ...EventType) ([]*Registration, error) {
	regs := make([]*Registration, 0, len(types))
	for _, t := range types {
		reg, err := em.Attach(t, cb)
		if err != nil {
			return regs, err
		}
		regs = append(regs, reg)
	}
	return regs, nil
}
