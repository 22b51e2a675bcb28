package vlc

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// EventCallback receives decoded events. It runs on a libvlc thread, may be
// called concurrently from several threads, and must not block. It must not
// call back into the object that emitted the event from the same thread for
// operations libvlc documents as deadlocking (for example Stop).
type EventCallback func(Event, Object)

type callbackKind int

const (
	callbackEvent callbackKind = iota
	callbackLog
	callbackAudio
)

func (k callbackKind) String() string {
	switch k {
	case callbackEvent:
		return "event"
	case callbackLog:
		return "log"
	case callbackAudio:
		return "audio"
	default:
		return "unknown"
	}
}

// registration is the Go side of a native callback. Its registry ID is the
// opaque pointer libvlc hands back to the trampoline, so no Go pointer is
// ever stored in native memory.
type registration struct {
	kind      callbackKind
	eventType EventType
	event     EventCallback
	api       *libvlcAPI
	log       *logSink
	audio     *audioSink
}

// callbackRegistry maps opaque IDs to registrations. IDs increase
// monotonically and are never reused, so a stale ID cannot reach a newer
// registration.
type callbackRegistry struct {
	mu      sync.RWMutex
	next    uintptr
	entries map[uintptr]*registration
}

var registry = &callbackRegistry{entries: make(map[uintptr]*registration)}

func (r *callbackRegistry) add(reg *registration) uintptr {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	r.entries[r.next] = reg
	return r.next
}

func (r *callbackRegistry) get(id uintptr) (*registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.entries[id]
	return reg, ok
}

func (r *callbackRegistry) remove(id uintptr) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
}

func (r *callbackRegistry) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Registrations returns the number of callbacks currently held for libvlc.
// Event registrations stay for the life of the process because libvlc
// offers no way to know when the last call has returned.
func Registrations() int {
	return registry.count()
}

// Registration identifies an attached event callback.
type Registration struct {
	id        uintptr
	eventType EventType
}

// EventType returns the event type the callback was attached for.
func (r *Registration) EventType() EventType {
	return r.eventType
}

// CallbackFault records a failure that happened inside a trampoline and was
// contained there instead of unwinding into libvlc.
type CallbackFault struct {
	Callback  string
	EventType EventType
	// Panic is the recovered value, nil when the fault is a decode error.
	Panic any
	Err   error
}

func (f CallbackFault) Error() string {
	if f.Callback == callbackEvent.String() {
		return fmt.Sprintf("%s callback (%s): %v", f.Callback, f.EventType, f.Err)
	}
	return fmt.Sprintf("%s callback: %v", f.Callback, f.Err)
}

func (f CallbackFault) Unwrap() error {
	return f.Err
}

var (
	faultCount   atomic.Uint64
	faultHandler atomic.Pointer[func(CallbackFault)]
)

// Faults returns the number of callback faults recorded so far.
func Faults() uint64 {
	return faultCount.Load()
}

// SetFaultHandler installs fn to observe callback faults. fn runs on the
// libvlc thread that faulted. Passing nil removes the handler.
func SetFaultHandler(fn func(CallbackFault)) {
	if fn == nil {
		faultHandler.Store(nil)
		return
	}
	faultHandler.Store(&fn)
}

func recordFault(f CallbackFault) {
	faultCount.Add(1)
	logger().Errorf("%v", f)

	fn := faultHandler.Load()
	if fn == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			logger().Errorf("fault handler panic: %v", r)
		}
	}()
	(*fn)(f)
}

// recoverFault must be deferred directly by every trampoline.
func recoverFault(kind callbackKind, eventType int32) {
	r := recover()
	if r == nil {
		return
	}
	recordFault(CallbackFault{
		Callback:  kind.String(),
		EventType: EventType(eventType),
		Panic:     r,
		Err:       fmt.Errorf("panic: %v", r),
	})
}

// eventTrampoline is the C-callable libvlc_callback_t shared by every event
// registration.
func eventTrampoline(event, userData uintptr) {
	if event == 0 {
		return
	}
	raw := structAt[rawEvent](event)
	defer recoverFault(callbackEvent, raw.Type)

	reg, ok := registry.get(userData)
	if !ok || reg.event == nil {
		return
	}

	scope := newBorrowScope()
	defer scope.close()

	ev, err := decodeEvent(raw, reg.api, scope)
	if err != nil {
		recordFault(CallbackFault{
			Callback:  callbackEvent.String(),
			EventType: EventType(raw.Type),
			Err:       err,
		})
		return
	}
	reg.event(ev, Object{ptr: raw.Obj})
}

// borrowScope bounds references handed to a callback. Once closed, any
// attempt to take ownership through them fails.
type borrowScope struct {
	mu     sync.RWMutex
	closed bool
}

func newBorrowScope() *borrowScope {
	return &borrowScope{}
}

func (s *borrowScope) close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

// with runs fn while the scope is known to be open.
func (s *borrowScope) with(fn func()) error {
	if s == nil {
		return ErrBorrowExpired
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrBorrowExpired
	}
	fn()
	return nil
}

// Object is the native object that emitted an event. It is only an
// identity; it cannot be dereferenced.
type Object struct {
	ptr uintptr
}

// Raw returns the native address, for comparison and logging.
func (o Object) Raw() uintptr {
	return o.ptr
}

// IsZero reports whether no object was supplied.
func (o Object) IsZero() bool {
	return o.ptr == 0
}

// MediaRef is a media item carried by an event. It is borrowed from libvlc
// and valid only while the callback runs.
type MediaRef struct {
	ptr   uintptr
	api   *libvlcAPI
	scope *borrowScope
}

// IsZero reports whether the event carried no media.
func (m MediaRef) IsZero() bool {
	return m.ptr == 0
}

// Raw returns the native address of the media.
func (m MediaRef) Raw() uintptr {
	return m.ptr
}

// Retain takes a native reference and returns an owning Media. It must be
// called from inside the callback; afterwards it fails with
// ErrBorrowExpired.
func (m MediaRef) Retain() (*Media, error) {
	if m.ptr == 0 {
		return nil, fmt.Errorf("retain media: %w", ErrCreateFailed)
	}
	var (
		media *Media
		err   error
	)
	if scopeErr := m.scope.with(func() {
		m.api.mediaRetain(m.ptr)
		media, err = newMedia(m.api, m.ptr)
	}); scopeErr != nil {
		return nil, fmt.Errorf("retain media: %w", scopeErr)
	}
	return media, err
}
