package vlc

import (
	"sync"
	"sync/atomic"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlayer(t *testing.T) (*MediaPlayer, *EventManager) {
	t.Helper()
	inst, err := NewInstance()
	require.NoError(t, err)
	t.Cleanup(func() { inst.Close() })

	mp, err := inst.NewMediaPlayer()
	require.NoError(t, err)
	t.Cleanup(func() { mp.Close() })

	em, err := mp.EventManager()
	require.NoError(t, err)
	return mp, em
}

func TestAttach_DeliversEveryEvent(t *testing.T) {
	f := newFakeVLC(t)
	_, em := newTestPlayer(t)

	var (
		calls atomic.Int64
		sum   atomic.Int64
	)
	reg, err := em.Attach(EventMediaPlayerTimeChanged, func(ev Event, src Object) {
		calls.Add(1)
		sum.Add(ev.(MediaPlayerTimeChanged).NewTime)
		assert.Equal(t, uintptr(0x5150), src.Raw())
	})
	require.NoError(t, err)
	assert.Equal(t, EventMediaPlayerTimeChanged, reg.EventType())

	const goroutines, perGoroutine = 16, 250
	var wg sync.WaitGroup
	for g := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perGoroutine {
				f.fire(em.ptr, event(EventMediaPlayerTimeChanged, 0x5150, func(e *rawEvent) {
					putInt64(e, 0, int64(g*perGoroutine+i))
				}))
			}
		}()
	}
	wg.Wait()

	n := int64(goroutines * perGoroutine)
	assert.Equal(t, n, calls.Load())
	assert.Equal(t, n*(n-1)/2, sum.Load())
}

func TestAttach_OnlyMatchingType(t *testing.T) {
	f := newFakeVLC(t)
	_, em := newTestPlayer(t)

	var got []EventType
	var mu sync.Mutex
	_, err := em.AttachAll(func(ev Event, _ Object) {
		mu.Lock()
		got = append(got, ev.Type())
		mu.Unlock()
	}, EventMediaPlayerPlaying, EventMediaPlayerEndReached)
	require.NoError(t, err)

	f.fire(em.ptr, event(EventMediaPlayerPlaying, 0, nil))
	f.fire(em.ptr, event(EventMediaPlayerPaused, 0, nil))
	f.fire(em.ptr, event(EventMediaPlayerEndReached, 0, nil))

	assert.Equal(t, []EventType{EventMediaPlayerPlaying, EventMediaPlayerEndReached}, got)
}

func TestAttach_NativeFailureReclaimsRegistration(t *testing.T) {
	f := newFakeVLC(t)
	_, em := newTestPlayer(t)
	f.attachRC = -1

	before := Registrations()
	reg, err := em.Attach(EventMediaPlayerPlaying, func(Event, Object) {})
	require.ErrorIs(t, err, ErrOperationFailed)
	assert.Nil(t, reg)
	assert.Equal(t, before, Registrations(), "registry entry removed on failed attach")
}

func TestAttach_SuccessKeepsRegistration(t *testing.T) {
	newFakeVLC(t)
	_, em := newTestPlayer(t)

	before := Registrations()
	_, err := em.Attach(EventMediaPlayerPlaying, func(Event, Object) {})
	require.NoError(t, err)
	assert.Equal(t, before+1, Registrations())
}

func TestAttach_UnknownTypeRejectedBeforeNativeCall(t *testing.T) {
	f := newFakeVLC(t)
	_, em := newTestPlayer(t)

	_, err := em.Attach(EventType(0x7777), func(Event, Object) {})
	require.ErrorIs(t, err, ErrUnknownEvent)
	assert.Empty(t, f.attachments())
}

func TestAttach_NilCallback(t *testing.T) {
	f := newFakeVLC(t)
	_, em := newTestPlayer(t)

	_, err := em.Attach(EventMediaPlayerPlaying, nil)
	require.Error(t, err)
	assert.Empty(t, f.attachments())
}

func TestAttach_AfterOwnerClosed(t *testing.T) {
	f := newFakeVLC(t)
	mp, em := newTestPlayer(t)
	require.NoError(t, mp.Close())

	_, err := em.Attach(EventMediaPlayerPlaying, func(Event, Object) {})
	require.ErrorIs(t, err, ErrReleased)
	assert.Empty(t, f.attachments())

	_, err = mp.EventManager()
	assert.ErrorIs(t, err, ErrReleased)
}

func TestTrampoline_PanicIsContained(t *testing.T) {
	f := newFakeVLC(t)
	_, em := newTestPlayer(t)

	var faults []CallbackFault
	SetFaultHandler(func(fault CallbackFault) { faults = append(faults, fault) })
	t.Cleanup(func() { SetFaultHandler(nil) })

	var survivor atomic.Int32
	_, err := em.Attach(EventMediaPlayerPlaying, func(Event, Object) { panic("boom") })
	require.NoError(t, err)
	_, err = em.Attach(EventMediaPlayerPlaying, func(Event, Object) { survivor.Add(1) })
	require.NoError(t, err)

	before := Faults()
	assert.NotPanics(t, func() {
		f.fire(em.ptr, event(EventMediaPlayerPlaying, 0, nil))
		f.fire(em.ptr, event(EventMediaPlayerPlaying, 0, nil))
	})

	assert.Equal(t, int32(2), survivor.Load(), "other callbacks keep running")
	assert.Equal(t, before+2, Faults())
	require.Len(t, faults, 2)
	assert.Equal(t, "boom", faults[0].Panic)
	assert.Equal(t, EventMediaPlayerPlaying, faults[0].EventType)
	assert.Equal(t, "event", faults[0].Callback)
	assert.Contains(t, faults[0].Error(), "boom")
}

func TestTrampoline_FaultHandlerPanicIsContained(t *testing.T) {
	f := newFakeVLC(t)
	_, em := newTestPlayer(t)

	SetFaultHandler(func(CallbackFault) { panic("handler") })
	t.Cleanup(func() { SetFaultHandler(nil) })

	_, err := em.Attach(EventMediaPlayerPaused, func(Event, Object) { panic("callback") })
	require.NoError(t, err)
	assert.NotPanics(t, func() {
		f.fire(em.ptr, event(EventMediaPlayerPaused, 0, nil))
	})
}

func TestTrampoline_UnknownTagIsAFault(t *testing.T) {
	f := newFakeVLC(t)
	_, em := newTestPlayer(t)

	var invoked atomic.Bool
	reg, err := em.Attach(EventMediaPlayerPlaying, func(Event, Object) { invoked.Store(true) })
	require.NoError(t, err)

	var fault CallbackFault
	SetFaultHandler(func(cf CallbackFault) { fault = cf })
	t.Cleanup(func() { SetFaultHandler(nil) })

	before := Faults()
	eventTrampoline(uintptr(unsafe.Pointer(pinValue(f, rawEvent{Type: 0x4242}))), reg.id)

	assert.False(t, invoked.Load(), "closure not invoked for an unknown tag")
	assert.Equal(t, before+1, Faults())
	assert.ErrorIs(t, fault, ErrUnknownEvent)
	assert.Nil(t, fault.Panic)
}

func TestTrampoline_StaleID(t *testing.T) {
	f := newFakeVLC(t)
	before := Faults()
	assert.NotPanics(t, func() {
		eventTrampoline(uintptr(unsafe.Pointer(pinValue(f, rawEvent{Type: int32(EventMediaPlayerPlaying)}))), ^uintptr(0))
		eventTrampoline(0, 1)
	})
	assert.Equal(t, before, Faults())
}

func TestMediaRef_RetainInsideCallback(t *testing.T) {
	f := newFakeVLC(t)
	_, em := newTestPlayer(t)

	var (
		kept     *Media
		retained error
		escaped  MediaRef
	)
	_, err := em.Attach(EventMediaPlayerMediaChanged, func(ev Event, _ Object) {
		ref := ev.(MediaPlayerMediaChanged).NewMedia
		kept, retained = ref.Retain()
		escaped = ref
	})
	require.NoError(t, err)

	f.fire(em.ptr, event(EventMediaPlayerMediaChanged, 0, func(e *rawEvent) {
		putPtr(e, 0, testMediaPtr)
	}))

	require.NoError(t, retained)
	require.NotNil(t, kept)
	assert.Equal(t, 1, f.retainCount(testMediaPtr))
	require.NoError(t, kept.Close())
	assert.Equal(t, 1, f.releaseCount(testMediaPtr))

	_, err = escaped.Retain()
	assert.ErrorIs(t, err, ErrBorrowExpired)
	assert.Equal(t, 1, f.retainCount(testMediaPtr), "no native retain after expiry")
}

func TestMediaRef_Zero(t *testing.T) {
	var ref MediaRef
	assert.True(t, ref.IsZero())
	_, err := ref.Retain()
	assert.ErrorIs(t, err, ErrCreateFailed)
}

func TestBorrowScope(t *testing.T) {
	s := newBorrowScope()
	ran := false
	require.NoError(t, s.with(func() { ran = true }))
	assert.True(t, ran)

	s.close()
	assert.ErrorIs(t, s.with(func() { t.Fatal("ran after close") }), ErrBorrowExpired)

	var nilScope *borrowScope
	assert.ErrorIs(t, nilScope.with(func() {}), ErrBorrowExpired)
}

func TestCallbackKind_String(t *testing.T) {
	assert.Equal(t, "event", callbackEvent.String())
	assert.Equal(t, "log", callbackLog.String())
	assert.Equal(t, "audio", callbackAudio.String())
	assert.Equal(t, "unknown", callbackKind(9).String())
}
