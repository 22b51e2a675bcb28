package vlc

import (
	"fmt"
	"runtime"
	"sync/atomic"
)

// handleState is the lifetime of one native reference.
type handleState int32

const (
	stateUninitialized handleState = iota
	stateLive
	stateReleased
)

func (s handleState) String() string {
	switch s {
	case stateUninitialized:
		return "uninitialized"
	case stateLive:
		return "live"
	case stateReleased:
		return "released"
	default:
		return "invalid"
	}
}

// nativeHandle owns exactly one reference to a libvlc object. The release
// function runs once, on the Live → Released transition, whether that
// transition is reached through close or through the finalizer.
type nativeHandle struct {
	kind    string
	ptr     uintptr
	state   atomic.Int32
	release func(uintptr)
}

// newHandle takes ownership of ptr. A NULL ptr is a construction failure
// and yields no handle.
func newHandle(kind string, ptr uintptr, release func(uintptr)) (*nativeHandle, error) {
	if ptr == 0 {
		return nil, fmt.Errorf("create %s: %w", kind, ErrCreateFailed)
	}
	h := &nativeHandle{kind: kind, ptr: ptr, release: release}
	h.state.Store(int32(stateLive))
	runtime.SetFinalizer(h, (*nativeHandle).finalize)
	return h, nil
}

// get returns the native pointer, or ErrReleased once closed.
func (h *nativeHandle) get() (uintptr, error) {
	if h == nil || handleState(h.state.Load()) != stateLive {
		return 0, fmt.Errorf("%s: %w", h.kindName(), ErrReleased)
	}
	return h.ptr, nil
}

// with runs fn on the native pointer. The handle stays reachable until fn
// returns, so the finalizer cannot release the object during the call.
func (h *nativeHandle) with(fn func(ptr uintptr)) error {
	ptr, err := h.get()
	if err != nil {
		return err
	}
	fn(ptr)
	runtime.KeepAlive(h)
	return nil
}

func (h *nativeHandle) live() bool {
	return h != nil && handleState(h.state.Load()) == stateLive
}

func (h *nativeHandle) kindName() string {
	if h == nil {
		return "handle"
	}
	return h.kind
}

// close releases the native reference. Only the first call has an effect.
func (h *nativeHandle) close() {
	if h == nil || !h.state.CompareAndSwap(int32(stateLive), int32(stateReleased)) {
		return
	}
	runtime.SetFinalizer(h, nil)
	h.release(h.ptr)
}

func (h *nativeHandle) finalize() {
	if !h.state.CompareAndSwap(int32(stateLive), int32(stateReleased)) {
		return
	}
	logger().Warnf("%s garbage collected without Close, releasing", h.kind)
	h.release(h.ptr)
}
