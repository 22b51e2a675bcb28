package vlc

import (
	"runtime"
	"sync"
	"testing"
	"unsafe"
)

// fakeVLC is an in-process stand-in for libvlc. Native objects are opaque
// counters; strings and structs live in pinned Go memory so the package
// can read them exactly as it reads libvlc memory.
type fakeVLC struct {
	api *libvlcAPI

	mu       sync.Mutex
	pinner   runtime.Pinner
	keep     []any
	nextObj  uintptr
	released map[uintptr]int
	retained map[uintptr]int
	freed    map[uintptr]int
	attached []fakeAttachment

	attachRC int32
	mute     int32
	volume   int32
	duration int64
	time     int64
	position float32
	lastArgs []string
}

type fakeAttachment struct {
	em        uintptr
	eventType int32
	userData  uintptr
}

func newFakeVLC(t testing.TB) *fakeVLC {
	t.Helper()
	f := &fakeVLC{
		nextObj:  0x10000,
		released: make(map[uintptr]int),
		retained: make(map[uintptr]int),
		freed:    make(map[uintptr]int),
	}
	f.api = f.buildAPI()

	prev := openLibVLC
	openLibVLC = func() (*libvlcAPI, error) { return f.api, nil }
	t.Cleanup(func() {
		openLibVLC = prev
		f.pinner.Unpin()
	})
	return f
}

// obj returns a fresh opaque native address.
func (f *fakeVLC) obj() uintptr {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextObj += 0x10
	return f.nextObj
}

// cstr returns a NUL-terminated copy of s in pinned memory.
func (f *fakeVLC) cstr(s string) uintptr {
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pinner.Pin(&buf[0])
	f.keep = append(f.keep, buf)
	return uintptr(unsafe.Pointer(&buf[0]))
}

// pinValue keeps v reachable and unmovable for the life of the test.
func pinValue[T any](f *fakeVLC, v T) *T {
	p := new(T)
	*p = v
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pinner.Pin(p)
	f.keep = append(f.keep, p)
	return p
}

func (f *fakeVLC) release(ptr uintptr) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.released[ptr]++
}

func (f *fakeVLC) retain(ptr uintptr) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.retained[ptr]++
}

func (f *fakeVLC) releaseCount(ptr uintptr) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.released[ptr]
}

func (f *fakeVLC) retainCount(ptr uintptr) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.retained[ptr]
}

func (f *fakeVLC) freeCount(ptr uintptr) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.freed[ptr]
}

func (f *fakeVLC) attachments() []fakeAttachment {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]fakeAttachment(nil), f.attached...)
}

// fire delivers an event to every callback attached to em for its type,
// the way libvlc does from one of its threads.
func (f *fakeVLC) fire(em uintptr, ev *rawEvent) {
	p := pinValue(f, *ev)
	for _, a := range f.attachments() {
		if a.em == em && a.eventType == ev.Type {
			eventTrampoline(uintptr(unsafe.Pointer(p)), a.userData)
		}
	}
}

// event builds a raw event whose union is filled by fill.
func event(t EventType, obj uintptr, fill func(e *rawEvent)) *rawEvent {
	e := &rawEvent{Type: int32(t), Obj: obj}
	if fill != nil {
		fill(e)
	}
	return e
}

func putInt32(e *rawEvent, off uintptr, v int32)     { *(*int32)(e.union(off)) = v }
func putInt64(e *rawEvent, off uintptr, v int64)     { *(*int64)(e.union(off)) = v }
func putFloat32(e *rawEvent, off uintptr, v float32) { *(*float32)(e.union(off)) = v }
func putPtr(e *rawEvent, off uintptr, v uintptr)     { *(*uintptr)(e.union(off)) = v }

func (f *fakeVLC) buildAPI() *libvlcAPI {
	newObj := func(uintptr) uintptr { return f.obj() }
	return &libvlcAPI{
		new: func(argc int32, argv uintptr) uintptr {
			var args []string
			if argc > 0 {
				for _, p := range unsafe.Slice((*uintptr)(unsafe.Pointer(argv)), argc) {
					s, _ := fromNativeBorrowed(p)
					args = append(args, s)
				}
			}
			f.mu.Lock()
			f.lastArgs = args
			f.mu.Unlock()
			return f.obj()
		},
		release:      f.release,
		retain:       f.retain,
		addIntf:      func(inst, name uintptr) int32 { return 0 },
		wait:         func(uintptr) {},
		setUserAgent: func(inst, name, http uintptr) {},
		setAppID:     func(inst, id, version, icon uintptr) {},
		getVersion:   func() uintptr { return f.cstr("3.0.20 Vetinari") },
		getCompiler:  func() uintptr { return f.cstr("gcc") },
		getChangeset: func() uintptr { return f.cstr("3.0.20") },
		free: func(ptr uintptr) {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.freed[ptr]++
		},
		errmsg:   func() uintptr { return 0 },
		clearerr: func() {},
		clock:    func() int64 { return 1_000_000 },
		eventAttach: func(em uintptr, eventType int32, cb, userData uintptr) int32 {
			f.mu.Lock()
			defer f.mu.Unlock()
			if f.attachRC != 0 {
				return f.attachRC
			}
			f.attached = append(f.attached, fakeAttachment{em: em, eventType: eventType, userData: userData})
			return 0
		},
		eventTypeName: func(eventType int32) uintptr {
			return f.cstr(EventType(eventType).String())
		},
		logSet:   func(inst, cb, data uintptr) {},
		logUnset: func(inst uintptr) {},
		logGetContext: func(ctx, module, file, line uintptr) {
			*(*uintptr)(unsafe.Pointer(module)) = f.cstr("main")
			*(*uintptr)(unsafe.Pointer(file)) = f.cstr("src/libvlc.c")
			*(*uint32)(unsafe.Pointer(line)) = 42
		},
		moduleDescriptionListRelease: f.release,
		audioFilterListGet:           func(uintptr) uintptr { return 0 },
		videoFilterListGet:           func(uintptr) uintptr { return 0 },

		mediaNewLocation:   func(inst, mrl uintptr) uintptr { return f.obj() },
		mediaNewPath:       func(inst, path uintptr) uintptr { return f.obj() },
		mediaNewFD:         func(inst uintptr, fd int32) uintptr { return f.obj() },
		mediaNewAsNode:     func(inst, name uintptr) uintptr { return f.obj() },
		mediaAddOption:     func(md, option uintptr) {},
		mediaAddOptionFlag: func(md, option uintptr, flags uint32) {},
		mediaRetain:        f.retain,
		mediaRelease:       f.release,
		mediaGetMRL:        func(uintptr) uintptr { return f.cstr("file:///tmp/a.mkv") },
		mediaDuplicate:     newObj,
		mediaGetMeta:       func(md uintptr, meta int32) uintptr { return 0 },
		mediaSetMeta:       func(md uintptr, meta int32, value uintptr) {},
		mediaSaveMeta:      func(uintptr) int32 { return 1 },
		mediaGetState:      func(uintptr) int32 { return int32(StateNothingSpecial) },
		mediaSubitems:      newObj,
		mediaEventManager:  newObj,
		mediaGetDuration:   func(uintptr) int64 { return f.duration },
		mediaParse:         func(uintptr) {},
		mediaParseAsync:    func(uintptr) {},
		mediaIsParsed:      func(uintptr) int32 { return 1 },
		mediaTracksGet:     func(md, tracks uintptr) uint32 { return 0 },
		mediaTracksRelease: func(tracks uintptr, count uint32) {},

		playerNew:          newObj,
		playerNewFromMedia: newObj,
		playerRelease:      f.release,
		playerRetain:       f.retain,
		playerSetMedia:     func(mp, md uintptr) {},
		playerGetMedia:     func(uintptr) uintptr { return 0 },
		playerEventManager: newObj,
		playerIsPlaying:    func(uintptr) int32 { return 0 },
		playerPlay:         func(uintptr) int32 { return 0 },
		playerSetPause:     func(mp uintptr, doPause int32) {},
		playerPause:        func(uintptr) {},
		playerStop:         func(uintptr) {},
		playerGetLength:    func(uintptr) int64 { return f.duration },
		playerGetTime:      func(uintptr) int64 { return f.time },
		playerSetTime:      func(mp uintptr, t int64) {},
		playerGetPosition:  func(uintptr) float32 { return f.position },
		playerSetPosition:  func(mp uintptr, pos float32) {},
		playerGetRate:      func(uintptr) float32 { return 1 },
		playerSetRate:      func(mp uintptr, rate float32) int32 { return 0 },
		playerGetState:     func(uintptr) int32 { return int32(StatePlaying) },

		audioGetMute:      func(uintptr) int32 { return f.mute },
		audioSetMute:      func(mp uintptr, status int32) {},
		audioGetVolume:    func(uintptr) int32 { return f.volume },
		audioSetVolume:    func(mp uintptr, volume int32) int32 { return 0 },
		audioSetCallbacks: func(mp, play, pause, resume, flush, drain, opaque uintptr) {},
		audioSetFormat:    func(mp, format uintptr, rate, channels uint32) {},

		listNew:          newObj,
		listRelease:      f.release,
		listRetain:       f.retain,
		listEventManager: newObj,

		listPlayerNew:          newObj,
		listPlayerRelease:      f.release,
		listPlayerRetain:       f.retain,
		listPlayerEventManager: newObj,

		libraryNew:     newObj,
		libraryRelease: f.release,
		libraryRetain:  f.retain,

		vlmRelease:         func(uintptr) {},
		vlmGetEventManager: newObj,

		vsnprintf: func(buf, size, format, args uintptr) int32 {
			s, _ := fromNativeBorrowed(format)
			dst := unsafe.Slice((*byte)(unsafe.Pointer(buf)), size)
			n := copy(dst[:size-1], s)
			dst[n] = 0
			return int32(n)
		},

		eventCallback:       0xe0,
		logCallback:         0xe1,
		audioPlayCallback:   0xe2,
		audioPauseCallback:  0xe3,
		audioResumeCallback: 0xe4,
		audioFlushCallback:  0xe5,
		audioDrainCallback:  0xe6,
	}
}
