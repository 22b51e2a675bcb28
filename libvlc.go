package vlc

import (
	"fmt"
	"sync"
)

// libvlcAPI is the table of native entry points. Every wrapper keeps the
// table it was created with, so one process never mixes two libraries.
type libvlcAPI struct {
	// Core
	new                          func(argc int32, argv uintptr) uintptr
	release                      func(inst uintptr)
	retain                       func(inst uintptr)
	addIntf                      func(inst, name uintptr) int32
	wait                         func(inst uintptr)
	setUserAgent                 func(inst, name, http uintptr)
	setAppID                     func(inst, id, version, icon uintptr)
	getVersion                   func() uintptr
	getCompiler                  func() uintptr
	getChangeset                 func() uintptr
	free                         func(ptr uintptr)
	errmsg                       func() uintptr
	clearerr                     func()
	clock                        func() int64
	eventAttach                  func(em uintptr, eventType int32, cb, userData uintptr) int32
	eventTypeName                func(eventType int32) uintptr
	logSet                       func(inst, cb, data uintptr)
	logUnset                     func(inst uintptr)
	logGetContext                func(ctx, module, file, line uintptr)
	moduleDescriptionListRelease func(list uintptr)
	audioFilterListGet           func(inst uintptr) uintptr
	videoFilterListGet           func(inst uintptr) uintptr

	// Media
	mediaNewLocation   func(inst, mrl uintptr) uintptr
	mediaNewPath       func(inst, path uintptr) uintptr
	mediaNewFD         func(inst uintptr, fd int32) uintptr
	mediaNewAsNode     func(inst, name uintptr) uintptr
	mediaAddOption     func(md, option uintptr)
	mediaAddOptionFlag func(md, option uintptr, flags uint32)
	mediaRetain        func(md uintptr)
	mediaRelease       func(md uintptr)
	mediaGetMRL        func(md uintptr) uintptr
	mediaDuplicate     func(md uintptr) uintptr
	mediaGetMeta       func(md uintptr, meta int32) uintptr
	mediaSetMeta       func(md uintptr, meta int32, value uintptr)
	mediaSaveMeta      func(md uintptr) int32
	mediaGetState      func(md uintptr) int32
	mediaSubitems      func(md uintptr) uintptr
	mediaEventManager  func(md uintptr) uintptr
	mediaGetDuration   func(md uintptr) int64
	mediaParse         func(md uintptr)
	mediaParseAsync    func(md uintptr)
	mediaIsParsed      func(md uintptr) int32
	mediaTracksGet     func(md, tracks uintptr) uint32
	mediaTracksRelease func(tracks uintptr, count uint32)

	// Media player
	playerNew          func(inst uintptr) uintptr
	playerNewFromMedia func(md uintptr) uintptr
	playerRelease      func(mp uintptr)
	playerRetain       func(mp uintptr)
	playerSetMedia     func(mp, md uintptr)
	playerGetMedia     func(mp uintptr) uintptr
	playerEventManager func(mp uintptr) uintptr
	playerIsPlaying    func(mp uintptr) int32
	playerPlay         func(mp uintptr) int32
	playerSetPause     func(mp uintptr, doPause int32)
	playerPause        func(mp uintptr)
	playerStop         func(mp uintptr)
	playerGetLength    func(mp uintptr) int64
	playerGetTime      func(mp uintptr) int64
	playerSetTime      func(mp uintptr, t int64)
	playerGetPosition  func(mp uintptr) float32
	playerSetPosition  func(mp uintptr, pos float32)
	playerGetRate      func(mp uintptr) float32
	playerSetRate      func(mp uintptr, rate float32) int32
	playerGetState     func(mp uintptr) int32
	playerWillPlay     func(mp uintptr) int32
	playerIsSeekable   func(mp uintptr) int32
	playerCanPause     func(mp uintptr) int32
	playerNextFrame    func(mp uintptr)
	playerSetXWindow   func(mp uintptr, drawable uint32)
	playerGetXWindow   func(mp uintptr) uint32
	playerSetHWND      func(mp, drawable uintptr)
	playerGetHWND      func(mp uintptr) uintptr
	playerSetNSObject  func(mp, drawable uintptr)
	playerGetNSObject  func(mp uintptr) uintptr

	// Audio
	audioGetMute      func(mp uintptr) int32
	audioSetMute      func(mp uintptr, status int32)
	audioGetVolume    func(mp uintptr) int32
	audioSetVolume    func(mp uintptr, volume int32) int32
	audioSetCallbacks func(mp, play, pause, resume, flush, drain, opaque uintptr)
	audioSetFormat    func(mp, format uintptr, rate, channels uint32)

	// Video
	toggleFullscreen    func(mp uintptr)
	setFullscreen       func(mp uintptr, on int32)
	getFullscreen       func(mp uintptr) int32
	videoSetKeyInput    func(mp uintptr, on uint32)
	videoSetMouseInput  func(mp uintptr, on uint32)
	videoGetSize        func(mp uintptr, num uint32, px, py uintptr) int32
	videoGetCursor      func(mp uintptr, num uint32, px, py uintptr) int32
	videoGetScale       func(mp uintptr) float32
	videoSetScale       func(mp uintptr, factor float32)
	videoGetTrack       func(mp uintptr) int32
	videoSetTrack       func(mp uintptr, track int32) int32
	videoGetAdjustInt   func(mp uintptr, option uint32) int32
	videoSetAdjustInt   func(mp uintptr, option uint32, value int32)
	videoGetAdjustFloat func(mp uintptr, option uint32) float32
	videoSetAdjustFloat func(mp uintptr, option uint32, value float32)
	videoTakeSnapshot   func(mp uintptr, num uint32, path uintptr, width, height uint32) int32
	videoGetAspectRatio func(mp uintptr) uintptr
	videoSetAspectRatio func(mp, aspect uintptr)

	// Media list
	listNew          func(inst uintptr) uintptr
	listRelease      func(ml uintptr)
	listRetain       func(ml uintptr)
	listAddMedia     func(ml, md uintptr) int32
	listInsertMedia  func(ml, md uintptr, pos int32) int32
	listRemoveIndex  func(ml uintptr, pos int32) int32
	listCount        func(ml uintptr) int32
	listItemAtIndex  func(ml uintptr, pos int32) uintptr
	listIndexOfItem  func(ml, md uintptr) int32
	listIsReadonly   func(ml uintptr) int32
	listLock         func(ml uintptr)
	listUnlock       func(ml uintptr)
	listEventManager func(ml uintptr) uintptr

	// Media list player
	listPlayerNew             func(inst uintptr) uintptr
	listPlayerRelease         func(mlp uintptr)
	listPlayerRetain          func(mlp uintptr)
	listPlayerEventManager    func(mlp uintptr) uintptr
	listPlayerSetMediaPlayer  func(mlp, mp uintptr)
	listPlayerSetMediaList    func(mlp, ml uintptr)
	listPlayerPlay            func(mlp uintptr)
	listPlayerPause           func(mlp uintptr)
	listPlayerStop            func(mlp uintptr)
	listPlayerIsPlaying       func(mlp uintptr) int32
	listPlayerGetState        func(mlp uintptr) int32
	listPlayerPlayItemAtIndex func(mlp uintptr, index int32) int32
	listPlayerNext            func(mlp uintptr) int32
	listPlayerPrevious        func(mlp uintptr) int32
	listPlayerSetPlaybackMode func(mlp uintptr, mode int32)

	// Media library
	libraryNew       func(inst uintptr) uintptr
	libraryRelease   func(mlib uintptr)
	libraryRetain    func(mlib uintptr)
	libraryLoad      func(mlib uintptr) int32
	libraryMediaList func(mlib uintptr) uintptr

	// VLM
	vlmRelease                  func(inst uintptr)
	vlmAddBroadcast             func(inst, name, input, output uintptr, nOptions int32, options uintptr, enabled, loop int32) int32
	vlmAddVOD                   func(inst, name, input uintptr, nOptions int32, options uintptr, enabled int32, mux uintptr) int32
	vlmDelMedia                 func(inst, name uintptr) int32
	vlmSetEnabled               func(inst, name uintptr, enabled int32) int32
	vlmSetOutput                func(inst, name, output uintptr) int32
	vlmSetInput                 func(inst, name, input uintptr) int32
	vlmSetLoop                  func(inst, name uintptr, loop int32) int32
	vlmPlayMedia                func(inst, name uintptr) int32
	vlmStopMedia                func(inst, name uintptr) int32
	vlmPauseMedia               func(inst, name uintptr) int32
	vlmSeekMedia                func(inst, name uintptr, percentage float32) int32
	vlmShowMedia                func(inst, name uintptr) uintptr
	vlmGetMediaInstancePosition func(inst, name uintptr, instance int32) float32
	vlmGetMediaInstanceTime     func(inst, name uintptr, instance int32) int32
	vlmGetMediaInstanceLength   func(inst, name uintptr, instance int32) int32
	vlmGetMediaInstanceRate     func(inst, name uintptr, instance int32) int32
	vlmGetEventManager          func(inst uintptr) uintptr

	// libc, used to expand log messages
	vsnprintf func(buf, size, format, args uintptr) int32

	// C-callable trampoline addresses
	eventCallback       uintptr
	logCallback         uintptr
	audioPlayCallback   uintptr
	audioPauseCallback  uintptr
	audioResumeCallback uintptr
	audioFlushCallback  uintptr
	audioDrainCallback  uintptr
}

var (
	libOnce    sync.Once
	libAPI     *libvlcAPI
	libInitErr error
)

// openLibVLC resolves the native table. Tests replace it with a fake.
var openLibVLC = func() (*libvlcAPI, error) {
	libOnce.Do(func() {
		libAPI, libInitErr = loadLibVLC()
		if libInitErr != nil {
			logger().Debugf("libvlc not loaded: %v", libInitErr)
		}
	})
	return libAPI, libInitErr
}

func nativeAPI() (*libvlcAPI, error) {
	api, err := openLibVLC()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAvailable, err)
	}
	return api, nil
}

// IsAvailable reports whether libvlc could be loaded.
func IsAvailable() bool {
	_, err := openLibVLC()
	return err == nil
}

// Version returns the libvlc version string, or "" when libvlc is missing.
func Version() string {
	return staticString(func(api *libvlcAPI) uintptr { return api.getVersion() })
}

// Compiler returns the compiler used to build libvlc.
func Compiler() string {
	return staticString(func(api *libvlcAPI) uintptr { return api.getCompiler() })
}

// Changeset returns the libvlc source changeset.
func Changeset() string {
	return staticString(func(api *libvlcAPI) uintptr { return api.getChangeset() })
}

func staticString(get func(*libvlcAPI) uintptr) string {
	api, err := nativeAPI()
	if err != nil {
		return ""
	}
	s, _ := fromNativeBorrowed(get(api))
	return s
}

// Clock returns the libvlc clock in microseconds.
func Clock() (int64, error) {
	api, err := nativeAPI()
	if err != nil {
		return 0, err
	}
	return api.clock(), nil
}

// Delay returns the time in microseconds until pts, relative to Clock.
func Delay(pts int64) (int64, error) {
	now, err := Clock()
	if err != nil {
		return 0, err
	}
	return pts - now, nil
}

// EventTypeName asks libvlc for the name of an event type.
func EventTypeName(t EventType) (string, bool) {
	api, err := nativeAPI()
	if err != nil {
		return "", false
	}
	return fromNativeBorrowed(api.eventTypeName(int32(t)))
}
