package vlc

import (
	"fmt"
	"time"
)

// MediaPlayer plays one media at a time.
type MediaPlayer struct {
	h   *nativeHandle
	api *libvlcAPI
}

func newMediaPlayer(api *libvlcAPI, ptr uintptr) (*MediaPlayer, error) {
	h, err := newHandle("media player", ptr, api.playerRelease)
	if err != nil {
		return nil, err
	}
	return &MediaPlayer{h: h, api: api}, nil
}

// NewMediaPlayer creates an empty player.
func (i *Instance) NewMediaPlayer() (*MediaPlayer, error) {
	var mp uintptr
	if err := i.h.with(func(ptr uintptr) { mp = i.api.playerNew(ptr) }); err != nil {
		return nil, err
	}
	return newMediaPlayer(i.api, mp)
}

// NewMediaPlayerFromMedia creates a player for md. The player takes its
// own reference; md can be closed independently.
func NewMediaPlayerFromMedia(md *Media) (*MediaPlayer, error) {
	var mp uintptr
	if err := md.h.with(func(ptr uintptr) { mp = md.api.playerNewFromMedia(ptr) }); err != nil {
		return nil, err
	}
	return newMediaPlayer(md.api, mp)
}

// Close releases this reference to the player.
func (p *MediaPlayer) Close() error {
	p.h.close()
	return nil
}

// Retain returns a second, independently closable owner of the player.
func (p *MediaPlayer) Retain() (*MediaPlayer, error) {
	var mp uintptr
	if err := p.h.with(func(ptr uintptr) { p.api.playerRetain(ptr); mp = ptr }); err != nil {
		return nil, err
	}
	return newMediaPlayer(p.api, mp)
}

// SetMedia replaces the player's media. A nil md clears it.
func (p *MediaPlayer) SetMedia(md *Media) error {
	if md == nil {
		return p.h.with(func(ptr uintptr) { p.api.playerSetMedia(ptr, 0) })
	}
	var inner error
	err := md.h.with(func(mdPtr uintptr) {
		inner = p.h.with(func(ptr uintptr) { p.api.playerSetMedia(ptr, mdPtr) })
	})
	if err != nil {
		return err
	}
	return inner
}

// Media returns a new reference to the current media, or nil if none.
func (p *MediaPlayer) Media() (*Media, error) {
	var md uintptr
	if err := p.h.with(func(ptr uintptr) { md = p.api.playerGetMedia(ptr) }); err != nil {
		return nil, err
	}
	if md == 0 {
		return nil, nil
	}
	return newMedia(p.api, md)
}

// EventManager returns the player's event source.
func (p *MediaPlayer) EventManager() (*EventManager, error) {
	return newEventManager(p.h, p.api, p.api.playerEventManager)
}

// Play starts playback.
func (p *MediaPlayer) Play() error {
	var rc int32
	if err := p.h.with(func(ptr uintptr) { rc = p.api.playerPlay(ptr) }); err != nil {
		return err
	}
	return checkResult("play", rc)
}

// SetPause pauses or resumes. It has no effect without media.
func (p *MediaPlayer) SetPause(pause bool) error {
	return p.h.with(func(ptr uintptr) { p.api.playerSetPause(ptr, boolToInt(pause)) })
}

// Pause toggles pause.
func (p *MediaPlayer) Pause() error {
	return p.h.with(p.api.playerPause)
}

// Stop stops playback. It must not be called from an event callback of
// the same player.
func (p *MediaPlayer) Stop() error {
	return p.h.with(p.api.playerStop)
}

// NextFrame displays the next video frame, when supported.
func (p *MediaPlayer) NextFrame() error {
	return p.h.with(p.api.playerNextFrame)
}

// flag runs a boolean getter; a released player reports false.
func (p *MediaPlayer) flag(get func(uintptr) int32) bool {
	var v int32
	p.h.with(func(ptr uintptr) { v = get(ptr) })
	return v != 0
}

// IsPlaying reports whether the player is playing.
func (p *MediaPlayer) IsPlaying() bool {
	return p.flag(p.api.playerIsPlaying)
}

// WillPlay reports whether the player is able to play.
func (p *MediaPlayer) WillPlay() bool {
	return p.flag(p.api.playerWillPlay)
}

// IsSeekable reports whether the current media supports seeking.
func (p *MediaPlayer) IsSeekable() bool {
	return p.flag(p.api.playerIsSeekable)
}

// CanPause reports whether the current media can be paused.
func (p *MediaPlayer) CanPause() bool {
	return p.flag(p.api.playerCanPause)
}

// State returns the player state.
func (p *MediaPlayer) State() (State, error) {
	state := StateError
	err := p.h.with(func(ptr uintptr) { state = State(p.api.playerGetState(ptr)) })
	return state, err
}

// Length returns the media length. ok is false when there is no media or
// the length is unknown.
func (p *MediaPlayer) Length() (time.Duration, bool) {
	return p.millis(p.api.playerGetLength)
}

// Time returns the playback time. ok is false when there is no media.
func (p *MediaPlayer) Time() (time.Duration, bool) {
	return p.millis(p.api.playerGetTime)
}

func (p *MediaPlayer) millis(get func(uintptr) int64) (time.Duration, bool) {
	ms := int64(-1)
	p.h.with(func(ptr uintptr) { ms = get(ptr) })
	if ms == -1 {
		return 0, false
	}
	return time.Duration(ms) * time.Millisecond, true
}

// SetTime seeks to t. It has no effect if the media is not seekable.
func (p *MediaPlayer) SetTime(t time.Duration) error {
	return p.h.with(func(ptr uintptr) { p.api.playerSetTime(ptr, t.Milliseconds()) })
}

// Position returns the playback position in [0, 1]. ok is false when
// there is no media.
func (p *MediaPlayer) Position() (float32, bool) {
	pos := float32(-1)
	p.h.with(func(ptr uintptr) { pos = p.api.playerGetPosition(ptr) })
	if pos == -1 {
		return 0, false
	}
	return pos, true
}

// SetPosition seeks to pos in [0, 1].
func (p *MediaPlayer) SetPosition(pos float32) error {
	return p.h.with(func(ptr uintptr) { p.api.playerSetPosition(ptr, pos) })
}

// Rate returns the requested playback rate.
func (p *MediaPlayer) Rate() (float32, error) {
	var rate float32
	err := p.h.with(func(ptr uintptr) { rate = p.api.playerGetRate(ptr) })
	return rate, err
}

// SetRate changes the playback rate. Not every rate is supported by every
// input.
func (p *MediaPlayer) SetRate(rate float32) error {
	var rc int32
	if err := p.h.with(func(ptr uintptr) { rc = p.api.playerSetRate(ptr, rate) }); err != nil {
		return err
	}
	return checkResult("set rate", rc)
}

// SetXWindow renders video into an X11 window.
func (p *MediaPlayer) SetXWindow(drawable uint32) error {
	return p.h.with(func(ptr uintptr) { p.api.playerSetXWindow(ptr, drawable) })
}

// XWindow returns the X11 window set with SetXWindow, or 0.
func (p *MediaPlayer) XWindow() uint32 {
	var xid uint32
	p.h.with(func(ptr uintptr) { xid = p.api.playerGetXWindow(ptr) })
	return xid
}

// SetHWND renders video into a Win32 window handle.
func (p *MediaPlayer) SetHWND(drawable uintptr) error {
	return p.h.with(func(ptr uintptr) { p.api.playerSetHWND(ptr, drawable) })
}

// HWND returns the window handle set with SetHWND, or 0.
func (p *MediaPlayer) HWND() uintptr {
	var hwnd uintptr
	p.h.with(func(ptr uintptr) { hwnd = p.api.playerGetHWND(ptr) })
	return hwnd
}

// SetNSObject renders video into an NSView.
func (p *MediaPlayer) SetNSObject(drawable uintptr) error {
	return p.h.with(func(ptr uintptr) { p.api.playerSetNSObject(ptr, drawable) })
}

// NSObject returns the NSView set with SetNSObject, or 0.
func (p *MediaPlayer) NSObject() uintptr {
	var view uintptr
	p.h.with(func(ptr uintptr) { view = p.api.playerGetNSObject(ptr) })
	return view
}

func (p *MediaPlayer) String() string {
	state, err := p.State()
	if err != nil {
		return "vlc.MediaPlayer(released)"
	}
	return fmt.Sprintf("vlc.MediaPlayer(%s)", state)
}

func boolToInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
