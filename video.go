package vlc

import (
	"fmt"
	"runtime"
	"unsafe"
)

// ToggleFullscreen toggles fullscreen on non-embedded video outputs.
func (p *MediaPlayer) ToggleFullscreen() error {
	return p.h.with(p.api.toggleFullscreen)
}

// SetFullscreen enables or disables fullscreen.
func (p *MediaPlayer) SetFullscreen(on bool) error {
	return p.h.with(func(ptr uintptr) { p.api.setFullscreen(ptr, boolToInt(on)) })
}

// Fullscreen reports whether fullscreen is enabled.
func (p *MediaPlayer) Fullscreen() bool {
	var on int32
	p.h.with(func(ptr uintptr) { on = p.api.getFullscreen(ptr) })
	return on != 0
}

// SetKeyInput controls whether the video window handles keyboard events.
func (p *MediaPlayer) SetKeyInput(on bool) error {
	return p.h.with(func(ptr uintptr) { p.api.videoSetKeyInput(ptr, uint32(boolToInt(on))) })
}

// SetMouseInput controls whether the video window handles mouse events.
func (p *MediaPlayer) SetMouseInput(on bool) error {
	return p.h.with(func(ptr uintptr) { p.api.videoSetMouseInput(ptr, uint32(boolToInt(on))) })
}

// VideoSize returns the pixel dimensions of video output num. ok is false
// when there is no such output.
func (p *MediaPlayer) VideoSize(num uint32) (width, height uint32, ok bool) {
	x, y, ok := p.videoPair(num, p.api.videoGetSize)
	return uint32(x), uint32(y), ok
}

// Cursor returns the mouse position inside video output num, in video
// coordinates. ok is false when the position is unknown.
func (p *MediaPlayer) Cursor(num uint32) (x, y int32, ok bool) {
	return p.videoPair(num, p.api.videoGetCursor)
}

func (p *MediaPlayer) videoPair(num uint32, get func(mp uintptr, num uint32, px, py uintptr) int32) (int32, int32, bool) {
	var pinner runtime.Pinner
	defer pinner.Unpin()
	out := pinned[[2]int32](&pinner)

	rc := int32(-1)
	p.h.with(func(ptr uintptr) {
		rc = get(ptr, num, uintptr(unsafe.Pointer(&out[0])), uintptr(unsafe.Pointer(&out[1])))
	})
	if rc == -1 {
		return 0, 0, false
	}
	return out[0], out[1], true
}

// Scale returns the video scaling factor; 0 means fit to window.
func (p *MediaPlayer) Scale() (float32, error) {
	var factor float32
	err := p.h.with(func(ptr uintptr) { factor = p.api.videoGetScale(ptr) })
	return factor, err
}

// SetScale sets the video scaling factor; 0 fits to window.
func (p *MediaPlayer) SetScale(factor float32) error {
	return p.h.with(func(ptr uintptr) { p.api.videoSetScale(ptr, factor) })
}

// VideoTrack returns the ID of the current video track. ok is false when
// no video track is selected.
func (p *MediaPlayer) VideoTrack() (int32, bool) {
	id := int32(-1)
	p.h.with(func(ptr uintptr) { id = p.api.videoGetTrack(ptr) })
	if id == -1 {
		return 0, false
	}
	return id, true
}

// SetVideoTrack selects a video track by ID; -1 disables video.
func (p *MediaPlayer) SetVideoTrack(id int32) error {
	var rc int32
	if err := p.h.with(func(ptr uintptr) { rc = p.api.videoSetTrack(ptr, id) }); err != nil {
		return err
	}
	return checkResult("set video track", rc)
}

// AdjustInt reads an integer adjust filter parameter.
func (p *MediaPlayer) AdjustInt(option VideoAdjustOption) (int32, error) {
	var v int32
	err := p.h.with(func(ptr uintptr) { v = p.api.videoGetAdjustInt(ptr, uint32(option)) })
	return v, err
}

// SetAdjustInt sets an integer adjust filter parameter.
func (p *MediaPlayer) SetAdjustInt(option VideoAdjustOption, value int32) error {
	return p.h.with(func(ptr uintptr) { p.api.videoSetAdjustInt(ptr, uint32(option), value) })
}

// AdjustFloat reads a floating point adjust filter parameter.
func (p *MediaPlayer) AdjustFloat(option VideoAdjustOption) (float32, error) {
	var v float32
	err := p.h.with(func(ptr uintptr) { v = p.api.videoGetAdjustFloat(ptr, uint32(option)) })
	return v, err
}

// SetAdjustFloat sets a floating point adjust filter parameter.
func (p *MediaPlayer) SetAdjustFloat(option VideoAdjustOption, value float32) error {
	return p.h.with(func(ptr uintptr) { p.api.videoSetAdjustFloat(ptr, uint32(option), value) })
}

// TakeSnapshot writes a PNG of video output num to path. A zero width or
// height keeps the aspect ratio; both zero keep the original size. The
// file name is reported by a MediaPlayerSnapshotTaken event.
func (p *MediaPlayer) TakeSnapshot(num uint32, path string, width, height uint32) error {
	cpath, err := toNative(path)
	if err != nil {
		return err
	}
	var rc int32
	err = p.h.with(func(ptr uintptr) { rc = p.api.videoTakeSnapshot(ptr, num, cpath.ptr(), width, height) })
	cpath.keepAlive()
	if err != nil {
		return err
	}
	if rc != 0 {
		return fmt.Errorf("take snapshot %s: %w", path, ErrOperationFailed)
	}
	return nil
}

// AspectRatio returns the forced aspect ratio, or "" when none is set.
func (p *MediaPlayer) AspectRatio() (string, error) {
	var s string
	err := p.h.with(func(ptr uintptr) { s, _ = fromNativeOwned(p.api, p.api.videoGetAspectRatio(ptr)) })
	return s, err
}

// SetAspectRatio forces an aspect ratio such as "16:9". An empty string
// restores the default.
func (p *MediaPlayer) SetAspectRatio(aspect string) error {
	var caspect cString
	if aspect != "" {
		var err error
		if caspect, err = toNative(aspect); err != nil {
			return err
		}
	}
	err := p.h.with(func(ptr uintptr) { p.api.videoSetAspectRatio(ptr, caspect.ptr()) })
	caspect.keepAlive()
	return err
}
