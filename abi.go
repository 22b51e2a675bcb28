package vlc

import "unsafe"

// Go mirrors of libvlc 3.0 structures on 64-bit targets. Only the fields
// this package reads are named; padding follows the C layout.

// rawEvent mirrors libvlc_event_t. The union u starts at offset 16.
type rawEvent struct {
	Type int32
	_    int32
	Obj  uintptr
	U    [2]uint64
}

// union returns the address of byte off inside the event union.
func (e *rawEvent) union(off uintptr) unsafe.Pointer {
	return unsafe.Add(unsafe.Pointer(&e.U), off)
}

func (e *rawEvent) int32At(off uintptr) int32 {
	return *(*int32)(e.union(off))
}

func (e *rawEvent) int64At(off uintptr) int64 {
	return *(*int64)(e.union(off))
}

func (e *rawEvent) float32At(off uintptr) float32 {
	return *(*float32)(e.union(off))
}

func (e *rawEvent) ptrAt(off uintptr) uintptr {
	return *(*uintptr)(e.union(off))
}

// rawMediaTrack mirrors libvlc_media_track_t.
type rawMediaTrack struct {
	Codec          uint32
	OriginalFourCC uint32
	ID             int32
	Type           int32
	Profile        int32
	Level          int32
	Detail         uintptr // audio, video or subtitle pointer, by Type
	Bitrate        uint32
	_              uint32
	Language       uintptr
	Description    uintptr
}

// rawAudioTrack mirrors libvlc_audio_track_t.
type rawAudioTrack struct {
	Channels uint32
	Rate     uint32
}

// rawVideoTrack mirrors libvlc_video_track_t.
type rawVideoTrack struct {
	Height       uint32
	Width        uint32
	SarNum       uint32
	SarDen       uint32
	FrameRateNum uint32
	FrameRateDen uint32
}

// rawSubtitleTrack mirrors libvlc_subtitle_track_t.
type rawSubtitleTrack struct {
	Encoding uintptr
}

// rawModuleDescription mirrors libvlc_module_description_t.
type rawModuleDescription struct {
	Name      uintptr
	ShortName uintptr
	LongName  uintptr
	Help      uintptr
	Next      uintptr
}

// structAt reinterprets a native address as *T. The caller guarantees
// that ptr is non-zero and points at a live T.
func structAt[T any](ptr uintptr) *T {
	return (*T)(unsafe.Pointer(ptr))
}
