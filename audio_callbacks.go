package vlc

import (
	"bytes"
	"fmt"
	"unsafe"
)

// AudioCallbacks receives decoded audio instead of an audio output. Play is
// required; the rest may be nil. All of them run on libvlc's audio thread.
type AudioCallbacks struct {
	// Play receives count interleaved frames. The slice is a copy owned by
	// the callee.
	Play   func(samples []byte, count uint32, pts int64)
	Pause  func(pts int64)
	Resume func(pts int64)
	Flush  func(pts int64)
	Drain  func()
}

type audioSink struct {
	cbs       AudioCallbacks
	frameSize int
}

// SetAudioCallbacks redirects the player's decoded audio to cbs in the given
// format. It must be called before Play. Replacing callbacks leaves the
// previous registration in place for the life of the process.
func (p *MediaPlayer) SetAudioCallbacks(format AudioFormat, rate, channels uint32, cbs AudioCallbacks) error {
	if cbs.Play == nil {
		return fmt.Errorf("set audio callbacks: nil Play")
	}
	sampleSize := format.sampleSize()
	if sampleSize == 0 {
		return fmt.Errorf("set audio callbacks: unsupported format %q", format)
	}
	if channels == 0 {
		return fmt.Errorf("set audio callbacks: zero channels")
	}
	fourcc, err := toNative(string(format))
	if err != nil {
		return err
	}

	id := registry.add(&registration{
		kind:  callbackAudio,
		audio: &audioSink{cbs: cbs, frameSize: sampleSize * int(channels)},
	})

	optional := func(set bool, cb uintptr) uintptr {
		if set {
			return cb
		}
		return 0
	}
	err = p.h.with(func(ptr uintptr) {
		p.api.audioSetCallbacks(ptr,
			p.api.audioPlayCallback,
			optional(cbs.Pause != nil, p.api.audioPauseCallback),
			optional(cbs.Resume != nil, p.api.audioResumeCallback),
			optional(cbs.Flush != nil, p.api.audioFlushCallback),
			optional(cbs.Drain != nil, p.api.audioDrainCallback),
			id)
		p.api.audioSetFormat(ptr, fourcc.ptr(), rate, channels)
	})
	fourcc.keepAlive()
	if err != nil {
		registry.remove(id)
	}
	return err
}

func audioSinkFor(data uintptr) *audioSink {
	reg, ok := registry.get(data)
	if !ok {
		return nil
	}
	return reg.audio
}

func audioPlayTrampoline(data, samples uintptr, count uint32, pts int64) {
	defer recoverFault(callbackAudio, 0)
	sink := audioSinkFor(data)
	if sink == nil {
		return
	}
	var buf []byte
	if samples != 0 && count > 0 {
		n := int(count) * sink.frameSize
		buf = bytes.Clone(unsafe.Slice((*byte)(unsafe.Pointer(samples)), n))
	}
	sink.cbs.Play(buf, count, pts)
}

func audioPauseTrampoline(data uintptr, pts int64) {
	defer recoverFault(callbackAudio, 0)
	if sink := audioSinkFor(data); sink != nil && sink.cbs.Pause != nil {
		sink.cbs.Pause(pts)
	}
}

func audioResumeTrampoline(data uintptr, pts int64) {
	defer recoverFault(callbackAudio, 0)
	if sink := audioSinkFor(data); sink != nil && sink.cbs.Resume != nil {
		sink.cbs.Resume(pts)
	}
}

func audioFlushTrampoline(data uintptr, pts int64) {
	defer recoverFault(callbackAudio, 0)
	if sink := audioSinkFor(data); sink != nil && sink.cbs.Flush != nil {
		sink.cbs.Flush(pts)
	}
}

func audioDrainTrampoline(data uintptr) {
	defer recoverFault(callbackAudio, 0)
	if sink := audioSinkFor(data); sink != nil && sink.cbs.Drain != nil {
		sink.cbs.Drain()
	}
}
