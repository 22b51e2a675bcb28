package vlc

// Mute reports whether audio is muted. ok is false when the player has no
// audio output to ask.
func (p *MediaPlayer) Mute() (muted, ok bool) {
	status := int32(-1)
	p.h.with(func(ptr uintptr) { status = p.api.audioGetMute(ptr) })
	switch status {
	case -1:
		return false, false
	case 0:
		return false, true
	default:
		return true, true
	}
}

// SetMute mutes or unmutes audio. libvlc may ignore the request when there
// is no active audio output.
func (p *MediaPlayer) SetMute(mute bool) error {
	return p.h.with(func(ptr uintptr) { p.api.audioSetMute(ptr, boolToInt(mute)) })
}

// Volume returns the software volume in percent. ok is false when the
// volume is unknown.
func (p *MediaPlayer) Volume() (int, bool) {
	v := int32(-1)
	p.h.with(func(ptr uintptr) { v = p.api.audioGetVolume(ptr) })
	if v == -1 {
		return 0, false
	}
	return int(v), true
}

// SetVolume sets the software volume in percent, 0 to 200.
func (p *MediaPlayer) SetVolume(volume int) error {
	var rc int32
	if err := p.h.with(func(ptr uintptr) { rc = p.api.audioSetVolume(ptr, int32(volume)) }); err != nil {
		return err
	}
	return checkResult("set volume", rc)
}
