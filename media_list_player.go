package vlc

// MediaListPlayer plays the items of a MediaList through a MediaPlayer.
type MediaListPlayer struct {
	h   *nativeHandle
	api *libvlcAPI
}

func newMediaListPlayer(api *libvlcAPI, ptr uintptr) (*MediaListPlayer, error) {
	h, err := newHandle("media list player", ptr, api.listPlayerRelease)
	if err != nil {
		return nil, err
	}
	return &MediaListPlayer{h: h, api: api}, nil
}

// NewMediaListPlayer creates a list player with its own media player.
func (i *Instance) NewMediaListPlayer() (*MediaListPlayer, error) {
	var mlp uintptr
	if err := i.h.with(func(ptr uintptr) { mlp = i.api.listPlayerNew(ptr) }); err != nil {
		return nil, err
	}
	return newMediaListPlayer(i.api, mlp)
}

// Close releases this reference to the list player.
func (lp *MediaListPlayer) Close() error {
	lp.h.close()
	return nil
}

// Retain returns a second, independently closable owner.
func (lp *MediaListPlayer) Retain() (*MediaListPlayer, error) {
	var mlp uintptr
	if err := lp.h.with(func(ptr uintptr) { lp.api.listPlayerRetain(ptr); mlp = ptr }); err != nil {
		return nil, err
	}
	return newMediaListPlayer(lp.api, mlp)
}

// EventManager returns the list player's event source.
func (lp *MediaListPlayer) EventManager() (*EventManager, error) {
	return newEventManager(lp.h, lp.api, lp.api.listPlayerEventManager)
}

// withOther runs set with the list player pointer and other's pointer.
func (lp *MediaListPlayer) withOther(other *nativeHandle, set func(ptr, otherPtr uintptr)) error {
	var inner error
	err := lp.h.with(func(ptr uintptr) {
		inner = other.with(func(otherPtr uintptr) { set(ptr, otherPtr) })
	})
	if err != nil {
		return err
	}
	return inner
}

// SetMediaPlayer replaces the player used for output. The list player
// takes its own reference.
func (lp *MediaListPlayer) SetMediaPlayer(mp *MediaPlayer) error {
	return lp.withOther(mp.h, lp.api.listPlayerSetMediaPlayer)
}

// SetMediaList sets the list to play. The list player takes its own
// reference.
func (lp *MediaListPlayer) SetMediaList(ml *MediaList) error {
	return lp.withOther(ml.h, lp.api.listPlayerSetMediaList)
}

// Play starts playing the list.
func (lp *MediaListPlayer) Play() error {
	return lp.h.with(lp.api.listPlayerPlay)
}

// Pause toggles pause.
func (lp *MediaListPlayer) Pause() error {
	return lp.h.with(lp.api.listPlayerPause)
}

// Stop stops playback.
func (lp *MediaListPlayer) Stop() error {
	return lp.h.with(lp.api.listPlayerStop)
}

// IsPlaying reports whether the list player is playing.
func (lp *MediaListPlayer) IsPlaying() bool {
	var playing int32
	lp.h.with(func(ptr uintptr) { playing = lp.api.listPlayerIsPlaying(ptr) })
	return playing != 0
}

// State returns the list player state.
func (lp *MediaListPlayer) State() (State, error) {
	state := StateError
	err := lp.h.with(func(ptr uintptr) { state = State(lp.api.listPlayerGetState(ptr)) })
	return state, err
}

func (lp *MediaListPlayer) check(op string, fn func(uintptr) int32) error {
	var rc int32
	if err := lp.h.with(func(ptr uintptr) { rc = fn(ptr) }); err != nil {
		return err
	}
	return checkResult(op, rc)
}

// PlayItemAt plays the item at index.
func (lp *MediaListPlayer) PlayItemAt(index int) error {
	return lp.check("play item", func(ptr uintptr) int32 { return lp.api.listPlayerPlayItemAtIndex(ptr, int32(index)) })
}

// Next plays the next item.
func (lp *MediaListPlayer) Next() error {
	return lp.check("next", lp.api.listPlayerNext)
}

// Previous plays the previous item.
func (lp *MediaListPlayer) Previous() error {
	return lp.check("previous", lp.api.listPlayerPrevious)
}

// SetPlaybackMode selects how the list advances.
func (lp *MediaListPlayer) SetPlaybackMode(mode PlaybackMode) error {
	return lp.h.with(func(ptr uintptr) { lp.api.listPlayerSetPlaybackMode(ptr, int32(mode)) })
}
