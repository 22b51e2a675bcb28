package vlc

import "fmt"

// Media is a playable item: a file, a network stream or a list node.
type Media struct {
	h   *nativeHandle
	api *libvlcAPI
}

// newMedia takes ownership of one native reference to ptr.
func newMedia(api *libvlcAPI, ptr uintptr) (*Media, error) {
	h, err := newHandle("media", ptr, api.mediaRelease)
	if err != nil {
		return nil, err
	}
	return &Media{h: h, api: api}, nil
}

// NewMediaLocation creates a media from an MRL such as
// "file:///tmp/a.mkv" or "rtsp://host/stream".
func (i *Instance) NewMediaLocation(mrl string) (*Media, error) {
	return i.newMediaFromString(mrl, i.api.mediaNewLocation)
}

// NewMediaPath creates a media from a local filesystem path.
func (i *Instance) NewMediaPath(path string) (*Media, error) {
	return i.newMediaFromString(path, i.api.mediaNewPath)
}

// NewMediaAsNode creates an empty media to be used as a list node.
func (i *Instance) NewMediaAsNode(name string) (*Media, error) {
	return i.newMediaFromString(name, i.api.mediaNewAsNode)
}

// NewMediaFD creates a media reading from an open file descriptor. The
// descriptor is not closed by libvlc.
func (i *Instance) NewMediaFD(fd int) (*Media, error) {
	var md uintptr
	if err := i.h.with(func(ptr uintptr) { md = i.api.mediaNewFD(ptr, int32(fd)) }); err != nil {
		return nil, err
	}
	return newMedia(i.api, md)
}

func (i *Instance) newMediaFromString(s string, create func(inst, s uintptr) uintptr) (*Media, error) {
	cs, err := toNative(s)
	if err != nil {
		return nil, fmt.Errorf("create media: %w", err)
	}
	var md uintptr
	err = i.h.with(func(ptr uintptr) { md = create(ptr, cs.ptr()) })
	cs.keepAlive()
	if err != nil {
		return nil, err
	}
	return newMedia(i.api, md)
}

// Close releases this reference to the media.
func (m *Media) Close() error {
	m.h.close()
	return nil
}

// Retain returns a second, independently closable owner of the media.
func (m *Media) Retain() (*Media, error) {
	var md uintptr
	if err := m.h.with(func(ptr uintptr) { m.api.mediaRetain(ptr); md = ptr }); err != nil {
		return nil, err
	}
	return newMedia(m.api, md)
}

// Duplicate creates an independent copy of the media item.
func (m *Media) Duplicate() (*Media, error) {
	var dup uintptr
	if err := m.h.with(func(ptr uintptr) { dup = m.api.mediaDuplicate(ptr) }); err != nil {
		return nil, err
	}
	return newMedia(m.api, dup)
}

// withString marshals s and runs fn with the media and string pointers.
func (m *Media) withString(s string, fn func(md, cs uintptr)) error {
	cs, err := toNative(s)
	if err != nil {
		return err
	}
	err = m.h.with(func(ptr uintptr) { fn(ptr, cs.ptr()) })
	cs.keepAlive()
	return err
}

// AddOption adds an input option such as ":no-audio".
func (m *Media) AddOption(option string) error {
	return m.withString(option, m.api.mediaAddOption)
}

// AddOptionFlag adds an input option with explicit flags.
func (m *Media) AddOptionFlag(option string, flags MediaOptionFlag) error {
	return m.withString(option, func(md, opt uintptr) { m.api.mediaAddOptionFlag(md, opt, uint32(flags)) })
}

// MRL returns the media resource locator, or "" if libvlc has none.
func (m *Media) MRL() (string, error) {
	var s string
	err := m.h.with(func(ptr uintptr) { s, _ = fromNativeOwned(m.api, m.api.mediaGetMRL(ptr)) })
	return s, err
}

// Meta reads a metadata field. ok is false when the field is not set.
func (m *Media) Meta(field Meta) (value string, ok bool, err error) {
	err = m.h.with(func(ptr uintptr) {
		value, ok = fromNativeOwned(m.api, m.api.mediaGetMeta(ptr, int32(field)))
	})
	return value, ok, err
}

// SetMeta changes a metadata field in memory. Call SaveMeta to persist it.
func (m *Media) SetMeta(field Meta, value string) error {
	return m.withString(value, func(md, cv uintptr) { m.api.mediaSetMeta(md, int32(field), cv) })
}

// SaveMeta writes changed metadata back to the media.
func (m *Media) SaveMeta() error {
	var rc int32
	if err := m.h.with(func(ptr uintptr) { rc = m.api.mediaSaveMeta(ptr) }); err != nil {
		return err
	}
	// returns non-zero on success
	if rc == 0 {
		return fmt.Errorf("save meta: %w", ErrOperationFailed)
	}
	return nil
}

// State returns the current state of the media.
func (m *Media) State() (State, error) {
	state := StateError
	err := m.h.with(func(ptr uintptr) { state = State(m.api.mediaGetState(ptr)) })
	return state, err
}

// Duration returns the duration in milliseconds. ok is false until the
// media has been parsed or when libvlc cannot tell.
func (m *Media) Duration() (ms int64, ok bool) {
	d := int64(-1)
	m.h.with(func(ptr uintptr) { d = m.api.mediaGetDuration(ptr) })
	if d == -1 {
		return 0, false
	}
	return d, true
}

// Parse reads metadata and tracks synchronously.
func (m *Media) Parse() error {
	return m.h.with(m.api.mediaParse)
}

// ParseAsync starts parsing in the background. Completion is reported by
// a MediaParsedChanged event.
func (m *Media) ParseAsync() error {
	return m.h.with(m.api.mediaParseAsync)
}

// IsParsed reports whether the media has been parsed.
func (m *Media) IsParsed() bool {
	var parsed int32
	m.h.with(func(ptr uintptr) { parsed = m.api.mediaIsParsed(ptr) })
	return parsed != 0
}

// SubItems returns the list of sub-items, for example the entries of a
// playlist file.
func (m *Media) SubItems() (*MediaList, error) {
	var ml uintptr
	if err := m.h.with(func(ptr uintptr) { ml = m.api.mediaSubitems(ptr) }); err != nil {
		return nil, err
	}
	return newMediaList(m.api, ml)
}

// EventManager returns the media's event source.
func (m *Media) EventManager() (*EventManager, error) {
	return newEventManager(m.h, m.api, m.api.mediaEventManager)
}
