package vlc

// MediaLibrary is libvlc's persistent media collection.
type MediaLibrary struct {
	h   *nativeHandle
	api *libvlcAPI
}

func newMediaLibrary(api *libvlcAPI, ptr uintptr) (*MediaLibrary, error) {
	h, err := newHandle("media library", ptr, api.libraryRelease)
	if err != nil {
		return nil, err
	}
	return &MediaLibrary{h: h, api: api}, nil
}

// NewMediaLibrary creates a media library handle. Call Load before
// reading it.
func (i *Instance) NewMediaLibrary() (*MediaLibrary, error) {
	var lib uintptr
	if err := i.h.with(func(ptr uintptr) { lib = i.api.libraryNew(ptr) }); err != nil {
		return nil, err
	}
	return newMediaLibrary(i.api, lib)
}

// Close releases this reference to the library.
func (ml *MediaLibrary) Close() error {
	ml.h.close()
	return nil
}

// Retain returns a second, independently closable owner.
func (ml *MediaLibrary) Retain() (*MediaLibrary, error) {
	var lib uintptr
	if err := ml.h.with(func(ptr uintptr) { ml.api.libraryRetain(ptr); lib = ptr }); err != nil {
		return nil, err
	}
	return newMediaLibrary(ml.api, lib)
}

// Load reads the library from disk.
func (ml *MediaLibrary) Load() error {
	var rc int32
	if err := ml.h.with(func(ptr uintptr) { rc = ml.api.libraryLoad(ptr) }); err != nil {
		return err
	}
	return checkResult("load media library", rc)
}

// MediaList returns a new reference to the library contents.
func (ml *MediaLibrary) MediaList() (*MediaList, error) {
	var list uintptr
	if err := ml.h.with(func(ptr uintptr) { list = ml.api.libraryMediaList(ptr) }); err != nil {
		return nil, err
	}
	return newMediaList(ml.api, list)
}
