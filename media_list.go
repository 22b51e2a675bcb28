package vlc

import "fmt"

// MediaList is an ordered list of media. Mutations take the native list
// lock for the duration of the call.
type MediaList struct {
	h   *nativeHandle
	api *libvlcAPI
}

func newMediaList(api *libvlcAPI, ptr uintptr) (*MediaList, error) {
	h, err := newHandle("media list", ptr, api.listRelease)
	if err != nil {
		return nil, err
	}
	return &MediaList{h: h, api: api}, nil
}

// NewMediaList creates an empty list.
func (i *Instance) NewMediaList() (*MediaList, error) {
	var ml uintptr
	if err := i.h.with(func(ptr uintptr) { ml = i.api.listNew(ptr) }); err != nil {
		return nil, err
	}
	return newMediaList(i.api, ml)
}

// Close releases this reference to the list.
func (l *MediaList) Close() error {
	l.h.close()
	return nil
}

// Retain returns a second, independently closable owner of the list.
func (l *MediaList) Retain() (*MediaList, error) {
	var ml uintptr
	if err := l.h.with(func(ptr uintptr) { l.api.listRetain(ptr); ml = ptr }); err != nil {
		return nil, err
	}
	return newMediaList(l.api, ml)
}

// locked runs fn with the native list lock held.
func (l *MediaList) locked(fn func(ptr uintptr)) error {
	return l.h.with(func(ptr uintptr) {
		l.api.listLock(ptr)
		defer l.api.listUnlock(ptr)
		fn(ptr)
	})
}

// lockedWith runs fn under the list lock with md's pointer.
func (l *MediaList) lockedWith(md *Media, fn func(ptr, mdPtr uintptr)) error {
	var inner error
	err := md.h.with(func(mdPtr uintptr) {
		inner = l.locked(func(ptr uintptr) { fn(ptr, mdPtr) })
	})
	if err != nil {
		return err
	}
	return inner
}

// Add appends md. The list takes its own reference.
func (l *MediaList) Add(md *Media) error {
	var rc int32
	if err := l.lockedWith(md, func(ptr, mdPtr uintptr) { rc = l.api.listAddMedia(ptr, mdPtr) }); err != nil {
		return err
	}
	return checkResult("add media", rc)
}

// Insert places md at index pos.
func (l *MediaList) Insert(md *Media, pos int) error {
	var rc int32
	if err := l.lockedWith(md, func(ptr, mdPtr uintptr) { rc = l.api.listInsertMedia(ptr, mdPtr, int32(pos)) }); err != nil {
		return err
	}
	return checkResult("insert media", rc)
}

// Remove deletes the item at index pos.
func (l *MediaList) Remove(pos int) error {
	var rc int32
	if err := l.locked(func(ptr uintptr) { rc = l.api.listRemoveIndex(ptr, int32(pos)) }); err != nil {
		return err
	}
	return checkResult(fmt.Sprintf("remove index %d", pos), rc)
}

// Count returns the number of items.
func (l *MediaList) Count() (int, error) {
	var n int32
	err := l.locked(func(ptr uintptr) { n = l.api.listCount(ptr) })
	return int(n), err
}

// At returns a new reference to the item at index pos.
func (l *MediaList) At(pos int) (*Media, error) {
	var md uintptr
	if err := l.locked(func(ptr uintptr) { md = l.api.listItemAtIndex(ptr, int32(pos)) }); err != nil {
		return nil, err
	}
	if md == 0 {
		return nil, fmt.Errorf("media list index %d: %w", pos, ErrOperationFailed)
	}
	return newMedia(l.api, md)
}

// IndexOf returns the position of md. ok is false when it is not in the
// list.
func (l *MediaList) IndexOf(md *Media) (int, bool) {
	idx := int32(-1)
	if err := l.lockedWith(md, func(ptr, mdPtr uintptr) { idx = l.api.listIndexOfItem(ptr, mdPtr) }); err != nil {
		return 0, false
	}
	if idx == -1 {
		return 0, false
	}
	return int(idx), true
}

// IsReadOnly reports whether the list can be modified.
func (l *MediaList) IsReadOnly() bool {
	readOnly := int32(1)
	l.h.with(func(ptr uintptr) { readOnly = l.api.listIsReadonly(ptr) })
	return readOnly != 0
}

// EventManager returns the list's event source.
func (l *MediaList) EventManager() (*EventManager, error) {
	return newEventManager(l.h, l.api, l.api.listEventManager)
}
