// Package vlc provides Go bindings for libvlc 3.x, loaded at runtime with
// purego.
//
// Key pieces include:
//   - Instance, Media, MediaPlayer, MediaList, MediaListPlayer, MediaLibrary
//     and VLM wrappers over native libvlc objects
//   - EventManager for typed, asynchronous libvlc events
//   - Subscription for receiving events on channels instead of callbacks
//   - Native log and audio sample callbacks
//
// # Ownership
//
// Every wrapper owns exactly one native reference. Close releases it; a
// second Close is a no-op, and a wrapper that is garbage collected while
// still open is released by a finalizer. Methods called after Close return
// ErrReleased. Retain is the only way to obtain a second owner.
//
// # Events
//
//	Attach: EventManager -> registry ID -> libvlc_event_attach
//	Deliver: libvlc thread -> trampoline -> decode -> EventCallback
//
// Events are delivered on libvlc threads, concurrently and in no
// guaranteed order across types. Callbacks must be fast and must not block.
// A panic inside a callback is recovered and recorded as a CallbackFault.
// Media carried by an event is a MediaRef, valid only until the callback
// returns; Retain it inside the callback to keep it.
//
// libvlc offers no safe point at which an event callback can be forgotten,
// so each successful Attach keeps a small registry entry for the life of
// the process.
//
// # Native Library
//
// The package searches VLC_LIB_PATH, then VLC_SDK_LIB_PATH, then paths
// relative to the executable, then the usual system locations. Use
// IsAvailable to check whether libvlc could be loaded. The package builds
// with CGO_ENABLED=0.
package vlc
