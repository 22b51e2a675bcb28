package vlc

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAvailable is returned when libvlc cannot be loaded.
	ErrNotAvailable = errors.New("libvlc not available")
	// ErrCreateFailed is returned when a native constructor yields NULL.
	ErrCreateFailed = errors.New("native constructor returned NULL")
	// ErrOperationFailed is returned for a nonzero native return code.
	// libvlc reports no detail inline; see LastError.
	ErrOperationFailed = errors.New("native operation failed")
	// ErrEmbeddedNul is returned when a string cannot be passed as a C string.
	ErrEmbeddedNul = errors.New("string contains NUL byte")
	// ErrReleased is returned when a handle is used after Close.
	ErrReleased = errors.New("handle already released")
	// ErrUnknownEvent marks an event type outside the supported set.
	ErrUnknownEvent = errors.New("unknown event type")
	// ErrBorrowExpired is returned when a reference delivered to a callback
	// is used after the callback returned.
	ErrBorrowExpired = errors.New("borrowed reference used after callback returned")
)

// UnknownEventError carries the raw discriminant of an event libvlc
// delivered but this package does not know. It indicates a libvlc version
// mismatch or memory corruption.
type UnknownEventError struct {
	Type int32
}

func (e *UnknownEventError) Error() string {
	return fmt.Sprintf("unknown event type 0x%x", e.Type)
}

func (e *UnknownEventError) Unwrap() error {
	return ErrUnknownEvent
}

// checkResult maps the libvlc 0/-1 return convention to an error.
func checkResult(op string, rc int32) error {
	if rc != 0 {
		return fmt.Errorf("%s: %w", op, ErrOperationFailed)
	}
	return nil
}

// LastError returns the calling thread's last libvlc error message. It is
// not tied to any particular failed call.
func LastError() (string, bool) {
	api, err := nativeAPI()
	if err != nil {
		return "", false
	}
	return fromNativeBorrowed(api.errmsg())
}

// ClearError clears the calling thread's libvlc error message.
func ClearError() {
	if api, err := nativeAPI(); err == nil {
		api.clearerr()
	}
}
