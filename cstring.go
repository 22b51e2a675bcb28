// C string marshaling shared by every wrapper.

package vlc

import (
	"fmt"
	"runtime"
	"strings"
	"unsafe"
)

// cString is a NUL-terminated copy of a Go string. The buffer must stay
// reachable until the native call that uses it has returned.
type cString struct {
	buf []byte
}

// toNative copies s into a NUL-terminated buffer. Strings with an embedded
// NUL are rejected before anything reaches libvlc.
func toNative(s string) (cString, error) {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return cString{}, fmt.Errorf("%q at offset %d: %w", s, i, ErrEmbeddedNul)
	}
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return cString{buf: buf}, nil
}

func (c cString) ptr() uintptr {
	if len(c.buf) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&c.buf[0]))
}

func (c cString) keepAlive() {
	runtime.KeepAlive(c.buf)
}

// cStringArray is an argv-style array of C strings.
type cStringArray struct {
	strs []cString
	ptrs []uintptr
}

func toNativeArray(values []string) (cStringArray, error) {
	arr := cStringArray{
		strs: make([]cString, 0, len(values)),
		ptrs: make([]uintptr, 0, len(values)+1),
	}
	for _, v := range values {
		cs, err := toNative(v)
		if err != nil {
			return cStringArray{}, err
		}
		arr.strs = append(arr.strs, cs)
		arr.ptrs = append(arr.ptrs, cs.ptr())
	}
	// NULL terminator; argc excludes it
	arr.ptrs = append(arr.ptrs, 0)
	return arr, nil
}

func (a cStringArray) len() int32 {
	return int32(len(a.strs))
}

// argv returns the array address, or 0 for an empty array.
func (a cStringArray) argv() uintptr {
	if len(a.strs) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&a.ptrs[0]))
}

func (a cStringArray) keepAlive() {
	for _, s := range a.strs {
		s.keepAlive()
	}
	runtime.KeepAlive(a.ptrs)
}

// cStrlen returns the length of the NUL-terminated string at ptr.
func cStrlen(ptr uintptr) int {
	p := unsafe.Pointer(ptr)
	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	return n
}

// fromNativeBorrowed copies a native string the caller does not own.
// A NULL pointer is absent, not empty.
func fromNativeBorrowed(ptr uintptr) (string, bool) {
	if ptr == 0 {
		return "", false
	}
	n := cStrlen(ptr)
	if n == 0 {
		return "", true
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(ptr)), n)), true
}

// fromNativeOwned copies a caller-owned native string and then frees it
// with libvlc_free. NULL is neither copied nor freed.
func fromNativeOwned(api *libvlcAPI, ptr uintptr) (string, bool) {
	if ptr == 0 {
		return "", false
	}
	s, ok := fromNativeBorrowed(ptr)
	api.free(ptr)
	return s, ok
}

// pinned allocates a zero T on the heap and pins it, so its address can be
// handed to native code as an out-parameter until p is unpinned.
func pinned[T any](p *runtime.Pinner) *T {
	v := new(T)
	p.Pin(v)
	return v
}
