//go:build cgo && (darwin || linux) && libvlc_cgo

package cgo_benchmark

/*
#cgo pkg-config: libvlc
#include <vlc/vlc.h>
#include <stdlib.h>

// Minimal CGO function - just a noop to measure pure call overhead
int cgo_noop() {
    return 42;
}

// Creates and releases an instance, to measure allocation overhead
int cgo_vlc_create_release() {
    const char *argv[] = {"--quiet"};
    libvlc_instance_t *inst = libvlc_new(1, argv);
    if (!inst) {
        return -1;
    }
    libvlc_release(inst);
    return 0;
}
*/
import "C"

// Noop calls a minimal C function to measure pure call overhead
func Noop() int {
	return int(C.cgo_noop())
}

// Clock calls libvlc_clock via CGO
func Clock() int64 {
	return int64(C.libvlc_clock())
}

// GetVersion calls libvlc_get_version via CGO
func GetVersion() string {
	return C.GoString(C.libvlc_get_version())
}

// CreateRelease creates and releases a libvlc instance
func CreateRelease() int {
	return int(C.cgo_vlc_create_release())
}
