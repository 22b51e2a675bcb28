//go:build !darwin && !linux

package vlc

import (
	"fmt"
	"runtime"
)

func loadLibVLC() (*libvlcAPI, error) {
	return nil, fmt.Errorf("libvlc loading is not supported on %s", runtime.GOOS)
}
