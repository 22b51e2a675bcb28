package vlc

import "fmt"

// VLM controls the VideoLAN Manager of an instance: named broadcast and
// video-on-demand media that stream to outputs configured by sout chains.
type VLM struct {
	h   *nativeHandle
	api *libvlcAPI
}

// VLM returns the manager of this instance. The manager holds its own
// instance reference, so it stays usable after the instance is closed.
// Close releases the manager and that reference.
func (i *Instance) VLM() (*VLM, error) {
	var inst uintptr
	if err := i.h.with(func(ptr uintptr) { i.api.retain(ptr); inst = ptr }); err != nil {
		return nil, err
	}
	api := i.api
	h, err := newHandle("vlm", inst, func(ptr uintptr) {
		api.vlmRelease(ptr)
		api.release(ptr)
	})
	if err != nil {
		return nil, err
	}
	return &VLM{h: h, api: api}, nil
}

// Close releases VLM resources and the manager's instance reference.
// Further calls are no-ops; every other method then returns ErrReleased.
func (v *VLM) Close() error {
	v.h.close()
	return nil
}

// vlmCall marshals name plus extra string arguments and runs fn with the
// instance pointer and their native addresses.
func (v *VLM) vlmCall(op, name string, extra []string, fn func(inst uintptr, args []uintptr) int32) error {
	args, err := toNativeArray(append([]string{name}, extra...))
	if err != nil {
		return fmt.Errorf("vlm %s %q: %w", op, name, err)
	}
	var rc int32
	err = v.h.with(func(ptr uintptr) { rc = fn(ptr, args.ptrs) })
	args.keepAlive()
	if err != nil {
		return fmt.Errorf("vlm %s %q: %w", op, name, err)
	}
	if rc != 0 {
		return fmt.Errorf("vlm %s %q: %w", op, name, ErrOperationFailed)
	}
	return nil
}

// AddBroadcast adds a broadcast named name streaming input to output, a
// sout chain such as "#rtp{dst=127.0.0.1,port=5004,mux=ts}".
func (v *VLM) AddBroadcast(name, input, output string, options []string, enabled, loop bool) error {
	opts, err := toNativeArray(options)
	if err != nil {
		return err
	}
	defer opts.keepAlive()
	return v.vlmCall("add broadcast", name, []string{input, output}, func(inst uintptr, a []uintptr) int32 {
		return v.api.vlmAddBroadcast(inst, a[0], a[1], a[2], opts.len(), opts.argv(), boolToInt(enabled), boolToInt(loop))
	})
}

// AddVOD adds a video-on-demand media. An empty mux keeps the default.
func (v *VLM) AddVOD(name, input string, options []string, enabled bool, mux string) error {
	opts, err := toNativeArray(options)
	if err != nil {
		return err
	}
	defer opts.keepAlive()
	extra := []string{input}
	if mux != "" {
		extra = append(extra, mux)
	}
	return v.vlmCall("add vod", name, extra, func(inst uintptr, a []uintptr) int32 {
		// a ends with the NULL terminator, so a[2] is 0 without a mux
		return v.api.vlmAddVOD(inst, a[0], a[1], opts.len(), opts.argv(), boolToInt(enabled), a[2])
	})
}

// Delete removes a media and stops its instances.
func (v *VLM) Delete(name string) error {
	return v.vlmCall("delete", name, nil, func(inst uintptr, a []uintptr) int32 {
		return v.api.vlmDelMedia(inst, a[0])
	})
}

// SetEnabled enables or disables a media.
func (v *VLM) SetEnabled(name string, enabled bool) error {
	return v.vlmCall("set enabled", name, nil, func(inst uintptr, a []uintptr) int32 {
		return v.api.vlmSetEnabled(inst, a[0], boolToInt(enabled))
	})
}

// SetOutput changes the sout chain of a media.
func (v *VLM) SetOutput(name, output string) error {
	return v.vlmCall("set output", name, []string{output}, func(inst uintptr, a []uintptr) int32 {
		return v.api.vlmSetOutput(inst, a[0], a[1])
	})
}

// SetInput replaces the inputs of a media with input.
func (v *VLM) SetInput(name, input string) error {
	return v.vlmCall("set input", name, []string{input}, func(inst uintptr, a []uintptr) int32 {
		return v.api.vlmSetInput(inst, a[0], a[1])
	})
}

// SetLoop controls whether a broadcast restarts at the end.
func (v *VLM) SetLoop(name string, loop bool) error {
	return v.vlmCall("set loop", name, nil, func(inst uintptr, a []uintptr) int32 {
		return v.api.vlmSetLoop(inst, a[0], boolToInt(loop))
	})
}

// Play starts a broadcast.
func (v *VLM) Play(name string) error {
	return v.vlmCall("play", name, nil, func(inst uintptr, a []uintptr) int32 {
		return v.api.vlmPlayMedia(inst, a[0])
	})
}

// Stop stops a broadcast.
func (v *VLM) Stop(name string) error {
	return v.vlmCall("stop", name, nil, func(inst uintptr, a []uintptr) int32 {
		return v.api.vlmStopMedia(inst, a[0])
	})
}

// Pause pauses a broadcast.
func (v *VLM) Pause(name string) error {
	return v.vlmCall("pause", name, nil, func(inst uintptr, a []uintptr) int32 {
		return v.api.vlmPauseMedia(inst, a[0])
	})
}

// Seek moves a broadcast to percentage of its length.
func (v *VLM) Seek(name string, percentage float32) error {
	return v.vlmCall("seek", name, nil, func(inst uintptr, a []uintptr) int32 {
		return v.api.vlmSeekMedia(inst, a[0], percentage)
	})
}

// Show returns libvlc's JSON description of a media, or of every media
// when name is empty.
func (v *VLM) Show(name string) (string, error) {
	cname, err := toNative(name)
	if err != nil {
		return "", err
	}
	var out uintptr
	err = v.h.with(func(ptr uintptr) { out = v.api.vlmShowMedia(ptr, cname.ptr()) })
	cname.keepAlive()
	if err != nil {
		return "", err
	}
	s, ok := fromNativeOwned(v.api, out)
	if !ok {
		return "", fmt.Errorf("vlm show %q: %w", name, ErrOperationFailed)
	}
	return s, nil
}

// instanceQuery runs an instance getter that reports failure as -1.
func (v *VLM) instanceQuery(name string, instance int, get func(inst, name uintptr, instance int32) float64) (float64, bool) {
	cname, err := toNative(name)
	if err != nil {
		return 0, false
	}
	val := float64(-1)
	v.h.with(func(ptr uintptr) { val = get(ptr, cname.ptr(), int32(instance)) })
	cname.keepAlive()
	if val == -1 {
		return 0, false
	}
	return val, true
}

// InstancePosition returns the position in [0, 1] of a running instance.
func (v *VLM) InstancePosition(name string, instance int) (float32, bool) {
	pos, ok := v.instanceQuery(name, instance, func(inst, n uintptr, i int32) float64 {
		return float64(v.api.vlmGetMediaInstancePosition(inst, n, i))
	})
	return float32(pos), ok
}

// InstanceTime returns the time of a running instance.
func (v *VLM) InstanceTime(name string, instance int) (int, bool) {
	t, ok := v.instanceQuery(name, instance, func(inst, n uintptr, i int32) float64 {
		return float64(v.api.vlmGetMediaInstanceTime(inst, n, i))
	})
	return int(t), ok
}

// InstanceLength returns the length of a running instance.
func (v *VLM) InstanceLength(name string, instance int) (int, bool) {
	l, ok := v.instanceQuery(name, instance, func(inst, n uintptr, i int32) float64 {
		return float64(v.api.vlmGetMediaInstanceLength(inst, n, i))
	})
	return int(l), ok
}

// InstanceRate returns the rate of a running instance.
func (v *VLM) InstanceRate(name string, instance int) (int, bool) {
	r, ok := v.instanceQuery(name, instance, func(inst, n uintptr, i int32) float64 {
		return float64(v.api.vlmGetMediaInstanceRate(inst, n, i))
	})
	return int(r), ok
}

// EventManager returns the VLM event source. It borrows from the manager
// and stops working once the manager is closed.
func (v *VLM) EventManager() (*EventManager, error) {
	return newEventManager(v.h, v.api, v.api.vlmGetEventManager)
}
