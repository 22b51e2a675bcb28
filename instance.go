package vlc

import (
	"fmt"
	"sync"
)

// Instance is a libvlc engine instance. Every other object is created from
// one. Close it when done; objects created from it keep their own native
// references and may outlive it.
type Instance struct {
	h   *nativeHandle
	api *libvlcAPI

	logMu sync.Mutex
	logID uintptr
}

// NewInstance creates a libvlc instance with the given command line
// arguments, for example "--no-video" or "--verbose=2".
func NewInstance(args ...string) (*Instance, error) {
	api, err := nativeAPI()
	if err != nil {
		return nil, err
	}
	argv, err := toNativeArray(args)
	if err != nil {
		return nil, fmt.Errorf("create instance: %w", err)
	}
	ptr := api.new(argv.len(), argv.argv())
	argv.keepAlive()

	h, err := newHandle("instance", ptr, api.release)
	if err != nil {
		if msg, ok := LastError(); ok {
			return nil, fmt.Errorf("%w: %s", err, msg)
		}
		return nil, err
	}
	return &Instance{h: h, api: api}, nil
}

// Close releases the instance. Further calls are no-ops.
func (i *Instance) Close() error {
	i.h.close()
	// libvlc_release has returned, no log call can still be running
	i.logMu.Lock()
	if i.logID != 0 {
		registry.remove(i.logID)
		i.logID = 0
	}
	i.logMu.Unlock()
	return nil
}

// Retain returns a second, independently closable owner of the same
// native instance.
func (i *Instance) Retain() (*Instance, error) {
	var inst uintptr
	if err := i.h.with(func(ptr uintptr) { i.api.retain(ptr); inst = ptr }); err != nil {
		return nil, err
	}
	h, err := newHandle("instance", inst, i.api.release)
	if err != nil {
		return nil, err
	}
	return &Instance{h: h, api: i.api}, nil
}

// AddInterface starts a libvlc control interface by module name. An empty
// name selects the default interface.
func (i *Instance) AddInterface(name string) error {
	var cname cString
	if name != "" {
		var err error
		if cname, err = toNative(name); err != nil {
			return err
		}
	}
	var rc int32
	err := i.h.with(func(ptr uintptr) { rc = i.api.addIntf(ptr, cname.ptr()) })
	cname.keepAlive()
	if err != nil {
		return err
	}
	return checkResult("add interface", rc)
}

// Wait blocks until an interface requests the instance to exit.
func (i *Instance) Wait() error {
	return i.h.with(i.api.wait)
}

// SetUserAgent sets the human-readable application name and the HTTP
// User-Agent libvlc presents to servers.
func (i *Instance) SetUserAgent(name, http string) error {
	cname, err := toNative(name)
	if err != nil {
		return err
	}
	chttp, err := toNative(http)
	if err != nil {
		return err
	}
	err = i.h.with(func(ptr uintptr) { i.api.setUserAgent(ptr, cname.ptr(), chttp.ptr()) })
	cname.keepAlive()
	chttp.keepAlive()
	return err
}

// SetAppID sets the application identification used by desktop
// integrations, in reverse-DNS form.
func (i *Instance) SetAppID(id, version, icon string) error {
	args, err := toNativeArray([]string{id, version, icon})
	if err != nil {
		return err
	}
	err = i.h.with(func(ptr uintptr) { i.api.setAppID(ptr, args.ptrs[0], args.ptrs[1], args.ptrs[2]) })
	args.keepAlive()
	return err
}

// AudioFilters lists the available audio filter modules.
func (i *Instance) AudioFilters() (*ModuleDescriptionList, error) {
	return i.moduleList(i.api.audioFilterListGet)
}

// VideoFilters lists the available video filter modules.
func (i *Instance) VideoFilters() (*ModuleDescriptionList, error) {
	return i.moduleList(i.api.videoFilterListGet)
}

func (i *Instance) moduleList(get func(uintptr) uintptr) (*ModuleDescriptionList, error) {
	var head uintptr
	if err := i.h.with(func(ptr uintptr) { head = get(ptr) }); err != nil {
		return nil, err
	}
	return newModuleDescriptionList(i.api, head), nil
}

func (i *Instance) String() string {
	return fmt.Sprintf("vlc.Instance(%s)", handleState(i.h.state.Load()))
}
