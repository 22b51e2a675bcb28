package vlc

import "iter"

// ModuleDescription describes a libvlc plugin module. Absent fields are
// empty.
type ModuleDescription struct {
	Name      string
	ShortName string
	LongName  string
	Help      string
}

// ModuleDescriptionList owns a native list of module descriptions. The
// whole list is released by a single Close.
type ModuleDescriptionList struct {
	h *nativeHandle // nil for an empty list
}

// newModuleDescriptionList takes ownership of head. A NULL head is an empty
// list and owns nothing.
func newModuleDescriptionList(api *libvlcAPI, head uintptr) *ModuleDescriptionList {
	l := &ModuleDescriptionList{}
	if head != 0 {
		l.h, _ = newHandle("module description list", head, api.moduleDescriptionListRelease)
	}
	return l
}

// walk runs fn with the list head while the list is open. An empty list
// has no handle and walks nothing.
func (l *ModuleDescriptionList) walk(fn func(head uintptr)) {
	if l.h == nil {
		return
	}
	l.h.with(fn)
}

// All iterates over the list without taking ownership. Descriptions are
// copied as they are visited, so they remain valid after Close. Iterating a
// closed list yields nothing.
func (l *ModuleDescriptionList) All() iter.Seq[ModuleDescription] {
	return func(yield func(ModuleDescription) bool) {
		l.walk(func(head uintptr) {
			for node := head; node != 0; {
				raw := structAt[rawModuleDescription](node)
				d, next := raw.describe(), raw.Next
				if !yield(d) || !l.h.live() {
					return
				}
				node = next
			}
		})
	}
}

// Slice copies every description.
func (l *ModuleDescriptionList) Slice() []ModuleDescription {
	var out []ModuleDescription
	for d := range l.All() {
		out = append(out, d)
	}
	return out
}

// Len counts the descriptions.
func (l *ModuleDescriptionList) Len() int {
	n := 0
	l.walk(func(head uintptr) {
		for node := head; node != 0; node = structAt[rawModuleDescription](node).Next {
			n++
		}
	})
	return n
}

// Close releases the native list.
func (l *ModuleDescriptionList) Close() error {
	if l.h != nil {
		l.h.close()
	}
	return nil
}

func (r *rawModuleDescription) describe() ModuleDescription {
	var d ModuleDescription
	d.Name, _ = fromNativeBorrowed(r.Name)
	d.ShortName, _ = fromNativeBorrowed(r.ShortName)
	d.LongName, _ = fromNativeBorrowed(r.LongName)
	d.Help, _ = fromNativeBorrowed(r.Help)
	return d
}
