package vlc

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// moduleChain builds n linked descriptions in pinned memory and returns the
// head address.
func (f *fakeVLC) moduleChain(n int) uintptr {
	var next uintptr
	for i := n - 1; i >= 0; i-- {
		node := pinValue(f, rawModuleDescription{
			Name:      f.cstr(fmt.Sprintf("mod%d", i)),
			ShortName: f.cstr(fmt.Sprintf("M%d", i)),
			LongName:  f.cstr(fmt.Sprintf("Module %d", i)),
			Next:      next,
		})
		next = uintptr(unsafe.Pointer(node))
	}
	return next
}

func TestModuleDescriptionList_Iterates(t *testing.T) {
	f := newFakeVLC(t)
	head := f.moduleChain(4)
	f.api.audioFilterListGet = func(uintptr) uintptr { return head }

	inst, err := NewInstance()
	require.NoError(t, err)
	defer inst.Close()

	list, err := inst.AudioFilters()
	require.NoError(t, err)
	assert.Equal(t, 4, list.Len())

	got := list.Slice()
	require.Len(t, got, 4)
	for i, d := range got {
		assert.Equal(t, fmt.Sprintf("mod%d", i), d.Name)
		assert.Equal(t, fmt.Sprintf("M%d", i), d.ShortName)
		assert.Equal(t, fmt.Sprintf("Module %d", i), d.LongName)
		assert.Empty(t, d.Help, "NULL help is empty")
	}

	require.NoError(t, list.Close())
	require.NoError(t, list.Close())
	assert.Equal(t, 1, f.releaseCount(head), "whole list released once")

	assert.Empty(t, list.Slice(), "closed list yields nothing")
	assert.Zero(t, list.Len())
	assert.Equal(t, "mod0", got[0].Name, "copies outlive the list")
}

func TestModuleDescriptionList_EarlyBreak(t *testing.T) {
	f := newFakeVLC(t)
	list := newModuleDescriptionList(f.api, f.moduleChain(5))
	defer list.Close()

	var names []string
	for d := range list.All() {
		names = append(names, d.Name)
		if len(names) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"mod0", "mod1"}, names)
}

func TestModuleDescriptionList_CloseDuringIteration(t *testing.T) {
	f := newFakeVLC(t)
	list := newModuleDescriptionList(f.api, f.moduleChain(3))

	var names []string
	for d := range list.All() {
		names = append(names, d.Name)
		require.NoError(t, list.Close())
	}
	assert.Equal(t, []string{"mod0"}, names)
}

func TestModuleDescriptionList_Empty(t *testing.T) {
	f := newFakeVLC(t)

	inst, err := NewInstance()
	require.NoError(t, err)
	defer inst.Close()

	list, err := inst.VideoFilters()
	require.NoError(t, err)
	assert.Zero(t, list.Len())
	assert.Empty(t, list.Slice())
	require.NoError(t, list.Close())
	assert.Zero(t, f.releaseCount(0), "empty list owns nothing")
}
