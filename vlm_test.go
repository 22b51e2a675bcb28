package vlc

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVLM(t *testing.T) (*fakeVLC, *VLM) {
	t.Helper()
	f := newFakeVLC(t)
	inst, err := NewInstance()
	require.NoError(t, err)
	t.Cleanup(func() { inst.Close() })
	v, err := inst.VLM()
	require.NoError(t, err)
	t.Cleanup(func() { v.Close() })
	return f, v
}

func borrowed(ptr uintptr) string {
	s, _ := fromNativeBorrowed(ptr)
	return s
}

func TestVLM_AddBroadcast(t *testing.T) {
	f, v := newTestVLM(t)

	var got []string
	var gotOpts []string
	f.api.vlmAddBroadcast = func(inst, name, input, output uintptr, n int32, options uintptr, enabled, loop int32) int32 {
		got = []string{borrowed(name), borrowed(input), borrowed(output)}
		for _, p := range unsafe.Slice((*uintptr)(unsafe.Pointer(options)), n) {
			gotOpts = append(gotOpts, borrowed(p))
		}
		assert.Equal(t, int32(1), enabled)
		assert.Equal(t, int32(0), loop)
		return 0
	}

	require.NoError(t, v.AddBroadcast("cam", "v4l2://", "#rtp{dst=127.0.0.1,port=5004}", []string{"sout-keep"}, true, false))
	assert.Equal(t, []string{"cam", "v4l2://", "#rtp{dst=127.0.0.1,port=5004}"}, got)
	assert.Equal(t, []string{"sout-keep"}, gotOpts)
}

func TestVLM_AddVODMux(t *testing.T) {
	f, v := newTestVLM(t)

	var mux []uintptr
	var nOpts []int32
	f.api.vlmAddVOD = func(inst, name, input uintptr, n int32, options uintptr, enabled int32, m uintptr) int32 {
		mux = append(mux, m)
		nOpts = append(nOpts, n)
		if m != 0 {
			assert.Equal(t, "ts", borrowed(m))
		}
		return 0
	}

	require.NoError(t, v.AddVOD("film", "file:///a.mkv", nil, true, ""))
	require.NoError(t, v.AddVOD("film2", "file:///a.mkv", nil, true, "ts"))
	require.Len(t, mux, 2)
	assert.Zero(t, mux[0], "no mux passes NULL")
	assert.NotZero(t, mux[1])
	assert.Equal(t, []int32{0, 0}, nOpts)
}

func TestVLM_FailureCodes(t *testing.T) {
	f, v := newTestVLM(t)
	f.api.vlmPlayMedia = func(inst, name uintptr) int32 { return -1 }
	f.api.vlmSeekMedia = func(inst, name uintptr, pct float32) int32 {
		assert.Equal(t, float32(50), pct)
		return 0
	}

	err := v.Play("missing")
	require.ErrorIs(t, err, ErrOperationFailed)
	assert.Contains(t, err.Error(), `"missing"`)
	require.NoError(t, v.Seek("cam", 50))

	assert.ErrorIs(t, v.Play("bad\x00name"), ErrEmbeddedNul)
}

func TestVLM_Show(t *testing.T) {
	f, v := newTestVLM(t)

	out := f.cstr(`{"media":{}}`)
	var names []uintptr
	f.api.vlmShowMedia = func(inst, name uintptr) uintptr {
		names = append(names, name)
		return out
	}

	s, err := v.Show("")
	require.NoError(t, err)
	assert.Equal(t, `{"media":{}}`, s)
	assert.Equal(t, 1, f.freeCount(out))
	require.NotZero(t, names[0], "libvlc formats the name, NULL is not allowed")
	assert.Equal(t, "", borrowed(names[0]))

	f.api.vlmShowMedia = func(inst, name uintptr) uintptr { return 0 }
	_, err = v.Show("cam")
	assert.ErrorIs(t, err, ErrOperationFailed)
}

func TestVLM_InstanceQueries(t *testing.T) {
	f, v := newTestVLM(t)
	f.api.vlmGetMediaInstanceTime = func(inst, name uintptr, i int32) int32 {
		if borrowed(name) != "cam" || i != 0 {
			return -1
		}
		return 4200
	}
	f.api.vlmGetMediaInstancePosition = func(inst, name uintptr, i int32) float32 { return -1 }

	tm, ok := v.InstanceTime("cam", 0)
	assert.True(t, ok)
	assert.Equal(t, 4200, tm)

	_, ok = v.InstanceTime("cam", 3)
	assert.False(t, ok)
	_, ok = v.InstancePosition("cam", 0)
	assert.False(t, ok)
}

func TestVLM_CloseOnce(t *testing.T) {
	f := newFakeVLC(t)
	var released int
	f.api.vlmRelease = func(uintptr) { released++ }

	inst, err := NewInstance()
	require.NoError(t, err)
	defer inst.Close()

	v, err := inst.VLM()
	require.NoError(t, err)
	assert.Equal(t, 1, f.retainCount(inst.h.ptr))

	require.NoError(t, v.Close())
	require.NoError(t, v.Close())
	assert.Equal(t, 1, released)
	assert.Equal(t, 1, f.releaseCount(inst.h.ptr), "manager reference released")
}

func TestVLM_OutlivesInstance(t *testing.T) {
	f := newFakeVLC(t)
	var deleted []string
	f.api.vlmDelMedia = func(inst, name uintptr) int32 {
		deleted = append(deleted, borrowed(name))
		return 0
	}

	inst, err := NewInstance()
	require.NoError(t, err)
	ptr := inst.h.ptr
	v, err := inst.VLM()
	require.NoError(t, err)
	require.NoError(t, inst.Close())
	assert.Equal(t, 1, f.releaseCount(ptr))

	require.NoError(t, v.Delete("cam"))
	assert.Equal(t, []string{"cam"}, deleted)

	require.NoError(t, v.Close())
	assert.Equal(t, 2, f.releaseCount(ptr))

	_, err = inst.VLM()
	assert.ErrorIs(t, err, ErrReleased)
}

func TestVLM_AfterClose(t *testing.T) {
	f := newFakeVLC(t)
	var calls int
	f.api.vlmDelMedia = func(inst, name uintptr) int32 { calls++; return 0 }
	f.api.vlmShowMedia = func(inst, name uintptr) uintptr { calls++; return 0 }
	f.api.vlmGetMediaInstanceLength = func(inst, name uintptr, i int32) int32 { calls++; return 10 }

	inst, err := NewInstance()
	require.NoError(t, err)
	defer inst.Close()
	v, err := inst.VLM()
	require.NoError(t, err)
	require.NoError(t, v.Close())

	assert.ErrorIs(t, v.Delete("cam"), ErrReleased)
	_, err = v.Show("cam")
	assert.ErrorIs(t, err, ErrReleased)
	_, ok := v.InstanceLength("cam", 0)
	assert.False(t, ok)
	_, err = v.EventManager()
	assert.ErrorIs(t, err, ErrReleased)
	assert.Zero(t, calls, "closed manager never reaches libvlc")
}

func TestVLM_EventManagerBorrowsFromManager(t *testing.T) {
	f := newFakeVLC(t)
	inst, err := NewInstance()
	require.NoError(t, err)
	defer inst.Close()
	v, err := inst.VLM()
	require.NoError(t, err)

	em, err := v.EventManager()
	require.NoError(t, err)
	require.NoError(t, v.Close())

	before := Registrations()
	_, err = em.Attach(EventVlmMediaAdded, func(Event, Object) {})
	assert.ErrorIs(t, err, ErrReleased)
	assert.Empty(t, f.attachments())
	assert.Equal(t, before, Registrations())
}

func TestVlmMedia_Accessor(t *testing.T) {
	want := VlmMedia{MediaName: "cam", InstanceName: "0"}
	var ev Event = VlmMediaInstanceStarted{want}
	m, ok := ev.(interface{ Media() VlmMedia })
	require.True(t, ok)
	assert.Equal(t, want, m.Media())
}
