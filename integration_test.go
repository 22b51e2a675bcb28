//go:build darwin || linux

package vlc

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests run against the installed libvlc and are skipped without it.

func requireLibVLC(t *testing.T) {
	t.Helper()
	if !IsAvailable() {
		t.Skip("libvlc not available")
	}
}

func TestIntegration_InstanceLifecycle(t *testing.T) {
	requireLibVLC(t)

	assert.NotEmpty(t, Version())
	inst, err := NewInstance("--no-video", "--aout=dummy", "--quiet")
	require.NoError(t, err)
	defer inst.Close()

	md, err := inst.NewMediaLocation("file:///nonexistent/clip.mkv")
	require.NoError(t, err)
	mrl, err := md.MRL()
	require.NoError(t, err)
	assert.Equal(t, "file:///nonexistent/clip.mkv", mrl)

	_, ok := md.Duration()
	assert.False(t, ok, "unparsed media has no duration")
	require.NoError(t, md.Close())
	require.NoError(t, md.Close())
}

func TestIntegration_EncounteredError(t *testing.T) {
	requireLibVLC(t)

	inst, err := NewInstance("--no-video", "--aout=dummy", "--quiet")
	require.NoError(t, err)
	defer inst.Close()

	md, err := inst.NewMediaPath("/nonexistent/clip.mkv")
	require.NoError(t, err)
	mp, err := NewMediaPlayerFromMedia(md)
	require.NoError(t, err)
	require.NoError(t, md.Close())
	defer func() {
		mp.Stop()
		mp.Close()
	}()

	em, err := mp.EventManager()
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	sub, err := em.Subscribe(ctx, 8, EventMediaPlayerEncounteredError, EventMediaPlayerEndReached)
	require.NoError(t, err)

	require.NoError(t, mp.Play())
	select {
	case n := <-sub.Events:
		assert.Contains(t, []EventType{EventMediaPlayerEncounteredError, EventMediaPlayerEndReached}, n.Event.Type())
	case <-sub.Done:
		t.Fatal("no terminal event before timeout")
	}
}

func TestIntegration_Filters(t *testing.T) {
	requireLibVLC(t)

	inst, err := NewInstance("--quiet")
	require.NoError(t, err)
	defer inst.Close()

	list, err := inst.VideoFilters()
	require.NoError(t, err)
	defer list.Close()
	for d := range list.All() {
		assert.NotEmpty(t, d.Name)
	}
}
