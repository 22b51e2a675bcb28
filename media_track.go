package vlc

import (
	"encoding/binary"
	"runtime"
	"unsafe"
)

// MediaTrack describes one elementary stream of a parsed media. Exactly one
// of Audio, Video and Subtitle is set, according to Type.
type MediaTrack struct {
	Codec          FourCC
	OriginalFourCC FourCC
	ID             int32
	Type           TrackType
	Profile        int32
	Level          int32
	Bitrate        uint32
	Language       string
	Description    string

	Audio    *AudioTrack
	Video    *VideoTrack
	Subtitle *SubtitleTrack
}

type AudioTrack struct {
	Channels uint32
	Rate     uint32
}

type VideoTrack struct {
	Height       uint32
	Width        uint32
	SarNum       uint32
	SarDen       uint32
	FrameRateNum uint32
	FrameRateDen uint32
}

type SubtitleTrack struct {
	Encoding string
}

// FourCC is a four character codec code.
type FourCC uint32

func (f FourCC) String() string {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(f))
	return string(b[:])
}

// Tracks returns the elementary streams of the media. The media must have
// been parsed or played first; otherwise the result is empty.
func (m *Media) Tracks() ([]MediaTrack, error) {
	var pinner runtime.Pinner
	defer pinner.Unpin()
	out := pinned[uintptr](&pinner)

	var n uint32
	if err := m.h.with(func(ptr uintptr) { n = m.api.mediaTracksGet(ptr, uintptr(unsafe.Pointer(out))) }); err != nil {
		return nil, err
	}
	if n == 0 || *out == 0 {
		return nil, nil
	}
	defer m.api.mediaTracksRelease(*out, n)

	ptrs := unsafe.Slice((*uintptr)(unsafe.Pointer(*out)), n)
	tracks := make([]MediaTrack, 0, n)
	for _, p := range ptrs {
		if p == 0 {
			continue
		}
		tracks = append(tracks, decodeTrack(structAt[rawMediaTrack](p)))
	}
	return tracks, nil
}

// decodeTrack copies a native track. The detail pointer is interpreted
// according to the track type only.
func decodeTrack(raw *rawMediaTrack) MediaTrack {
	t := MediaTrack{
		Codec:          FourCC(raw.Codec),
		OriginalFourCC: FourCC(raw.OriginalFourCC),
		ID:             raw.ID,
		Type:           TrackType(raw.Type),
		Profile:        raw.Profile,
		Level:          raw.Level,
		Bitrate:        raw.Bitrate,
	}
	t.Language, _ = fromNativeBorrowed(raw.Language)
	t.Description, _ = fromNativeBorrowed(raw.Description)

	if raw.Detail == 0 {
		return t
	}
	switch t.Type {
	case TrackAudio:
		a := structAt[rawAudioTrack](raw.Detail)
		t.Audio = &AudioTrack{Channels: a.Channels, Rate: a.Rate}
	case TrackVideo:
		v := structAt[rawVideoTrack](raw.Detail)
		t.Video = &VideoTrack{
			Height:       v.Height,
			Width:        v.Width,
			SarNum:       v.SarNum,
			SarDen:       v.SarDen,
			FrameRateNum: v.FrameRateNum,
			FrameRateDen: v.FrameRateDen,
		}
	case TrackText:
		s := structAt[rawSubtitleTrack](raw.Detail)
		t.Subtitle = &SubtitleTrack{}
		t.Subtitle.Encoding, _ = fromNativeBorrowed(s.Encoding)
	}
	return t
}
