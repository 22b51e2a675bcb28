package vlc

import "slices"

// EventType is the discriminant of a libvlc event.
type EventType int32

// Event types emitted by libvlc 3.0.
const (
	EventMediaMetaChanged      EventType = 0x000
	EventMediaSubItemAdded     EventType = 0x001
	EventMediaDurationChanged  EventType = 0x002
	EventMediaParsedChanged    EventType = 0x003
	EventMediaFreed            EventType = 0x004
	EventMediaStateChanged     EventType = 0x005
	EventMediaSubItemTreeAdded EventType = 0x006

	EventMediaPlayerMediaChanged     EventType = 0x100
	EventMediaPlayerNothingSpecial   EventType = 0x101
	EventMediaPlayerOpening          EventType = 0x102
	EventMediaPlayerBuffering        EventType = 0x103
	EventMediaPlayerPlaying          EventType = 0x104
	EventMediaPlayerPaused           EventType = 0x105
	EventMediaPlayerStopped          EventType = 0x106
	EventMediaPlayerForward          EventType = 0x107
	EventMediaPlayerBackward         EventType = 0x108
	EventMediaPlayerEndReached       EventType = 0x109
	EventMediaPlayerEncounteredError EventType = 0x10a
	EventMediaPlayerTimeChanged      EventType = 0x10b
	EventMediaPlayerPositionChanged  EventType = 0x10c
	EventMediaPlayerSeekableChanged  EventType = 0x10d
	EventMediaPlayerPausableChanged  EventType = 0x10e
	EventMediaPlayerTitleChanged     EventType = 0x10f
	EventMediaPlayerSnapshotTaken    EventType = 0x110
	EventMediaPlayerLengthChanged    EventType = 0x111
	EventMediaPlayerVout             EventType = 0x112
	EventMediaPlayerScrambledChanged EventType = 0x113
	EventMediaPlayerESAdded          EventType = 0x114
	EventMediaPlayerESDeleted        EventType = 0x115
	EventMediaPlayerESSelected       EventType = 0x116
	EventMediaPlayerCorked           EventType = 0x117
	EventMediaPlayerUncorked         EventType = 0x118
	EventMediaPlayerMuted            EventType = 0x119
	EventMediaPlayerUnmuted          EventType = 0x11a
	EventMediaPlayerAudioVolume      EventType = 0x11b
	EventMediaPlayerAudioDevice      EventType = 0x11c
	EventMediaPlayerChapterChanged   EventType = 0x11d

	EventMediaListItemAdded      EventType = 0x200
	EventMediaListWillAddItem    EventType = 0x201
	EventMediaListItemDeleted    EventType = 0x202
	EventMediaListWillDeleteItem EventType = 0x203
	EventMediaListEndReached     EventType = 0x204

	EventMediaListViewItemAdded      EventType = 0x300
	EventMediaListViewWillAddItem    EventType = 0x301
	EventMediaListViewItemDeleted    EventType = 0x302
	EventMediaListViewWillDeleteItem EventType = 0x303

	EventMediaListPlayerPlayed      EventType = 0x400
	EventMediaListPlayerNextItemSet EventType = 0x401
	EventMediaListPlayerStopped     EventType = 0x402

	EventMediaDiscovererStarted        EventType = 0x500
	EventMediaDiscovererEnded          EventType = 0x501
	EventRendererDiscovererItemAdded   EventType = 0x502
	EventRendererDiscovererItemDeleted EventType = 0x503

	EventVlmMediaAdded                 EventType = 0x600
	EventVlmMediaRemoved               EventType = 0x601
	EventVlmMediaChanged               EventType = 0x602
	EventVlmMediaInstanceStarted       EventType = 0x603
	EventVlmMediaInstanceStopped       EventType = 0x604
	EventVlmMediaInstanceStatusInit    EventType = 0x605
	EventVlmMediaInstanceStatusOpening EventType = 0x606
	EventVlmMediaInstanceStatusPlaying EventType = 0x607
	EventVlmMediaInstanceStatusPause   EventType = 0x608
	EventVlmMediaInstanceStatusEnd     EventType = 0x609
	EventVlmMediaInstanceStatusError   EventType = 0x60a
)

var eventTypeNames = map[EventType]string{
	EventMediaMetaChanged:              "MediaMetaChanged",
	EventMediaSubItemAdded:             "MediaSubItemAdded",
	EventMediaDurationChanged:          "MediaDurationChanged",
	EventMediaParsedChanged:            "MediaParsedChanged",
	EventMediaFreed:                    "MediaFreed",
	EventMediaStateChanged:             "MediaStateChanged",
	EventMediaSubItemTreeAdded:         "MediaSubItemTreeAdded",
	EventMediaPlayerMediaChanged:       "MediaPlayerMediaChanged",
	EventMediaPlayerNothingSpecial:     "MediaPlayerNothingSpecial",
	EventMediaPlayerOpening:            "MediaPlayerOpening",
	EventMediaPlayerBuffering:          "MediaPlayerBuffering",
	EventMediaPlayerPlaying:            "MediaPlayerPlaying",
	EventMediaPlayerPaused:             "MediaPlayerPaused",
	EventMediaPlayerStopped:            "MediaPlayerStopped",
	EventMediaPlayerForward:            "MediaPlayerForward",
	EventMediaPlayerBackward:           "MediaPlayerBackward",
	EventMediaPlayerEndReached:         "MediaPlayerEndReached",
	EventMediaPlayerEncounteredError:   "MediaPlayerEncounteredError",
	EventMediaPlayerTimeChanged:        "MediaPlayerTimeChanged",
	EventMediaPlayerPositionChanged:    "MediaPlayerPositionChanged",
	EventMediaPlayerSeekableChanged:    "MediaPlayerSeekableChanged",
	EventMediaPlayerPausableChanged:    "MediaPlayerPausableChanged",
	EventMediaPlayerTitleChanged:       "MediaPlayerTitleChanged",
	EventMediaPlayerSnapshotTaken:      "MediaPlayerSnapshotTaken",
	EventMediaPlayerLengthChanged:      "MediaPlayerLengthChanged",
	EventMediaPlayerVout:               "MediaPlayerVout",
	EventMediaPlayerScrambledChanged:   "MediaPlayerScrambledChanged",
	EventMediaPlayerESAdded:            "MediaPlayerESAdded",
	EventMediaPlayerESDeleted:          "MediaPlayerESDeleted",
	EventMediaPlayerESSelected:         "MediaPlayerESSelected",
	EventMediaPlayerCorked:             "MediaPlayerCorked",
	EventMediaPlayerUncorked:           "MediaPlayerUncorked",
	EventMediaPlayerMuted:              "MediaPlayerMuted",
	EventMediaPlayerUnmuted:            "MediaPlayerUnmuted",
	EventMediaPlayerAudioVolume:        "MediaPlayerAudioVolume",
	EventMediaPlayerAudioDevice:        "MediaPlayerAudioDevice",
	EventMediaPlayerChapterChanged:     "MediaPlayerChapterChanged",
	EventMediaListItemAdded:            "MediaListItemAdded",
	EventMediaListWillAddItem:          "MediaListWillAddItem",
	EventMediaListItemDeleted:          "MediaListItemDeleted",
	EventMediaListWillDeleteItem:       "MediaListWillDeleteItem",
	EventMediaListEndReached:           "MediaListEndReached",
	EventMediaListViewItemAdded:        "MediaListViewItemAdded",
	EventMediaListViewWillAddItem:      "MediaListViewWillAddItem",
	EventMediaListViewItemDeleted:      "MediaListViewItemDeleted",
	EventMediaListViewWillDeleteItem:   "MediaListViewWillDeleteItem",
	EventMediaListPlayerPlayed:         "MediaListPlayerPlayed",
	EventMediaListPlayerNextItemSet:    "MediaListPlayerNextItemSet",
	EventMediaListPlayerStopped:        "MediaListPlayerStopped",
	EventMediaDiscovererStarted:        "MediaDiscovererStarted",
	EventMediaDiscovererEnded:          "MediaDiscovererEnded",
	EventRendererDiscovererItemAdded:   "RendererDiscovererItemAdded",
	EventRendererDiscovererItemDeleted: "RendererDiscovererItemDeleted",
	EventVlmMediaAdded:                 "VlmMediaAdded",
	EventVlmMediaRemoved:               "VlmMediaRemoved",
	EventVlmMediaChanged:               "VlmMediaChanged",
	EventVlmMediaInstanceStarted:       "VlmMediaInstanceStarted",
	EventVlmMediaInstanceStopped:       "VlmMediaInstanceStopped",
	EventVlmMediaInstanceStatusInit:    "VlmMediaInstanceStatusInit",
	EventVlmMediaInstanceStatusOpening: "VlmMediaInstanceStatusOpening",
	EventVlmMediaInstanceStatusPlaying: "VlmMediaInstanceStatusPlaying",
	EventVlmMediaInstanceStatusPause:   "VlmMediaInstanceStatusPause",
	EventVlmMediaInstanceStatusEnd:     "VlmMediaInstanceStatusEnd",
	EventVlmMediaInstanceStatusError:   "VlmMediaInstanceStatusError",
}

func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Known reports whether t is an event type this package can decode.
func (t EventType) Known() bool {
	_, ok := eventTypeNames[t]
	return ok
}

// EventTypes returns every decodable event type in ascending order.
func EventTypes() []EventType {
	types := make([]EventType, 0, len(eventTypeNames))
	for t := range eventTypeNames {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}

// Event is a decoded libvlc event. The concrete type identifies the event;
// the set of implementations is closed.
type Event interface {
	Type() EventType
	isEvent()
}

// ListItem is the payload shared by media list and media list view events.
type ListItem struct {
	Item  MediaRef
	Index int32
}

// ESChange is the payload of elementary stream events.
type ESChange struct {
	TrackType TrackType
	ID        int32
}

// VlmMedia is the payload shared by VLM events. InstanceName is empty for
// events about the media itself.
type VlmMedia struct {
	MediaName    string
	InstanceName string
}

// Media returns the payload, letting callers handle every VLM event alike.
func (v VlmMedia) Media() VlmMedia { return v }

type MediaMetaChanged struct {
	Meta Meta
}

func (MediaMetaChanged) Type() EventType { return EventMediaMetaChanged }
func (MediaMetaChanged) isEvent() {}

type MediaSubItemAdded struct {
	Item MediaRef
}

func (MediaSubItemAdded) Type() EventType { return EventMediaSubItemAdded }
func (MediaSubItemAdded) isEvent() {}

type MediaDurationChanged struct {
	NewDuration int64
}

func (MediaDurationChanged) Type() EventType { return EventMediaDurationChanged }
func (MediaDurationChanged) isEvent() {}

type MediaParsedChanged struct {
	NewStatus ParsedStatus
}

func (MediaParsedChanged) Type() EventType { return EventMediaParsedChanged }
func (MediaParsedChanged) isEvent() {}

type MediaFreed struct {
	Media Object
}

func (MediaFreed) Type() EventType { return EventMediaFreed }
func (MediaFreed) isEvent() {}

type MediaStateChanged struct {
	NewState State
}

func (MediaStateChanged) Type() EventType { return EventMediaStateChanged }
func (MediaStateChanged) isEvent() {}

type MediaSubItemTreeAdded struct {
	Item MediaRef
}

func (MediaSubItemTreeAdded) Type() EventType { return EventMediaSubItemTreeAdded }
func (MediaSubItemTreeAdded) isEvent() {}

type MediaPlayerMediaChanged struct {
	NewMedia MediaRef
}

func (MediaPlayerMediaChanged) Type() EventType { return EventMediaPlayerMediaChanged }
func (MediaPlayerMediaChanged) isEvent() {}

type MediaPlayerNothingSpecial struct{}

func (MediaPlayerNothingSpecial) Type() EventType { return EventMediaPlayerNothingSpecial }
func (MediaPlayerNothingSpecial) isEvent() {}

type MediaPlayerOpening struct{}

func (MediaPlayerOpening) Type() EventType { return EventMediaPlayerOpening }
func (MediaPlayerOpening) isEvent() {}

type MediaPlayerBuffering struct {
	NewCache float32
}

func (MediaPlayerBuffering) Type() EventType { return EventMediaPlayerBuffering }
func (MediaPlayerBuffering) isEvent() {}

type MediaPlayerPlaying struct{}

func (MediaPlayerPlaying) Type() EventType { return EventMediaPlayerPlaying }
func (MediaPlayerPlaying) isEvent() {}

type MediaPlayerPaused struct{}

func (MediaPlayerPaused) Type() EventType { return EventMediaPlayerPaused }
func (MediaPlayerPaused) isEvent() {}

type MediaPlayerStopped struct{}

func (MediaPlayerStopped) Type() EventType { return EventMediaPlayerStopped }
func (MediaPlayerStopped) isEvent() {}

type MediaPlayerForward struct{}

func (MediaPlayerForward) Type() EventType { return EventMediaPlayerForward }
func (MediaPlayerForward) isEvent() {}

type MediaPlayerBackward struct{}

func (MediaPlayerBackward) Type() EventType { return EventMediaPlayerBackward }
func (MediaPlayerBackward) isEvent() {}

type MediaPlayerEndReached struct{}

func (MediaPlayerEndReached) Type() EventType { return EventMediaPlayerEndReached }
func (MediaPlayerEndReached) isEvent() {}

type MediaPlayerEncounteredError struct{}

func (MediaPlayerEncounteredError) Type() EventType { return EventMediaPlayerEncounteredError }
func (MediaPlayerEncounteredError) isEvent() {}

type MediaPlayerTimeChanged struct {
	NewTime int64
}

func (MediaPlayerTimeChanged) Type() EventType { return EventMediaPlayerTimeChanged }
func (MediaPlayerTimeChanged) isEvent() {}

type MediaPlayerPositionChanged struct {
	NewPosition float32
}

func (MediaPlayerPositionChanged) Type() EventType { return EventMediaPlayerPositionChanged }
func (MediaPlayerPositionChanged) isEvent() {}

type MediaPlayerSeekableChanged struct {
	NewSeekable bool
}

func (MediaPlayerSeekableChanged) Type() EventType { return EventMediaPlayerSeekableChanged }
func (MediaPlayerSeekableChanged) isEvent() {}

type MediaPlayerPausableChanged struct {
	NewPausable bool
}

func (MediaPlayerPausableChanged) Type() EventType { return EventMediaPlayerPausableChanged }
func (MediaPlayerPausableChanged) isEvent() {}

type MediaPlayerTitleChanged struct {
	NewTitle int32
}

func (MediaPlayerTitleChanged) Type() EventType { return EventMediaPlayerTitleChanged }
func (MediaPlayerTitleChanged) isEvent() {}

type MediaPlayerSnapshotTaken struct {
	Filename string
}

func (MediaPlayerSnapshotTaken) Type() EventType { return EventMediaPlayerSnapshotTaken }
func (MediaPlayerSnapshotTaken) isEvent() {}

type MediaPlayerLengthChanged struct {
	NewLength int64
}

func (MediaPlayerLengthChanged) Type() EventType { return EventMediaPlayerLengthChanged }
func (MediaPlayerLengthChanged) isEvent() {}

type MediaPlayerVout struct {
	NewCount int32
}

func (MediaPlayerVout) Type() EventType { return EventMediaPlayerVout }
func (MediaPlayerVout) isEvent() {}

type MediaPlayerScrambledChanged struct {
	NewScrambled bool
}

func (MediaPlayerScrambledChanged) Type() EventType { return EventMediaPlayerScrambledChanged }
func (MediaPlayerScrambledChanged) isEvent() {}

type MediaPlayerESAdded struct {
	ESChange
}

func (MediaPlayerESAdded) Type() EventType { return EventMediaPlayerESAdded }
func (MediaPlayerESAdded) isEvent() {}

type MediaPlayerESDeleted struct {
	ESChange
}

func (MediaPlayerESDeleted) Type() EventType { return EventMediaPlayerESDeleted }
func (MediaPlayerESDeleted) isEvent() {}

type MediaPlayerESSelected struct {
	ESChange
}

func (MediaPlayerESSelected) Type() EventType { return EventMediaPlayerESSelected }
func (MediaPlayerESSelected) isEvent() {}

type MediaPlayerCorked struct{}

func (MediaPlayerCorked) Type() EventType { return EventMediaPlayerCorked }
func (MediaPlayerCorked) isEvent() {}

type MediaPlayerUncorked struct{}

func (MediaPlayerUncorked) Type() EventType { return EventMediaPlayerUncorked }
func (MediaPlayerUncorked) isEvent() {}

type MediaPlayerMuted struct{}

func (MediaPlayerMuted) Type() EventType { return EventMediaPlayerMuted }
func (MediaPlayerMuted) isEvent() {}

type MediaPlayerUnmuted struct{}

func (MediaPlayerUnmuted) Type() EventType { return EventMediaPlayerUnmuted }
func (MediaPlayerUnmuted) isEvent() {}

type MediaPlayerAudioVolume struct {
	Volume float32
}

func (MediaPlayerAudioVolume) Type() EventType { return EventMediaPlayerAudioVolume }
func (MediaPlayerAudioVolume) isEvent() {}

type MediaPlayerAudioDevice struct {
	Device string
}

func (MediaPlayerAudioDevice) Type() EventType { return EventMediaPlayerAudioDevice }
func (MediaPlayerAudioDevice) isEvent() {}

type MediaPlayerChapterChanged struct {
	NewChapter int32
}

func (MediaPlayerChapterChanged) Type() EventType { return EventMediaPlayerChapterChanged }
func (MediaPlayerChapterChanged) isEvent() {}

type MediaListItemAdded struct {
	ListItem
}

func (MediaListItemAdded) Type() EventType { return EventMediaListItemAdded }
func (MediaListItemAdded) isEvent() {}

type MediaListWillAddItem struct {
	ListItem
}

func (MediaListWillAddItem) Type() EventType { return EventMediaListWillAddItem }
func (MediaListWillAddItem) isEvent() {}

type MediaListItemDeleted struct {
	ListItem
}

func (MediaListItemDeleted) Type() EventType { return EventMediaListItemDeleted }
func (MediaListItemDeleted) isEvent() {}

type MediaListWillDeleteItem struct {
	ListItem
}

func (MediaListWillDeleteItem) Type() EventType { return EventMediaListWillDeleteItem }
func (MediaListWillDeleteItem) isEvent() {}

type MediaListEndReached struct{}

func (MediaListEndReached) Type() EventType { return EventMediaListEndReached }
func (MediaListEndReached) isEvent() {}

type MediaListViewItemAdded struct {
	ListItem
}

func (MediaListViewItemAdded) Type() EventType { return EventMediaListViewItemAdded }
func (MediaListViewItemAdded) isEvent() {}

type MediaListViewWillAddItem struct {
	ListItem
}

func (MediaListViewWillAddItem) Type() EventType { return EventMediaListViewWillAddItem }
func (MediaListViewWillAddItem) isEvent() {}

type MediaListViewItemDeleted struct {
	ListItem
}

func (MediaListViewItemDeleted) Type() EventType { return EventMediaListViewItemDeleted }
func (MediaListViewItemDeleted) isEvent() {}

type MediaListViewWillDeleteItem struct {
	ListItem
}

func (MediaListViewWillDeleteItem) Type() EventType { return EventMediaListViewWillDeleteItem }
func (MediaListViewWillDeleteItem) isEvent() {}

type MediaListPlayerPlayed struct{}

func (MediaListPlayerPlayed) Type() EventType { return EventMediaListPlayerPlayed }
func (MediaListPlayerPlayed) isEvent() {}

type MediaListPlayerNextItemSet struct {
	Item MediaRef
}

func (MediaListPlayerNextItemSet) Type() EventType { return EventMediaListPlayerNextItemSet }
func (MediaListPlayerNextItemSet) isEvent() {}

type MediaListPlayerStopped struct{}

func (MediaListPlayerStopped) Type() EventType { return EventMediaListPlayerStopped }
func (MediaListPlayerStopped) isEvent() {}

type MediaDiscovererStarted struct{}

func (MediaDiscovererStarted) Type() EventType { return EventMediaDiscovererStarted }
func (MediaDiscovererStarted) isEvent() {}

type MediaDiscovererEnded struct{}

func (MediaDiscovererEnded) Type() EventType { return EventMediaDiscovererEnded }
func (MediaDiscovererEnded) isEvent() {}

type RendererDiscovererItemAdded struct {
	Item Object
}

func (RendererDiscovererItemAdded) Type() EventType { return EventRendererDiscovererItemAdded }
func (RendererDiscovererItemAdded) isEvent() {}

type RendererDiscovererItemDeleted struct {
	Item Object
}

func (RendererDiscovererItemDeleted) Type() EventType { return EventRendererDiscovererItemDeleted }
func (RendererDiscovererItemDeleted) isEvent() {}

type VlmMediaAdded struct {
	VlmMedia
}

func (VlmMediaAdded) Type() EventType { return EventVlmMediaAdded }
func (VlmMediaAdded) isEvent() {}

type VlmMediaRemoved struct {
	VlmMedia
}

func (VlmMediaRemoved) Type() EventType { return EventVlmMediaRemoved }
func (VlmMediaRemoved) isEvent() {}

type VlmMediaChanged struct {
	VlmMedia
}

func (VlmMediaChanged) Type() EventType { return EventVlmMediaChanged }
func (VlmMediaChanged) isEvent() {}

type VlmMediaInstanceStarted struct {
	VlmMedia
}

func (VlmMediaInstanceStarted) Type() EventType { return EventVlmMediaInstanceStarted }
func (VlmMediaInstanceStarted) isEvent() {}

type VlmMediaInstanceStopped struct {
	VlmMedia
}

func (VlmMediaInstanceStopped) Type() EventType { return EventVlmMediaInstanceStopped }
func (VlmMediaInstanceStopped) isEvent() {}

type VlmMediaInstanceStatusInit struct {
	VlmMedia
}

func (VlmMediaInstanceStatusInit) Type() EventType { return EventVlmMediaInstanceStatusInit }
func (VlmMediaInstanceStatusInit) isEvent() {}

type VlmMediaInstanceStatusOpening struct {
	VlmMedia
}

func (VlmMediaInstanceStatusOpening) Type() EventType { return EventVlmMediaInstanceStatusOpening }
func (VlmMediaInstanceStatusOpening) isEvent() {}

type VlmMediaInstanceStatusPlaying struct {
	VlmMedia
}

func (VlmMediaInstanceStatusPlaying) Type() EventType { return EventVlmMediaInstanceStatusPlaying }
func (VlmMediaInstanceStatusPlaying) isEvent() {}

type VlmMediaInstanceStatusPause struct {
	VlmMedia
}

func (VlmMediaInstanceStatusPause) Type() EventType { return EventVlmMediaInstanceStatusPause }
func (VlmMediaInstanceStatusPause) isEvent() {}

type VlmMediaInstanceStatusEnd struct {
	VlmMedia
}

func (VlmMediaInstanceStatusEnd) Type() EventType { return EventVlmMediaInstanceStatusEnd }
func (VlmMediaInstanceStatusEnd) isEvent() {}

type VlmMediaInstanceStatusError struct {
	VlmMedia
}

func (VlmMediaInstanceStatusError) Type() EventType { return EventVlmMediaInstanceStatusError }
func (VlmMediaInstanceStatusError) isEvent() {}
