package vlc

// Union member offsets that are not zero.
const (
	listItemIndexOffset = 8 // media_list_item_*: { media *item; int index }
	esIDOffset          = 4 // media_player_es_changed: { int type; int id }
	vlmInstanceOffset   = 8 // vlm_media_event: { char *media; char *instance }
)

// decodeEvent converts a native event into its typed variant. Only the
// union member selected by the discriminant is read. Strings are copied;
// media pointers are wrapped as MediaRef bound to scope.
func decodeEvent(e *rawEvent, api *libvlcAPI, scope *borrowScope) (Event, error) {
	media := func(off uintptr) MediaRef {
		return MediaRef{ptr: e.ptrAt(off), api: api, scope: scope}
	}
	listItem := func() ListItem {
		return ListItem{Item: media(0), Index: e.int32At(listItemIndexOffset)}
	}
	esChange := func() ESChange {
		return ESChange{TrackType: TrackType(e.int32At(0)), ID: e.int32At(esIDOffset)}
	}
	vlm := func() VlmMedia {
		var v VlmMedia
		v.MediaName, _ = fromNativeBorrowed(e.ptrAt(0))
		v.InstanceName, _ = fromNativeBorrowed(e.ptrAt(vlmInstanceOffset))
		return v
	}
	str := func() string {
		s, _ := fromNativeBorrowed(e.ptrAt(0))
		return s
	}

	switch EventType(e.Type) {
	// Media
	case EventMediaMetaChanged:
		return MediaMetaChanged{Meta: Meta(e.int32At(0))}, nil
	case EventMediaSubItemAdded:
		return MediaSubItemAdded{Item: media(0)}, nil
	case EventMediaDurationChanged:
		return MediaDurationChanged{NewDuration: e.int64At(0)}, nil
	case EventMediaParsedChanged:
		return MediaParsedChanged{NewStatus: ParsedStatus(e.int32At(0))}, nil
	case EventMediaFreed:
		return MediaFreed{Media: Object{ptr: e.ptrAt(0)}}, nil
	case EventMediaStateChanged:
		return MediaStateChanged{NewState: State(e.int32At(0))}, nil
	case EventMediaSubItemTreeAdded:
		return MediaSubItemTreeAdded{Item: media(0)}, nil

	// Media player
	case EventMediaPlayerMediaChanged:
		return MediaPlayerMediaChanged{NewMedia: media(0)}, nil
	case EventMediaPlayerNothingSpecial:
		return MediaPlayerNothingSpecial{}, nil
	case EventMediaPlayerOpening:
		return MediaPlayerOpening{}, nil
	case EventMediaPlayerBuffering:
		return MediaPlayerBuffering{NewCache: e.float32At(0)}, nil
	case EventMediaPlayerPlaying:
		return MediaPlayerPlaying{}, nil
	case EventMediaPlayerPaused:
		return MediaPlayerPaused{}, nil
	case EventMediaPlayerStopped:
		return MediaPlayerStopped{}, nil
	case EventMediaPlayerForward:
		return MediaPlayerForward{}, nil
	case EventMediaPlayerBackward:
		return MediaPlayerBackward{}, nil
	case EventMediaPlayerEndReached:
		return MediaPlayerEndReached{}, nil
	case EventMediaPlayerEncounteredError:
		return MediaPlayerEncounteredError{}, nil
	case EventMediaPlayerTimeChanged:
		return MediaPlayerTimeChanged{NewTime: e.int64At(0)}, nil
	case EventMediaPlayerPositionChanged:
		return MediaPlayerPositionChanged{NewPosition: e.float32At(0)}, nil
	case EventMediaPlayerSeekableChanged:
		return MediaPlayerSeekableChanged{NewSeekable: e.int32At(0) != 0}, nil
	case EventMediaPlayerPausableChanged:
		return MediaPlayerPausableChanged{NewPausable: e.int32At(0) != 0}, nil
	case EventMediaPlayerTitleChanged:
		return MediaPlayerTitleChanged{NewTitle: e.int32At(0)}, nil
	case EventMediaPlayerSnapshotTaken:
		return MediaPlayerSnapshotTaken{Filename: str()}, nil
	case EventMediaPlayerLengthChanged:
		return MediaPlayerLengthChanged{NewLength: e.int64At(0)}, nil
	case EventMediaPlayerVout:
		return MediaPlayerVout{NewCount: e.int32At(0)}, nil
	case EventMediaPlayerScrambledChanged:
		return MediaPlayerScrambledChanged{NewScrambled: e.int32At(0) != 0}, nil
	case EventMediaPlayerESAdded:
		return MediaPlayerESAdded{esChange()}, nil
	case EventMediaPlayerESDeleted:
		return MediaPlayerESDeleted{esChange()}, nil
	case EventMediaPlayerESSelected:
		return MediaPlayerESSelected{esChange()}, nil
	case EventMediaPlayerCorked:
		return MediaPlayerCorked{}, nil
	case EventMediaPlayerUncorked:
		return MediaPlayerUncorked{}, nil
	case EventMediaPlayerMuted:
		return MediaPlayerMuted{}, nil
	case EventMediaPlayerUnmuted:
		return MediaPlayerUnmuted{}, nil
	case EventMediaPlayerAudioVolume:
		return MediaPlayerAudioVolume{Volume: e.float32At(0)}, nil
	case EventMediaPlayerAudioDevice:
		return MediaPlayerAudioDevice{Device: str()}, nil
	case EventMediaPlayerChapterChanged:
		return MediaPlayerChapterChanged{NewChapter: e.int32At(0)}, nil

	// Media list
	case EventMediaListItemAdded:
		return MediaListItemAdded{listItem()}, nil
	case EventMediaListWillAddItem:
		return MediaListWillAddItem{listItem()}, nil
	case EventMediaListItemDeleted:
		return MediaListItemDeleted{listItem()}, nil
	case EventMediaListWillDeleteItem:
		return MediaListWillDeleteItem{listItem()}, nil
	case EventMediaListEndReached:
		return MediaListEndReached{}, nil
	case EventMediaListViewItemAdded:
		return MediaListViewItemAdded{listItem()}, nil
	case EventMediaListViewWillAddItem:
		return MediaListViewWillAddItem{listItem()}, nil
	case EventMediaListViewItemDeleted:
		return MediaListViewItemDeleted{listItem()}, nil
	case EventMediaListViewWillDeleteItem:
		return MediaListViewWillDeleteItem{listItem()}, nil
	case EventMediaListPlayerPlayed:
		return MediaListPlayerPlayed{}, nil
	case EventMediaListPlayerNextItemSet:
		return MediaListPlayerNextItemSet{Item: media(0)}, nil
	case EventMediaListPlayerStopped:
		return MediaListPlayerStopped{}, nil

	// Discoverers
	case EventMediaDiscovererStarted:
		return MediaDiscovererStarted{}, nil
	case EventMediaDiscovererEnded:
		return MediaDiscovererEnded{}, nil
	case EventRendererDiscovererItemAdded:
		return RendererDiscovererItemAdded{Item: Object{ptr: e.ptrAt(0)}}, nil
	case EventRendererDiscovererItemDeleted:
		return RendererDiscovererItemDeleted{Item: Object{ptr: e.ptrAt(0)}}, nil

	// VLM
	case EventVlmMediaAdded:
		return VlmMediaAdded{vlm()}, nil
	case EventVlmMediaRemoved:
		return VlmMediaRemoved{vlm()}, nil
	case EventVlmMediaChanged:
		return VlmMediaChanged{vlm()}, nil
	case EventVlmMediaInstanceStarted:
		return VlmMediaInstanceStarted{vlm()}, nil
	case EventVlmMediaInstanceStopped:
		return VlmMediaInstanceStopped{vlm()}, nil
	case EventVlmMediaInstanceStatusInit:
		return VlmMediaInstanceStatusInit{vlm()}, nil
	case EventVlmMediaInstanceStatusOpening:
		return VlmMediaInstanceStatusOpening{vlm()}, nil
	case EventVlmMediaInstanceStatusPlaying:
		return VlmMediaInstanceStatusPlaying{vlm()}, nil
	case EventVlmMediaInstanceStatusPause:
		return VlmMediaInstanceStatusPause{vlm()}, nil
	case EventVlmMediaInstanceStatusEnd:
		return VlmMediaInstanceStatusEnd{vlm()}, nil
	case EventVlmMediaInstanceStatusError:
		return VlmMediaInstanceStatusError{vlm()}, nil
	}
	return nil, &UnknownEventError{Type: e.Type}
}
