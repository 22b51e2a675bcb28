package vlc

// State is the playback state of a media or player.
type State int32

const (
	StateNothingSpecial State = iota
	StateOpening
	StateBuffering
	StatePlaying
	StatePaused
	StateStopped
	StateEnded
	StateError
)

func (s State) String() string {
	switch s {
	case StateNothingSpecial:
		return "NothingSpecial"
	case StateOpening:
		return "Opening"
	case StateBuffering:
		return "Buffering"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateStopped:
		return "Stopped"
	case StateEnded:
		return "Ended"
	case StateError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Meta selects a media metadata field.
type Meta int32

const (
	MetaTitle Meta = iota
	MetaArtist
	MetaGenre
	MetaCopyright
	MetaAlbum
	MetaTrackNumber
	MetaDescription
	MetaRating
	MetaDate
	MetaSetting
	MetaURL
	MetaLanguage
	MetaNowPlaying
	MetaPublisher
	MetaEncodedBy
	MetaArtworkURL
	MetaTrackID
	MetaTrackTotal
	MetaDirector
	MetaSeason
	MetaEpisode
	MetaShowName
	MetaActors
)

var metaNames = [...]string{
	"Title", "Artist", "Genre", "Copyright", "Album", "TrackNumber",
	"Description", "Rating", "Date", "Setting", "URL", "Language",
	"NowPlaying", "Publisher", "EncodedBy", "ArtworkURL", "TrackID",
	"TrackTotal", "Director", "Season", "Episode", "ShowName", "Actors",
}

func (m Meta) String() string {
	if m < 0 || int(m) >= len(metaNames) {
		return "Unknown"
	}
	return metaNames[m]
}

// TrackType is the elementary stream category of a media track.
type TrackType int32

const (
	TrackUnknown TrackType = -1
	TrackAudio   TrackType = 0
	TrackVideo   TrackType = 1
	TrackText    TrackType = 2
)

func (t TrackType) String() string {
	switch t {
	case TrackAudio:
		return "Audio"
	case TrackVideo:
		return "Video"
	case TrackText:
		return "Text"
	default:
		return "Unknown"
	}
}

// LogLevel is the severity of a libvlc log message.
type LogLevel int32

const (
	LogLevelDebug   LogLevel = 0
	LogLevelNotice  LogLevel = 2
	LogLevelWarning LogLevel = 3
	LogLevelError   LogLevel = 4
)

func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "Debug"
	case LogLevelNotice:
		return "Notice"
	case LogLevelWarning:
		return "Warning"
	case LogLevelError:
		return "Error"
	default:
		return "Unknown"
	}
}

// ParsedStatus is the outcome of a media parse request.
type ParsedStatus int32

const (
	ParsedStatusSkipped ParsedStatus = iota + 1
	ParsedStatusFailed
	ParsedStatusTimeout
	ParsedStatusDone
)

func (p ParsedStatus) String() string {
	switch p {
	case ParsedStatusSkipped:
		return "Skipped"
	case ParsedStatusFailed:
		return "Failed"
	case ParsedStatusTimeout:
		return "Timeout"
	case ParsedStatusDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// VideoAdjustOption selects an adjust filter parameter.
type VideoAdjustOption uint32

const (
	AdjustEnable VideoAdjustOption = iota
	AdjustContrast
	AdjustBrightness
	AdjustHue
	AdjustSaturation
	AdjustGamma
)

func (o VideoAdjustOption) String() string {
	switch o {
	case AdjustEnable:
		return "Enable"
	case AdjustContrast:
		return "Contrast"
	case AdjustBrightness:
		return "Brightness"
	case AdjustHue:
		return "Hue"
	case AdjustSaturation:
		return "Saturation"
	case AdjustGamma:
		return "Gamma"
	default:
		return "Unknown"
	}
}

// PlaybackMode controls how a list player advances.
type PlaybackMode int32

const (
	PlaybackDefault PlaybackMode = iota
	PlaybackLoop
	PlaybackRepeat
)

func (m PlaybackMode) String() string {
	switch m {
	case PlaybackDefault:
		return "Default"
	case PlaybackLoop:
		return "Loop"
	case PlaybackRepeat:
		return "Repeat"
	default:
		return "Unknown"
	}
}

// MediaOptionFlag controls how a media option is applied.
type MediaOptionFlag uint32

const (
	OptionUnique  MediaOptionFlag = 0x100
	OptionTrusted MediaOptionFlag = 0x2
)

// AudioFormat is a fourcc sample format accepted by SetAudioCallbacks.
type AudioFormat string

const (
	AudioFormatS16N AudioFormat = "S16N"
	AudioFormatS32N AudioFormat = "S32N"
	AudioFormatFL32 AudioFormat = "FL32"
)

// sampleSize returns the bytes per sample of one channel, or 0 when the
// format is not supported.
func (f AudioFormat) sampleSize() int {
	switch f {
	case AudioFormatS16N:
		return 2
	case AudioFormatS32N, AudioFormatFL32:
		return 4
	default:
		return 0
	}
}

func (f AudioFormat) String() string {
	return string(f)
}
