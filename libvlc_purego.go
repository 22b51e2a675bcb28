//go:build darwin || linux

// libvlc loading via purego.
//
// The library is opened at runtime, so the package builds with
// CGO_ENABLED=0 and works against whichever libvlc 3.x is installed.

package vlc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/ebitengine/purego"
)

func loadLibVLC() (*libvlcAPI, error) {
	var lastErr error
	for _, path := range existingPaths(libVLCPaths()) {
		handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err != nil {
			lastErr = err
			continue
		}
		api := &libvlcAPI{}
		if err := registerLibVLC(api, handle); err != nil {
			purego.Dlclose(handle)
			lastErr = fmt.Errorf("%s: %w", path, err)
			continue
		}
		if err := registerLibC(api); err != nil {
			purego.Dlclose(handle)
			return nil, err
		}
		registerTrampolines(api)
		return api, nil
	}

	if lastErr != nil {
		return nil, fmt.Errorf("failed to load libvlc: %w", lastErr)
	}
	return nil, errors.New("libvlc not found in any standard location")
}

func libVLCPaths() []string {
	var paths []string

	names := []string{"libvlc.so.5", "libvlc.so"}
	if runtime.GOOS == "darwin" {
		names = []string{"libvlc.dylib", "libvlc.5.dylib"}
	}

	// Environment variable overrides
	if envPath := os.Getenv("VLC_LIB_PATH"); envPath != "" {
		paths = append(paths, envPath)
	}
	if envDir := os.Getenv("VLC_SDK_LIB_PATH"); envDir != "" {
		for _, name := range names {
			paths = append(paths, filepath.Join(envDir, name))
		}
	}

	// Next to the executable, and ../lib for bundled layouts
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		for _, name := range names {
			paths = append(paths,
				filepath.Join(exeDir, name),
				filepath.Join(exeDir, "..", "lib", name),
			)
		}
	}

	// Module-local build directory (development)
	if root := findModuleRoot(); root != "" {
		for _, name := range names {
			paths = append(paths, filepath.Join(root, "build", name))
		}
	}

	// System paths
	switch runtime.GOOS {
	case "darwin":
		paths = append(paths,
			"/Applications/VLC.app/Contents/MacOS/lib/libvlc.dylib",
			"/usr/local/lib/libvlc.dylib",
			"/opt/homebrew/lib/libvlc.dylib",
		)
	case "linux":
		paths = append(paths,
			"/usr/lib/x86_64-linux-gnu/libvlc.so.5",
			"/usr/lib/aarch64-linux-gnu/libvlc.so.5",
			"/usr/local/lib/libvlc.so.5",
			"/usr/lib/libvlc.so.5",
		)
	}

	// Bare names last so the dynamic loader search path is honoured
	paths = append(paths, names...)
	return paths
}

// symbolTable resolves symbols one by one so a missing export becomes an
// error instead of a purego panic.
type symbolTable struct {
	handle  uintptr
	missing []string
}

func (s *symbolTable) bind(fptr any, name string) {
	if _, err := purego.Dlsym(s.handle, name); err != nil {
		s.missing = append(s.missing, name)
		return
	}
	purego.RegisterLibFunc(fptr, s.handle, name)
}

func (s *symbolTable) err() error {
	if len(s.missing) == 0 {
		return nil
	}
	return fmt.Errorf("missing symbols: %s", strings.Join(s.missing, ", "))
}

func registerLibVLC(api *libvlcAPI, handle uintptr) error {
	s := &symbolTable{handle: handle}

	// Core
	s.bind(&api.new, "libvlc_new")
	s.bind(&api.release, "libvlc_release")
	s.bind(&api.retain, "libvlc_retain")
	s.bind(&api.addIntf, "libvlc_add_intf")
	s.bind(&api.wait, "libvlc_wait")
	s.bind(&api.setUserAgent, "libvlc_set_user_agent")
	s.bind(&api.setAppID, "libvlc_set_app_id")
	s.bind(&api.getVersion, "libvlc_get_version")
	s.bind(&api.getCompiler, "libvlc_get_compiler")
	s.bind(&api.getChangeset, "libvlc_get_changeset")
	s.bind(&api.free, "libvlc_free")
	s.bind(&api.errmsg, "libvlc_errmsg")
	s.bind(&api.clearerr, "libvlc_clearerr")
	s.bind(&api.clock, "libvlc_clock")
	s.bind(&api.eventAttach, "libvlc_event_attach")
	s.bind(&api.eventTypeName, "libvlc_event_type_name")
	s.bind(&api.logSet, "libvlc_log_set")
	s.bind(&api.logUnset, "libvlc_log_unset")
	s.bind(&api.logGetContext, "libvlc_log_get_context")
	s.bind(&api.moduleDescriptionListRelease, "libvlc_module_description_list_release")
	s.bind(&api.audioFilterListGet, "libvlc_audio_filter_list_get")
	s.bind(&api.videoFilterListGet, "libvlc_video_filter_list_get")

	// Media
	s.bind(&api.mediaNewLocation, "libvlc_media_new_location")
	s.bind(&api.mediaNewPath, "libvlc_media_new_path")
	s.bind(&api.mediaNewFD, "libvlc_media_new_fd")
	s.bind(&api.mediaNewAsNode, "libvlc_media_new_as_node")
	s.bind(&api.mediaAddOption, "libvlc_media_add_option")
	s.bind(&api.mediaAddOptionFlag, "libvlc_media_add_option_flag")
	s.bind(&api.mediaRetain, "libvlc_media_retain")
	s.bind(&api.mediaRelease, "libvlc_media_release")
	s.bind(&api.mediaGetMRL, "libvlc_media_get_mrl")
	s.bind(&api.mediaDuplicate, "libvlc_media_duplicate")
	s.bind(&api.mediaGetMeta, "libvlc_media_get_meta")
	s.bind(&api.mediaSetMeta, "libvlc_media_set_meta")
	s.bind(&api.mediaSaveMeta, "libvlc_media_save_meta")
	s.bind(&api.mediaGetState, "libvlc_media_get_state")
	s.bind(&api.mediaSubitems, "libvlc_media_subitems")
	s.bind(&api.mediaEventManager, "libvlc_media_event_manager")
	s.bind(&api.mediaGetDuration, "libvlc_media_get_duration")
	s.bind(&api.mediaParse, "libvlc_media_parse")
	s.bind(&api.mediaParseAsync, "libvlc_media_parse_async")
	s.bind(&api.mediaIsParsed, "libvlc_media_is_parsed")
	s.bind(&api.mediaTracksGet, "libvlc_media_tracks_get")
	s.bind(&api.mediaTracksRelease, "libvlc_media_tracks_release")

	// Media player
	s.bind(&api.playerNew, "libvlc_media_player_new")
	s.bind(&api.playerNewFromMedia, "libvlc_media_player_new_from_media")
	s.bind(&api.playerRelease, "libvlc_media_player_release")
	s.bind(&api.playerRetain, "libvlc_media_player_retain")
	s.bind(&api.playerSetMedia, "libvlc_media_player_set_media")
	s.bind(&api.playerGetMedia, "libvlc_media_player_get_media")
	s.bind(&api.playerEventManager, "libvlc_media_player_event_manager")
	s.bind(&api.playerIsPlaying, "libvlc_media_player_is_playing")
	s.bind(&api.playerPlay, "libvlc_media_player_play")
	s.bind(&api.playerSetPause, "libvlc_media_player_set_pause")
	s.bind(&api.playerPause, "libvlc_media_player_pause")
	s.bind(&api.playerStop, "libvlc_media_player_stop")
	s.bind(&api.playerGetLength, "libvlc_media_player_get_length")
	s.bind(&api.playerGetTime, "libvlc_media_player_get_time")
	s.bind(&api.playerSetTime, "libvlc_media_player_set_time")
	s.bind(&api.playerGetPosition, "libvlc_media_player_get_position")
	s.bind(&api.playerSetPosition, "libvlc_media_player_set_position")
	s.bind(&api.playerGetRate, "libvlc_media_player_get_rate")
	s.bind(&api.playerSetRate, "libvlc_media_player_set_rate")
	s.bind(&api.playerGetState, "libvlc_media_player_get_state")
	s.bind(&api.playerWillPlay, "libvlc_media_player_will_play")
	s.bind(&api.playerIsSeekable, "libvlc_media_player_is_seekable")
	s.bind(&api.playerCanPause, "libvlc_media_player_can_pause")
	s.bind(&api.playerNextFrame, "libvlc_media_player_next_frame")
	s.bind(&api.playerSetXWindow, "libvlc_media_player_set_xwindow")
	s.bind(&api.playerGetXWindow, "libvlc_media_player_get_xwindow")
	s.bind(&api.playerSetHWND, "libvlc_media_player_set_hwnd")
	s.bind(&api.playerGetHWND, "libvlc_media_player_get_hwnd")
	s.bind(&api.playerSetNSObject, "libvlc_media_player_set_nsobject")
	s.bind(&api.playerGetNSObject, "libvlc_media_player_get_nsobject")

	// Audio
	s.bind(&api.audioGetMute, "libvlc_audio_get_mute")
	s.bind(&api.audioSetMute, "libvlc_audio_set_mute")
	s.bind(&api.audioGetVolume, "libvlc_audio_get_volume")
	s.bind(&api.audioSetVolume, "libvlc_audio_set_volume")
	s.bind(&api.audioSetCallbacks, "libvlc_audio_set_callbacks")
	s.bind(&api.audioSetFormat, "libvlc_audio_set_format")

	// Video
	s.bind(&api.toggleFullscreen, "libvlc_toggle_fullscreen")
	s.bind(&api.setFullscreen, "libvlc_set_fullscreen")
	s.bind(&api.getFullscreen, "libvlc_get_fullscreen")
	s.bind(&api.videoSetKeyInput, "libvlc_video_set_key_input")
	s.bind(&api.videoSetMouseInput, "libvlc_video_set_mouse_input")
	s.bind(&api.videoGetSize, "libvlc_video_get_size")
	s.bind(&api.videoGetCursor, "libvlc_video_get_cursor")
	s.bind(&api.videoGetScale, "libvlc_video_get_scale")
	s.bind(&api.videoSetScale, "libvlc_video_set_scale")
	s.bind(&api.videoGetTrack, "libvlc_video_get_track")
	s.bind(&api.videoSetTrack, "libvlc_video_set_track")
	s.bind(&api.videoGetAdjustInt, "libvlc_video_get_adjust_int")
	s.bind(&api.videoSetAdjustInt, "libvlc_video_set_adjust_int")
	s.bind(&api.videoGetAdjustFloat, "libvlc_video_get_adjust_float")
	s.bind(&api.videoSetAdjustFloat, "libvlc_video_set_adjust_float")
	s.bind(&api.videoTakeSnapshot, "libvlc_video_take_snapshot")
	s.bind(&api.videoGetAspectRatio, "libvlc_video_get_aspect_ratio")
	s.bind(&api.videoSetAspectRatio, "libvlc_video_set_aspect_ratio")

	// Media list
	s.bind(&api.listNew, "libvlc_media_list_new")
	s.bind(&api.listRelease, "libvlc_media_list_release")
	s.bind(&api.listRetain, "libvlc_media_list_retain")
	s.bind(&api.listAddMedia, "libvlc_media_list_add_media")
	s.bind(&api.listInsertMedia, "libvlc_media_list_insert_media")
	s.bind(&api.listRemoveIndex, "libvlc_media_list_remove_index")
	s.bind(&api.listCount, "libvlc_media_list_count")
	s.bind(&api.listItemAtIndex, "libvlc_media_list_item_at_index")
	s.bind(&api.listIndexOfItem, "libvlc_media_list_index_of_item")
	s.bind(&api.listIsReadonly, "libvlc_media_list_is_readonly")
	s.bind(&api.listLock, "libvlc_media_list_lock")
	s.bind(&api.listUnlock, "libvlc_media_list_unlock")
	s.bind(&api.listEventManager, "libvlc_media_list_event_manager")

	// Media list player
	s.bind(&api.listPlayerNew, "libvlc_media_list_player_new")
	s.bind(&api.listPlayerRelease, "libvlc_media_list_player_release")
	s.bind(&api.listPlayerRetain, "libvlc_media_list_player_retain")
	s.bind(&api.listPlayerEventManager, "libvlc_media_list_player_event_manager")
	s.bind(&api.listPlayerSetMediaPlayer, "libvlc_media_list_player_set_media_player")
	s.bind(&api.listPlayerSetMediaList, "libvlc_media_list_player_set_media_list")
	s.bind(&api.listPlayerPlay, "libvlc_media_list_player_play")
	s.bind(&api.listPlayerPause, "libvlc_media_list_player_pause")
	s.bind(&api.listPlayerStop, "libvlc_media_list_player_stop")
	s.bind(&api.listPlayerIsPlaying, "libvlc_media_list_player_is_playing")
	s.bind(&api.listPlayerGetState, "libvlc_media_list_player_get_state")
	s.bind(&api.listPlayerPlayItemAtIndex, "libvlc_media_list_player_play_item_at_index")
	s.bind(&api.listPlayerNext, "libvlc_media_list_player_next")
	s.bind(&api.listPlayerPrevious, "libvlc_media_list_player_previous")
	s.bind(&api.listPlayerSetPlaybackMode, "libvlc_media_list_player_set_playback_mode")

	// Media library
	s.bind(&api.libraryNew, "libvlc_media_library_new")
	s.bind(&api.libraryRelease, "libvlc_media_library_release")
	s.bind(&api.libraryRetain, "libvlc_media_library_retain")
	s.bind(&api.libraryLoad, "libvlc_media_library_load")
	s.bind(&api.libraryMediaList, "libvlc_media_library_media_list")

	// VLM
	s.bind(&api.vlmRelease, "libvlc_vlm_release")
	s.bind(&api.vlmAddBroadcast, "libvlc_vlm_add_broadcast")
	s.bind(&api.vlmAddVOD, "libvlc_vlm_add_vod")
	s.bind(&api.vlmDelMedia, "libvlc_vlm_del_media")
	s.bind(&api.vlmSetEnabled, "libvlc_vlm_set_enabled")
	s.bind(&api.vlmSetOutput, "libvlc_vlm_set_output")
	s.bind(&api.vlmSetInput, "libvlc_vlm_set_input")
	s.bind(&api.vlmSetLoop, "libvlc_vlm_set_loop")
	s.bind(&api.vlmPlayMedia, "libvlc_vlm_play_media")
	s.bind(&api.vlmStopMedia, "libvlc_vlm_stop_media")
	s.bind(&api.vlmPauseMedia, "libvlc_vlm_pause_media")
	s.bind(&api.vlmSeekMedia, "libvlc_vlm_seek_media")
	s.bind(&api.vlmShowMedia, "libvlc_vlm_show_media")
	s.bind(&api.vlmGetMediaInstancePosition, "libvlc_vlm_get_media_instance_position")
	s.bind(&api.vlmGetMediaInstanceTime, "libvlc_vlm_get_media_instance_time")
	s.bind(&api.vlmGetMediaInstanceLength, "libvlc_vlm_get_media_instance_length")
	s.bind(&api.vlmGetMediaInstanceRate, "libvlc_vlm_get_media_instance_rate")
	s.bind(&api.vlmGetEventManager, "libvlc_vlm_get_event_manager")

	return s.err()
}

func registerLibC(api *libvlcAPI) error {
	name := "libc.so.6"
	if runtime.GOOS == "darwin" {
		name = "/usr/lib/libSystem.B.dylib"
	}
	handle, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", name, err)
	}
	s := &symbolTable{handle: handle}
	s.bind(&api.vsnprintf, "vsnprintf")
	return s.err()
}

// purego callbacks are a finite process-wide resource, so each trampoline
// is created once and shared by every registration.
func registerTrampolines(api *libvlcAPI) {
	api.eventCallback = purego.NewCallback(eventTrampoline)
	api.logCallback = purego.NewCallback(logTrampoline)
	api.audioPlayCallback = purego.NewCallback(audioPlayTrampoline)
	api.audioPauseCallback = purego.NewCallback(audioPauseTrampoline)
	api.audioResumeCallback = purego.NewCallback(audioResumeTrampoline)
	api.audioFlushCallback = purego.NewCallback(audioFlushTrampoline)
	api.audioDrainCallback = purego.NewCallback(audioDrainTrampoline)
}
