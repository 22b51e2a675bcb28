package vlc

import (
	"runtime"
	"sync"
	"unsafe"

	"github.com/pion/logging"
)

const logScope = "vlc"

var (
	loggerMu  sync.RWMutex
	pkgLogger logging.LeveledLogger = logging.NewDefaultLoggerFactory().NewLogger(logScope)
)

// SetLoggerFactory replaces the logger used for package diagnostics
// (callback faults, leaked handles, loader errors).
func SetLoggerFactory(factory logging.LoggerFactory) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	pkgLogger = factory.NewLogger(logScope)
}

func logger() logging.LeveledLogger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return pkgLogger
}

// logMessageSize bounds a formatted libvlc log line.
const logMessageSize = 1024

// LogContext describes where a libvlc log message came from. The fields are
// copied out of libvlc before the log callback returns.
type LogContext struct {
	Module string
	File   string
	Line   uint32
}

// logSink is the registry payload of an Instance log callback.
type logSink struct {
	api    *libvlcAPI
	logger logging.LeveledLogger
}

// SetLogger routes libvlc's internal log into logger. A second call replaces
// the previous sink. libvlc invokes the logger from its own threads.
func (i *Instance) SetLogger(logger logging.LeveledLogger) error {
	id := registry.add(&registration{
		kind: callbackLog,
		log:  &logSink{api: i.api, logger: logger},
	})

	i.logMu.Lock()
	defer i.logMu.Unlock()
	err := i.h.with(func(ptr uintptr) { i.api.logSet(ptr, i.api.logCallback, id) })
	if err != nil {
		registry.remove(id)
		return err
	}
	// libvlc_log_set waits for in-flight calls on the previous sink
	if i.logID != 0 {
		registry.remove(i.logID)
	}
	i.logID = id
	return nil
}

// UnsetLogger stops log delivery. Unlike event callbacks, the log sink can
// be reclaimed because libvlc_log_unset returns only after the last call.
func (i *Instance) UnsetLogger() error {
	i.logMu.Lock()
	defer i.logMu.Unlock()
	if i.logID == 0 {
		_, err := i.h.get()
		return err
	}
	if err := i.h.with(i.api.logUnset); err != nil {
		return err
	}
	registry.remove(i.logID)
	i.logID = 0
	return nil
}

// logTrampoline is the C-callable libvlc_log_cb.
func logTrampoline(data uintptr, level int32, ctx, format, args uintptr) {
	defer recoverFault(callbackLog, 0)

	reg, ok := registry.get(data)
	if !ok || reg.log == nil {
		return
	}
	sink := reg.log

	var pinner runtime.Pinner
	defer pinner.Unpin()
	buf := pinned[[logMessageSize]byte](&pinner)
	sink.api.vsnprintf(uintptr(unsafe.Pointer(buf)), logMessageSize, format, args)
	buf[logMessageSize-1] = 0
	msg, _ := fromNativeBorrowed(uintptr(unsafe.Pointer(buf)))

	lctx := readLogContext(sink.api, ctx)
	if lctx.Module != "" {
		msg = lctx.Module + ": " + msg
	}

	switch LogLevel(level) {
	case LogLevelDebug:
		sink.logger.Debug(msg)
	case LogLevelNotice:
		sink.logger.Info(msg)
	case LogLevelWarning:
		sink.logger.Warn(msg)
	case LogLevelError:
		sink.logger.Error(msg)
	default:
		sink.logger.Trace(msg)
	}
}

func readLogContext(api *libvlcAPI, ctx uintptr) LogContext {
	if ctx == 0 {
		return LogContext{}
	}
	var pinner runtime.Pinner
	defer pinner.Unpin()
	out := pinned[struct {
		module, file uintptr
		line         uint32
	}](&pinner)
	api.logGetContext(ctx,
		uintptr(unsafe.Pointer(&out.module)),
		uintptr(unsafe.Pointer(&out.file)),
		uintptr(unsafe.Pointer(&out.line)))

	lc := LogContext{Line: out.line}
	lc.Module, _ = fromNativeBorrowed(out.module)
	lc.File, _ = fromNativeBorrowed(out.file)
	return lc
}
