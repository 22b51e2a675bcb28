package vlc

import (
	"fmt"
	"sync"
	"testing"

	"github.com/pion/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logLine struct {
	level string
	msg   string
}

// recordingLogger captures everything written to it.
type recordingLogger struct {
	mu    sync.Mutex
	lines []logLine
}

func (r *recordingLogger) add(level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, logLine{level, msg})
}

func (r *recordingLogger) all() []logLine {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]logLine(nil), r.lines...)
}

func (r *recordingLogger) Trace(msg string)                  { r.add("trace", msg) }
func (r *recordingLogger) Tracef(format string, args ...any) { r.add("trace", fmt.Sprintf(format, args...)) }
func (r *recordingLogger) Debug(msg string)                  { r.add("debug", msg) }
func (r *recordingLogger) Debugf(format string, args ...any) { r.add("debug", fmt.Sprintf(format, args...)) }
func (r *recordingLogger) Info(msg string)                   { r.add("info", msg) }
func (r *recordingLogger) Infof(format string, args ...any)  { r.add("info", fmt.Sprintf(format, args...)) }
func (r *recordingLogger) Warn(msg string)                   { r.add("warn", msg) }
func (r *recordingLogger) Warnf(format string, args ...any)  { r.add("warn", fmt.Sprintf(format, args...)) }
func (r *recordingLogger) Error(msg string)                  { r.add("error", msg) }
func (r *recordingLogger) Errorf(format string, args ...any) { r.add("error", fmt.Sprintf(format, args...)) }

type recordingFactory struct{ logger *recordingLogger }

func (f recordingFactory) NewLogger(string) logging.LeveledLogger { return f.logger }

func TestSetLogger_LevelMapping(t *testing.T) {
	f := newFakeVLC(t)

	var sinkID uintptr
	f.api.logSet = func(inst, cb, data uintptr) {
		assert.Equal(t, f.api.logCallback, cb)
		sinkID = data
	}

	inst, err := NewInstance()
	require.NoError(t, err)
	defer inst.Close()

	rec := &recordingLogger{}
	require.NoError(t, inst.SetLogger(rec))
	require.NotZero(t, sinkID)

	tests := []struct {
		level LogLevel
		want  string
	}{
		{LogLevelDebug, "debug"},
		{LogLevelNotice, "info"},
		{LogLevelWarning, "warn"},
		{LogLevelError, "error"},
		{LogLevel(1), "trace"},
	}
	for _, tt := range tests {
		logTrampoline(sinkID, int32(tt.level), 0xc0, f.cstr("opening "+tt.want), 0)
	}

	lines := rec.all()
	require.Len(t, lines, len(tests))
	for i, tt := range tests {
		assert.Equal(t, tt.want, lines[i].level)
		assert.Equal(t, "main: opening "+tt.want, lines[i].msg)
	}
}

func TestLogTrampoline_NoContext(t *testing.T) {
	f := newFakeVLC(t)
	rec := &recordingLogger{}
	id := registry.add(&registration{kind: callbackLog, log: &logSink{api: f.api, logger: rec}})
	defer registry.remove(id)

	logTrampoline(id, int32(LogLevelNotice), 0, f.cstr("bare"), 0)
	assert.Equal(t, []logLine{{"info", "bare"}}, rec.all())
}

func TestSetLogger_ReplaceAndUnset(t *testing.T) {
	f := newFakeVLC(t)

	var unset int
	f.api.logUnset = func(uintptr) { unset++ }

	inst, err := NewInstance()
	require.NoError(t, err)
	defer inst.Close()

	before := Registrations()
	require.NoError(t, inst.SetLogger(&recordingLogger{}))
	first := inst.logID
	require.NoError(t, inst.SetLogger(&recordingLogger{}))
	assert.NotEqual(t, first, inst.logID)
	assert.Equal(t, before+1, Registrations(), "replaced sink reclaimed")

	_, ok := registry.get(first)
	assert.False(t, ok)

	require.NoError(t, inst.UnsetLogger())
	require.NoError(t, inst.UnsetLogger())
	assert.Equal(t, 1, unset)
	assert.Equal(t, before, Registrations())
}

func TestLogTrampoline_PanickingLoggerIsAFault(t *testing.T) {
	f := newFakeVLC(t)
	id := registry.add(&registration{kind: callbackLog, log: &logSink{api: f.api, logger: panicLogger{}}})
	defer registry.remove(id)

	var fault CallbackFault
	SetFaultHandler(func(cf CallbackFault) { fault = cf })
	t.Cleanup(func() { SetFaultHandler(nil) })

	assert.NotPanics(t, func() {
		logTrampoline(id, int32(LogLevelError), 0, f.cstr("x"), 0)
	})
	assert.Equal(t, "log", fault.Callback)
}

type panicLogger struct{ logging.LeveledLogger }

func (panicLogger) Error(string) { panic("logger") }

func TestSetLoggerFactory(t *testing.T) {
	rec := &recordingLogger{}
	SetLoggerFactory(recordingFactory{rec})
	t.Cleanup(func() { SetLoggerFactory(logging.NewDefaultLoggerFactory()) })

	h, err := newHandle("player", 0x6, func(uintptr) {})
	require.NoError(t, err)
	h.finalize()

	assert.Contains(t, rec.all(), logLine{"warn", "player garbage collected without Close, releasing"})
}

func TestInstanceClose_ReclaimsLogSink(t *testing.T) {
	newFakeVLC(t)
	inst, err := NewInstance()
	require.NoError(t, err)

	before := Registrations()
	require.NoError(t, inst.SetLogger(&recordingLogger{}))
	id := inst.logID
	assert.Equal(t, before+1, Registrations())

	require.NoError(t, inst.Close())
	_, ok := registry.get(id)
	assert.False(t, ok)
	assert.Equal(t, before, Registrations())
	assert.ErrorIs(t, inst.SetLogger(&recordingLogger{}), ErrReleased)
	assert.Equal(t, before, Registrations(), "failed SetLogger leaves nothing behind")
}
