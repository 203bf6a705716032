package log

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write(_ []byte) (int, error) {
	return 0, errors.New("disk full")
}

func newTestHook() (*hook, *bytes.Buffer, *bytes.Buffer, *bytes.Buffer) {
	var mainBuf, criticalBuf, verboseBuf bytes.Buffer
	h := &hook{
		main:      &mainBuf,
		critical:  &criticalBuf,
		verbose:   &verboseBuf,
		formatter: &logrus.TextFormatter{DisableTimestamp: true},
	}
	return h, &mainBuf, &criticalBuf, &verboseBuf
}

// =============================================================================
// 레벨별 라우팅
// =============================================================================

func TestHook_Fire_Routing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		level        Level
		wantMain     bool
		wantCritical bool
		wantVerbose  bool
	}{
		{"Error는 Main과 Critical", ErrorLevel, true, true, false},
		{"Warn은 Main만", WarnLevel, true, false, false},
		{"Info는 Main만", InfoLevel, true, false, false},
		{"Debug는 Verbose만", DebugLevel, false, false, true},
		{"Trace는 Verbose만", TraceLevel, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, mainBuf, criticalBuf, verboseBuf := newTestHook()
			entry := &Entry{Logger: logrus.New(), Level: tt.level, Message: "가격 스냅샷 갱신", Data: Fields{}}

			require.NoError(t, h.Fire(entry))
			assert.Equal(t, tt.wantMain, mainBuf.Len() > 0, "main")
			assert.Equal(t, tt.wantCritical, criticalBuf.Len() > 0, "critical")
			assert.Equal(t, tt.wantVerbose, verboseBuf.Len() > 0, "verbose")
		})
	}
}

func TestHook_Fire_Console(t *testing.T) {
	t.Parallel()

	h, _, _, _ := newTestHook()
	var console bytes.Buffer
	h.console = &console

	require.NoError(t, h.Fire(&Entry{Logger: logrus.New(), Level: TraceLevel, Message: "trace", Data: Fields{}}))
	assert.Contains(t, console.String(), "trace")
}

func TestHook_Fire_WriteError(t *testing.T) {
	t.Parallel()

	h, mainBuf, _, _ := newTestHook()
	h.critical = failingWriter{}

	err := h.Fire(&Entry{Logger: logrus.New(), Level: ErrorLevel, Message: "boom", Data: Fields{}})
	require.Error(t, err)
	assert.Positive(t, mainBuf.Len(), "Critical 실패와 관계없이 Main에는 기록되어야 합니다")
}

func TestHook_Close(t *testing.T) {
	t.Parallel()

	h, mainBuf, _, _ := newTestHook()
	require.NoError(t, h.Close())

	require.NoError(t, h.Fire(&Entry{Logger: logrus.New(), Level: InfoLevel, Message: "ignored", Data: Fields{}}))
	assert.Zero(t, mainBuf.Len())
}
