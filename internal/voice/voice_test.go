package voice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleStartStop(t *testing.T) {
	ctx := context.Background()
	rec := NewRecorder(nil)

	result, err := rec.Toggle(ctx)
	require.NoError(t, err)
	assert.True(t, result.Recording)
	assert.Empty(t, result.Transcript)
	assert.True(t, rec.Recording())

	require.NoError(t, rec.AddChunk([]byte("audio-frame-1")))
	require.NoError(t, rec.AddChunk([]byte("audio-frame-2")))
	assert.Equal(t, 26, rec.BufferedBytes())

	result, err = rec.Toggle(ctx)
	require.NoError(t, err)
	assert.False(t, result.Recording)
	assert.Equal(t, PlaceholderTranscript, result.Transcript)
	assert.False(t, rec.Recording())
	assert.Zero(t, rec.BufferedBytes(), "stopping discards buffered audio")
}

func TestToggleDeviceFailure(t *testing.T) {
	cause := errors.New("permission denied")
	rec := NewRecorder(DeviceFunc(func(context.Context) error { return cause }))

	_, err := rec.Toggle(context.Background())
	assert.ErrorIs(t, err, ErrMicrophoneUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.False(t, rec.Recording(), "failed acquisition must leave the recorder idle")
}

func TestAddChunkRequiresRecording(t *testing.T) {
	rec := NewRecorder(nil)
	assert.ErrorIs(t, rec.AddChunk([]byte("orphan")), ErrNotRecording)
}

func TestAddChunkIgnoresEmpty(t *testing.T) {
	rec := NewRecorder(nil)
	_, err := rec.Toggle(context.Background())
	require.NoError(t, err)

	require.NoError(t, rec.AddChunk(nil))
	require.NoError(t, rec.AddChunk([]byte{}))
	assert.Zero(t, rec.BufferedBytes())
}

func TestAddChunkCopiesInput(t *testing.T) {
	rec := NewRecorder(nil)
	_, err := rec.Toggle(context.Background())
	require.NoError(t, err)

	buf := []byte("abc")
	require.NoError(t, rec.AddChunk(buf))
	buf[0] = 'z'

	assert.Equal(t, 3, rec.BufferedBytes())
	assert.Equal(t, "abc", string(rec.chunks[0]))
}

func TestRestartClearsPreviousBuffer(t *testing.T) {
	ctx := context.Background()
	rec := NewRecorder(nil)

	_, err := rec.Toggle(ctx)
	require.NoError(t, err)
	require.NoError(t, rec.AddChunk([]byte("stale")))
	_, err = rec.Toggle(ctx)
	require.NoError(t, err)

	_, err = rec.Toggle(ctx)
	require.NoError(t, err)
	assert.Zero(t, rec.BufferedBytes())
}
