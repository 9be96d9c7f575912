// Package voice buffers recorded audio for a question and resolves it
// to a placeholder transcript.
//
// Transcription is deliberately unimplemented: stopping a recording
// discards the assembled audio and yields a fixed answer string. The
// capture device itself lives in the browser; the server only receives
// the chunks.
package voice

import (
	"context"
	"errors"
	"sync"
)

// PlaceholderTranscript is returned when a recording stops, in place of
// a real speech-to-text result.
const PlaceholderTranscript = "Voice recording processed successfully"

var (
	// ErrMicrophoneUnavailable indicates the capture device could not
	// be acquired; callers fall back to text input.
	ErrMicrophoneUnavailable = errors.New("could not access microphone")
	// ErrNotRecording rejects chunks arriving outside a recording.
	ErrNotRecording = errors.New("no recording in progress")
)

// Device models acquisition of the audio capture capability.
type Device interface {
	Acquire(ctx context.Context) error
}

// DeviceFunc adapts a function to the Device interface.
type DeviceFunc func(ctx context.Context) error

func (f DeviceFunc) Acquire(ctx context.Context) error { return f(ctx) }

// BrowserDevice acquires nothing server-side: the browser holds the
// microphone and reports its own failures by never sending chunks.
type BrowserDevice struct{}

func (BrowserDevice) Acquire(context.Context) error { return nil }

// ToggleResult reports the outcome of a recorder toggle.
type ToggleResult struct {
	Recording  bool   `json:"recording"`
	Transcript string `json:"transcript,omitempty"`
}

// Recorder is a toggle-based audio recorder for one question.
type Recorder struct {
	device Device

	mu        sync.Mutex
	recording bool
	chunks    [][]byte
}

// NewRecorder creates a recorder around the given capture device.
// A nil device defaults to BrowserDevice.
func NewRecorder(device Device) *Recorder {
	if device == nil {
		device = BrowserDevice{}
	}
	return &Recorder{device: device}
}

// Toggle starts a recording, or stops the active one. Starting acquires
// the capture device; acquisition failure returns
// ErrMicrophoneUnavailable and the recorder stays idle. Stopping
// assembles the buffered chunks and resolves to the placeholder
// transcript.
func (r *Recorder) Toggle(ctx context.Context) (ToggleResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.recording {
		r.recording = false
		r.chunks = nil
		return ToggleResult{Transcript: PlaceholderTranscript}, nil
	}

	if err := r.device.Acquire(ctx); err != nil {
		return ToggleResult{}, errors.Join(ErrMicrophoneUnavailable, err)
	}
	r.recording = true
	r.chunks = nil
	return ToggleResult{Recording: true}, nil
}

// AddChunk buffers one chunk of recorded audio. Empty chunks are
// ignored, matching the recorder's data-available behavior.
func (r *Recorder) AddChunk(chunk []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.recording {
		return ErrNotRecording
	}
	if len(chunk) == 0 {
		return nil
	}
	buf := make([]byte, len(chunk))
	copy(buf, chunk)
	r.chunks = append(r.chunks, buf)
	return nil
}

// Recording reports whether a recording is active.
func (r *Recorder) Recording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.recording
}

// BufferedBytes returns the total size of buffered audio.
func (r *Recorder) BufferedBytes() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := 0
	for _, c := range r.chunks {
		total += len(c)
	}
	return total
}
