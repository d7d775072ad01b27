// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"math"
	"time"

	goaudio "github.com/go-audio/audio"
)

// BufferSource serves PCM audio from an owned in-memory buffer.
// Open and Close only toggle availability.
type BufferSource struct {
	samplingRate int
	sampleWidth  int
	channels     int

	data     []byte
	position int // in frames
	open     bool
}

// NewBufferSource copies data into a new source. len(data) must be a
// multiple of sampleWidth*channels.
func NewBufferSource(data []byte, samplingRate, sampleWidth, channels int) (*BufferSource, error) {
	if err := ValidateFormat(samplingRate, sampleWidth, channels, len(data)); err != nil {
		return nil, err
	}

	return &BufferSource{
		samplingRate: samplingRate,
		sampleWidth:  sampleWidth,
		channels:     channels,
		data:         append([]byte(nil), data...),
	}, nil
}

func (s *BufferSource) SamplingRate() int { return s.samplingRate }
func (s *BufferSource) SampleWidth() int  { return s.sampleWidth }
func (s *BufferSource) Channels() int     { return s.channels }
func (s *BufferSource) FrameSize() int    { return s.sampleWidth * s.channels }
func (s *BufferSource) IsOpen() bool      { return s.open }

// Short aliases.
func (s *BufferSource) SR() int { return s.samplingRate }
func (s *BufferSource) SW() int { return s.sampleWidth }
func (s *BufferSource) CH() int { return s.channels }

// TotalFrames is the number of frames in the buffer.
func (s *BufferSource) TotalFrames() int { return len(s.data) / s.FrameSize() }

// Duration of the whole buffer.
func (s *BufferSource) Duration() time.Duration {
	return time.Duration(s.TotalFrames()) * time.Second / time.Duration(s.samplingRate)
}

func (s *BufferSource) Open() error {
	s.open = true
	return nil
}

// Close marks the source unavailable and rewinds it.
func (s *BufferSource) Close() error {
	s.open = false
	s.position = 0
	return nil
}

func (s *BufferSource) Read(n int) ([]byte, error) {
	if !s.open {
		return nil, ErrSourceClosed
	}

	if n < 1 {
		return nil, ErrInvalidBlockSize
	}

	total := s.TotalFrames()
	if s.position >= total {
		return nil, io.EOF
	}

	n = min(n, total-s.position)
	fs := s.FrameSize()
	start := s.position * fs
	block := make([]byte, n*fs)
	copy(block, s.data[start:start+n*fs])
	s.position += n

	return block, nil
}

// Data returns a copy of the whole buffer.
func (s *BufferSource) Data() []byte {
	return append([]byte(nil), s.data...)
}

// SetData replaces the buffer and rewinds. A misaligned buffer is rejected
// and the source is left as it was.
func (s *BufferSource) SetData(data []byte) error {
	if err := Validate(s.sampleWidth, s.channels, len(data)); err != nil {
		return err
	}

	s.data = append([]byte(nil), data...)
	s.position = 0

	return nil
}

// AppendData extends the buffer, keeping the cursor.
func (s *BufferSource) AppendData(data []byte) error {
	if err := Validate(s.sampleWidth, s.channels, len(data)); err != nil {
		return err
	}

	s.data = append(s.data, data...)

	return nil
}

// IntBuffer decodes the frames from the cursor to the end without moving
// the cursor.
func (s *BufferSource) IntBuffer() (*goaudio.IntBuffer, error) {
	return ToIntBuffer(s.data[s.position*s.FrameSize():], s.samplingRate, s.sampleWidth, s.channels)
}

func (s *BufferSource) Position() int { return s.position }

// SetPosition moves the cursor to an absolute frame. Values past the end
// stop at the end.
func (s *BufferSource) SetPosition(position int) error {
	if !s.open {
		return ErrSourceClosed
	}

	if position < 0 {
		return fmt.Errorf("%w: negative position %d", ErrPositionOutOfRange, position)
	}

	s.position = min(position, s.TotalFrames())

	return nil
}

func (s *BufferSource) Rewind() error {
	return s.SetPosition(0)
}

// Seek moves the cursor to index. A negative index counts back from the end
// of the stream, so -1 is the last frame and -TotalFrames() is the first.
func (s *BufferSource) Seek(index int) error {
	if !s.open {
		return ErrSourceClosed
	}

	total := s.TotalFrames()

	resolved := index
	if resolved < 0 {
		resolved += total
	}

	if resolved < 0 || resolved > total {
		return fmt.Errorf("%w: index %d not in [-%d, %d]", ErrPositionOutOfRange, index, total, total)
	}

	s.position = resolved

	return nil
}

func (s *BufferSource) PositionSeconds() float64 {
	return float64(s.position) / float64(s.samplingRate)
}

// SeekSeconds seeks to round(seconds * SamplingRate()), rounding half away
// from zero. Negative values count back from the end.
func (s *BufferSource) SeekSeconds(seconds float64) error {
	return s.seekFloat(seconds * float64(s.samplingRate))
}

func (s *BufferSource) PositionMillis() float64 {
	return float64(s.position) * 1000 / float64(s.samplingRate)
}

// SeekMillis is SeekSeconds in milliseconds.
func (s *BufferSource) SeekMillis(ms float64) error {
	return s.seekFloat(ms * float64(s.samplingRate) / 1000)
}

func (s *BufferSource) seekFloat(frames float64) error {
	if !s.open {
		return ErrSourceClosed
	}

	frames = math.Round(frames)

	// Range is checked before the int conversion.
	total := float64(s.TotalFrames())
	if math.IsNaN(frames) || frames > total || frames < -total {
		return fmt.Errorf("%w: %v frames not in [-%v, %v]", ErrPositionOutOfRange, frames, total, total)
	}

	return s.Seek(int(frames))
}

func (s *BufferSource) TimePosition() float64 {
	return s.PositionSeconds()
}

// SetTimePosition moves the cursor to int(seconds * SamplingRate()).
// Times beyond the end of the stream stop at the end.
func (s *BufferSource) SetTimePosition(seconds float64) error {
	if !s.open {
		return ErrSourceClosed
	}

	if math.IsNaN(seconds) || seconds < 0 {
		return fmt.Errorf("%w: time %v", ErrPositionOutOfRange, seconds)
	}

	frames := seconds * float64(s.samplingRate)
	if frames >= float64(s.TotalFrames()) {
		s.position = s.TotalFrames()
		return nil
	}

	return s.SetPosition(int(frames))
}
