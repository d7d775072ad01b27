// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"time"
)

// LoadFunc returns the full interleaved PCM payload of a source.
type LoadFunc func() ([]byte, error)

// PayloadSource loads a whole payload on Open, reduces its channels once and
// serves it from an owned BufferSource. Raw and WAVE file sources are built
// on it.
type PayloadSource struct {
	samplingRate int
	sampleWidth  int
	channels     int // as stored, before reduction
	selector     ChannelSelector
	load         LoadFunc

	buf *BufferSource
}

// NewPayloadSource validates the stored format and the selector. load is
// not called until Open.
func NewPayloadSource(samplingRate, sampleWidth, channels int, sel ChannelSelector, load LoadFunc) (*PayloadSource, error) {
	if err := ValidateFormat(samplingRate, sampleWidth, channels, 0); err != nil {
		return nil, err
	}

	if err := sel.check(channels); err != nil {
		return nil, err
	}

	return &PayloadSource{
		samplingRate: samplingRate,
		sampleWidth:  sampleWidth,
		channels:     channels,
		selector:     sel,
		load:         load,
	}, nil
}

func (s *PayloadSource) SamplingRate() int { return s.samplingRate }
func (s *PayloadSource) SampleWidth() int  { return s.sampleWidth }

// Channels is 1 when a channel was selected or mixed from multichannel
// data, the stored count otherwise.
func (s *PayloadSource) Channels() int { return s.selector.OutputChannels(s.channels) }

func (s *PayloadSource) FrameSize() int { return s.sampleWidth * s.Channels() }

func (s *PayloadSource) SR() int { return s.samplingRate }
func (s *PayloadSource) SW() int { return s.sampleWidth }
func (s *PayloadSource) CH() int { return s.Channels() }

// StoredChannels is the channel count of the underlying payload.
func (s *PayloadSource) StoredChannels() int { return s.channels }

// Selector returns the channel selector applied on Open.
func (s *PayloadSource) Selector() ChannelSelector { return s.selector }

func (s *PayloadSource) IsOpen() bool { return s.buf != nil }

// Open loads and reduces the payload. Opening an open source does nothing.
func (s *PayloadSource) Open() error {
	if s.buf != nil {
		return nil
	}

	data, err := s.load()
	if err != nil {
		return err
	}

	reduced, channels, err := Reduce(data, s.sampleWidth, s.channels, s.selector)
	if err != nil {
		return fmt.Errorf("reducing channels: %w", err)
	}

	buf, err := NewBufferSource(reduced, s.samplingRate, s.sampleWidth, channels)
	if err != nil {
		return err
	}

	if err := buf.Open(); err != nil {
		return err
	}

	s.buf = buf

	return nil
}

// Close drops the loaded payload.
func (s *PayloadSource) Close() error {
	if s.buf == nil {
		return nil
	}

	err := s.buf.Close()
	s.buf = nil

	return err
}

func (s *PayloadSource) Read(n int) ([]byte, error) {
	if s.buf == nil {
		return nil, ErrSourceClosed
	}

	return s.buf.Read(n)
}

// TotalFrames is 0 until the source is opened.
func (s *PayloadSource) TotalFrames() int {
	if s.buf == nil {
		return 0
	}

	return s.buf.TotalFrames()
}

// Duration is 0 until the source is opened.
func (s *PayloadSource) Duration() time.Duration {
	if s.buf == nil {
		return 0
	}

	return s.buf.Duration()
}

func (s *PayloadSource) Position() int {
	if s.buf == nil {
		return 0
	}

	return s.buf.Position()
}

func (s *PayloadSource) SetPosition(position int) error {
	if s.buf == nil {
		return ErrSourceClosed
	}

	return s.buf.SetPosition(position)
}

func (s *PayloadSource) Rewind() error {
	if s.buf == nil {
		return ErrSourceClosed
	}

	return s.buf.Rewind()
}

func (s *PayloadSource) Seek(index int) error {
	if s.buf == nil {
		return ErrSourceClosed
	}

	return s.buf.Seek(index)
}

func (s *PayloadSource) PositionSeconds() float64 {
	return float64(s.Position()) / float64(s.samplingRate)
}

func (s *PayloadSource) SeekSeconds(seconds float64) error {
	if s.buf == nil {
		return ErrSourceClosed
	}

	return s.buf.SeekSeconds(seconds)
}

func (s *PayloadSource) PositionMillis() float64 {
	return float64(s.Position()) * 1000 / float64(s.samplingRate)
}

func (s *PayloadSource) SeekMillis(ms float64) error {
	if s.buf == nil {
		return ErrSourceClosed
	}

	return s.buf.SeekMillis(ms)
}

func (s *PayloadSource) TimePosition() float64 { return s.PositionSeconds() }

func (s *PayloadSource) SetTimePosition(seconds float64) error {
	if s.buf == nil {
		return ErrSourceClosed
	}

	return s.buf.SetTimePosition(seconds)
}

var (
	_ Source = (*BufferSource)(nil)
	_ Source = (*PayloadSource)(nil)
)
