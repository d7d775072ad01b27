// SPDX-License-Identifier: EPL-2.0

package raw

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/Lionellolly/auditok/audio"
	"github.com/Lionellolly/auditok/internal/audiotest"
)

const (
	rate   = 16000
	frames = 1600
)

var (
	tone400  = audiotest.Tone(400, rate, frames, 2, 0.6)
	tone800  = audiotest.Tone(800, rate, frames, 2, 0.6)
	tone1600 = audiotest.Tone(1600, rate, frames, 2, 0.6)
)

func readAll(t *testing.T, src audio.Source) []byte {
	t.Helper()

	var out []byte
	for {
		block, err := src.Read(rate / 10)
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		out = append(out, block...)
	}
}

func TestSource_ChannelSelection(t *testing.T) {
	t.Parallel()

	mono := audiotest.PCM(tone400, 2)
	multi := audiotest.PCM(audiotest.Interleave(tone400, tone800, tone1600), 2)

	mixed := make([]int, frames)
	for i := range mixed {
		mixed[i] = audio.MixFrame([]int{tone400[i], tone800[i], tone1600[i]})
	}

	tests := []struct {
		name         string
		data         []byte
		channels     int
		sel          audio.ChannelSelector
		want         []byte
		wantChannels int
	}{
		{"mono default", mono, 1, audio.AllChannels, mono, 1},
		{"mono mix", mono, 1, audio.Mix, mono, 1},
		{"mono channel selection", mono, 1, audio.Channel(2), mono, 1},
		{"multichannel default", multi, 3, audio.AllChannels, multi, 3},
		{"multichannel first", multi, 3, audio.Channel(0), audiotest.PCM(tone400, 2), 1},
		{"multichannel second", multi, 3, audio.Channel(1), audiotest.PCM(tone800, 2), 1},
		{"multichannel mix", multi, 3, audio.Mix, audiotest.PCM(mixed, 2), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := audiotest.WriteFile(t, "tone.raw", tt.data)

			src, err := NewSource(path, rate, 2, tt.channels, tt.sel)
			if err != nil {
				t.Fatalf("NewSource() error = %v", err)
			}

			if src.Channels() != tt.wantChannels {
				t.Errorf("Channels() = %d, want %d", src.Channels(), tt.wantChannels)
			}

			if err := src.Open(); err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			defer src.Close()

			got := readAll(t, src)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("read %d bytes, want %d bytes of expected data", len(got), len(tt.want))
			}
		})
	}
}

func TestSource_Properties(t *testing.T) {
	t.Parallel()

	src, err := NewSource("unused.raw", 8000, 4, 2, audio.AllChannels)
	if err != nil {
		t.Fatalf("NewSource() error = %v", err)
	}

	if src.Path() != "unused.raw" {
		t.Errorf("Path() = %q, want %q", src.Path(), "unused.raw")
	}
	if src.SamplingRate() != 8000 || src.SampleWidth() != 4 || src.Channels() != 2 {
		t.Errorf("got %d Hz / %d bytes / %d channels, want 8000 / 4 / 2",
			src.SamplingRate(), src.SampleWidth(), src.Channels())
	}
	if src.FrameSize() != 8 {
		t.Errorf("FrameSize() = %d, want 8", src.FrameSize())
	}
}

func TestSource_Positions(t *testing.T) {
	t.Parallel()

	path := audiotest.WriteFile(t, "letters.raw", []byte(audiotest.Letters))
	src, _ := NewSource(path, 10, 1, 1, audio.AllChannels)

	if err := src.Open(); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer src.Close()

	_, _ = src.Read(5)
	if src.Position() != 5 || src.PositionSeconds() != 0.5 || src.PositionMillis() != 500 {
		t.Errorf("after Read(5): %d / %v / %v, want 5 / 0.5 / 500",
			src.Position(), src.PositionSeconds(), src.PositionMillis())
	}

	if err := src.Seek(100); !errors.Is(err, audio.ErrPositionOutOfRange) {
		t.Errorf("Seek(100) error = %v, want ErrPositionOutOfRange", err)
	}
	if src.Position() != 5 {
		t.Errorf("Position() = %d after failed Seek, want 5", src.Position())
	}

	_ = src.SetTimePosition(100)
	if src.TimePosition() != 3.2 {
		t.Errorf("TimePosition() = %v, want 3.2", src.TimePosition())
	}
}

func TestSource_Errors(t *testing.T) {
	t.Parallel()

	if _, err := NewSource("x.raw", 16000, 3, 1, audio.AllChannels); !errors.Is(err, audio.ErrParameter) {
		t.Errorf("NewSource(width 3) error = %v, want parameter error", err)
	}

	if _, err := NewSource("x.raw", 16000, 2, 2, audio.Channel(5)); err != audio.ErrInvalidChannelIndex {
		t.Errorf("NewSource(Channel(5) of 2) error = %v, want ErrInvalidChannelIndex", err)
	}

	missing, _ := NewSource(filepath.Join(t.TempDir(), "missing.raw"), 16000, 2, 1, audio.AllChannels)
	if err := missing.Open(); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Open(missing) error = %v, want fs.ErrNotExist", err)
	}
	if missing.IsOpen() {
		t.Error("IsOpen() = true after failed Open()")
	}
	if err := missing.Close(); err != nil {
		t.Errorf("Close() after failed Open() error = %v", err)
	}

	odd, _ := NewSource(audiotest.WriteFile(t, "odd.raw", []byte{1, 2, 3}), 16000, 2, 1, audio.AllChannels)
	if err := odd.Open(); !errors.Is(err, audio.ErrMisalignedData) {
		t.Errorf("Open(odd length) error = %v, want ErrMisalignedData", err)
	}
}
