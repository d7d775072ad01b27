// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/Lionellolly/auditok/audio"
	gowav "github.com/go-audio/wav"
)

const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
)

// Source is a PCM WAVE file. Its format comes from the file header.
type Source struct {
	*audio.PayloadSource

	path string
}

// NewSource reads the header of the WAVE file at path. The PCM payload is
// loaded by Open.
func NewSource(path string, sel audio.ChannelSelector) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening wav file: %w", err)
	}
	defer f.Close()

	dec, err := newDecoder(f)
	if err != nil {
		return nil, err
	}

	width, err := sampleWidth(dec)
	if err != nil {
		return nil, err
	}

	s := &Source{path: path}

	ps, err := audio.NewPayloadSource(int(dec.SampleRate), width, int(dec.NumChans), sel, s.load)
	if err != nil {
		return nil, err
	}
	s.PayloadSource = ps

	return s, nil
}

// Path of the underlying file.
func (s *Source) Path() string { return s.path }

func (s *Source) load() ([]byte, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening wav file: %w", err)
	}
	defer f.Close()

	dec, err := newDecoder(f)
	if err != nil {
		return nil, err
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("seeking to PCM data: %w", err)
	}
	if dec.PCMChunk == nil {
		return nil, ErrNoPCMData
	}

	// The chunk reader is not bounded by the chunk size.
	data, err := io.ReadAll(io.LimitReader(dec.PCMChunk, dec.PCMLen()))
	if err != nil {
		return nil, fmt.Errorf("reading PCM data: %w", err)
	}

	// Drop a trailing partial frame from a truncated file.
	frameSize := s.SampleWidth() * s.StoredChannels()
	data = data[:len(data)-len(data)%frameSize]

	return data, nil
}

// newDecoder checks the RIFF/WAVE magic and parses the fmt chunk.
func newDecoder(r io.ReadSeeker) (*gowav.Decoder, error) {
	header := make([]byte, 12)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, ErrNotWavFile
	}

	if !bytes.HasPrefix(header[:4], []byte("RIFF")) || !bytes.HasPrefix(header[8:12], []byte("WAVE")) {
		return nil, ErrNotWavFile
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding wav file: %w", err)
	}

	dec := gowav.NewDecoder(r)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}
	if dec.NumChans == 0 {
		return nil, ErrUnsupportedWavLayout
	}

	if dec.WavAudioFormat != formatPCM && dec.WavAudioFormat != formatExtensible {
		return nil, ErrNotPCM
	}

	return dec, nil
}

func sampleWidth(dec *gowav.Decoder) (int, error) {
	switch dec.BitDepth {
	case 8, 16, 32:
		return int(dec.BitDepth) / 8, nil
	default:
		return 0, ErrUnsupportedBitDepth
	}
}

var _ audio.Source = (*Source)(nil)
