// SPDX-License-Identifier: EPL-2.0

package raw

import (
	"fmt"
	"os"

	"github.com/Lionellolly/auditok/audio"
)

// Source is a raw PCM file.
type Source struct {
	*audio.PayloadSource

	path string
}

// NewSource validates the format and selector. The file is not touched
// until Open.
func NewSource(path string, samplingRate, sampleWidth, channels int, sel audio.ChannelSelector) (*Source, error) {
	s := &Source{path: path}

	ps, err := audio.NewPayloadSource(samplingRate, sampleWidth, channels, sel, s.load)
	if err != nil {
		return nil, err
	}
	s.PayloadSource = ps

	return s, nil
}

// Path of the underlying file.
func (s *Source) Path() string { return s.path }

func (s *Source) load() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading raw file: %w", err)
	}

	return data, nil
}

var _ audio.Source = (*Source)(nil)
