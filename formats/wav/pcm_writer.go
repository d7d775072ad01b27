// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"os"

	"github.com/Lionellolly/auditok/audio"
	gowav "github.com/go-audio/wav"
)

// Write encodes interleaved PCM bytes as a WAVE stream. data must hold whole
// frames of sampleWidth*channels bytes.
func Write(w io.WriteSeeker, samplingRate, sampleWidth, channels int, data []byte) error {
	buf, err := audio.ToIntBuffer(data, samplingRate, sampleWidth, channels)
	if err != nil {
		return err
	}

	enc := gowav.NewEncoder(w, samplingRate, sampleWidth*8, channels, formatPCM)

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encoding wav: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}

	return nil
}

// WriteFile is Write to a new file at path.
func WriteFile(path string, samplingRate, sampleWidth, channels int, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating wav file: %w", err)
	}

	if err := Write(f, samplingRate, sampleWidth, channels, data); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
