// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/Lionellolly/auditok/utils"
)

// Letters is the 32 byte buffer the buffer source tests read from.
const Letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ012345"

// Tone generates n samples of a sine wave at frequency Hz, scaled to
// sampleWidth bytes at the given amplitude (0..1).
func Tone(frequency float64, samplingRate, n, sampleWidth int, amplitude float64) []int {
	samples := make([]int, n)
	for i := range samples {
		t := float64(i) / float64(samplingRate)
		samples[i] = utils.FloatToSample(amplitude*math.Sin(2*math.Pi*frequency*t), sampleWidth)
	}

	return samples
}

// Interleave builds frames from per-channel sample slices of equal length.
func Interleave(channels ...[]int) []int {
	if len(channels) == 0 {
		return nil
	}

	frames := len(channels[0])
	out := make([]int, 0, frames*len(channels))
	for f := range frames {
		for _, ch := range channels {
			out = append(out, ch[f])
		}
	}

	return out
}

// PCM encodes samples as little-endian bytes of sampleWidth.
// It does not import the audio package to avoid cycles.
func PCM(samples []int, sampleWidth int) []byte {
	data := make([]byte, len(samples)*sampleWidth)
	for i, s := range samples {
		switch sampleWidth {
		case 1:
			data[i] = byte(int8(s))
		case 2:
			binary.LittleEndian.PutUint16(data[i*2:], uint16(int16(s)))
		case 4:
			binary.LittleEndian.PutUint32(data[i*4:], uint32(int32(s)))
		}
	}

	return data
}

// WriteFile writes data under a fresh test directory and returns its path.
func WriteFile(tb testing.TB, name string, data []byte) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		tb.Fatalf("writing %s: %v", path, err)
	}

	return path
}
