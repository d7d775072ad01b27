// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"

	goaudio "github.com/go-audio/audio"
)

// Decode converts little-endian PCM bytes into one signed integer per sample.
// Width 1 is read as int8, width 2 as int16 and width 4 as int32.
func Decode(data []byte, sampleWidth int) ([]int, error) {
	if err := Validate(sampleWidth, 1, len(data)); err != nil {
		return nil, err
	}

	samples := make([]int, len(data)/sampleWidth)

	switch sampleWidth {
	case 1:
		for i, b := range data {
			samples[i] = int(int8(b))
		}
	case 2:
		for i := range samples {
			samples[i] = int(int16(binary.LittleEndian.Uint16(data[i*2:])))
		}
	case 4:
		for i := range samples {
			samples[i] = int(int32(binary.LittleEndian.Uint32(data[i*4:])))
		}
	}

	return samples, nil
}

// Encode is the inverse of Decode. Values outside the range of the target
// width wrap the same way a Go integer conversion does.
func Encode(samples []int, sampleWidth int) ([]byte, error) {
	if err := Validate(sampleWidth, 1, 0); err != nil {
		return nil, err
	}

	data := make([]byte, len(samples)*sampleWidth)

	switch sampleWidth {
	case 1:
		for i, s := range samples {
			data[i] = byte(int8(s))
		}
	case 2:
		for i, s := range samples {
			binary.LittleEndian.PutUint16(data[i*2:], uint16(int16(s)))
		}
	case 4:
		for i, s := range samples {
			binary.LittleEndian.PutUint32(data[i*4:], uint32(int32(s)))
		}
	}

	return data, nil
}

// ToIntBuffer decodes interleaved PCM bytes into a go-audio IntBuffer.
func ToIntBuffer(data []byte, samplingRate, sampleWidth, channels int) (*goaudio.IntBuffer, error) {
	if err := ValidateFormat(samplingRate, sampleWidth, channels, len(data)); err != nil {
		return nil, err
	}

	samples, err := Decode(data, sampleWidth)
	if err != nil {
		return nil, err
	}

	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  samplingRate,
		},
		Data:           samples,
		SourceBitDepth: sampleWidth * 8,
	}, nil
}
