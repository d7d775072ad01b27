// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes PCM WAVE files.
//
// It uses the github.com/go-audio library for WAVE header handling.
//
// # Supported Formats
//
// Currently supported:
//   - PCM 8, 16 and 32 bit (format tag 1, or WAVE_FORMAT_EXTENSIBLE)
//   - Any channel count
//   - Any sample rate
//
// # Reading WAVE Files
//
// NewSource reads the header; Open loads the data chunk:
//
//	src, err := wav.NewSource("audio.wav", audio.Channel(0))
//	if err != nil {
//	    // Handle error
//	}
//	if err := src.Open(); err != nil {
//	    // Handle error
//	}
//	defer src.Close()
//
//	block, err := src.Read(4096)
//
// The source is an audio.Source. Sampling rate, sample width and channels
// come from the fmt chunk; Channels reports 1 when a channel selector
// other than audio.AllChannels is used on multichannel data.
//
// Samples are passed through byte for byte. 8 bit WAVE data is stored
// unsigned but is treated like any other width by channel mixing.
//
// # Writing WAVE Files
//
// Use WriteFile to create WAVE files from interleaved PCM bytes:
//
//	err := wav.WriteFile("output.wav", 16000, 2, 1, pcm)
//
// # Error Handling
//
// Header problems are audio parameter errors:
//   - ErrNotWavFile: The input is not a RIFF/WAVE file
//   - ErrUnsupportedWavLayout: No usable fmt chunk
//   - ErrNotPCM: The format tag is not PCM
//   - ErrUnsupportedBitDepth: Bit depth other than 8, 16 or 32
//   - ErrNoPCMData: No data chunk
//
// Example:
//
//	src, err := wav.NewSource(path, audio.AllChannels)
//	if errors.Is(err, audio.ErrParameter) {
//	    fmt.Println("not a usable WAVE file")
//	}
package wav
