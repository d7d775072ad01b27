// SPDX-License-Identifier: EPL-2.0

// Package auditok provides uniform, random-access reading of PCM audio.
//
// Audio can come from three backing stores, all exposed through the
// audio.Source interface:
//   - an in-memory buffer (audio.BufferSource)
//   - a headerless raw file (formats/raw)
//   - a PCM WAVE file (formats/wav)
//
// # Quick Start
//
//	src, err := wav.NewSource("speech.wav", audio.Mix)
//	if err != nil {
//	    // Handle error
//	}
//	if err := src.Open(); err != nil {
//	    // Handle error
//	}
//	defer src.Close()
//
//	for {
//	    block, err := src.Read(src.SamplingRate() / 10) // 100ms
//	    if err == io.EOF {
//	        break
//	    }
//	    // Process block
//	}
//
// ReadAll drains a source in one call:
//
//	data, err := auditok.ReadAll(src, 4096)
//
// # Sample Format
//
// Data is read as little-endian signed integer PCM, 1, 2 or 4 bytes per
// sample, with channels interleaved frame by frame. A read always returns
// whole frames.
//
// # Channels
//
// File sources take an audio.ChannelSelector: audio.AllChannels keeps the
// frames untouched, audio.Channel(i) keeps channel i and audio.Mix averages
// all channels with floor division. Selecting or mixing makes the source
// report a single channel.
//
// # Positions
//
// Sources have three cursor APIs which differ in bounds checking:
//   - SetPosition: absolute frame, clamped at the end.
//   - Seek, SeekSeconds, SeekMillis: strict, negative values count back
//     from the end, out of range values fail with audio.ErrPositionOutOfRange.
//   - SetTimePosition: seconds, clamped at the end.
//
// See the individual subpackages for more detailed documentation.
package auditok
