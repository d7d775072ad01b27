// SPDX-License-Identifier: EPL-2.0

// Package raw reads headerless PCM files.
//
// A raw file carries no format information, so the sampling rate, sample
// width and channel count are supplied by the caller:
//
//	src, err := raw.NewSource("speech.raw", 16000, 2, 2, audio.Mix)
//	if err != nil {
//	    // Handle error
//	}
//	if err := src.Open(); err != nil {
//	    // Handle error
//	}
//	defer src.Close()
//
//	block, err := src.Read(1600) // 100ms of mono audio
//
// Open reads the whole file once and applies the channel selector; all
// further reads and seeks are served from memory.
package raw
