// SPDX-License-Identifier: EPL-2.0

// Package audio provides the PCM source contract and its in-memory engine.
//
// This package contains the core building blocks:
//   - Source interface for random-access PCM reading
//   - BufferSource, a Source over an owned byte buffer
//   - PayloadSource, which loads a payload once on Open and serves it from
//     a BufferSource (used by the raw and WAVE file sources)
//   - Decode and Encode, the sample codec for 1, 2 and 4 byte samples
//   - ChannelSelector and Reduce, channel selection and down-mixing
//   - Validate, the parameter and alignment checks
//
// # Reading
//
// Read returns whole frames and moves the cursor by the frames returned.
// A short block is returned when fewer frames remain than requested;
// io.EOF is returned only once nothing remains:
//
//	for {
//	    block, err := src.Read(1600)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // Process block
//	}
//
// # Positions
//
// The cursor is a frame index with three APIs on top of it.
//
// Position, SetPosition and Rewind work on the plain index. SetPosition
// rejects negative values and stops at the end of the stream.
//
// Seek, SeekSeconds and SeekMillis are strict: a negative value counts back
// from the end (Seek(-1) is the last frame), and anything outside
// [0, total frames] fails with ErrPositionOutOfRange without moving the
// cursor. Seconds and milliseconds are converted with math.Round.
// PositionSeconds and PositionMillis report the cursor in those units.
//
// TimePosition and SetTimePosition work in seconds and clamp a time past
// the end of the stream to the end.
//
// # Channel Mixing
//
// Mix averages the samples of a frame with floor division, so a frame of
// (-3, -4) mixes to -4. Mono data is never reduced.
//
// # Error Handling
//
// Construction and buffer updates fail with a *ParameterError, which
// matches ErrParameter. A failed call leaves the source unchanged:
//
//	if err := src.SetData(data); errors.Is(err, audio.ErrParameter) {
//	    // data was not made of whole frames
//	}
//
// Reading or moving a closed source fails with ErrSourceClosed.
//
// Format fields have getters only; they are fixed at construction.
//
// Sources are not safe for concurrent use.
package audio
