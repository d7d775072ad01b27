// SPDX-License-Identifier: EPL-2.0

package audio

// Source is random-access PCM audio addressed in sample frames.
//
// A source must be opened before reading or moving its cursor. Read returns
// io.EOF, and no data, only once the cursor sits at the end of the stream;
// before that every call returns at least one frame.
//
// Three cursor APIs coexist and are not interchangeable:
//   - Position, SetPosition and Rewind: absolute frame index, no unit conversion.
//   - Seek, SeekSeconds and SeekMillis: strict, negative values count back from
//     the end, anything outside [0, total frames] is ErrPositionOutOfRange.
//   - TimePosition and SetTimePosition: seconds, clamped to the end of stream.
type Source interface {
	Open() error
	// Close releases the source. It is safe to call more than once.
	Close() error
	IsOpen() bool

	// Read returns up to n frames as interleaved PCM bytes.
	Read(n int) ([]byte, error)

	// SamplingRate in Hz.
	SamplingRate() int
	// SampleWidth in bytes (1, 2 or 4).
	SampleWidth() int
	// Channels per frame.
	Channels() int
	// FrameSize is SampleWidth * Channels.
	FrameSize() int

	Position() int
	SetPosition(position int) error
	Rewind() error

	Seek(index int) error
	PositionSeconds() float64
	SeekSeconds(seconds float64) error
	PositionMillis() float64
	SeekMillis(ms float64) error

	TimePosition() float64
	SetTimePosition(seconds float64) error
}
