// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

// ErrParameter matches every *ParameterError with errors.Is.
var ErrParameter = errors.New("audio parameter error")

// ParameterError reports malformed construction arguments or a buffer that
// is not aligned on frames.
type ParameterError struct {
	Reason string
}

func (e *ParameterError) Error() string { return e.Reason }

func (e *ParameterError) Is(target error) bool { return target == ErrParameter }

var (
	ErrInvalidSampleWidth   = &ParameterError{"sample width must be one of 1, 2, or 4 bytes"}
	ErrInvalidChannels      = &ParameterError{"channels must be a positive integer"}
	ErrInvalidSamplingRate  = &ParameterError{"sampling rate must be a positive integer"}
	ErrMisalignedData       = &ParameterError{"buffer length must be an integer multiple of sample_width × channels"}
	ErrInvalidChannelIndex  = &ParameterError{"selected channel does not exist"}
	ErrInvalidChannelString = &ParameterError{"channel selector must be empty, \"mix\" or a channel index"}
	ErrInvalidBlockSize     = &ParameterError{"block size must be a positive number of frames"}

	ErrPositionOutOfRange = errors.New("position out of range")
	ErrSourceClosed       = errors.New("audio source is not open")
)
