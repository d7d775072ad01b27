// SPDX-License-Identifier: EPL-2.0

package audio

// Validate checks a sample width and channel count, and that dataLen bytes
// hold a whole number of frames.
func Validate(sampleWidth, channels, dataLen int) error {
	switch sampleWidth {
	case 1, 2, 4:
	default:
		return ErrInvalidSampleWidth
	}

	if channels < 1 {
		return ErrInvalidChannels
	}

	if dataLen%(sampleWidth*channels) != 0 {
		return ErrMisalignedData
	}

	return nil
}

// ValidateFormat is Validate plus a sampling rate check, used by constructors.
func ValidateFormat(samplingRate, sampleWidth, channels, dataLen int) error {
	if samplingRate < 1 {
		return ErrInvalidSamplingRate
	}

	return Validate(sampleWidth, channels, dataLen)
}
