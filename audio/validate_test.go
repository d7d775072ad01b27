// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		sampleWidth int
		channels    int
		dataLen     int
		want        error
	}{
		{"width 1 mono", 1, 1, 7, nil},
		{"width 2 stereo", 2, 2, 16, nil},
		{"width 4 three channels", 4, 3, 24, nil},
		{"empty buffer", 2, 2, 0, nil},
		{"width 3", 3, 1, 9, ErrInvalidSampleWidth},
		{"width 0", 0, 1, 0, ErrInvalidSampleWidth},
		{"width 8", 8, 1, 8, ErrInvalidSampleWidth},
		{"zero channels", 2, 0, 0, ErrInvalidChannels},
		{"negative channels", 2, -1, 0, ErrInvalidChannels},
		{"odd bytes for width 2", 2, 1, 5, ErrMisalignedData},
		{"half frame stereo", 2, 2, 6, ErrMisalignedData},
		{"partial frame width 4", 4, 1, 10, ErrMisalignedData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(tt.sampleWidth, tt.channels, tt.dataLen)
			if err != tt.want {
				t.Errorf("Validate(%d, %d, %d) = %v, want %v",
					tt.sampleWidth, tt.channels, tt.dataLen, err, tt.want)
			}
			if tt.want != nil && !errors.Is(err, ErrParameter) {
				t.Errorf("Validate() error %v is not a parameter error", err)
			}
		})
	}
}

func TestValidateFormat_SamplingRate(t *testing.T) {
	t.Parallel()

	if err := ValidateFormat(0, 2, 1, 0); err != ErrInvalidSamplingRate {
		t.Errorf("ValidateFormat(0, ...) = %v, want ErrInvalidSamplingRate", err)
	}

	if err := ValidateFormat(-16000, 2, 1, 0); err != ErrInvalidSamplingRate {
		t.Errorf("ValidateFormat(-16000, ...) = %v, want ErrInvalidSamplingRate", err)
	}

	if err := ValidateFormat(16000, 2, 1, 4); err != nil {
		t.Errorf("ValidateFormat(16000, 2, 1, 4) = %v, want nil", err)
	}
}
