// SPDX-License-Identifier: EPL-2.0

package utils

import goaudio "github.com/go-audio/audio"

// FloatToSample converts a float in [-1, 1] to a signed integer sample of
// sampleWidth bytes. Values outside the range are clamped. An unsupported
// width yields 0.
func FloatToSample(x float64, sampleWidth int) int {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	maxVal := goaudio.IntMaxSignedValue(sampleWidth * 8)

	return int(x * float64(maxVal))
}
