// SPDX-License-Identifier: EPL-2.0

package wav

import "github.com/Lionellolly/auditok/audio"

// All header problems are parameter errors: errors.Is(err, audio.ErrParameter).
var (
	ErrNotWavFile           = &audio.ParameterError{Reason: "not a WAV file"}
	ErrUnsupportedWavLayout = &audio.ParameterError{Reason: "unsupported WAV layout: no fmt chunk"}
	ErrNotPCM               = &audio.ParameterError{Reason: "only PCM WAV files are supported"}
	ErrUnsupportedBitDepth  = &audio.ParameterError{Reason: "bit depth must be 8, 16 or 32"}
	ErrNoPCMData            = &audio.ParameterError{Reason: "WAV file has no data chunk"}
)
