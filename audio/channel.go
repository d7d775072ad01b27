// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"strconv"
	"strings"
)

type selectorMode uint8

const (
	modeAll selectorMode = iota
	modeMix
	modeChannel
)

// ChannelSelector tells a file source how to reduce interleaved frames:
// keep every channel, keep a single channel, or mix them down to one.
type ChannelSelector struct {
	mode  selectorMode
	index int
}

var (
	// AllChannels keeps frames untouched.
	AllChannels = ChannelSelector{mode: modeAll}
	// Mix averages all channels of a frame with floor division.
	Mix = ChannelSelector{mode: modeMix}
)

// Channel selects the 0-based channel i.
func Channel(i int) ChannelSelector {
	return ChannelSelector{mode: modeChannel, index: i}
}

// ParseChannelSelector accepts "" or "none", "mix" (or "avg", "average"), or
// a 0-based channel index.
func ParseChannelSelector(s string) (ChannelSelector, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return AllChannels, nil
	case "mix", "avg", "average":
		return Mix, nil
	}

	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || i < 0 {
		return AllChannels, ErrInvalidChannelString
	}

	return Channel(i), nil
}

// IsMix reports whether s down-mixes.
func (s ChannelSelector) IsMix() bool { return s.mode == modeMix }

// Index returns the selected channel and true for a single-channel selector.
func (s ChannelSelector) Index() (int, bool) {
	return s.index, s.mode == modeChannel
}

func (s ChannelSelector) String() string {
	switch s.mode {
	case modeMix:
		return "mix"
	case modeChannel:
		return strconv.Itoa(s.index)
	default:
		return "none"
	}
}

// check validates s against a channel count.
func (s ChannelSelector) check(channels int) error {
	if s.mode == modeChannel && channels > 1 && (s.index < 0 || s.index >= channels) {
		return ErrInvalidChannelIndex
	}

	return nil
}

// OutputChannels is the channel count left after applying s to frames of
// the given width. Mono input is never reduced.
func (s ChannelSelector) OutputChannels(channels int) int {
	if s.mode == modeAll || channels == 1 {
		return channels
	}

	return 1
}

// MixFrame averages one frame of samples, rounding toward negative infinity.
func MixFrame(frame []int) int {
	sum := 0
	for _, v := range frame {
		sum += v
	}

	return floorDiv(sum, len(frame))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}

// Reduce applies s to interleaved PCM bytes and returns the reduced bytes and
// their channel count. Mono data and AllChannels pass through untouched.
func Reduce(data []byte, sampleWidth, channels int, s ChannelSelector) ([]byte, int, error) {
	if err := Validate(sampleWidth, channels, len(data)); err != nil {
		return nil, 0, err
	}

	if err := s.check(channels); err != nil {
		return nil, 0, err
	}

	if s.OutputChannels(channels) == channels {
		return data, channels, nil
	}

	frames := len(data) / (sampleWidth * channels)

	if s.mode == modeChannel {
		// Selection is a byte copy, no decode needed.
		out := make([]byte, frames*sampleWidth)
		frameSize := sampleWidth * channels
		offset := s.index * sampleWidth
		for f := range frames {
			src := f*frameSize + offset
			copy(out[f*sampleWidth:(f+1)*sampleWidth], data[src:src+sampleWidth])
		}

		return out, 1, nil
	}

	samples, err := Decode(data, sampleWidth)
	if err != nil {
		return nil, 0, err
	}

	mixed := make([]int, frames)

	// Unrolled for stereo, the common case
	switch channels {
	case 2:
		for f := range frames {
			idx := f << 1
			mixed[f] = floorDiv(samples[idx]+samples[idx+1], 2)
		}
	default:
		for f := range frames {
			base := f * channels
			mixed[f] = MixFrame(samples[base : base+channels])
		}
	}

	out, err := Encode(mixed, sampleWidth)
	if err != nil {
		return nil, 0, err
	}

	return out, 1, nil
}
