// SPDX-License-Identifier: EPL-2.0

package auditok

import (
	"fmt"
	"io"

	"github.com/Lionellolly/auditok/audio"
)

// ReadAll reads src from its current position to the end of the stream in
// blocks of blockSize frames and returns the concatenated bytes.
//
// The source must be open. ReadAll stops at io.EOF, which is not returned.
//
// Example:
//
//	src, _ := raw.NewSource("in.raw", 16000, 2, 2, audio.Mix)
//	_ = src.Open()
//	defer src.Close()
//	mono, err := auditok.ReadAll(src, 1600)
func ReadAll(src audio.Source, blockSize int) ([]byte, error) {
	if blockSize < 1 {
		return nil, audio.ErrInvalidBlockSize
	}

	// Pre-allocate from the remaining frames when the source knows its size.
	var out []byte
	if sized, ok := src.(interface{ TotalFrames() int }); ok {
		remaining := sized.TotalFrames() - src.Position()
		if remaining > 0 {
			out = make([]byte, 0, remaining*src.FrameSize())
		}
	}

	for {
		block, err := src.Read(blockSize)
		if err == io.EOF {
			return out, nil
		}

		if err != nil {
			return out, fmt.Errorf("%w", err)
		}

		out = append(out, block...)
	}
}
