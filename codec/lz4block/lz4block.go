// Copyright 2022 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package lz4block

import (
	"errors"
	"fmt"

	"github.com/pierrec/lz4/v4"
)

var ErrShortBuffer = errors.New("destination buffer too small")

// Compressor compresses and decompresses single LZ4 blocks, as opposed to
// the framed format produced by LZ4 streams.
type Compressor struct{}

// New creates a new LZ4 block compressor.
func New() *Compressor {

	c := Compressor{}

	return &c
}

// Bound returns an upper bound for the compressed size of an input of n
// bytes.
func (c *Compressor) Bound(n int) int {
	return lz4.CompressBlockBound(n)
}

// Compress compresses src into dst, which must be at least Bound(len(src))
// bytes long, and returns the number of bytes written.
func (c *Compressor) Compress(src []byte, dst []byte) (int, error) {

	n, err := lz4.CompressBlock(src, dst, nil)
	if err != nil {
		return 0, fmt.Errorf("could not compress block: %w", err)
	}

	// The primitive reports incompressible input by writing nothing. We
	// still need a valid LZ4 block in that case, so store the input as a
	// single literal sequence.
	if n == 0 {
		return literals(src, dst)
	}

	return n, nil
}

// Decompress decompresses src into dst, writing at most len(dst) bytes, and
// returns the number of bytes produced.
func (c *Compressor) Decompress(src []byte, dst []byte) (int, error) {

	n, err := lz4.UncompressBlock(src, dst)
	if err != nil {
		return 0, fmt.Errorf("could not decompress block: %w", err)
	}

	return n, nil
}

// literals encodes src into dst as one literal-only LZ4 sequence and
// returns the number of bytes written.
func literals(src []byte, dst []byte) (int, error) {

	size := len(src)
	need := 1 + size
	if size >= 15 {
		need += 1 + (size-15)/255
	}
	if len(dst) < need {
		return 0, fmt.Errorf("%w (need %d bytes, have %d)", ErrShortBuffer, need, len(dst))
	}

	// The token holds the literal count, with 15 signaling that extension
	// bytes follow; each extension byte below 255 terminates the count.
	di := 0
	if size < 15 {
		dst[di] = byte(size) << 4
		di++
	} else {
		dst[di] = 0xf0
		di++
		left := size - 15
		for left >= 255 {
			dst[di] = 0xff
			di++
			left -= 255
		}
		dst[di] = byte(left)
		di++
	}

	di += copy(dst[di:], src)

	return di, nil
}
