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

package mozlz4

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/optakt/mozlz4/codec/lz4block"
)

// Compressor is the block compression primitive the codec delegates to. It
// compresses and decompresses whole byte buffers supplied by the caller;
// Bound returns an upper bound for the compressed size of an input of the
// given length.
type Compressor interface {
	Bound(n int) int
	Compress(src []byte, dst []byte) (int, error)
	Decompress(src []byte, dst []byte) (int, error)
}

// Codec encodes and decodes mozLz4 containers, delegating payload
// compression to a block compression primitive.
type Codec struct {
	compressor Compressor
	log        zerolog.Logger
}

// NewCodec creates a new Codec, using LZ4 block compression and no logging
// unless configured otherwise through options.
func NewCodec(options ...Option) *Codec {

	c := Codec{
		compressor: lz4block.New(),
		log:        zerolog.Nop(),
	}

	for _, option := range options {
		option(&c)
	}

	return &c
}

// Decode parses the container in data and returns the decompressed payload.
// When the payload decompresses to a different size than the header
// declares, the mismatch is logged as a warning and the bytes actually
// produced are returned.
func (c *Codec) Decode(data []byte) ([]byte, error) {

	size, offset, err := ParseHeader(data)
	if err != nil {
		return nil, fmt.Errorf("could not parse container header: %w", err)
	}

	decoded := make([]byte, size)
	n, err := c.compressor.Decompress(data[offset:], decoded)
	if err != nil {
		return nil, fmt.Errorf("could not decompress payload: %w", err)
	}

	if n != int(size) {
		c.log.Warn().
			Uint32("declared", size).
			Int("produced", n).
			Msg("decompressed size differs from declared size")
	}

	return decoded[:n], nil
}

// Encode compresses data and wraps it into a container declaring its
// original size.
func (c *Codec) Encode(data []byte) ([]byte, error) {

	if uint64(len(data)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w (%d bytes)", ErrTooLarge, len(data))
	}

	bound := c.compressor.Bound(len(data))
	encoded := make([]byte, HeaderSize+bound)
	copy(encoded, BuildHeader(uint32(len(data))))

	n, err := c.compressor.Compress(data, encoded[HeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("could not compress payload: %w", err)
	}

	return encoded[:HeaderSize+n], nil
}
