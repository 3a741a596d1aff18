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

package mozlz4_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/mozlz4/codec/mozlz4"
)

func TestCodecRoundTrip(t *testing.T) {
	tests := map[string]struct {
		data []byte
	}{
		"empty input": {
			data: []byte{},
		},
		"short incompressible input": {
			data: []byte(`hello`),
		},
		"compressible input": {
			data: bytes.Repeat([]byte(`{"title":"bookmark","uri":"https://example.org/"}`), 128),
		},
		"binary input": {
			data: func() []byte {
				data := make([]byte, 4096)
				for i := range data {
					data[i] = byte(i * 13)
				}
				return data
			}(),
		},
	}

	for desc, test := range tests {
		test := test
		t.Run(desc, func(t *testing.T) {
			t.Parallel()

			codec := mozlz4.NewCodec()

			encoded, err := codec.Encode(test.data)
			require.NoError(t, err)

			decoded, err := codec.Decode(encoded)
			require.NoError(t, err)

			assert.Equal(t, test.data, decoded)
		})
	}
}

func TestCodecDecode(t *testing.T) {

	// Container holding the five bytes `hello` as a literal-only LZ4 block.
	fixture := []byte{
		0x6d, 0x6f, 0x7a, 0x4c, 0x7a, 0x34, 0x30, 0x00,
		0x05, 0x00, 0x00, 0x00,
		0x50, 0x68, 0x65, 0x6c, 0x6c, 0x6f,
	}

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		codec := mozlz4.NewCodec()

		decoded, err := codec.Decode(fixture)

		require.NoError(t, err)
		assert.Equal(t, []byte(`hello`), decoded)
	})

	t.Run("declared size bigger than payload", func(t *testing.T) {
		t.Parallel()

		// Same payload, but the header declares 100 bytes instead of 5. The
		// decode should warn and return the five bytes actually produced.
		mismatched := append(mozlz4.BuildHeader(100), fixture[mozlz4.HeaderSize:]...)

		var sink bytes.Buffer
		log := zerolog.New(&sink)
		codec := mozlz4.NewCodec(mozlz4.WithLogger(log))

		decoded, err := codec.Decode(mismatched)

		require.NoError(t, err)
		assert.Equal(t, []byte(`hello`), decoded)
		assert.Contains(t, sink.String(), "decompressed size differs from declared size")
	})

	t.Run("truncated input", func(t *testing.T) {
		t.Parallel()

		codec := mozlz4.NewCodec()

		_, err := codec.Decode(fixture[:4])

		assert.ErrorIs(t, err, mozlz4.ErrTruncated)
	})

	t.Run("invalid signature", func(t *testing.T) {
		t.Parallel()

		corrupted := append([]byte{}, fixture...)
		corrupted[0] = 0x00

		codec := mozlz4.NewCodec()

		_, err := codec.Decode(corrupted)

		assert.ErrorIs(t, err, mozlz4.ErrBadSignature)
	})

	t.Run("corrupt payload", func(t *testing.T) {
		t.Parallel()

		corrupted := append(mozlz4.BuildHeader(10), 0xff, 0xff, 0xff)

		codec := mozlz4.NewCodec()

		_, err := codec.Decode(corrupted)

		assert.Error(t, err)
	})

	t.Run("primitive failure", func(t *testing.T) {
		t.Parallel()

		codec := mozlz4.NewCodec(mozlz4.WithCompressor(failCompressor{}))

		_, err := codec.Decode(fixture)

		assert.Error(t, err)
	})
}

func TestCodecEncode(t *testing.T) {

	t.Run("output carries valid header", func(t *testing.T) {
		t.Parallel()

		data := bytes.Repeat([]byte(`session data `), 64)

		codec := mozlz4.NewCodec()

		encoded, err := codec.Encode(data)

		require.NoError(t, err)
		require.Greater(t, len(encoded), mozlz4.HeaderSize)

		size, offset, err := mozlz4.ParseHeader(encoded)
		require.NoError(t, err)
		assert.Equal(t, uint32(len(data)), size)
		assert.Equal(t, mozlz4.HeaderSize, offset)
	})

	t.Run("primitive failure", func(t *testing.T) {
		t.Parallel()

		codec := mozlz4.NewCodec(mozlz4.WithCompressor(failCompressor{}))

		_, err := codec.Encode([]byte(`hello`))

		assert.Error(t, err)
	})
}

type failCompressor struct{}

func (failCompressor) Bound(n int) int {
	return n
}

func (failCompressor) Compress(src []byte, dst []byte) (int, error) {
	return 0, errors.New("dummy error")
}

func (failCompressor) Decompress(src []byte, dst []byte) (int, error) {
	return 0, errors.New("dummy error")
}
