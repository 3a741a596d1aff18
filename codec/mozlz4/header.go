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
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// Signature is the fixed marker at the start of every container, "mozLz40"
// followed by a zero byte.
var Signature = []byte{0x6d, 0x6f, 0x7a, 0x4c, 0x7a, 0x34, 0x30, 0x00}

const (
	// SignatureSize is the length of the container signature in bytes.
	SignatureSize = 8

	// HeaderSize is the length of the full container header, the signature
	// followed by the declared uncompressed size as a little-endian uint32.
	HeaderSize = SignatureSize + 4
)

var (
	ErrTruncated    = errors.New("input shorter than container header")
	ErrBadSignature = errors.New("invalid container signature")
	ErrTooLarge     = errors.New("input too large for container size field")
)

// ParseHeader validates the container header and returns the declared
// uncompressed size along with the offset at which the payload starts.
func ParseHeader(data []byte) (uint32, int, error) {

	if len(data) < HeaderSize {
		return 0, 0, fmt.Errorf("%w (%d bytes)", ErrTruncated, len(data))
	}

	if !bytes.Equal(data[:SignatureSize], Signature) {
		return 0, 0, ErrBadSignature
	}

	size := binary.LittleEndian.Uint32(data[SignatureSize:HeaderSize])

	return size, HeaderSize, nil
}

// BuildHeader returns a full container header declaring the given
// uncompressed size.
func BuildHeader(size uint32) []byte {

	header := make([]byte, HeaderSize)
	copy(header, Signature)
	binary.LittleEndian.PutUint32(header[SignatureSize:], size)

	return header
}
