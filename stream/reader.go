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

package stream

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

// initialCapacity is the starting buffer size for reads of unknown length;
// the buffer doubles every time a read fills it to capacity.
const initialCapacity = 32 * 1024

var ErrTooLarge = errors.New("input exceeds maximum buffer size")

// ReadAll reads r until end of input and returns everything it produced.
// The whole input is held in memory; growth failure is a read failure,
// never a truncation.
func ReadAll(r io.Reader) ([]byte, error) {

	buf := make([]byte, initialCapacity)
	got := 0
	for {
		n, err := r.Read(buf[got:])
		got += n
		if errors.Is(err, io.EOF) {
			return buf[:got], nil
		}
		if err != nil {
			return nil, fmt.Errorf("could not read stream: %w", err)
		}
		if got == len(buf) {
			if len(buf) > math.MaxInt/2 {
				return nil, ErrTooLarge
			}
			next := make([]byte, 2*len(buf))
			copy(next, buf)
			buf = next
		}
	}
}

// ReadSource reads the named file fully into memory; an empty name or "-"
// reads standard input instead.
func ReadSource(path string) ([]byte, error) {

	if path == "" || path == "-" {
		data, err := ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("could not read standard input: %w", err)
		}
		return data, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open input file: %w", err)
	}
	defer file.Close()

	data, err := ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("could not read input file: %w", err)
	}

	return data, nil
}
