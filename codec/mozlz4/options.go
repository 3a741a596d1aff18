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
	"github.com/rs/zerolog"
)

// Option configures an optional parameter of the codec.
type Option func(*Codec)

// WithCompressor injects a custom block compression primitive into the
// codec, replacing the default LZ4 block implementation.
func WithCompressor(compressor Compressor) Option {
	return func(c *Codec) {
		c.compressor = compressor
	}
}

// WithLogger injects the logger used for non-fatal diagnostics, such as the
// size-mismatch warning on decode.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Codec) {
		c.log = log
	}
}
