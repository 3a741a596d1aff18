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
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
)

// WriteSink writes data to the named file, creating or truncating it; an
// empty name or "-" writes to standard output instead. Bytes are
// transferred as-is, without any end-of-line translation, and a short
// write is an error.
func WriteSink(data []byte, path string) error {

	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		if err != nil {
			return fmt.Errorf("could not write to standard output: %w", err)
		}
		return nil
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("could not open output file: %w", err)
	}

	var result *multierror.Error
	_, err = file.Write(data)
	if err != nil {
		result = multierror.Append(result, fmt.Errorf("could not write to output file: %w", err))
	}
	err = file.Close()
	if err != nil {
		result = multierror.Append(result, fmt.Errorf("could not close output file: %w", err))
	}

	return result.ErrorOrNil()
}
