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

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/optakt/mozlz4/codec/mozlz4"
	"github.com/optakt/mozlz4/stream"
)

const (
	success = 0
	failure = 1
)

const usage = `Usage: mozlz4-encode [-h] IN OUT
Compress IN to OUT with the same format as Mozilla backup files.
If IN is '-', compress from standard input.
If OUT is '-', compress to standard output.
Note: the input is read into memory entirely before compression begins,
and compression completes entirely before output starts.
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {

	// Command line parameter initialization. The flag set swallows its own
	// diagnostics so that only the hand-written usage text is printed.
	var (
		flagHelp  bool
		flagLevel string
	)

	flags := pflag.NewFlagSet("mozlz4-encode", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.BoolVarP(&flagHelp, "help", "h", false, "display usage information and exit")
	flags.StringVarP(&flagLevel, "level", "l", "info", "log output level")

	err := flags.Parse(args)
	if err != nil {
		fmt.Fprint(os.Stderr, usage)
		return failure
	}

	// Help only succeeds when given on its own; combined with operands it
	// is an argument error like any other.
	operands := flags.Args()
	if flagHelp && len(operands) == 0 {
		fmt.Print(usage)
		return success
	}
	if flagHelp || len(operands) != 2 {
		fmt.Fprint(os.Stderr, usage)
		return failure
	}

	input := operands[0]
	output := operands[1]

	// Logger initialization.
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	level, err := zerolog.ParseLevel(flagLevel)
	if err != nil {
		log.Error().Str("level", flagLevel).Err(err).Msg("could not parse log level")
		return failure
	}
	log = log.Level(level)

	data, err := stream.ReadSource(input)
	if err != nil {
		log.Error().Str("input", describe(input, "<stdin>")).Err(err).Msg("could not read input")
		return failure
	}

	codec := mozlz4.NewCodec(mozlz4.WithLogger(log))
	encoded, err := codec.Encode(data)
	if err != nil {
		log.Error().Str("input", describe(input, "<stdin>")).Err(err).Msg("could not encode container")
		return failure
	}

	err = stream.WriteSink(encoded, output)
	if err != nil {
		log.Error().Str("output", describe(output, "<stdout>")).Err(err).Msg("could not write output")
		return failure
	}

	return success
}

func describe(path string, fallback string) string {
	if path == "" || path == "-" {
		return fallback
	}
	return path
}
