// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package typecore

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// OverloadTieBreak selects how a call matching several overloads is resolved.
type OverloadTieBreak string

const (
	// Report an ambiguity error naming every matching overload.
	TieBreakError OverloadTieBreak = "error"
	// Select the first matching overload, in declaration order.
	TieBreakFirst OverloadTieBreak = "first"
)

// Options configure a Checker.
type Options struct {
	// Remove unreachable substitution entries between definitions.
	CompactBetweenDefs bool `yaml:"compact_between_defs"`
	// Number of definitions checked between compactions.
	CompactInterval int `yaml:"compact_interval"`
	// Definitions which take longer than the threshold to check are logged. Zero disables
	// timing.
	SlowDefThreshold time.Duration `yaml:"slow_def_threshold"`
	// Resolution of calls which match several overloads.
	OverloadTieBreak OverloadTieBreak `yaml:"overload_tie_break"`
}

// Get the default options: compaction after every definition, no timing, and ambiguity
// errors for calls matching several overloads.
func DefaultOptions() Options {
	return Options{
		CompactBetweenDefs: true,
		CompactInterval:    1,
		OverloadTieBreak:   TieBreakError,
	}
}

// Parse options from YAML. Fields which are not present keep their default values.
func ParseOptions(data []byte) (Options, error) {
	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parse checker options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

// Check if the options are valid.
func (o Options) Validate() error {
	if o.CompactInterval < 0 {
		return errors.New("compact_interval must not be negative")
	}
	if o.SlowDefThreshold < 0 {
		return errors.New("slow_def_threshold must not be negative")
	}
	switch o.OverloadTieBreak {
	case TieBreakError, TieBreakFirst, "":
		return nil
	}
	return errors.New("invalid overload_tie_break: " + string(o.OverloadTieBreak))
}
