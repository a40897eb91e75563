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
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestParseOptions(t *testing.T) {
	opts, err := ParseOptions([]byte(`
compact_between_defs: false
compact_interval: 4
slow_def_threshold: 10ms
overload_tie_break: first
`))
	if err != nil {
		t.Fatal(err)
	}
	expected := Options{
		CompactBetweenDefs: false,
		CompactInterval:    4,
		SlowDefThreshold:   10 * time.Millisecond,
		OverloadTieBreak:   TieBreakFirst,
	}
	if diff := cmp.Diff(expected, opts); diff != "" {
		t.Fatalf("unexpected options (-expected +found):\n%s", diff)
	}
}

func TestParseOptionsDefaults(t *testing.T) {
	opts, err := ParseOptions([]byte("compact_interval: 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	expected := DefaultOptions()
	expected.CompactInterval = 2
	if diff := cmp.Diff(expected, opts); diff != "" {
		t.Fatalf("unexpected options (-expected +found):\n%s", diff)
	}
}

func TestParseOptionsInvalid(t *testing.T) {
	for _, input := range []string{
		"overload_tie_break: random\n",
		"compact_interval: -1\n",
		"compact_interval: [\n",
	} {
		if _, err := ParseOptions([]byte(input)); err == nil {
			t.Fatalf("expected an error for %q", input)
		}
	}
	_, err := ParseOptions([]byte("compact_interval: [\n"))
	if !strings.HasPrefix(err.Error(), "parse checker options: ") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewCheckerInvalidOptions(t *testing.T) {
	c := NewChecker(Options{CompactInterval: -3, OverloadTieBreak: "random"})
	if diff := cmp.Diff(DefaultOptions(), c.opts); diff != "" {
		t.Fatalf("expected default options (-expected +found):\n%s", diff)
	}
}
