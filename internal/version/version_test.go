// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package version

import (
	"fmt"
	"testing"
)

// TestString ensures pre-release and build metadata are normalized before
// being appended.
func TestString(t *testing.T) {
	defer func(pre, build string) {
		PreRelease, BuildMetadata = pre, build
	}(PreRelease, BuildMetadata)

	base := fmt.Sprintf("%d.%d.%d", Major, Minor, Patch)
	tests := []struct {
		pre, build string
		want       string
	}{
		{"", "", base},
		{"beta", "", base + "-beta"},
		{"", "dev", base + "+dev"},
		{"rc.1", "git.abc", base + "-rc1+git.abc"},
		{"$%", "!!", base},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		PreRelease, BuildMetadata = test.pre, test.build
		if got := String(); got != test.want {
			t.Errorf("String #%d: got %s, want %s", i, got, test.want)
		}
	}
}

func TestIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		dots bool
		want string
	}{
		{"rc-1", false, "rc-1"},
		{"rc.1", false, "rc1"},
		{"git.ab12", true, "git.ab12"},
		{"héllo wörld", true, "hllowrld"},
		{"+_~", true, ""},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		if got := identifier(test.in, test.dots); got != test.want {
			t.Errorf("identifier #%d (%q): got %q, want %q", i,
				test.in, got, test.want)
		}
	}
}
