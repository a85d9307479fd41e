// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version reports the txtool version.
package version

import (
	"fmt"
	"strings"
)

// Release version of txtool.
const (
	Major uint = 0
	Minor uint = 1
	Patch uint = 0
)

var (
	// PreRelease and BuildMetadata may be set at link time, for example
	// '-ldflags "-X github.com/btcsuite/legacytx/internal/version.PreRelease=rc1"'.
	// Characters semver does not allow in them are dropped by String.
	PreRelease    = "pre"
	BuildMetadata = "dev"
)

// String returns the version as major.minor.patch followed by -PreRelease
// and +BuildMetadata when they are not empty (semver 2.0.0).
func String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d.%d.%d", Major, Minor, Patch)
	if pre := identifier(PreRelease, false); pre != "" {
		b.WriteString("-" + pre)
	}
	if build := identifier(BuildMetadata, true); build != "" {
		b.WriteString("+" + build)
	}
	return b.String()
}

// identifier strips s of everything but ASCII alphanumerics and hyphens.
// Dots are kept only when dots is set, as build metadata allows them.
func identifier(s string, dots bool) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z', r == '-':
			return r
		case r == '.' && dots:
			return r
		}
		return -1
	}, s)
}
