// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBytesPrefix(t *testing.T) {
	tests := []struct {
		prefix []byte
		limit  []byte
	}{
		{[]byte("t"), []byte("u")},
		{[]byte{0x01, 0xff}, []byte{0x02}},
		{[]byte{0xff, 0xff}, nil},
		{nil, nil},
	}

	for _, test := range tests {
		r := BytesPrefix(test.prefix)
		require.Equal(t, test.prefix, r.Start)
		require.Equal(t, test.limit, r.Limit)
	}
}
