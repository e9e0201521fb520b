// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"bytes"
	"testing"

	"github.com/bitmark-inc/tokend/util"
)

// data for varint tests
type varintTestType struct {
	value   uint64
	encoded []byte
}

var varintTests = []varintTestType{
	{0x00, []byte{0x00}},
	{0x01, []byte{0x01}},
	{0x7f, []byte{0x7f}},
	{0x80, []byte{0x80, 0x01}},
	{0xff, []byte{0xff, 0x01}},
	{0x100, []byte{0x80, 0x02}},
	{0x3fff, []byte{0xff, 0x7f}},
	{0x4000, []byte{0x80, 0x80, 0x01}},
	{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
}

func TestToVarint64(t *testing.T) {
	for i, item := range varintTests {
		result := util.ToVarint64(item.value)
		if !bytes.Equal(result, item.encoded) {
			t.Errorf("%d: encode: %016x  got: %x  expected: %x", i, item.value, result, item.encoded)
		}
	}
}

func TestFromVarint64(t *testing.T) {
	for i, item := range varintTests {
		value, count := util.FromVarint64(item.encoded)
		if value != item.value {
			t.Errorf("%d: decode: %x  got: %016x  expected: %016x", i, item.encoded, value, item.value)
		}
		if count != len(item.encoded) {
			t.Errorf("%d: decode: %x  used: %d bytes  expected: %d", i, item.encoded, count, len(item.encoded))
		}
	}
}

func TestFromVarint64Truncated(t *testing.T) {
	value, count := util.FromVarint64([]byte{0x80, 0x80})
	if 0 != value || 0 != count {
		t.Errorf("truncated decode: got: %d, %d  expected: 0, 0", value, count)
	}
}

func TestClippedVarint64(t *testing.T) {
	value, count := util.ClippedVarint64([]byte{0xff, 0x01}, 1, 8192)
	if 0xff != value || 2 != count {
		t.Errorf("clipped decode: got: %d, %d  expected: 255, 2", value, count)
	}

	// out of range values are rejected
	value, count = util.ClippedVarint64([]byte{0xff, 0x01}, 1, 100)
	if 0 != value || 0 != count {
		t.Errorf("clipped decode out of range: got: %d, %d  expected: 0, 0", value, count)
	}
}
