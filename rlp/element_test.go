// Copyright 2020 The go-rlp Authors
// This file is part of the go-rlp library.
//
// The go-rlp library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-rlp library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-rlp library. If not, see <http://www.gnu.org/licenses/>.

package rlp

import (
	"bytes"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntType(t *testing.T) {
	widths := map[int]Type{
		1: TypeInt8, 2: TypeInt16, 4: TypeInt32, 8: TypeInt64,
		16: TypeInt128, 32: TypeInt256, 64: TypeInt512, 128: TypeInt1024,
	}
	for size, want := range widths {
		assert.Equal(t, want, IntType(size), "size %d", size)
		assert.Equal(t, size, want.Size(), "type %v", want)
	}
	for _, size := range []int{0, 3, 5, 7, 9, 17, 33, 65, 127, 129} {
		assert.Equal(t, TypeInvalid, IntType(size), "size %d", size)
	}
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "ByteArray", TypeByteArray.String())
	assert.Equal(t, "Int8", TypeInt8.String())
	assert.Equal(t, "Int1024", TypeInt1024.String())
	assert.Equal(t, "Invalid", TypeInvalid.String())
	assert.Equal(t, "Unknown(42)", Type(42).String())
}

func TestTypeIsInteger(t *testing.T) {
	assert.False(t, TypeInvalid.IsInteger())
	assert.False(t, TypeByteArray.IsInteger())
	assert.False(t, Type(42).IsInteger())
	for typ := TypeInt8; typ <= TypeInt1024; typ++ {
		assert.True(t, typ.IsInteger(), "type %v", typ)
	}
}

func TestElementConstructors(t *testing.T) {
	tests := []struct {
		elem *Element
		want Element
	}{
		{BytesElement([]byte{0x01, 0x02}), Element{Type: TypeByteArray, Data: []byte{0x01, 0x02}}},
		{BytesElement(nil), Element{Type: TypeByteArray}},
		{StringElement("dog"), Element{Type: TypeByteArray, Data: []byte("dog")}},
		{IntElement([]byte{0x04, 0x00}), Element{Type: TypeInt16, Data: []byte{0x04, 0x00}}},
		{IntElement(make([]byte, 3)), Element{Type: TypeInvalid, Data: make([]byte, 3)}},
		{Uint32Element(1024), Element{Type: TypeInt32, Data: []byte{0x00, 0x00, 0x04, 0x00}}},
		{Uint64Element(1024), Element{Type: TypeInt64, Data: []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x04, 0x00}}},
	}
	cfg := spew.ConfigState{DisablePointerAddresses: true, DisableCapacities: true}
	for i, test := range tests {
		require.NotNil(t, test.elem, "test %d", i)
		if test.elem.Type != test.want.Type || !bytes.Equal(test.elem.Data, test.want.Data) {
			t.Errorf("test %d: got %v, want %v", i, cfg.NewFormatter(test.elem), cfg.NewFormatter(&test.want))
		}
	}
}

// The data view is borrowed, not copied: mutations of the source between
// construction and encoding show up in the output.
func TestElementBorrowsData(t *testing.T) {
	src := []byte("cat")
	elem := BytesElement(src)
	copy(src, "dog")

	buf := make([]byte, 8)
	n, err := EncodeElement(buf, elem)
	require.NoError(t, err)
	assert.Equal(t, unhex("83 646f67"), buf[:n])
}

func TestCheckElement(t *testing.T) {
	assert.NoError(t, checkElement(BytesElement(nil)))
	assert.NoError(t, checkElement(StringElement("dog")))
	assert.NoError(t, checkElement(Uint64Element(7)))
	assert.NoError(t, checkElement(&Element{Type: TypeInt16, Data: []byte{0x00, 0x00}}))

	assert.Equal(t, ErrBadArgument, checkElement(nil))
	assert.Equal(t, ErrBadArgument, checkElement(&Element{Type: TypeInvalid}))
	assert.Equal(t, ErrBadArgument, checkElement(&Element{Type: Type(42), Data: []byte{0x01}}))
	assert.Equal(t, ErrBadArgument, checkElement(&Element{Type: TypeInt64, Data: []byte{0x01}}))
	assert.Equal(t, ErrBadArgument, checkElement(&Element{Type: TypeInt8}))
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		elem *Element
		want []byte
	}{
		// byte arrays keep their leading zeroes
		{BytesElement([]byte{0x00, 0x01}), []byte{0x00, 0x01}},
		{BytesElement(nil), nil},
		{IntElement([]byte{0x00, 0x01}), []byte{0x01}},
		{IntElement([]byte{0x00, 0x00, 0x04, 0x00}), []byte{0x04, 0x00}},
		{IntElement([]byte{0x80}), []byte{0x80}},
		{IntElement(make([]byte, 8)), nil},
		{Uint32Element(0), nil},
	}
	for i, test := range tests {
		assert.Equal(t, test.want, canonical(test.elem), "test %d", i)
	}

	// the canonical view aliases the element data instead of copying it
	data := []byte{0x00, 0x00, 0x04, 0x00}
	view := canonical(&Element{Type: TypeInt32, Data: data})
	require.Len(t, view, 2)
	if &view[0] != &data[2] {
		t.Error("canonical view does not alias the element data")
	}
}
