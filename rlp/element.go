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
	"encoding/binary"
	"fmt"
)

// Type is the tag carried by an Element. It selects how the element's data
// view is treated before header generation: integer types have their leading
// zero bytes trimmed, byte arrays are encoded verbatim.
type Type int

const (
	TypeInvalid Type = iota
	TypeByteArray
	// Positive integers must be represented in big endian binary form
	// with no leading zeroes. The widths below are the widths accepted on
	// input; trimming happens during encoding.
	TypeInt8
	TypeInt16
	TypeInt32
	TypeInt64
	TypeInt128
	TypeInt256
	TypeInt512
	TypeInt1024
)

func (t Type) String() string {
	switch t {
	case TypeInvalid:
		return "Invalid"
	case TypeByteArray:
		return "ByteArray"
	case TypeInt8:
		return "Int8"
	case TypeInt16:
		return "Int16"
	case TypeInt32:
		return "Int32"
	case TypeInt64:
		return "Int64"
	case TypeInt128:
		return "Int128"
	case TypeInt256:
		return "Int256"
	case TypeInt512:
		return "Int512"
	case TypeInt1024:
		return "Int1024"
	default:
		return fmt.Sprintf("Unknown(%d)", int(t))
	}
}

// IsInteger reports whether t is one of the fixed-width integer types.
func (t Type) IsInteger() bool {
	return t >= TypeInt8 && t <= TypeInt1024
}

// Size returns the byte width an element of type t must carry. It is zero
// for TypeByteArray and TypeInvalid, which have no fixed width.
func (t Type) Size() int {
	switch t {
	case TypeInt8:
		return 1
	case TypeInt16:
		return 2
	case TypeInt32:
		return 4
	case TypeInt64:
		return 8
	case TypeInt128:
		return 16
	case TypeInt256:
		return 32
	case TypeInt512:
		return 64
	case TypeInt1024:
		return 128
	default:
		return 0
	}
}

// IntType returns the integer type whose width is size bytes, or
// TypeInvalid if no integer type has that width.
func IntType(size int) Type {
	for t := TypeInt8; t <= TypeInt1024; t++ {
		if t.Size() == size {
			return t
		}
	}
	return TypeInvalid
}

// Element describes one value to encode. Data is a borrowed view into
// caller-owned memory: it is read during the encode call, never retained
// and never written to. The caller must keep the backing buffer alive and
// unmodified until the call returns.
//
// For integer types Data must span exactly Type.Size() bytes, leading
// zeroes included. For TypeByteArray any length is allowed, including
// zero. Elements violating this are rejected with ErrBadArgument before
// anything is written.
type Element struct {
	Type Type
	Data []byte
}

// BytesElement wraps b as a byte-array element. b is borrowed, not copied.
func BytesElement(b []byte) *Element {
	return &Element{Type: TypeByteArray, Data: b}
}

// StringElement wraps the bytes of s as a byte-array element.
func StringElement(s string) *Element {
	return &Element{Type: TypeByteArray, Data: []byte(s)}
}

// IntElement wraps b as a fixed-width integer element, deriving the type
// from len(b). A length matching none of the integer widths yields an
// element of TypeInvalid, which any encode call rejects.
func IntElement(b []byte) *Element {
	return &Element{Type: IntType(len(b)), Data: b}
}

// Uint32Element stores v big-endian in a fresh 4-byte buffer and wraps it
// as an Int32 element.
func Uint32Element(v uint32) *Element {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return &Element{Type: TypeInt32, Data: b}
}

// Uint64Element stores v big-endian in a fresh 8-byte buffer and wraps it
// as an Int64 element.
func Uint64Element(v uint64) *Element {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return &Element{Type: TypeInt64, Data: b}
}

// checkElement validates the type/width contract. A nil element, an
// invalid or unknown type, and an integer view whose length differs from
// its declared width are all construction errors, reported before any
// write happens.
func checkElement(elem *Element) error {
	switch {
	case elem == nil:
		return ErrBadArgument
	case elem.Type == TypeByteArray:
		return nil
	case elem.Type.IsInteger():
		if len(elem.Data) != elem.Type.Size() {
			return ErrBadArgument
		}
		return nil
	default:
		return ErrBadArgument
	}
}

// canonical returns the element's effective payload view. Integer views
// lose their leading zero bytes; an all-zero integer becomes the empty
// view, matching the rule that the integer zero is represented by the
// empty byte string. Byte arrays pass through untouched. The returned
// slice aliases elem.Data and is never written to.
func canonical(elem *Element) []byte {
	if !elem.Type.IsInteger() {
		return elem.Data
	}
	for i, b := range elem.Data {
		if b != 0 {
			return elem.Data[i:]
		}
	}
	return nil
}
