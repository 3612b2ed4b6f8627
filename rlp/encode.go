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
	"errors"
)

var (
	// EmptyString is the encoding of an empty string, and of any integer
	// equal to zero.
	EmptyString = []byte{0x80}
	// EmptyList is the encoding of a list with no elements.
	EmptyList = []byte{0xC0}
)

var (
	ErrBadArgument    = errors.New("rlp: bad argument")
	ErrBufferOverlap  = errors.New("rlp: source and destination buffers overlap")
	ErrBufferTooSmall = errors.New("rlp: destination buffer too small")
)

// EncodeElement encodes a single element into dst and returns the number
// of bytes written. len(dst) is the destination capacity; the element's
// data view must not alias dst.
//
// On error nothing useful is in dst: a failing call may have written a
// partial encoding and the caller must not interpret the contents.
func EncodeElement(dst []byte, elem *Element) (int, error) {
	if dst == nil {
		return 0, ErrBadArgument
	}
	if err := checkElement(elem); err != nil {
		return 0, err
	}
	// Admission bound: one tag byte on top of the untrimmed view. The
	// long form needs more and is re-checked once the payload is known.
	if len(dst) < len(elem.Data)+1 {
		return 0, ErrBufferTooSmall
	}
	if overlap(dst, elem.Data) {
		return 0, ErrBufferOverlap
	}
	return encodeItem(dst, canonical(elem))
}

// encodeItem writes one canonical payload into dst. A single byte below
// 0x80 is its own encoding; everything else, the empty payload included,
// gets a string header in front of the verbatim payload bytes.
func encodeItem(dst, payload []byte) (int, error) {
	if len(payload) == 1 && payload[0] < 0x80 {
		dst[0] = payload[0]
		return 1, nil
	}
	size := uint64(len(payload))
	if headsize(size)+len(payload) > len(dst) {
		return 0, ErrBufferTooSmall
	}
	hs := puthead(dst, 0x80, 0xB7, size)
	copy(dst[hs:], payload)
	return hs + len(payload), nil
}

// EncodeList encodes elems, in order, as a single RLP list value and
// returns the total number of bytes written. A nil or empty elems encodes
// as the empty list. Only leaf elements are accepted as list members;
// list-in-list composition is not supported and an element of any other
// type fails with ErrBadArgument.
//
// The elements are first admitted against the destination capacity and
// checked for aliasing, so a bad sequence fails before dst is touched.
// Failures during the encode pass can leave a partial encoding behind;
// on any error the contents of dst are undefined.
func EncodeList(dst []byte, elems []*Element) (int, error) {
	if dst == nil {
		return 0, ErrBadArgument
	}
	if len(dst) == 0 {
		return 0, ErrBufferTooSmall
	}
	remaining := len(dst)
	for _, elem := range elems {
		if err := checkElement(elem); err != nil {
			return 0, err
		}
		if remaining < len(elem.Data)+1 {
			return 0, ErrBufferTooSmall
		}
		remaining -= len(elem.Data) + 1
		if overlap(dst, elem.Data) {
			return 0, ErrBufferOverlap
		}
	}

	payloadLen := 0
	for _, elem := range elems {
		n, err := EncodeElement(dst[payloadLen:], elem)
		if err != nil {
			return 0, err
		}
		payloadLen += n
	}

	// The payload sits at offset 0. Shift it up to make room for the
	// list header, then put the header in front. copy handles the
	// overlapping ranges like memmove, so no staging buffer is needed.
	hs := headsize(uint64(payloadLen))
	if hs+payloadLen > len(dst) {
		return 0, ErrBufferTooSmall
	}
	copy(dst[hs:hs+payloadLen], dst[:payloadLen])
	puthead(dst, 0xC0, 0xF7, uint64(payloadLen))
	return hs + payloadLen, nil
}

// ElementSize returns the destination capacity EncodeElement requires
// for elem: the size of the encoding or the admission bound on the
// untrimmed view, whichever is larger. Encoding into a destination of
// exactly this size succeeds and one byte less fails; the written length
// can be smaller than the capacity when canonicalization trims the
// payload.
func ElementSize(elem *Element) (int, error) {
	if err := checkElement(elem); err != nil {
		return 0, err
	}
	size := encodedLen(elem)
	if admit := len(elem.Data) + 1; admit > size {
		size = admit
	}
	return size, nil
}

// ListSize returns the destination capacity EncodeList requires for
// elems. It is the dry-run counterpart of the encode pass: the result
// covers the admission pass over the untrimmed views, the per-element
// capacity demands at each write cursor position and the list header in
// front of the payload. A destination of exactly this size succeeds and
// one byte less fails; as with ElementSize, the written length can be
// smaller than the capacity.
func ListSize(elems []*Element) (int, error) {
	var admit, payload, need int
	for _, elem := range elems {
		size, err := ElementSize(elem)
		if err != nil {
			return 0, err
		}
		if payload+size > need {
			need = payload + size
		}
		admit += len(elem.Data) + 1
		payload += encodedLen(elem)
	}
	if admit > need {
		need = admit
	}
	if total := headsize(uint64(payload)) + payload; total > need {
		need = total
	}
	return need, nil
}

// encodedLen returns the exact number of bytes encodeItem writes for a
// valid element.
func encodedLen(elem *Element) int {
	payload := canonical(elem)
	if len(payload) == 1 && payload[0] < 0x80 {
		return 1
	}
	return headsize(uint64(len(payload))) + len(payload)
}

// headsize returns the size of a string or list header for a value of
// the given size.
func headsize(size uint64) int {
	if size < 56 {
		return 1
	}
	return 1 + intsize(size)
}

// puthead writes a list or string header to buf. buf must be at least 9
// bytes long, or long enough to hold the header.
func puthead(buf []byte, smalltag, largetag byte, size uint64) int {
	if size < 56 {
		buf[0] = smalltag + byte(size)
		return 1
	}
	sizesize := putint(buf[1:], size)
	buf[0] = largetag + byte(sizesize)
	return sizesize + 1
}

// putint writes i to the beginning of b in big endian byte order, using
// the least number of bytes needed to represent i.
func putint(b []byte, i uint64) (size int) {
	switch {
	case i < (1 << 8):
		b[0] = byte(i)
		return 1
	case i < (1 << 16):
		b[0] = byte(i >> 8)
		b[1] = byte(i)
		return 2
	case i < (1 << 24):
		b[0] = byte(i >> 16)
		b[1] = byte(i >> 8)
		b[2] = byte(i)
		return 3
	case i < (1 << 32):
		b[0] = byte(i >> 24)
		b[1] = byte(i >> 16)
		b[2] = byte(i >> 8)
		b[3] = byte(i)
		return 4
	case i < (1 << 40):
		b[0] = byte(i >> 32)
		b[1] = byte(i >> 24)
		b[2] = byte(i >> 16)
		b[3] = byte(i >> 8)
		b[4] = byte(i)
		return 5
	case i < (1 << 48):
		b[0] = byte(i >> 40)
		b[1] = byte(i >> 32)
		b[2] = byte(i >> 24)
		b[3] = byte(i >> 16)
		b[4] = byte(i >> 8)
		b[5] = byte(i)
		return 6
	case i < (1 << 56):
		b[0] = byte(i >> 48)
		b[1] = byte(i >> 40)
		b[2] = byte(i >> 32)
		b[3] = byte(i >> 24)
		b[4] = byte(i >> 16)
		b[5] = byte(i >> 8)
		b[6] = byte(i)
		return 7
	default:
		b[0] = byte(i >> 56)
		b[1] = byte(i >> 48)
		b[2] = byte(i >> 40)
		b[3] = byte(i >> 32)
		b[4] = byte(i >> 24)
		b[5] = byte(i >> 16)
		b[6] = byte(i >> 8)
		b[7] = byte(i)
		return 8
	}
}

// intsize computes the minimum number of bytes required to store i.
func intsize(i uint64) (size int) {
	for size = 1; ; size++ {
		if i >>= 8; i == 0 {
			return size
		}
	}
}
