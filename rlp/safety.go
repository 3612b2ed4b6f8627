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

import "unsafe"

// overlap reports whether the memory ranges backing a and b share any
// byte. The check compares addresses, not contents: a source that merely
// equals the destination byte-for-byte is fine, one that aliases it is
// not. Empty views occupy no bytes and overlap nothing; two subslices of
// one array that touch end-to-start do not overlap either.
//
// The uintptr conversions are only ever compared, never dereferenced,
// and both slices are live across the comparison.
func overlap(a, b []byte) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	aLo := uintptr(unsafe.Pointer(&a[0]))
	aHi := aLo + uintptr(len(a)) - 1
	bLo := uintptr(unsafe.Pointer(&b[0]))
	bHi := bLo + uintptr(len(b)) - 1
	return aLo <= bHi && bLo <= aHi
}
