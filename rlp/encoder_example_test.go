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
	"fmt"
)

func ExampleEncodeElement() {
	buf := make([]byte, 8)
	n, _ := EncodeElement(buf, StringElement("dog"))
	fmt.Printf("%X\n", buf[:n])
	// Output: 83646F67
}

func ExampleEncodeElement_integer() {
	buf := make([]byte, 16)

	// leading zeroes are trimmed, zero itself becomes the empty string
	n, _ := EncodeElement(buf, Uint64Element(1024))
	fmt.Printf("%X\n", buf[:n])
	n, _ = EncodeElement(buf, Uint64Element(0))
	fmt.Printf("%X\n", buf[:n])
	// Output:
	// 820400
	// 80
}

func ExampleEncodeList() {
	elems := []*Element{
		StringElement("cat"),
		StringElement("dog"),
	}
	size, _ := ListSize(elems)
	buf := make([]byte, size)
	n, _ := EncodeList(buf, elems)
	fmt.Printf("%X\n", buf[:n])
	// Output: C88363617483646F67
}
