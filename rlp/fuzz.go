package rlp

import "bytes"

func Fuzz(data []byte) int {
	if len(data) == 0 {
		return -1
	}
	if data[0]%2 == 0 {
		return fuzzElement(data[1:])
	}
	return fuzzList(data[1:])
}

func fuzzElement(data []byte) int {
	elem := BytesElement(data)
	size, err := ElementSize(elem)
	if err != nil {
		panic(err)
	}
	buf := make([]byte, size)
	n, err := EncodeElement(buf, elem)
	if err != nil {
		panic(err)
	}
	if n != encodedLen(elem) {
		panic("size mismatch")
	}
	if payload := stripHeader(buf[:n], 0x80, 0xB7); !bytes.Equal(payload, data) {
		panic("content mismatch")
	}
	return 0
}

func fuzzList(data []byte) int {
	var elems []*Element
	for len(data) > 0 {
		n := int(data[0])%32 + 1
		if n > len(data) {
			n = len(data)
		}
		elems = append(elems, BytesElement(data[:n]))
		data = data[n:]
	}
	size, err := ListSize(elems)
	if err != nil {
		panic(err)
	}
	payloadLen := 0
	for _, elem := range elems {
		payloadLen += encodedLen(elem)
	}
	buf := make([]byte, size)
	n, err := EncodeList(buf, elems)
	if err != nil {
		panic(err)
	}
	if n != headsize(uint64(payloadLen))+payloadLen {
		panic("size mismatch")
	}
	payload := stripHeader(buf[:n], 0xC0, 0xF7)
	for _, elem := range elems {
		itemSize := encodedLen(elem)
		item := stripHeader(payload[:itemSize], 0x80, 0xB7)
		if !bytes.Equal(item, elem.Data) {
			panic("content mismatch")
		}
		payload = payload[itemSize:]
	}
	if len(payload) != 0 {
		panic("trailing bytes after last item")
	}
	return 0
}

// stripHeader peels the string or list header off enc and returns the
// payload, checking the announced length against the real one.
func stripHeader(enc []byte, smalltag, largetag byte) []byte {
	tag := enc[0]
	switch {
	case tag < smalltag:
		return enc[:1]
	case tag <= largetag:
		size := int(tag - smalltag)
		if len(enc) != 1+size {
			panic("announced length mismatch")
		}
		return enc[1:]
	default:
		sizesize := int(tag - largetag)
		size := 0
		for _, b := range enc[1 : 1+sizesize] {
			size = size<<8 | int(b)
		}
		if size < 56 || len(enc) != 1+sizesize+size {
			panic("announced length mismatch")
		}
		return enc[1+sizesize:]
	}
}
