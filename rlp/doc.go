/*
Package rlp implements the encoding half of the RLP serialization format.

The purpose of RLP (Recursive Length Prefix) is to encode arbitrarily
nested arrays of binary data, and RLP is the main encoding method used to
serialize objects in Ethereum. RLP only encodes structure; encoding
specific atomic data types (strings, ints, floats) is left up to
higher-order protocols. In Ethereum integers must be represented in big
endian binary form with no leading zeroes, making the integer value zero
equivalent to the empty string.

Unlike reflection-based RLP packages, this one encodes tagged elements.
An Element pairs a Type tag with a borrowed byte view of caller-owned
memory, and the two operations write straight into a caller-provided
destination buffer:

	buf := make([]byte, 64)
	n, err := rlp.EncodeElement(buf, rlp.StringElement("dog"))
	// buf[:n] == []byte{0x83, 'd', 'o', 'g'}

Elements of an integer type carry a fixed-width big endian view (1, 2, 4,
8, 16, 32, 64 or 128 bytes) and are canonicalized during encoding: the
leading zero bytes are dropped, and an integer equal to zero encodes as
the empty string 0x80. Byte-array elements are encoded verbatim.

EncodeList encodes an ordered sequence of elements as one RLP list value.
List members must be leaf elements; this package does not compose lists
within lists. The library serializes anything into valid RLP without
asking what it means: no transaction or protocol level validation is
performed, and decoding is out of scope.

Every operation is a pure, stateless transformation. Nothing is retained
across calls and no locking exists; concurrent calls are safe as long as
each call gets disjoint source and destination memory. Before writing,
the encoder checks the destination capacity and rejects source views that
alias the destination, so an encode call never reads back what it has
itself written.
*/
package rlp
