package bsonjson

const hexDigits = "0123456789abcdef"

// objectIDHexLen is the number of hex characters produced for a 12-byte
// ObjectId.
const objectIDHexLen = 24

// appendObjectIDHex appends the 24-character lowercase hex encoding of a
// 12-byte ObjectId to dst: two hex digits per input byte, high nibble
// first, no delimiters or prefix. id must have length 12; the OID case in
// transcodeElement checks inIdx+12 against inLen before slicing and calling
// in.
func appendObjectIDHex(dst []byte, id []byte) []byte {
	var buf [objectIDHexLen]byte
	for i, b := range id {
		buf[i*2] = hexDigits[b>>4]
		buf[i*2+1] = hexDigits[b&0x0f]
	}
	return append(dst, buf[:]...)
}
