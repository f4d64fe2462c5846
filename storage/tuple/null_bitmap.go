package tuple

// attIsNull reports whether the attribute at 0-based index attIdx is marked
// null in bits.
func attIsNull(bits []byte, attIdx uint32) bool {
	return bits[attIdx>>3]&(1<<(attIdx&0x07)) != 0
}

func setAttNull(bits []byte, attIdx uint32) {
	bits[attIdx>>3] |= 1 << (attIdx & 0x07)
}
