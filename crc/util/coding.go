package util

import (
	"encoding/binary"

	"lukechampine.com/uint128"
)

func EncodeFixedUint32(data []byte, value uint32) {
	binary.LittleEndian.PutUint32(data, value)
}

func DecodeFixedUint32(data []byte) uint32 {
	return binary.LittleEndian.Uint32(data)
}

func EncodeFixedUint64(data []byte, value uint64) {
	binary.LittleEndian.PutUint64(data, value)
}

func DecodeFixedUint64(data []byte) uint64 {
	return binary.LittleEndian.Uint64(data)
}

// 128-bit values are laid out as two little-endian halves, low half first,
// so the byte order is consistent with the narrower widths.
func EncodeFixedUint128(data []byte, value uint128.Uint128) {
	binary.LittleEndian.PutUint64(data, value.Lo)
	binary.LittleEndian.PutUint64(data[8:], value.Hi)
}

func DecodeFixedUint128(data []byte) uint128.Uint128 {
	return uint128.New(binary.LittleEndian.Uint64(data), binary.LittleEndian.Uint64(data[8:]))
}
