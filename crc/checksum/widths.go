package checksum

import "lukechampine.com/uint128"

// Default polynomials used by the zero-argument constructors. These are the
// engine defaults, not a claim of conformance to any named CRC standard;
// callers needing a specific variant pass their own polynomial to New.
const (
	DefaultPoly8  uint8  = 0x07
	DefaultPoly16 uint16 = 0x8005
	DefaultPoly32 uint32 = 0x04C11DB7
	DefaultPoly64 uint64 = 0x42F0E1EBA9EA3693
)

// DefaultPoly128 is the 121-bit default generator, zero-extended to 128 bits.
var DefaultPoly128 = uint128.New(0x1F3F0FBAB65C7891, 0x0E3C3D5A7E9F7D4E)

type CRC8 = Engine[uint8]
type CRC16 = Engine[uint16]
type CRC32 = Engine[uint32]
type CRC64 = Engine[uint64]

func NewCRC8() *CRC8 {
	return New(DefaultPoly8)
}

func NewCRC16() *CRC16 {
	return New(DefaultPoly16)
}

func NewCRC32() *CRC32 {
	return New(DefaultPoly32)
}

func NewCRC64() *CRC64 {
	return New(DefaultPoly64)
}

func NewCRC128() *CRC128 {
	return New128(DefaultPoly128)
}
