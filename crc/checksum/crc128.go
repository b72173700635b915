package checksum

import "lukechampine.com/uint128"

// msbMask128 tests the top bit of the 128-bit register.
var msbMask128 = uint128.New(0, 0x8000000000000000)

// CRC128 is the 128-bit engine. Go has no native 128-bit unsigned integer,
// so the register and polynomial are uint128 values; Lsh already truncates
// to 128 bits, matching the fixed register width of the narrower engines.
type CRC128 struct {
	crc        uint128.Uint128
	polynomial uint128.Uint128
}

func New128(polynomial uint128.Uint128) *CRC128 {
	return &CRC128{
		crc:        uint128.Max,
		polynomial: polynomial,
	}
}

func (engine *CRC128) Update(data []byte) {
	for _, ibyte := range data {
		engine.crc = engine.crc.Xor(uint128.From64(uint64(ibyte)).Lsh(120))
		for bit := 0; bit < 8; bit++ {
			if !engine.crc.And(msbMask128).IsZero() {
				// MSB is set so shift + XOR polynomial
				engine.crc = engine.crc.Lsh(1).Xor(engine.polynomial)
			} else {
				// MSB is not set so just shift
				engine.crc = engine.crc.Lsh(1)
			}
		}
	}
}

func (engine *CRC128) Finalize() uint128.Uint128 {
	return engine.crc.Xor(uint128.Max)
}

var (
	_ Checksum[uint8]           = (*CRC8)(nil)
	_ Checksum[uint16]          = (*CRC16)(nil)
	_ Checksum[uint32]          = (*CRC32)(nil)
	_ Checksum[uint64]          = (*CRC64)(nil)
	_ Checksum[uint128.Uint128] = (*CRC128)(nil)
)
