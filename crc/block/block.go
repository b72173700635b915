package block

import (
	"crc-golang/crc/checksum"
	"crc-golang/crc/util"
)

// Sealed block layout is concatenation of:
//  crc      : fixed32 of the payload checksum
//  payload  : char[len(data)]
const kHeaderSize = 4

// Seal returns a new buffer holding data prefixed with its checksum,
// computed by the default 32-bit engine.
func Seal(data []byte) []byte {
	engine := checksum.NewCRC32()
	engine.Update(data)

	sealed := make([]byte, kHeaderSize+len(data))
	util.EncodeFixedUint32(sealed, engine.Finalize())
	copy(sealed[kHeaderSize:], data)

	return sealed
}

// Open verifies the header checksum of a sealed block and returns the
// payload. The payload aliases the input buffer.
func Open(sealed []byte) ([]byte, *util.CrcError) {
	if len(sealed) < kHeaderSize {
		return nil, util.NewCrcError(util.ErrBadBlockLength, "block length %d shorter than header length %d", len(sealed), kHeaderSize)
	}

	payload := sealed[kHeaderSize:]
	engine := checksum.NewCRC32()
	engine.Update(payload)

	expected := util.DecodeFixedUint32(sealed)
	if actual := engine.Finalize(); actual != expected {
		return nil, util.NewCrcError(util.ErrCheckCrcFailed, "checksum mismatch, stored: 0x%08X, computed: 0x%08X", expected, actual)
	}

	return payload, nil
}
