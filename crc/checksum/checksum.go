package checksum

// Word is any unsigned integer type an Engine can accumulate into.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Checksum is the operation set shared by every width engine. The register
// starts at all-ones, Update folds bytes in MSB-first bit-serial order and
// Finalize returns the complemented register without mutating it, so an
// engine stays updatable after Finalize.
type Checksum[N any] interface {
	Update(data []byte)
	Finalize() N
}

type Engine[N Word] struct {
	crc        N
	polynomial N

	// derived from the width of N at construction
	alignShift uint
	msbMask    N
}

// New returns an engine with the register initialized to all-ones. Any
// polynomial is accepted, including zero.
func New[N Word](polynomial N) *Engine[N] {
	width := uint(0)
	for ones := uint64(^N(0)); ones != 0; ones >>= 8 {
		width += 8
	}

	return &Engine[N]{
		crc:        ^N(0),
		polynomial: polynomial,
		alignShift: width - 8,
		msbMask:    ^(^N(0) >> 1),
	}
}

func (engine *Engine[N]) Update(data []byte) {
	for _, ibyte := range data {
		engine.crc ^= N(ibyte) << engine.alignShift
		for bit := 0; bit < 8; bit++ {
			if engine.crc&engine.msbMask != 0 {
				// MSB is set so shift + XOR polynomial
				engine.crc = engine.crc<<1 ^ engine.polynomial
			} else {
				// MSB is not set so just shift
				engine.crc <<= 1
			}
		}
	}
}

func (engine *Engine[N]) Finalize() N {
	return engine.crc ^ ^N(0)
}
