package render

// BlendMode defines compositing operations using a bitmask (Flags | Op)
type BlendMode uint8

// Blend operations (0-15)
const (
	opReplace uint8 = 0x00
	opAlpha   uint8 = 0x01
	opAdd     uint8 = 0x02
	opMax     uint8 = 0x03
	opScreen  uint8 = 0x04
)

// Blend flags
const (
	flagBg uint8 = 0x10
	flagFg uint8 = 0x20
)

const (
	BlendReplace = BlendMode(opReplace | flagBg | flagFg)
	BlendAlpha   = BlendMode(opAlpha | flagBg | flagFg)
	BlendAdd     = BlendMode(opAdd | flagBg | flagFg)
	BlendMax     = BlendMode(opMax | flagBg | flagFg)
	BlendScreen  = BlendMode(opScreen | flagBg | flagFg)

	BlendFgOnly  = BlendMode(opReplace | flagFg)
	BlendAlphaFg = BlendMode(opAlpha | flagFg)
	BlendMaxBg   = BlendMode(opMax | flagBg)
)

func apply(op uint8, dst, src RGB, alpha float64) RGB {
	switch op {
	case opAlpha:
		return Blend(dst, src, alpha)
	case opAdd:
		return Add(dst, src, alpha)
	case opMax:
		return Max(dst, src, alpha)
	case opScreen:
		return Screen(dst, src, alpha)
	default:
		return src
	}
}

// Background-only variants for tinting under existing glyphs
const (
	BlendAlphaBg  = BlendMode(opAlpha | flagBg)
	BlendScreenBg = BlendMode(opScreen | flagBg)
)
