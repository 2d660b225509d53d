package domain

import (
	"fmt"
	"math/big"
)

// AccessMask is a growable bit vector over capability bit positions.
// Bit i lives in byte i/8 at position i%8 (least significant bit first).
// A nil or empty mask grants nothing.
type AccessMask []byte

// SetBit returns a mask with the capability's bit set. The input is never
// modified; the result may share no storage with it.
func SetBit(mask AccessMask, c Capability) AccessMask {
	out := growFor(mask, c.Bit())
	out[c.Bit()/8] |= 1 << (c.Bit() % 8)
	return out
}

// ClearBit returns a mask with the capability's bit cleared. The mask grows
// to cover the bit even though clearing an absent bit changes nothing.
func ClearBit(mask AccessMask, c Capability) AccessMask {
	out := growFor(mask, c.Bit())
	out[c.Bit()/8] &^= 1 << (c.Bit() % 8)
	return out
}

// IsSet reports whether the capability's bit is set. Bytes beyond the end of
// the mask read as zero.
func IsSet(mask AccessMask, c Capability) bool {
	idx := c.Bit() / 8
	if idx >= len(mask) {
		return false
	}
	return mask[idx]&(1<<(c.Bit()%8)) != 0
}

// IsAccessAllowed reports whether mask grants capability c.
func IsAccessAllowed(mask AccessMask, c Capability) bool {
	return c.IsValid() && IsSet(mask, c)
}

// MaskFromCapabilities builds a mask granting exactly the given capabilities.
func MaskFromCapabilities(caps ...Capability) AccessMask {
	var mask AccessMask
	for _, c := range caps {
		mask = SetBit(mask, c)
	}
	return mask
}

// Capabilities decomposes the mask into capabilities, in declaration order.
// Capabilities sharing a bit are all reported when that bit is set.
func (m AccessMask) Capabilities() []Capability {
	var out []Capability
	for _, c := range AllCapabilities() {
		if IsSet(m, c) {
			out = append(out, c)
		}
	}
	return out
}

// IsValid reports whether every set bit belongs to a known capability.
// Run it on every mask received from outside the process.
func (m AccessMask) IsValid() bool {
	rest := m.clone()
	for _, c := range AllCapabilities() {
		idx := c.Bit() / 8
		if idx < len(rest) {
			rest[idx] &^= 1 << (c.Bit() % 8)
		}
	}
	for _, b := range rest {
		if b != 0 {
			return false
		}
	}
	return true
}

// BigInt returns the display form of the mask: bit i of the integer is bit i
// of the mask.
func (m AccessMask) BigInt() *big.Int {
	// big.Int.SetBytes is big-endian, the mask is little-endian by byte.
	be := make([]byte, len(m))
	for i, b := range m {
		be[len(m)-1-i] = b
	}
	return new(big.Int).SetBytes(be)
}

func (m AccessMask) String() string { return m.BigInt().String() }

// MaskFromBigInt converts the display form back to a mask. Negative values
// are rejected.
func MaskFromBigInt(v *big.Int) (AccessMask, error) {
	if v.Sign() < 0 {
		return nil, fmt.Errorf("access mask %s: %w", v, ErrValidation)
	}
	be := v.Bytes()
	mask := make(AccessMask, len(be))
	for i, b := range be {
		mask[len(be)-1-i] = b
	}
	return mask, nil
}

// ParseMask parses the decimal display form.
func ParseMask(s string) (AccessMask, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("access mask %q: %w", s, ErrValidation)
	}
	return MaskFromBigInt(v)
}

func (m AccessMask) clone() AccessMask {
	out := make(AccessMask, len(m))
	copy(out, m)
	return out
}

// growFor copies mask into a slice long enough to address bit, rounding up
// to whole bytes.
func growFor(mask AccessMask, bit int) AccessMask {
	size := max(len(mask), bit/8+1)
	out := make(AccessMask, size)
	copy(out, mask)
	return out
}
