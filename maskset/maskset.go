// This file is part of Rendertarget.
//
// Rendertarget is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Rendertarget is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Rendertarget.  If not, see <https://www.gnu.org/licenses/>.

// Package maskset implements a type-safe bitmask over a closed, enumerated
// domain.
//
// The domain is any type with an underlying type of uint32 where each value
// occupies exactly one bit. For example:
//
//	type Buffer uint32
//
//	const (
//		Color Buffer = 1 << iota
//		Depth
//		Stencil
//	)
//
//	type BufferMask = maskset.Set[Buffer]
//
// Masks over different domains are different types and cannot be combined.
// The zero value of a Set is the empty mask.
package maskset

import (
	"fmt"
	"math/bits"
	"strings"
)

// Bit is the constraint for the enumerated domain of a Set.
type Bit interface {
	~uint32
}

// Set is an immutable bitmask of values of type E.
type Set[E Bit] struct {
	bits uint32
}

// Empty returns the mask with no values.
func Empty[E Bit]() Set[E] {
	return Set[E]{}
}

// New returns the mask containing each of the values.
func New[E Bit](vs ...E) Set[E] {
	var s Set[E]
	for _, v := range vs {
		s.bits |= uint32(v)
	}
	return s
}

// FromBits reinterprets a raw bit pattern as a mask. Bits that do not
// correspond to a value of E are retained.
func FromBits[E Bit](b uint32) Set[E] {
	return Set[E]{bits: b}
}

// Union returns a mask containing the values of both masks.
func (s Set[E]) Union(o Set[E]) Set[E] {
	return Set[E]{bits: s.bits | o.bits}
}

// Difference returns the mask with the values of o removed.
func (s Set[E]) Difference(o Set[E]) Set[E] {
	return Set[E]{bits: s.bits &^ o.bits}
}

// Intersection returns a mask of the values common to both masks.
func (s Set[E]) Intersection(o Set[E]) Set[E] {
	return Set[E]{bits: s.bits & o.bits}
}

// With returns the mask with the additional values.
func (s Set[E]) With(vs ...E) Set[E] {
	return s.Union(New(vs...))
}

// Without returns the mask with the values removed.
func (s Set[E]) Without(vs ...E) Set[E] {
	return s.Difference(New(vs...))
}

// Contains returns true if the value is in the mask. A value of zero is never
// contained.
func (s Set[E]) Contains(v E) bool {
	return v != 0 && s.bits&uint32(v) == uint32(v)
}

// IsEmpty returns true if no values are in the mask.
func (s Set[E]) IsEmpty() bool {
	return s.bits == 0
}

// Equal returns true if both masks contain the same values.
func (s Set[E]) Equal(o Set[E]) bool {
	return s.bits == o.bits
}

// Bits returns the raw bit pattern.
func (s Set[E]) Bits() uint32 {
	return s.bits
}

// Len returns the number of values in the mask.
func (s Set[E]) Len() int {
	return bits.OnesCount32(s.bits)
}

// Values returns the members of the domain that are in the mask, in the
// order they are given.
func (s Set[E]) Values(domain ...E) []E {
	var vs []E
	for _, v := range domain {
		if s.Contains(v) {
			vs = append(vs, v)
		}
	}
	return vs
}

// String returns the members of the mask separated by the pipe symbol. Values
// are formatted with the %v verb so a String() method on E will be used.
func (s Set[E]) String() string {
	if s.bits == 0 {
		return "none"
	}
	var p []string
	for b := s.bits; b != 0; b &= b - 1 {
		p = append(p, fmt.Sprintf("%v", E(b&-b)))
	}
	return strings.Join(p, "|")
}
