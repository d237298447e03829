// Package generic provides the canonical portable bit scan.
package generic

// Portable finds the even highest-bit index by binary reduction: each step
// keeps the upper half of the surviving bit groups (16, 8, 4, then 2 bits
// wide) and accumulates the group offsets. It is branch-light, uses no
// tables and is the reference every other backend is checked against.
type Portable struct{}

// MSBEven implements registry.Scanner.
func (Portable) MSBEven(v uint32) int {
	msb := 0
	if v&0xFFFF0000 != 0 {
		v &= 0xFFFF0000
		msb += 16
	}
	if v&0xFF00FF00 != 0 {
		v &= 0xFF00FF00
		msb += 8
	}
	if v&0xF0F0F0F0 != 0 {
		v &= 0xF0F0F0F0
		msb += 4
	}
	if v&0xCCCCCCCC != 0 {
		msb += 2
	}
	return msb
}
