// Package common holds the small set of binary I/O and arithmetic helpers
// shared by the nnue and nnue/layers packages.
package common

import (
	"encoding/binary"
	"io"
)

// MaxSimdWidth is the maximum SIMD register width, in bytes, that the
// portable scalar core pads dense-layer inputs for.
const MaxSimdWidth = 32

// CeilToMultiple rounds n up to the nearest multiple of base.
func CeilToMultiple[T ~int | ~uint | ~int32 | ~uint32](n, base T) T {
	return (n + base - 1) / base * base
}

// ReadLittleEndian reads one fixed-size value from r in little-endian order.
func ReadLittleEndian[T int8 | uint8 | int16 | uint16 | int32 | uint32](r io.Reader) (T, error) {
	var v T
	err := binary.Read(r, binary.LittleEndian, &v)
	return v, err
}

// ReadLittleEndianSlice fills out with values read from r in little-endian order.
func ReadLittleEndianSlice[T int8 | uint8 | int16 | uint16 | int32 | uint32](r io.Reader, out []T) error {
	return binary.Read(r, binary.LittleEndian, out)
}

// WriteLittleEndian writes one fixed-size value to w in little-endian order.
func WriteLittleEndian[T int8 | uint8 | int16 | uint16 | int32 | uint32](w io.Writer, v T) error {
	return binary.Write(w, binary.LittleEndian, v)
}

// WriteLittleEndianSlice writes values to w in little-endian order.
func WriteLittleEndianSlice[T int8 | uint8 | int16 | uint16 | int32 | uint32](w io.Writer, values []T) error {
	return binary.Write(w, binary.LittleEndian, values)
}
