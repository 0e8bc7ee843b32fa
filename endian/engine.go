// Package endian provides the byte order used to store fixed-width cells in raw buffers.
//
// The storage buffer keeps every cell as 1, 2, 4 or 8 bytes inside a single []byte.
// Reading and writing those cells goes through an EndianEngine instead of pointer
// casts, so the same code is correct for every element width and on every host.
//
// # Basic Usage
//
// Buffers use the host byte order, which makes cell access a plain load/store:
//
//	engine := endian.Native()
//	engine.PutUint32(buf[i*4:], 7)
//	v := engine.Uint32(buf[i*4:])
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

var native = detect()

func detect() EndianEngine {
	// 0x0100 stores 0x01 first on a big-endian host.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// CheckEndianness returns the host byte order.
func CheckEndianness() binary.ByteOrder {
	return native
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return native == binary.LittleEndian
}

// Native returns the engine matching the host byte order.
func Native() EndianEngine {
	return native
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
