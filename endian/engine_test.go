package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	require := require.New(t)

	var testValue uint16 = 0x0102
	testBytes := (*[2]byte)(unsafe.Pointer(&testValue))

	switch testBytes[0] {
	case 0x01:
		require.Equal(binary.BigEndian, CheckEndianness())
		require.False(IsNativeLittleEndian())
	case 0x02:
		require.Equal(binary.LittleEndian, CheckEndianness())
		require.True(IsNativeLittleEndian())
	default:
		require.Failf("unexpected byte value", "got: %v", testBytes[0])
	}
}

func TestNative(t *testing.T) {
	engine := Native()
	require.Equal(t, CheckEndianness(), engine)

	// A value written through the native engine must read back through a pointer cast.
	buf := make([]byte, 8)
	engine.PutUint32(buf, 0xdeadbeef)
	require.Equal(t, uint32(0xdeadbeef), *(*uint32)(unsafe.Pointer(&buf[0])))

	engine.PutUint16(buf[4:], 0x1234)
	require.Equal(t, uint16(0x1234), *(*uint16)(unsafe.Pointer(&buf[4])))
}

func TestEngines(t *testing.T) {
	t.Run("little endian layout", func(t *testing.T) {
		buf := GetLittleEndianEngine().AppendUint16(nil, 0x0102)
		require.Equal(t, []byte{0x02, 0x01}, buf)
	})

	t.Run("big endian layout", func(t *testing.T) {
		buf := GetBigEndianEngine().AppendUint16(nil, 0x0102)
		require.Equal(t, []byte{0x01, 0x02}, buf)
	})

	t.Run("round trip at every width", func(t *testing.T) {
		for _, engine := range []EndianEngine{GetLittleEndianEngine(), GetBigEndianEngine(), Native()} {
			buf := make([]byte, 8)
			engine.PutUint64(buf, 0x0102030405060708)
			require.Equal(t, uint64(0x0102030405060708), engine.Uint64(buf))
			engine.PutUint32(buf, 0x01020304)
			require.Equal(t, uint32(0x01020304), engine.Uint32(buf))
			engine.PutUint16(buf, 0x0102)
			require.Equal(t, uint16(0x0102), engine.Uint16(buf))
		}
	})
}
