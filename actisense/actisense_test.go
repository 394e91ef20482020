package actisense

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seabus/n2kbridge/common"
)

// frameN2K wraps an NGT binary N2K payload into a stuffed wire frame.
func frameN2K(t *testing.T, command byte, payload []byte) []byte {
	t.Helper()
	frame := []byte{DLE, STX, command, byte(len(payload))}
	crc := command + byte(len(payload))
	for _, c := range payload {
		if c == DLE {
			frame = append(frame, DLE)
		}
		frame = append(frame, c)
		crc += c
	}
	frame = append(frame, byte(256-int(crc)), DLE, ETX)
	return frame
}

func n2kPayload(prio uint8, pgn uint32, dst, src uint8, data []byte) []byte {
	payload := []byte{prio, byte(pgn), byte(pgn >> 8), byte(pgn >> 16), dst, src, 0, 0, 0, 0, byte(len(data))}
	return append(payload, data...)
}

func TestReadN2KMessage(t *testing.T) {
	data := []byte{0x01, 0x00, 0xff, 0x01, 0x00, 0x00, 0x00, 0x1e}
	stream := frameN2K(t, N2KMsgReceived, n2kPayload(3, 129025, 255, 1, data))

	dev := NewDevice(bytes.NewBuffer(stream), Config{Mode: ModeFile})
	msg, err := dev.ReadRawMessage(context.Background())
	require.NoError(t, err)

	assert.Equal(t, uint32(129025), msg.PGN)
	assert.Equal(t, uint8(3), msg.Prio)
	assert.Equal(t, uint8(1), msg.Src)
	assert.Equal(t, uint8(255), msg.Dst)
	assert.Equal(t, uint8(8), msg.Len)
	assert.Equal(t, data, msg.Data)
}

func TestReadN2KMessageWithStuffedDLE(t *testing.T) {
	data := []byte{DLE, DLE, 0x02, 0x00, 0xff, 0xff, 0xff, 0xff}
	stream := frameN2K(t, N2KMsgReceived, n2kPayload(2, 128267, 255, 36, data))

	dev := NewDevice(bytes.NewBuffer(stream), Config{Mode: ModeFile})
	msg, err := dev.ReadRawMessage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint32(128267), msg.PGN)
	assert.Equal(t, data, msg.Data)
}

func TestReadRejectsBadChecksum(t *testing.T) {
	stream := frameN2K(t, N2KMsgReceived, n2kPayload(3, 129025, 255, 1, []byte{1, 2, 3, 4, 5, 6, 7, 8}))
	// corrupt the priority byte without fixing the checksum
	stream[4] ^= 0x01

	dev := NewDevice(bytes.NewBuffer(stream), Config{Mode: ModeFile})
	_, err := dev.ReadRawMessage(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadDeviceMessageAsPseudoPGN(t *testing.T) {
	payload := append([]byte{0xf2}, bytes.Repeat([]byte{0x42}, 12)...)
	stream := frameN2K(t, NGTMsgReceived, payload)

	dev := NewDevice(bytes.NewBuffer(stream), Config{Mode: ModeFile, OutputDeviceMessages: true})
	msg, err := dev.ReadRawMessage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, common.ActisenseBEM+0xf2, msg.PGN)
	assert.Equal(t, uint8(12), msg.Len)

	// without the option the message is dropped
	dev = NewDevice(bytes.NewBuffer(frameN2K(t, NGTMsgReceived, payload)), Config{Mode: ModeFile})
	_, err = dev.ReadRawMessage(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadEBLFile(t *testing.T) {
	// timestamp header: FILETIME for 2022-09-10T12:10:16Z
	base := time.Date(2022, 9, 10, 12, 10, 16, 0, time.UTC)
	filetime := uint64(base.UnixMilli()+filetimeToUnixMs) * 10000
	header := []byte{ESC, SOH, eblTimestamp}
	for i := 0; i < 8; i++ {
		header = append(header, byte(filetime>>(8*i)))
	}
	header = append(header, ESC, LF)

	frame := []byte{
		ESC, SOH,
		0x07, 0x95,
		0x0e,
		0x28, 0x9a,
		0x00, 0x01, 0xf8, 0x09,
		0x3d, 0x0d, 0xb3, 0x22, 0x48, 0x32, 0x59, 0x0d,
		ESC, LF,
	}

	dev := NewDevice(bytes.NewBuffer(append(header, frame...)), Config{Mode: ModeEBL})
	msg, err := dev.ReadRawMessage(context.Background())
	require.NoError(t, err)

	assert.Equal(t, uint32(129025), msg.PGN)
	assert.Equal(t, uint8(2), msg.Prio)
	assert.Equal(t, uint8(0), msg.Src)
	assert.Equal(t, uint8(255), msg.Dst)
	assert.Equal(t, []byte{0x3d, 0x0d, 0xb3, 0x22, 0x48, 0x32, 0x59, 0x0d}, msg.Data)
	assert.True(t, msg.Timestamp.Equal(base.Add(0x9a28*100*time.Nanosecond)))
}

func TestInitializeWritesStartupSequence(t *testing.T) {
	var buf bytes.Buffer
	dev := NewDevice(&buf, Config{})
	require.NoError(t, dev.Initialize(context.Background()))

	// 0x11+0x02+0x00+cmd+len sum to 0xb7, so the checksum byte is 0x49
	assert.Equal(t,
		[]byte{DLE, STX, NGTMsgSend, 0x03, 0x11, 0x02, 0x00, 0x49, DLE, ETX},
		buf.Bytes())
}

func TestWriteRawMessage(t *testing.T) {
	var buf bytes.Buffer
	dev := NewDevice(&buf, Config{})

	msg := &common.RawMessage{
		Prio: 6,
		PGN:  59904,
		Dst:  255,
		Data: []byte{0x14, 0xf0, 0x01},
	}
	require.NoError(t, dev.WriteRawMessage(context.Background(), msg))

	out := buf.Bytes()
	require.GreaterOrEqual(t, len(out), 4)
	assert.Equal(t, []byte{DLE, STX, N2KMsgSend}, out[:3])
	assert.Equal(t, []byte{DLE, ETX}, out[len(out)-2:])

	// unstuffed frame bytes (no payload DLEs here) sum to zero mod 256
	var sum byte
	for _, c := range out[2 : len(out)-2] {
		sum += c
	}
	assert.Equal(t, byte(0), sum)

	// payload is prio, pgn LE, dst, len, data
	assert.Equal(t, []byte{6, 0x00, 0xea, 0x00, 255, 3, 0x14, 0xf0, 0x01}, out[4:len(out)-3])
}

func TestWriteRejectsPseudoPGN(t *testing.T) {
	var buf bytes.Buffer
	dev := NewDevice(&buf, Config{})
	err := dev.WriteRawMessage(context.Background(), &common.RawMessage{PGN: common.ActisenseBEM + 0x11})
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}
