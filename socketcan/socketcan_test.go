package socketcan

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seabus/n2kbridge/common"
)

func TestSingleFrame(t *testing.T) {
	msg := &common.RawMessage{
		Prio: 2,
		PGN:  129025,
		Src:  36,
		Dst:  255,
		Data: []byte{0x3d, 0x0d, 0xb3, 0x22, 0x48, 0x32, 0x59, 0x0d},
	}
	frames, err := FramesFromRawMessage(msg, false)
	require.NoError(t, err)
	require.Len(t, frames, 1)

	// PDU2: PGN occupies bits 8-25, priority bits 26-28
	assert.Equal(t, uint32(2)<<26|uint32(129025)<<8|36, frames[0].ID)
	assert.Equal(t, msg.Data, frames[0].Data)
}

func TestPDU1PlacesDestinationInCanID(t *testing.T) {
	msg := &common.RawMessage{
		Prio: 6,
		PGN:  59904,
		Src:  1,
		Dst:  0x23,
		Data: []byte{0x14, 0xf0, 0x01},
	}
	frames, err := FramesFromRawMessage(msg, false)
	require.NoError(t, err)
	require.Len(t, frames, 1)

	// PDU1: the low PGN byte is the destination address
	assert.Equal(t, uint32(6)<<26|uint32(59904|0x23)<<8|1, frames[0].ID)
}

func TestFastPacketFragmentation(t *testing.T) {
	data := make([]byte, 20)
	for i := range data {
		data[i] = byte(i + 1)
	}
	msg := &common.RawMessage{Prio: 3, PGN: 129029, Src: 0, Dst: 255, Data: data}

	frames, err := FramesFromRawMessage(msg, true)
	require.NoError(t, err)
	require.Len(t, frames, 3)

	// frame 0: index, total size, six payload bytes
	assert.Equal(t, []byte{0, 20, 1, 2, 3, 4, 5, 6}, frames[0].Data)
	// frame 1: index, seven payload bytes
	assert.Equal(t, []byte{1, 7, 8, 9, 10, 11, 12, 13}, frames[1].Data)
	// frame 2: index, the remaining seven
	assert.Equal(t, []byte{2, 14, 15, 16, 17, 18, 19, 20}, frames[2].Data)

	for _, f := range frames {
		assert.Equal(t, frames[0].ID, f.ID)
	}
}

func TestShortFastPacketStillFragments(t *testing.T) {
	msg := &common.RawMessage{Prio: 7, PGN: 126996, Src: 5, Dst: 255, Data: []byte{1, 2, 3, 4}}
	frames, err := FramesFromRawMessage(msg, true)
	require.NoError(t, err)
	require.Len(t, frames, 1)
	assert.Equal(t, []byte{0, 4, 1, 2, 3, 4}, frames[0].Data)
}

func TestRejectsOversizedPGN(t *testing.T) {
	_, err := FramesFromRawMessage(&common.RawMessage{PGN: common.ActisenseBEM, Data: []byte{1}}, false)
	assert.Error(t, err)
}

func TestFrameMarshal(t *testing.T) {
	f := Frame{ID: 0x09f80100, Data: []byte{0x3d, 0x0d, 0xb3}}
	buf := f.Marshal()
	require.Len(t, buf, FrameSize)

	assert.Equal(t, f.ID|canIDEFFFlag, binary.LittleEndian.Uint32(buf[0:4]))
	assert.Equal(t, uint8(3), buf[4])
	assert.Equal(t, f.Data, buf[8:11])
	assert.True(t, bytes.Equal(buf[11:], make([]byte, 5)))
}
