package ikonvert

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seabus/n2kbridge/common"
)

// stream is a scripted device: reads come from the script, writes are
// recorded.
type stream struct {
	in  *bytes.Buffer
	out bytes.Buffer
}

func newStream(lines ...string) *stream {
	var in bytes.Buffer
	for _, l := range lines {
		in.WriteString(l + "\r\n")
	}
	return &stream{in: &in}
}

func (s *stream) Read(p []byte) (int, error)  { return s.in.Read(p) }
func (s *stream) Write(p []byte) (int, error) { return s.out.Write(p) }

func (s *stream) sentLines() []string {
	sent := strings.Split(strings.TrimRight(s.out.String(), "\r\n"), "\r\n")
	if len(sent) == 1 && sent[0] == "" {
		return nil
	}
	return sent
}

func TestReadPGNLine(t *testing.T) {
	data := []byte{0x00, 0x2f, 0xe7, 0x95, 0x3d, 0x00, 0x73, 0xd6}
	line := fmt.Sprintf("!PDGY,129029,3,0,255,479.106,%s", base64.StdEncoding.EncodeToString(data))

	dev := NewDevice(newStream(line), Config{IsFile: true})
	require.NoError(t, dev.Initialize(context.Background()))

	msg, err := dev.ReadRawMessage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint32(129029), msg.PGN)
	assert.Equal(t, uint8(3), msg.Prio)
	assert.Equal(t, uint8(0), msg.Src)
	assert.Equal(t, uint8(255), msg.Dst)
	assert.Equal(t, data, msg.Data)
}

func TestReadPGNLineHexMode(t *testing.T) {
	line := "!PDGY,129025,2,36,255,479.106,3d0db3224832590d"

	dev := NewDevice(newStream(line), Config{IsFile: true, HexMode: true})
	msg, err := dev.ReadRawMessage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint32(129025), msg.PGN)
	assert.Equal(t, []byte{0x3d, 0x0d, 0xb3, 0x22, 0x48, 0x32, 0x59, 0x0d}, msg.Data)
}

func TestStatusLineBecomesPseudoPGN(t *testing.T) {
	dev := NewDevice(newStream("$PDGY,000000,12,0,14,86400,3,0"), Config{IsFile: true})
	msg, err := dev.ReadRawMessage(context.Background())
	require.NoError(t, err)

	assert.Equal(t, uint32(common.IKonvertBEM), msg.PGN)
	assert.Equal(t, uint8(7), msg.Prio)
	assert.Equal(t, uint8(0), msg.Src)
	assert.Equal(t, uint8(255), msg.Dst)
	assert.Equal(t, uint8(15), msg.Len)

	assert.Equal(t, uint8(12), msg.Data[0])
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(msg.Data[1:5]))
	assert.Equal(t, uint8(14), msg.Data[5])
	assert.Equal(t, uint32(86400), binary.LittleEndian.Uint32(msg.Data[6:10]))
	assert.Equal(t, uint8(3), msg.Data[10])
	// a zero rejected count is left unset
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xff}, msg.Data[11:15])
}

func TestInitHandshake(t *testing.T) {
	s := newStream(
		"$PDGY,TEXT,Digital Yacht iKonvert",
		"$PDGY,ACK,N2NET_OFFLINE",
		"$PDGY,ACK,N2NET_INIT,ALL",
		"!PDGY,129025,2,36,255,479.106,"+base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{1}, 8)),
	)
	dev := NewDevice(s, Config{})
	require.NoError(t, dev.Initialize(context.Background()))
	assert.True(t, dev.Initializing())

	// offline was sent immediately, the rest follows the acks
	assert.Equal(t, []string{"$PDGY,N2NET_OFFLINE"}, s.sentLines())

	msg, err := dev.ReadRawMessage(context.Background())
	require.NoError(t, err)
	assert.False(t, dev.Initializing())
	assert.Equal(t, uint32(129025), msg.PGN)

	// without filter lists the reset/rx/tx/showlists states are skipped
	assert.Equal(t, []string{
		"$PDGY,N2NET_OFFLINE",
		"$PDGY,N2NET_INIT,ALL",
	}, s.sentLines())
}

func TestInitHandshakeWithListsAndRateLimit(t *testing.T) {
	s := newStream(
		"$PDGY,TEXT,Digital Yacht iKonvert",
		"$PDGY,ACK,N2NET_OFFLINE",
		"$PDGY,ACK,N2NET_RESET",
		"$PDGY,ACK,RX_LIST",
		"$PDGY,ACK,TX_LIST",
		"$PDGY,ACK,N2NET_INIT,NORMAL",
	)
	dev := NewDevice(s, Config{
		RxList:       "129025,129029",
		TxList:       "59904",
		RateLimitOff: true,
	})
	require.NoError(t, dev.Initialize(context.Background()))

	_, err := dev.ReadRawMessage(context.Background())
	assert.ErrorIs(t, err, io.EOF)
	assert.False(t, dev.Initializing())

	assert.Equal(t, []string{
		"$PDGY,N2NET_OFFLINE",
		"$PDGY,N2NET_RESET",
		"$PDGY,RX_LIST,129025,129029",
		"$PDGY,TX_LIST,59904",
		"$PDGY,N2NET_INIT,NORMAL",
		"$PDGY,LIMIT_OFF",
	}, s.sentLines())
}

func TestPGNsDroppedDuringInit(t *testing.T) {
	s := newStream(
		"$PDGY,TEXT,Digital Yacht iKonvert",
		"!PDGY,129025,2,36,255,479.106,"+base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{1}, 8)),
	)
	dev := NewDevice(s, Config{})
	require.NoError(t, dev.Initialize(context.Background()))

	// the PGN arrives mid-handshake and is dropped
	_, err := dev.ReadRawMessage(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}

func TestKeepAliveStormTriggersReinit(t *testing.T) {
	lines := make([]string, 0, 12)
	for i := 0; i < 11; i++ {
		lines = append(lines, "$PDGY,000000,,,,,,")
	}
	s := newStream(lines...)
	dev := NewDevice(s, Config{})
	// file mode off but nothing to send yet
	dev.sendInitState = 0

	_, err := dev.ReadRawMessage(context.Background())
	assert.ErrorIs(t, err, io.EOF)

	// the 11th keep-alive restarted the handshake
	assert.Equal(t, []string{"$PDGY,N2NET_OFFLINE"}, s.sentLines())
	assert.True(t, dev.Initializing())
}

func TestWriteRawMessage(t *testing.T) {
	s := newStream()
	dev := NewDevice(s, Config{IsFile: true})

	data := []byte{0x14, 0xf0, 0x01}
	msg := &common.RawMessage{PGN: 59904, Dst: 255, Data: data}
	require.NoError(t, dev.WriteRawMessage(context.Background(), msg))

	want := fmt.Sprintf("!PDGY,59904,255,%s", base64.StdEncoding.EncodeToString(data))
	assert.Equal(t, []string{want}, s.sentLines())
}

func TestWriteRejectsPseudoPGN(t *testing.T) {
	s := newStream()
	dev := NewDevice(s, Config{IsFile: true})
	err := dev.WriteRawMessage(context.Background(), &common.RawMessage{PGN: common.IKonvertBEM})
	assert.Error(t, err)
	assert.Empty(t, s.sentLines())
}
