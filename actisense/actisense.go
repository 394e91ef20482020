// Package actisense implements the binary framing used by Actisense NGT-1
// and W2K-1 gateways, including the EBL log file dialect.
package actisense

// Originally from https://github.com/canboat/canboat (Apache License, Version 2.0)
// (C) 2009-2023, Kees Verruijt, Harlingen, The Netherlands.

// This file is part of CANboat.

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.viam.com/rdk/logging"

	"github.com/seabus/n2kbridge/common"
)

const (
	// STX starts an Actisense binary message; always preceded by DLE.
	STX = 0x02
	// ETX ends an Actisense binary message; always preceded by DLE.
	ETX = 0x03
	// DLE is the escape byte on the wire. A literal DLE in the payload is
	// doubled (DLE DLE).
	DLE = 0x10
	// ESC is the escape byte of the EBL log file dialect; the role DLE
	// plays on the wire, ESC plays in the file.
	ESC = 0x1b
	// SOH starts an EBL header frame (ESC SOH ... ESC LF).
	SOH = 0x01
	// LF ends an EBL header frame.
	LF = 0x0a

	// N2KMsgReceived is a received NMEA 2000 message in NGT binary format.
	N2KMsgReceived = 0x93
	// N2KMsgSend is a sent NMEA 2000 message in NGT binary format.
	N2KMsgSend = 0x94
	// NGTMsgReceived is a received Actisense device (BEM) message.
	NGTMsgReceived = 0xa0
	// NGTMsgSend is a sent Actisense device (BEM) message.
	NGTMsgSend = 0xa1

	// eblVersion and eblTimestamp are EBL header frame commands. The
	// timestamp payload is a Windows FILETIME (100 ns units since
	// 1601-01-01 UTC).
	eblVersion   = 0x01
	eblTimestamp = 0x03

	// bst95Marker0/1 identify a CAN-Raw (BST-95) frame inside an EBL
	// header envelope, as logged by the W2K-1.
	bst95Marker0 = 0x07
	bst95Marker1 = 0x95

	// frameBufSize bounds a single unstuffed frame.
	frameBufSize = 500

	// filetimeToUnixMs converts FILETIME milliseconds to Unix
	// milliseconds (the number of ms between 1601-01-01 and 1970-01-01).
	filetimeToUnixMs = 11644473600000
)

// ngtStartupSeq is the "operating mode" BEM command that makes an NGT-1
// pass all received PGNs through without filtering.
var ngtStartupSeq = []byte{0x11, 0x02, 0x00}

// Mode selects the framing dialect of the byte stream.
type Mode int

const (
	// ModeWire is a live NGT-1/W2K-1 device stream (DLE escaped).
	ModeWire Mode = iota
	// ModeFile is a captured device stream read from a file. Capture
	// tools sometimes strip the escaping; a leading ESC switches the
	// framer into unescaped mode for the remainder of the file.
	ModeFile
	// ModeEBL is an Actisense EBL log file (ESC escaped, with ESC SOH
	// header frames carrying timestamps and BST-95 CAN frames).
	ModeEBL
)

// Config configures a Device.
type Config struct {
	Logger logging.Logger

	// Mode selects the framing dialect; ModeWire when zero.
	Mode Mode

	// OutputDeviceMessages makes BEM (0xA0) messages visible as
	// pseudo-PGNs at common.ActisenseBEM + command instead of being
	// dropped.
	OutputDeviceMessages bool

	// ReceiveDataTimeout bounds how long reads may produce no data
	// before ReadRawMessage gives up on an idle stream. Reads from the
	// underlying device are expected to time out on their own (serial
	// read timeout or read deadline) so that context cancellation is
	// noticed.
	ReceiveDataTimeout time.Duration
}

type frameState int

const (
	stateStart frameState = iota
	stateMessage
	stateHeader
	stateEscape
)

// Device frames and unframes Actisense binary messages over an
// io.ReadWriter (serial port, TCP connection or log file).
type Device struct {
	port io.ReadWriter
	conf Config

	timeNow func() time.Time

	state     frameState
	prevState frameState
	noEscape  bool
	frame     [frameBufSize]byte
	head      int

	// eblBase is the file time from the most recent EBL timestamp
	// header; BST-95 frame timestamps are offsets from it.
	eblBase    time.Time
	haveTime   bool
	pending    []*common.RawMessage
	lastViable time.Time
}

// NewDevice returns a Device over the given stream.
func NewDevice(port io.ReadWriter, conf Config) *Device {
	if conf.Logger == nil {
		conf.Logger = common.NewLogger(os.Stderr)
	}
	if conf.ReceiveDataTimeout == 0 {
		conf.ReceiveDataTimeout = 5 * time.Second
	}
	return &Device{
		port:    port,
		conf:    conf,
		timeNow: time.Now,
		state:   stateStart,
	}
}

// Initialize puts an NGT-1 into "receive all" operating mode. Without it
// the gateway stays silent. Not needed (but harmless) for log files.
func (d *Device) Initialize(ctx context.Context) error {
	return d.writeMessage(ctx, NGTMsgSend, ngtStartupSeq)
}

// ReadRawMessage blocks until a complete message has been framed or an
// error (including context cancellation) occurs.
func (d *Device) ReadRawMessage(ctx context.Context) (*common.RawMessage, error) {
	if len(d.pending) != 0 {
		msg := d.pending[0]
		d.pending = d.pending[1:]
		return msg, nil
	}

	buf := make([]byte, 128)
	if d.lastViable.IsZero() {
		d.lastViable = d.timeNow()
	}
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		n, err := d.port.Read(buf)
		if err != nil && !(errors.Is(err, os.ErrDeadlineExceeded) || errors.Is(err, io.EOF)) {
			return nil, err
		}

		now := d.timeNow()
		if n == 0 {
			if errors.Is(err, io.EOF) && now.Sub(d.lastViable) > d.conf.ReceiveDataTimeout {
				return nil, err
			}
			if errors.Is(err, io.EOF) && d.conf.Mode != ModeWire {
				// log files do not replenish
				return nil, err
			}
			continue
		}
		d.lastViable = now

		for i := 0; i < n; i++ {
			d.handleByte(buf[i])
		}
		if len(d.pending) != 0 {
			msg := d.pending[0]
			d.pending = d.pending[1:]
			return msg, nil
		}
	}
}

func (d *Device) isFile() bool {
	return d.conf.Mode != ModeWire
}

func (d *Device) handleByte(c byte) {
	switch d.state {
	case stateStart:
		if c == DLE || (c == ESC && d.conf.Mode == ModeEBL && !d.noEscape) {
			d.prevState = stateStart
			d.state = stateEscape
			return
		}
		if c == ESC && d.conf.Mode == ModeFile {
			// unescaped capture of a device stream
			d.noEscape = true
		}
	case stateMessage:
		if c == DLE || (d.isFile() && c == ESC && !d.noEscape) {
			d.prevState = stateMessage
			d.state = stateEscape
			return
		}
		d.appendByte(c)
	case stateHeader:
		if c == ESC {
			d.prevState = stateHeader
			d.state = stateEscape
			return
		}
		d.appendByte(c)
	case stateEscape:
		switch {
		case c == STX:
			d.head = 0
			d.state = stateMessage
		case c == ETX:
			d.messageReceived(d.frame[:d.head])
			d.head = 0
			d.state = stateStart
		case c == SOH && d.conf.Mode == ModeEBL:
			d.head = 0
			d.state = stateHeader
		case c == LF && d.conf.Mode == ModeEBL:
			d.headerReceived(d.frame[:d.head])
			d.head = 0
			d.state = stateStart
		case c == DLE || (d.isFile() && c == ESC) || d.noEscape:
			d.appendByte(c)
			d.state = d.prevState
		default:
			d.conf.Logger.Debugf("escape followed by unexpected char %02X, ignoring message", c)
			d.head = 0
			d.state = stateStart
		}
	}
}

func (d *Device) appendByte(c byte) {
	if d.head >= frameBufSize {
		d.conf.Logger.Debug("frame too long, discarding")
		d.head = 0
		d.state = stateStart
		return
	}
	d.frame[d.head] = c
	d.head++
}

// messageReceived handles a complete unstuffed DLE STX ... DLE ETX frame:
// command, length, payload and a checksum byte that makes the sum of the
// whole frame zero mod 256.
func (d *Device) messageReceived(msg []byte) {
	if len(msg) < 3 {
		d.conf.Logger.Debugf("ignoring short command len=%d", len(msg))
		return
	}
	var checksum byte
	for _, c := range msg {
		checksum += c
	}
	if checksum != 0 {
		d.conf.Logger.Error("ignoring message with invalid checksum")
		return
	}

	command := msg[0]
	payloadLen := int(msg[1])
	if payloadLen > len(msg)-2 {
		d.conf.Logger.Debugf("ignoring message with bad payload length %d", payloadLen)
		return
	}
	payload := msg[2 : 2+payloadLen]

	switch command {
	case N2KMsgReceived:
		d.n2kMessageReceived(payload)
	case NGTMsgReceived:
		d.ngtMessageReceived(payload)
	default:
		d.conf.Logger.Debugf("ignoring message with command %02X", command)
	}
}

// n2kMessageReceived unpacks the NGT binary payload of a bus message:
// prio (1), pgn (3 LE), dst (1), src (1), a device timestamp (4, unused),
// len (1), then len data bytes.
func (d *Device) n2kMessageReceived(msg []byte) {
	if len(msg) < 11 {
		d.conf.Logger.Error("ignoring N2K message - too short")
		return
	}
	dataLen := int(msg[10])
	if dataLen > common.FastPacketMaxSize {
		d.conf.Logger.Errorf("ignoring N2K message - too long (%d)", dataLen)
		return
	}
	if 11+dataLen > len(msg) {
		d.conf.Logger.Error("ignoring N2K message - truncated")
		return
	}

	data := make([]byte, dataLen)
	copy(data, msg[11:11+dataLen])
	d.pending = append(d.pending, &common.RawMessage{
		Timestamp: d.timeNow(),
		Prio:      msg[0],
		PGN:       uint32(msg[1]) | uint32(msg[2])<<8 | uint32(msg[3])<<16,
		Dst:       msg[4],
		Src:       msg[5],
		Len:       uint8(dataLen),
		Data:      data,
	})
}

// ngtMessageReceived synthesizes a pseudo-PGN for a BEM message so that
// device status decodes like any other PGN.
func (d *Device) ngtMessageReceived(msg []byte) {
	if !d.conf.OutputDeviceMessages {
		return
	}
	if len(msg) < 12 {
		d.conf.Logger.Debugf("ignoring short BEM msg len=%d", len(msg))
		return
	}
	data := make([]byte, len(msg)-1)
	copy(data, msg[1:])
	d.pending = append(d.pending, &common.RawMessage{
		Timestamp: d.timeNow(),
		PGN:       common.ActisenseBEM + uint32(msg[0]),
		Dst:       0,
		Src:       0,
		Prio:      0,
		Len:       uint8(len(data)),
		Data:      data,
	})
}

// headerReceived handles an EBL ESC SOH ... ESC LF frame. Version and
// timestamp headers update reader state; BST-95 frames carry CAN data.
func (d *Device) headerReceived(msg []byte) {
	if len(msg) == 0 {
		return
	}
	switch {
	case msg[0] == eblVersion:
		d.conf.Logger.Debugf("EBL version %x", msg[1:])
	case msg[0] == eblTimestamp:
		if len(msg) < 9 {
			d.conf.Logger.Debug("ignoring short EBL timestamp header")
			return
		}
		filetime := binary.LittleEndian.Uint64(msg[1:9])
		ms := int64(filetime/10000) - filetimeToUnixMs
		d.eblBase = time.UnixMilli(ms).UTC()
		d.haveTime = true
	case msg[0] == bst95Marker0 && len(msg) > 1 && msg[1] == bst95Marker1:
		d.bst95Received(msg[2:])
	default:
		d.conf.Logger.Debugf("ignoring unknown EBL header %02X", msg[0])
	}
}

// bst95Received unpacks a CAN-Raw frame: len (1), timestamp offset
// (2 LE, 100 ns units since the last timestamp header), CAN id (4 LE),
// then the CAN payload.
func (d *Device) bst95Received(raw []byte) {
	const startOfData = 7
	if len(raw) < startOfData+1 {
		d.conf.Logger.Debug("ignoring short BST-95 frame")
		return
	}
	if int(raw[0]) != len(raw)-1 {
		d.conf.Logger.Debugf("BST-95 length byte %d does not match frame length %d", raw[0], len(raw)-1)
		return
	}

	canID := binary.LittleEndian.Uint32(raw[3:7])
	prio, pgn, src, dst := common.GetISO11783BitsFromCanID(uint(canID))

	ts := d.timeNow()
	if d.haveTime {
		offset := binary.LittleEndian.Uint16(raw[1:3])
		ts = d.eblBase.Add(time.Duration(offset) * 100 * time.Nanosecond)
	}

	data := make([]byte, len(raw)-startOfData)
	copy(data, raw[startOfData:])
	d.pending = append(d.pending, &common.RawMessage{
		Timestamp: ts,
		Prio:      prio,
		PGN:       pgn,
		Src:       src,
		Dst:       dst,
		Len:       uint8(len(data)),
		Data:      data,
	})
}

// WriteRawMessage sends a message to the bus through the gateway. Data
// larger than a single frame is fragmented by the gateway itself, so up
// to common.FastPacketMaxSize bytes are accepted.
func (d *Device) WriteRawMessage(ctx context.Context, msg *common.RawMessage) error {
	if msg.PGN >= common.PseudoPGNStart {
		return fmt.Errorf("refusing to send pseudo PGN %d to the bus", msg.PGN)
	}
	if len(msg.Data) > common.FastPacketMaxSize {
		return fmt.Errorf("data (%d) cannot fit into max combined packet size %d", len(msg.Data), common.FastPacketMaxSize)
	}

	payload := make([]byte, 0, 6+len(msg.Data))
	payload = append(payload,
		msg.Prio,
		byte(msg.PGN),
		byte(msg.PGN>>8),
		byte(msg.PGN>>16),
		msg.Dst,
		byte(len(msg.Data)))
	payload = append(payload, msg.Data...)

	return d.writeMessage(ctx, N2KMsgSend, payload)
}

// writeMessage wraps a command and payload into a DLE STX ... DLE ETX
// frame, doubling payload DLE bytes and appending a checksum that makes
// the frame sum to zero mod 256.
func (d *Device) writeMessage(ctx context.Context, command byte, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(payload) > 255 {
		return fmt.Errorf("payload (%d) cannot fit into a single frame", len(payload))
	}

	frame := make([]byte, 0, len(payload)*2+8)
	frame = append(frame, DLE, STX, command, byte(len(payload)))
	crc := command + byte(len(payload))
	for _, c := range payload {
		if c == DLE {
			frame = append(frame, DLE)
		}
		frame = append(frame, c)
		crc += c
	}
	frame = append(frame, byte(256-int(crc)), DLE, ETX)

	if _, err := d.port.Write(frame); err != nil {
		return fmt.Errorf("unable to write command %02X: %w", command, err)
	}
	return nil
}

// Close closes the underlying stream when it supports closing.
func (d *Device) Close() error {
	if c, ok := d.port.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
