// Package ikonvert implements the line protocol of the Digital Yacht
// iKonvert NMEA 2000 gateway, including its init handshake and the
// synthesis of its status lines into a pseudo-PGN.
package ikonvert

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
	"bufio"
	"context"
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"go.viam.com/rdk/logging"

	"github.com/seabus/n2kbridge/common"
)

const (
	// asciiPrefix starts command and reply lines; binaryPrefix starts
	// PGN-bearing lines with Base64 (or hex) payloads.
	asciiPrefix  = "$PDGY,"
	binaryPrefix = "!PDGY,"

	txOffline   = asciiPrefix + "N2NET_OFFLINE"
	txReset     = asciiPrefix + "N2NET_RESET"
	txRxList    = asciiPrefix + "RX_LIST"
	txTxList    = asciiPrefix + "TX_LIST"
	txShowLists = asciiPrefix + "SHOWLISTS"
	txOnline    = asciiPrefix + "N2NET_INIT,%s"
	txLimitOff  = asciiPrefix + "LIMIT_OFF"

	rxText     = "TEXT,"
	rxAck      = "ACK,"
	rxNak      = "NAK,"
	rxShowRx   = "SHOW_RX_LIST,"
	rxShowTx   = "SHOW_TX_LIST,"
	statusZero = "000000"

	// sendAllInitMessages is the top of the init countdown. Commands are
	// sent at even states, replies awaited at odd states.
	sendAllInitMessages = 14

	// statusDataLen is the payload size of the synthesized network
	// status pseudo-PGN.
	statusDataLen = 15

	// maxSequentialStatus is how many consecutive keep-alive lines we
	// tolerate before assuming the gateway dropped off the bus and
	// re-running the init handshake.
	maxSequentialStatus = 10
)

// DefaultBaudRate is what the iKonvert ships with.
const DefaultBaudRate = 230400

// Config configures a Device.
type Config struct {
	Logger logging.Logger

	// HexMode negotiates hex payloads instead of Base64.
	HexMode bool

	// Verbose requests the gateway's RX/TX list dump during init and
	// logs protocol chatter.
	Verbose bool

	// RateLimitOff disables the gateway's transmit rate limiting.
	RateLimitOff bool

	// RxList and TxList are comma-separated PGN filter lists sent to the
	// gateway during init. Setting either forces a device reset first.
	RxList string
	TxList string

	// IsFile skips the init handshake; log files and TCP streams do not
	// speak it.
	IsFile bool
}

// Device frames and unframes iKonvert protocol lines over an
// io.ReadWriter (serial port, TCP connection or log file).
type Device struct {
	port io.ReadWriter
	conf Config

	timeNow func() time.Time
	reader  *bufio.Reader

	sendInitState            int
	sequentialStatusMessages int
}

// NewDevice returns a Device over the given stream.
func NewDevice(port io.ReadWriter, conf Config) *Device {
	if conf.Logger == nil {
		conf.Logger = common.NewLogger(os.Stderr)
	}
	return &Device{
		port:    port,
		conf:    conf,
		timeNow: time.Now,
		reader:  bufio.NewReader(port),
	}
}

// Initialize starts the init handshake that takes the gateway offline,
// applies the PGN filter lists and brings it back online. A no-op for
// log files.
func (d *Device) Initialize(ctx context.Context) error {
	if d.conf.IsFile {
		d.sendInitState = 0
		return nil
	}
	d.sendInitState = sendAllInitMessages
	return d.sendNextInitCommand(ctx)
}

// Initializing reports whether the init handshake is still in progress.
// Received PGNs are dropped and writes should be held while it is.
func (d *Device) Initializing() bool {
	return d.sendInitState > 0
}

// sendNextInitCommand advances the init countdown. Commands go out at
// even states; odd states wait for the matching reply which handleAscii
// acknowledges by decrementing.
func (d *Device) sendNextInitCommand(ctx context.Context) error {
	if d.sendInitState <= 0 {
		return nil
	}
	var line string
	switch d.sendInitState {
	case 14:
		d.conf.Logger.Info("iKonvert initialization start")
		line = txOffline
	case 12:
		if d.conf.RxList == "" && d.conf.TxList == "" {
			d.sendInitState = 10
			return d.sendNextInitCommand(ctx)
		}
		line = txReset
	case 10:
		if d.conf.RxList == "" {
			d.sendInitState = 8
			return d.sendNextInitCommand(ctx)
		}
		d.conf.Logger.Infof("iKonvert send RX list %s", d.conf.RxList)
		line = txRxList + "," + d.conf.RxList
	case 8:
		if d.conf.TxList == "" {
			d.sendInitState = 6
			return d.sendNextInitCommand(ctx)
		}
		d.conf.Logger.Infof("iKonvert send TX list %s", d.conf.TxList)
		line = txTxList + "," + d.conf.TxList
	case 6:
		if !d.conf.Verbose {
			d.sendInitState = 4
			return d.sendNextInitCommand(ctx)
		}
		line = txShowLists
	case 4:
		mode := "ALL"
		if d.conf.RxList != "" {
			mode = "NORMAL"
		}
		line = fmt.Sprintf(txOnline, mode)
	case 2:
		d.sendInitState = 0
		if d.conf.RateLimitOff {
			// no reply comes for this one
			return d.writeLine(ctx, txLimitOff)
		}
		return nil
	default:
		d.conf.Logger.Debugf("waiting for ack, state %d", d.sendInitState)
		return nil
	}
	if err := d.writeLine(ctx, line); err != nil {
		return err
	}
	d.sendInitState--
	return nil
}

// ReadRawMessage blocks until a PGN-bearing line or a synthesized status
// message has been read, advancing the init handshake on the way.
func (d *Device) ReadRawMessage(ctx context.Context) (*common.RawMessage, error) {
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		line, err := d.reader.ReadString('\n')
		if err != nil {
			return nil, err
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			continue
		}
		if line[0] != '$' && line[0] != '!' {
			d.conf.Logger.Debugf("junk record [%s]", line)
			continue
		}
		d.conf.Logger.Debugf("received [%s]", line)

		if msg, handled := d.handleAscii(ctx, line); handled {
			if err := d.sendNextInitCommand(ctx); err != nil {
				return nil, err
			}
			if msg != nil {
				return msg, nil
			}
			continue
		}

		if msg, ok := d.parsePGNLine(line); ok {
			d.sequentialStatusMessages = 0
			if d.sendInitState > 0 {
				// bus data while still initializing is dropped
				continue
			}
			return msg, nil
		}

		d.conf.Logger.Errorf("ignoring unknown or invalid message '%s'", line)
	}
}

// handleAscii processes a $PDGY control line. It returns a non-nil
// message for status lines that synthesize a pseudo-PGN, and whether the
// line was recognized at all.
func (d *Device) handleAscii(ctx context.Context, line string) (*common.RawMessage, bool) {
	rest, ok := strings.CutPrefix(line, asciiPrefix)
	if !ok {
		return nil, false
	}

	if text, ok := strings.CutPrefix(rest, rxText); ok {
		d.conf.Logger.Infof("connected to %s", text)
		if d.sendInitState == 13 {
			d.sendInitState--
		}
		return nil, true
	}
	if d.sendInitState == 13 {
		// something other than the banner arrived while waiting for it;
		// back up so the offline command is sent again
		d.sendInitState++
		return nil, true
	}

	if list, ok := strings.CutPrefix(rest, rxShowRx); ok {
		if d.conf.Verbose {
			d.conf.Logger.Infof("iKonvert will receive PGNs %s", list)
		}
		return nil, true
	}
	if list, ok := strings.CutPrefix(rest, rxShowTx); ok {
		if d.conf.Verbose {
			d.conf.Logger.Infof("iKonvert will transmit PGNs %s", list)
		}
		if d.sendInitState == 5 {
			d.sendInitState--
		}
		return nil, true
	}
	if ack, ok := strings.CutPrefix(rest, rxAck); ok {
		if d.conf.Verbose {
			d.conf.Logger.Infof("iKonvert acknowledge of %s", ack)
		}
		if d.sendInitState > 0 && d.sendInitState%2 == 1 {
			d.sendInitState--
		}
		return nil, true
	}
	if nak, ok := strings.CutPrefix(rest, rxNak); ok {
		d.conf.Logger.Infof("iKonvert NAK %s", nak)
		return nil, true
	}

	if strings.HasPrefix(rest, statusZero+",") {
		return d.handleStatus(ctx, rest[len(statusZero)+1:])
	}

	d.conf.Logger.Errorf("unknown iKonvert message: %s", rest)
	if d.sendInitState > 0 {
		d.reinitialize(ctx)
	}
	return nil, false
}

// handleStatus turns a `$PDGY,000000,...` network status line into a
// pseudo-PGN so that downstream consumers see adapter health as a normal
// message. Empty status lines are keep-alives; too many in a row without
// bus traffic mean the gateway needs to be re-initialized.
func (d *Device) handleStatus(ctx context.Context, fields string) (*common.RawMessage, bool) {
	if fields == ",,,,,," || fields == ",,,,," {
		d.conf.Logger.Debug("iKonvert keep-alive seen")
		d.sequentialStatusMessages++
		if d.sequentialStatusMessages > maxSequentialStatus {
			d.reinitialize(ctx)
		}
		return nil, true
	}

	data := make([]byte, statusDataLen)
	for i := range data {
		data[i] = 0xff
	}

	parts := strings.Split(fields, ",")
	intAt := func(idx int) (int64, bool) {
		if idx >= len(parts) || parts[idx] == "" {
			return 0, false
		}
		v, err := strconv.ParseInt(parts[idx], 10, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}

	if load, ok := intAt(0); ok {
		data[0] = uint8(load)
	}
	if errCount, ok := intAt(1); ok {
		binary.LittleEndian.PutUint32(data[1:5], uint32(errCount))
	}
	if count, ok := intAt(2); ok && count != 0 {
		data[5] = uint8(count)
	}
	if uptime, ok := intAt(3); ok && uptime != 0 {
		binary.LittleEndian.PutUint32(data[6:10], uint32(uptime))
	}
	if addr, ok := intAt(4); ok && addr != 0 {
		data[10] = uint8(addr)
	}
	if rejected, ok := intAt(5); ok && rejected != 0 {
		binary.LittleEndian.PutUint32(data[11:15], uint32(rejected))
	}

	return &common.RawMessage{
		Timestamp: d.timeNow(),
		PGN:       common.IKonvertBEM,
		Prio:      7,
		Src:       0,
		Dst:       255,
		Len:       statusDataLen,
		Data:      data,
	}, true
}

// parsePGNLine parses a `!PDGY,pgn,prio,src,dst,secs.millis,payload`
// record. The gateway's own timestamp has been seen to drift badly, so
// the local clock is used instead.
func (d *Device) parsePGNLine(line string) (*common.RawMessage, bool) {
	rest, ok := strings.CutPrefix(line, binaryPrefix)
	if !ok {
		return nil, false
	}
	parts := strings.SplitN(rest, ",", 6)
	if len(parts) != 6 {
		return nil, false
	}

	pgn, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return nil, false
	}
	prio, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil {
		return nil, false
	}
	src, err := strconv.ParseUint(parts[2], 10, 8)
	if err != nil {
		return nil, false
	}
	dst, err := strconv.ParseUint(parts[3], 10, 8)
	if err != nil {
		return nil, false
	}
	if !strings.Contains(parts[4], ".") {
		return nil, false
	}

	var data []byte
	if d.conf.HexMode {
		data, err = hex.DecodeString(parts[5])
	} else {
		data, err = base64.StdEncoding.DecodeString(parts[5])
	}
	if err != nil {
		return nil, false
	}
	if len(data) > common.FastPacketMaxSize {
		data = data[:common.FastPacketMaxSize]
	}

	return &common.RawMessage{
		Timestamp: d.timeNow(),
		Prio:      uint8(prio),
		PGN:       uint32(pgn),
		Src:       uint8(src),
		Dst:       uint8(dst),
		Len:       uint8(len(data)),
		Data:      data,
	}, true
}

// WriteRawMessage sends a message to the bus as a `!PDGY,pgn,dst,payload`
// record. The gateway handles fast-packet fragmentation itself.
func (d *Device) WriteRawMessage(ctx context.Context, msg *common.RawMessage) error {
	if msg.PGN >= common.PseudoPGNStart {
		return fmt.Errorf("refusing to send pseudo PGN %d to the bus", msg.PGN)
	}
	if len(msg.Data) > common.FastPacketMaxSize {
		return fmt.Errorf("data (%d) cannot fit into max combined packet size %d", len(msg.Data), common.FastPacketMaxSize)
	}

	var payload string
	if d.conf.HexMode {
		payload = hex.EncodeToString(msg.Data)
	} else {
		payload = base64.StdEncoding.EncodeToString(msg.Data)
	}
	return d.writeLine(ctx, fmt.Sprintf("%s%d,%d,%s", binaryPrefix, msg.PGN, msg.Dst, payload))
}

// WriteCommand passes a raw $PDGY control line through to the gateway.
func (d *Device) WriteCommand(ctx context.Context, line string) error {
	line = strings.TrimRight(line, "\r\n")
	if !strings.HasPrefix(line, asciiPrefix) {
		return fmt.Errorf("not an iKonvert command: %s", line)
	}
	return d.writeLine(ctx, line)
}

// reinitialize restarts the handshake from the top. Write errors here are
// logged rather than returned; the next read will surface a broken port.
func (d *Device) reinitialize(ctx context.Context) {
	d.sequentialStatusMessages = 0
	if err := d.Initialize(ctx); err != nil {
		d.conf.Logger.Errorw("failed to re-initialize device", "error", err)
	}
}

func (d *Device) writeLine(ctx context.Context, line string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d.conf.Verbose {
		d.conf.Logger.Infof("sent [%s]", line)
	}
	if _, err := d.port.Write([]byte(line + "\r\n")); err != nil {
		return fmt.Errorf("unable to write '%s': %w", line, err)
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
