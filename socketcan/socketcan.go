// Package socketcan sends and receives NMEA 2000 frames over a Linux
// SocketCAN interface (e.g. can0).
package socketcan

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
	"encoding/binary"
	"errors"
	"fmt"
	"net"
	"syscall"
	"time"

	"golang.org/x/sys/unix"

	"github.com/seabus/n2kbridge/common"
)

const (
	canRaw = 1

	// canIDERRFlag marks an error message frame (bit 29).
	canIDERRFlag = uint32(1 << 29)
	// canIDRTRFlag marks a remote transmission request (bit 30).
	canIDRTRFlag = uint32(1 << 30)
	// canIDEFFFlag marks the extended 29-bit frame format (bit 31);
	// NMEA 2000 always uses extended IDs.
	canIDEFFFlag = uint32(1 << 31)

	// FrameSize is the size of the classic struct can_frame wire layout:
	// CAN id (4, host order), dlc (1), padding (3), data (8).
	FrameSize = 16

	// maxPGN bounds the 18 bits a PGN may occupy in the CAN id; anything
	// larger would overwrite the priority bits.
	maxPGN = 1 << 18
)

// Frame is a single classic CAN frame.
type Frame struct {
	// ID is the CAN id without the ERR/RTR/EFF flag bits.
	ID   uint32
	Data []byte
}

// Marshal packs the frame into the struct can_frame layout with the EFF
// flag set.
func (f *Frame) Marshal() []byte {
	buf := make([]byte, FrameSize)
	binary.LittleEndian.PutUint32(buf[0:4], f.ID|canIDEFFFlag)
	buf[4] = uint8(len(f.Data))
	copy(buf[8:], f.Data)
	return buf
}

// FramesFromRawMessage converts a message into the CAN frames that carry
// it on the bus. Payloads over 8 bytes, and any PGN known to use
// fast-packet transport, are fragmented: frame 0 carries the frame index,
// the total size and six payload bytes, every further frame the index and
// up to seven payload bytes.
func FramesFromRawMessage(msg *common.RawMessage, isFastPacket bool) ([]Frame, error) {
	if msg.PGN >= maxPGN {
		return nil, fmt.Errorf("invalid PGN, too big (0x%x)", msg.PGN)
	}
	if len(msg.Data) > common.FastPacketMaxSize {
		return nil, fmt.Errorf("data (%d) cannot fit into max combined packet size %d", len(msg.Data), common.FastPacketMaxSize)
	}

	canID := common.GetCanIDFromISO11783Bits(msg.Prio, msg.PGN, msg.Src, msg.Dst)

	if !isFastPacket && len(msg.Data) <= 8 {
		data := make([]byte, len(msg.Data))
		copy(data, msg.Data)
		return []Frame{{ID: canID, Data: data}}, nil
	}

	var frames []Frame
	remaining := msg.Data
	for index := 0; len(remaining) > 0; index++ {
		var data []byte
		if index == 0 {
			span := common.Min(len(remaining), common.FastPacketBucket0Size)
			data = make([]byte, 2+span)
			data[0] = byte(index)
			data[1] = byte(len(msg.Data))
			copy(data[2:], remaining[:span])
			remaining = remaining[span:]
		} else {
			span := common.Min(len(remaining), common.FastPacketBucketNSize)
			data = make([]byte, 1+span)
			data[0] = byte(index)
			copy(data[1:], remaining[:span])
			remaining = remaining[span:]
		}
		frames = append(frames, Frame{ID: canID, Data: data})
	}
	return frames, nil
}

// Connection is a bound AF_CAN raw socket.
type Connection struct {
	socketFD int
	timeNow  func() time.Time
}

// NewConnection opens a raw CAN socket bound to the named interface.
func NewConnection(ifName string) (*Connection, error) {
	ifi, err := net.InterfaceByName(ifName)
	if err != nil {
		return nil, fmt.Errorf("bad interface name: %w", err)
	}

	fd, err := unix.Socket(unix.AF_CAN, unix.SOCK_RAW, canRaw)
	if err != nil {
		return nil, fmt.Errorf("could not create CAN socket: %w", err)
	}

	addr := &unix.SockaddrCAN{Ifindex: ifi.Index}
	if err := unix.Bind(fd, addr); err != nil {
		return nil, fmt.Errorf("could not bind CAN socket: %w", err)
	}

	return &Connection{
		socketFD: fd,
		timeNow:  time.Now,
	}, nil
}

// ErrReadTimeout and ErrWriteTimeout are returned when a socket timeout
// set with SetReadTimeout/SetSendTimeout elapses; callers may retry.
var (
	ErrReadTimeout  = errors.New("read timeout")
	ErrWriteTimeout = errors.New("write timeout")
)

// isContinuableSocketErr reports errors a caller should retry:
// EWOULDBLOCK when an SO_RCVTIMEO/SO_SNDTIMEO timeout elapses, EINTR when
// a signal interrupts the call.
func isContinuableSocketErr(err error) bool {
	return errors.Is(err, syscall.EWOULDBLOCK) || errors.Is(err, syscall.EINTR)
}

// SetReadTimeout bounds how long ReadFrame blocks.
func (c *Connection) SetReadTimeout(timeout time.Duration) error {
	return c.setSocketTimeout(unix.SO_RCVTIMEO, timeout)
}

// SetSendTimeout bounds how long SendFrame blocks.
func (c *Connection) SetSendTimeout(timeout time.Duration) error {
	return c.setSocketTimeout(unix.SO_SNDTIMEO, timeout)
}

func (c *Connection) setSocketTimeout(opt int, timeout time.Duration) error {
	tv := unix.NsecToTimeval(timeout.Nanoseconds())
	return unix.SetsockoptTimeval(c.socketFD, unix.SOL_SOCKET, opt, &tv)
}

// SendFrame writes one frame to the bus.
func (c *Connection) SendFrame(frame Frame) error {
	if len(frame.Data) > 8 {
		return fmt.Errorf("frame data (%d) cannot fit into a single CAN frame", len(frame.Data))
	}
	_, err := unix.Write(c.socketFD, frame.Marshal())
	if isContinuableSocketErr(err) {
		return ErrWriteTimeout
	}
	return err
}

// ReadRawMessage reads one frame from the bus as a single-frame raw
// message; fast-packet reassembly is up to the caller.
func (c *Connection) ReadRawMessage() (*common.RawMessage, error) {
	buf := make([]byte, FrameSize)
	if _, err := unix.Read(c.socketFD, buf); err != nil {
		if isContinuableSocketErr(err) {
			return nil, ErrReadTimeout
		}
		return nil, err
	}

	canID := binary.LittleEndian.Uint32(buf[0:4])
	if canID&canIDRTRFlag != 0 {
		return nil, errors.New("read CAN remote transmission request frame")
	}
	if canID&canIDERRFlag != 0 {
		return nil, errors.New("read CAN error message frame")
	}

	dataLen := int(buf[4])
	if dataLen > 8 {
		return nil, fmt.Errorf("frame length byte %d out of range", dataLen)
	}
	prio, pgn, src, dst := common.GetISO11783BitsFromCanID(uint(canID &^ canIDEFFFlag))

	data := make([]byte, dataLen)
	copy(data, buf[8:8+dataLen])
	return &common.RawMessage{
		Timestamp: c.timeNow(),
		Prio:      prio,
		PGN:       pgn,
		Src:       src,
		Dst:       dst,
		Len:       uint8(dataLen),
		Data:      data,
	}, nil
}

// Close closes the socket.
func (c *Connection) Close() error {
	return unix.Close(c.socketFD)
}
