// Package common holds the shared message model and helpers used by the
// analyzer and the adapter bridges.
package common

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
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"cmp"

	"go.uber.org/zap"
	"go.viam.com/rdk/logging"
)

// Fast-packet transport constants. Frame 0 carries the sequence/frame
// header byte, the total size byte and six payload bytes; frames 1..31
// carry the header byte and seven payload bytes.
const (
	FastPacketIndex         = 0
	FastPacketSize          = 1
	FastPacketBucket0Size   = 6
	FastPacketBucketNSize   = 7
	FastPacketBucket0Offset = 2
	FastPacketBucketNOffset = 1
	FastPacketMaxIndex      = 0x1f
	FastPacketMaxSize       = FastPacketBucket0Size + FastPacketBucketNSize*FastPacketMaxIndex
)

// The adapter bridges synthesize status messages that are not real bus
// traffic. They are assigned PGNs in a reserved range so downstream
// consumers can decode them like any other PGN. Transmit paths must
// reject PGNs at or above PseudoPGNStart.
const (
	PseudoPGNStart = 0x40000
	PseudoPGNEnd   = 0x401FF
	ActisenseBEM   = 0x40000 /* Actisense specific fake PGNs */
	IKonvertBEM    = 0x40100 /* iKonvert specific fake PGNs */
)

// NewLogger returns a new logger that appends to the given writer.
func NewLogger(writer io.Writer, opts ...zap.Option) logging.Logger {
	logger := logging.NewBlankLogger("")
	logger.AddAppender(logging.ConsoleAppender{Writer: writer})
	return logger
}

// Min returns the min of x,y.
func Min[T cmp.Ordered](x, y T) T {
	if x < y {
		return x
	}
	return y
}

// Max returns the max of x,y.
func Max[T cmp.Ordered](x, y T) T {
	if x > y {
		return x
	}
	return y
}

// AllowPGNFastPacket returns whether this PGN may use fast-packet transport.
func AllowPGNFastPacket(n uint32) bool {
	return (n >= 0x10000 && n < 0x1FFFF) || n >= PseudoPGNStart
}

// AllowPGNSingleFrame returns whether this PGN may fit in a single frame.
func AllowPGNSingleFrame(n uint32) bool {
	return n < 0x10000 || n >= 0x1F000
}

// UseFixedTimestamp is for testing purposes only.
var UseFixedTimestamp atomic.Bool

// Now returns the current time.Time.
func Now() time.Time {
	if UseFixedTimestamp.Load() {
		return time.UnixMilli(1672527600000) // 2023-01-01 00:00
	}

	return time.Now()
}

// FixedClock is used to return fixed time.
type FixedClock struct{}

func (c FixedClock) Now() time.Time {
	return Now()
}

func (c FixedClock) NewTicker(t time.Duration) *time.Ticker {
	return time.NewTicker(t)
}

// Error logs a message at the ERROR level. The returned
// error may be used to propagate upwards.
func Error(logger logging.Logger, isCLI bool, format string, v ...any) error {
	logger.Errorf(format, v...)
	err := fmt.Errorf(format, v...)
	if !isCLI {
		return err
	}
	return &ExitError{Code: 2, Cause: err}
}

// Abort logs a message at the "FATAL" level. The returned
// error may be used to propagate upwards and if running
// as a CLI, it may os.Exit.
func Abort(logger logging.Logger, isCLI bool, format string, v ...any) error {
	logger.Errorf("FATAL: "+format, v...)
	err := fmt.Errorf(format, v...)
	if !isCLI {
		return err
	}
	return &ExitError{Code: 2, Cause: err}
}

// GetISO11783BitsFromCanID unpacks a 29-bit extended CAN identifier into
// its ISO 11783 parts:
//
//	prio, pgn, src, dst := GetISO11783BitsFromCanID(id)
//
// PF below 240 is PDU1 format: PS carries the destination address and the
// PGN's low byte is zero. PF of 240 and above is PDU2 format: the message
// is implicitly broadcast and PS extends the PGN.
func GetISO11783BitsFromCanID(id uint) (uint8, uint32, uint8, uint8) {
	pf := (id >> 16) & 0xFF
	ps := (id >> 8) & 0xFF
	rdp := id >> 24 & 3 // R + DP bits

	src := uint8(id & 0xFF)
	prio := uint8((id >> 26) & 0x7)

	var pgn uint32
	var dst uint8

	if pf < 240 {
		dst = uint8(ps)
		pgn = uint32((rdp << 16) + (pf << 8))
	} else {
		dst = 0xff
		pgn = uint32((rdp << 16) + (pf << 8) + ps)
	}

	return prio, pgn, src, dst
}

// GetCanIDFromISO11783Bits is the inverse of GetISO11783BitsFromCanID.
// For PDU1 PGNs the destination address is packed into the PS byte.
func GetCanIDFromISO11783Bits(prio uint8, pgn uint32, src, dst uint8) uint32 {
	id := uint32(src) | (pgn << 8) | (uint32(prio) << 26)

	if ((pgn >> 8) & 0xFF) < 240 {
		// PDU1 format, PS is the destination address
		id = (id &^ uint32(0xFF00)) | (uint32(dst) << 8)
	}

	return id
}

// ExitError is an error for exit codes.
type ExitError struct {
	Code  int
	Cause error
}

// Error returns the underlying error and cause.
func (e ExitError) Error() string {
	return fmt.Sprintf("exit code %d; cause=%s", e.Code, e.Cause)
}

// Unwrap returns the cause, if present.
func (e ExitError) Unwrap() error {
	return e.Cause
}
