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
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"
)

const (
	timestampFormat = "2006-01-02-15:04:05.000"
	// others seen in the wild.
	timestampFormatAlt  = "2006-01-02T15:04:05.000Z"
	timestampFormatAlt2 = "2006-01-02T15:04:05Z"
)

// MultiPackets indicates whether the frames of a fast-packet PGN arrive
// pre-coalesced on a single input line or as separate frames that still
// need reassembly.
type MultiPackets int

const (
	MultiPacketsUnknown MultiPackets = iota
	MultiPacketsSeparate
	MultiPacketsCoalesced
)

// RawMessage is a raw NMEA 2000 PGN message.
type RawMessage struct {
	// if relative, then it's from January 1, year 1, 00:00:00.000000000 UTC
	Timestamp time.Time
	Prio      uint8
	PGN       uint32
	Dst       uint8
	Src       uint8
	Len       uint8
	Data      []byte

	// Only set when this is a fast packet
	Sequence uint8 // 3 bits max, unvalidated
	Frame    uint8 // 5 bits max, unvalidated
}

func (rm *RawMessage) setParsedValues(prio uint8, pgn uint32, dst, src, dataLen uint8) {
	rm.Prio = prio
	rm.PGN = pgn
	rm.Dst = dst
	rm.Src = src
	rm.Len = dataLen
}

// SeparateSingleOrFastPackets splits the message into wire frames. Data
// that fits a single frame is returned as one message; anything larger
// goes through fast-packet fragmentation.
func (rm *RawMessage) SeparateSingleOrFastPackets(isFastPacket bool) ([]*RawMessage, error) {
	if isFastPacket || len(rm.Data) > 8 {
		return rm.SeparateFastPackets()
	}
	newRaw := *rm
	newRaw.Data = make([]byte, len(rm.Data))
	copy(newRaw.Data, rm.Data)
	return []*RawMessage{&newRaw}, nil
}

// SeparateFastPackets fragments the message payload into fast-packet
// frames: frame 0 carries the sequence/frame byte, the total size and six
// payload bytes, every further frame the sequence/frame byte and seven
// payload bytes, padded with 0xff.
func (rm *RawMessage) SeparateFastPackets() ([]*RawMessage, error) {
	totalRawSize := len(rm.Data)
	if totalRawSize == 0 {
		return nil, errors.New("message has no data")
	}
	if totalRawSize > FastPacketMaxSize {
		return nil, fmt.Errorf("data (%d) cannot fit into max combined packet size %d", totalRawSize, FastPacketMaxSize)
	}

	numFrames := 1 + int(math.Ceil(float64(totalRawSize-FastPacketBucket0Size)/FastPacketBucketNSize))

	frameEnvelopeSize := FastPacketBucketNSize + 1

	var rawMsgs []*RawMessage
	remData := rm.Data
	for frameIdx := 0; frameIdx < numFrames; frameIdx++ {
		frameBuf := make([]byte, frameEnvelopeSize)
		for i := 0; i < frameEnvelopeSize; i++ {
			frameBuf[i] = 0xff
		}
		var frameSize, frameOffset int

		if frameIdx == 0 { // up to 6 inner bytes in 8 byte envelope -- first two bytes are seqFrame and total size
			frameSize = FastPacketBucket0Size
			frameOffset = FastPacketBucket0Offset
			frameBuf[FastPacketBucket0Offset-1] = byte(totalRawSize)
		} else { // up to 7 inner bytes in 8 byte envelope -- first byte is seqFrame
			frameSize = FastPacketBucketNSize
			frameOffset = FastPacketBucketNOffset
		}
		var seqFrame byte
		seqFrame |= (rm.Sequence << 5) & 0xe0 // sequence, upper 3 bits
		seqFrame |= byte(frameIdx) & 0x1f     // frame, lower 5 bits
		frameBuf[0] = seqFrame

		dataSpanSize := Min(len(remData), frameSize)
		rawFrameData := remData[:dataSpanSize]
		if len(rawFrameData) > len(frameBuf[frameOffset:]) {
			return nil, fmt.Errorf(
				"invariant: expected raw frame data (len=%d) to fit into FAST frame (len=%d)",
				len(rawFrameData),
				len(frameBuf[frameOffset:]),
			)
		}
		copy(frameBuf[frameOffset:], rawFrameData)
		remData = remData[dataSpanSize:]

		newRaw := *rm
		newRaw.Frame = byte(frameIdx)
		newRaw.Data = frameBuf
		rawMsgs = append(rawMsgs, &newRaw)
	}
	return rawMsgs, nil
}

// Message is a decoded NMEA 2000 PGN message.
type Message struct {
	// if relative, then it's from January 1, year 1, 00:00:00.000000000 UTC
	Timestamp     time.Time              `json:"timestamp"`
	Priority      int                    `json:"prio"`
	Src           int                    `json:"src"`
	Dst           int                    `json:"dst"`
	PGN           int                    `json:"pgn"`
	Description   string                 `json:"description"`
	Fields        map[string]interface{} `json:"fields"`
	Sequence      uint8                  `json:"-"` // 3 bits max, unvalidated
	CachedRawData []byte                 `json:"-"`
}

// FieldVariable is the value of a VARIABLE field: the referenced PGN and
// the 1-based index of the field within it whose type shapes the value.
type FieldVariable struct {
	PGN   uint32
	Index int
	Value interface{}
}

func findOccurrence(msg string, c byte, count int) int {
	if len(msg) == 0 || msg[0] == '\n' {
		return 0
	}

	pIdx := 0
	for i := 0; i < count; i++ {
		nextIdx := strings.IndexByte(msg[pIdx:], c)
		if nextIdx == -1 {
			return -1
		}
		pIdx += nextIdx
		if pIdx < len(msg) {
			pIdx++
		}
	}
	return pIdx
}

// ParseTimestamp accepts the handful of timestamp shapes seen in raw logs.
func ParseTimestamp(from string) (time.Time, error) {
	tm, err1 := time.Parse(timestampFormat, from)
	if err1 == nil {
		return tm, nil
	}
	tm, err2 := time.Parse(timestampFormatAlt, from)
	if err2 == nil {
		return tm, nil
	}
	tm, err3 := time.Parse(timestampFormatAlt2, from)
	if err3 == nil {
		return tm, nil
	}
	var day, year, hour, minute, millis int
	var month string
	r, _ := fmt.Sscanf(from,
		"%d %s %d %d:%d +%d",
		&day,
		&month,
		&year,
		&hour,
		&minute,
		&millis)
	if r == 6 {
		mMonth, monthOk := monthByAbbrev(month)
		if monthOk {
			secs := millis / 1000
			millis %= 1000
			nanos := millis * 1000000
			//nolint:gosmopolitan
			return time.Date(2000+year, mMonth, day, hour, minute, secs, nanos, time.Local), nil
		}
	}
	return time.Time{}, fmt.Errorf("error parsing time '%s': %w; %w; %w", from, err1, err2, err3)
}

func monthByAbbrev(month string) (time.Month, bool) {
	for m := time.January; m <= time.December; m++ {
		if m.String()[:3] == month {
			return m, true
		}
	}
	return 0, false
}

func scanNibble(c byte) byte {
	if unicode.IsDigit(rune(c)) {
		return c - '0'
	}
	if c >= 'A' && c <= 'F' {
		return c - 'A' + 10
	}
	if c >= 'a' && c <= 'f' {
		return c - 'a' + 10
	}
	return 16
}

func scanHex(p string, m *byte) (int, bool) {
	if len(p) < 2 || p[0] == 0 || p[1] == 0 {
		return 0, false
	}

	hi := scanNibble(p[0])
	if hi > 15 {
		return 0, false
	}
	lo := scanNibble(p[1])
	if lo > 15 {
		return 0, false
	}
	*m = hi<<4 | lo
	return 2, true
}
