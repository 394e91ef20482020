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
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// TextLineParser parses one line of a textual wire format into a RawMessage.
type TextLineParser interface {
	Parse(msg string, m *RawMessage) error
	Detect(msg string) bool
	Marshal(rawMsg *RawMessage, packetTypeFast bool, multi MultiPackets) (string, error)
	MultiPacketsCoalesced() bool
	SkipFirstLine() bool
	Name() string
}

// AllParsers is the format detection order; more distinctive shapes first.
var AllParsers = []TextLineParser{}

var (
	PlainOrFastParserInstance = &plainOrFastParser{}
	NavLink2Instance          = &navLink2Parser{}
	GarminCSV1Instance        = &garminCSV1{}
	GarminCSV2Instance        = &garminCSV2{}
)

func init() {
	AllParsers = append(AllParsers,
		NavLink2Instance,
		&ydwg02Parser{},
		PlainOrFastParserInstance,
		GarminCSV1Instance,
		GarminCSV2Instance,
		&chetcoParser{},
		&airmarParser{},
		&actisenseParser{},
	)
}

// FindParser returns the first registered parser whose Detect accepts msg.
func FindParser(msg string) TextLineParser {
	for _, p := range AllParsers {
		if p.Detect(msg) {
			return p
		}
	}
	return nil
}

// FindParserByName returns the parser registered under the given format name.
func FindParserByName(n string) TextLineParser {
	for _, p := range AllParsers {
		if p.Name() == n {
			return p
		}
	}
	return nil
}

// ----------------------

type navLink2Parser struct{}

// Parse handles Digital Yacht NavLink 2 / iKonvert RX records.
// https://github.com/digitalyacht/iKonvert/wiki/4.-Serial-Protocol#41-rx-pgn-sentence
//
//	!PDGY,<pgn#>,p,src,dst,timer,<pgn_data> CR LF
//
// pgn is 0-999999, p is priority 0-7 (0 highest), src 0-251, dst 0-255
// (255 = global), timer the gateway's internal milliseconds counter and
// pgn_data the binary payload encoded in Base64.
func (p *navLink2Parser) Parse(msg string, m *RawMessage) error {
	var prio, src, dst uint8
	var pgn uint32
	var timer float64
	var pgnData string
	r, _ := fmt.Sscanf(msg, "!PDGY,%d,%d,%d,%d,%f,%s ", &pgn, &prio, &src, &dst, &timer, &pgnData)
	if r != 6 {
		return fmt.Errorf("wrong amount of fields in message: %d", r)
	}

	// there's no date in the record but we can start from the beginning of time.
	m.Timestamp = time.Time{}.Add(time.Microsecond * time.Duration(timer*1e3))

	// Some gateway firmware sends hex instead of base64. A long run of
	// pure uppercase hex characters is assumed to be hex.
	gotHex := false
	allHex := true
	for _, d := range pgnData {
		if (d >= '0' && d <= '9') || (d >= 'A' && d <= 'F') {
			continue
		}
		allHex = false
		break
	}
	if allHex && len(pgnData) > 40 {
		decoded, err := hex.DecodeString(pgnData)
		if err == nil {
			m.Data = decoded
			gotHex = true
		}
	}

	if !gotHex {
		decoded, err := base64.RawStdEncoding.DecodeString(pgnData)
		if err != nil {
			return fmt.Errorf("error decoding base64 data: %w", err)
		}
		m.Data = decoded
	}

	m.setParsedValues(prio, pgn, dst, src, uint8(len(m.Data)))
	return nil
}

func (p *navLink2Parser) Detect(msg string) bool {
	var a, b, c, d int
	var e float64
	var f string
	r, _ := fmt.Sscanf(msg, "!PDGY,%d,%d,%d,%d,%f,%s ", &a, &b, &c, &d, &e, &f)
	return r == 6
}

func (p *navLink2Parser) Marshal(rawMsg *RawMessage, packetTypeFast bool, multi MultiPackets) (string, error) {
	return "", fmt.Errorf("marshal not implemented for %s", p.Name())
}

func (p *navLink2Parser) MultiPacketsCoalesced() bool { return true }
func (p *navLink2Parser) SkipFirstLine() bool         { return false }
func (p *navLink2Parser) Name() string                { return "NAVLINK2" }

// -----

type ydwg02Parser struct{}

// Parse handles Yacht Devices YDWG-02 records, one CAN frame per line:
//
//	00:17:55.475 R 0DF50B23 FF FF FF FF FF 00 00 FF
func (p *ydwg02Parser) Parse(msg string, m *RawMessage) error {
	// YDWG gives a time of day but no date, use the local clock
	splitBySpaces := strings.Split(msg, " ")
	if len(splitBySpaces) < 3 {
		return fmt.Errorf("invalid ydwg format")
	}
	tiden := Now().Unix()
	//nolint:gosmopolitan
	m.Timestamp = time.Unix(tiden, 0).Local()

	// direction flag (R/T) is not used here
	splitBySpaces = splitBySpaces[1:]

	// 29-bit CAN id
	splitBySpaces = splitBySpaces[1:]
	//nolint:errcheck
	n, _ := strconv.ParseInt(splitBySpaces[0], 16, 64)
	prio, pgn, src, dst := GetISO11783BitsFromCanID(uint(n))

	// data bytes
	i := 0
	for splitBySpaces = splitBySpaces[1:]; len(splitBySpaces) != 0; splitBySpaces = splitBySpaces[1:] {
		//nolint:errcheck
		n, _ := strconv.ParseInt(splitBySpaces[0], 16, 64)
		m.Data = append(m.Data, byte(n))
		i++
		if i > FastPacketMaxSize {
			return fmt.Errorf("invalid ydwg format")
		}
	}

	m.setParsedValues(prio, pgn, dst, src, uint8(i))
	return nil
}

func (p *ydwg02Parser) Detect(msg string) bool {
	var a, b, c, d, f int
	var e rune
	r, _ := fmt.Sscanf(msg, "%d:%d:%d.%d %c %02X ", &a, &b, &c, &d, &e, &f)
	return r == 6 && (e == 'R' || e == 'T')
}

func (p *ydwg02Parser) Marshal(rawMsg *RawMessage, packetTypeFast bool, multi MultiPackets) (string, error) {
	return "", fmt.Errorf("marshal not implemented for %s", p.Name())
}

func (p *ydwg02Parser) MultiPacketsCoalesced() bool { return false }
func (p *ydwg02Parser) SkipFirstLine() bool         { return false }
func (p *ydwg02Parser) Name() string                { return "YDWG02" }

// ---------

type plainOrFastParser struct{}

func (p *plainOrFastParser) Parse(msg string, m *RawMessage) error {
	numBytes, ok := DataLengthInPlainOrFast(msg)
	if !ok {
		return fmt.Errorf("not plain or fast")
	}
	if numBytes <= 8 {
		return p.parsePlain(msg, m)
	}
	return p.parseFast(msg, m)
}

// parsePlain handles single-frame records:
//
//	<timestamp>,<prio>,<pgn>,<src>,<dst>,<len>,<b0>,...,<b7>
func (p *plainOrFastParser) parsePlain(msg string, m *RawMessage) error {
	var prio, src, dst, dataLen uint8
	var pgn uint32
	var junk, r int
	var data [8]int

	pIdx := findOccurrence(msg, ',', 1)
	if pIdx == -1 {
		return fmt.Errorf("not a plain format")
	}
	pIdx-- // Back to comma

	tm, err := ParseTimestamp(msg[:pIdx])
	if err != nil {
		return err
	}
	m.Timestamp = tm

	r, _ = fmt.Sscanf(msg[pIdx:],
		",%d,%d,%d,%d,%d"+
			",%x,%x,%x,%x,%x,%x,%x,%x,%x",
		&prio,
		&pgn,
		&src,
		&dst,
		&dataLen,
		&data[0],
		&data[1],
		&data[2],
		&data[3],
		&data[4],
		&data[5],
		&data[6],
		&data[7],
		&junk)
	if r < 5 {
		return fmt.Errorf("error reading message, scanned %d from %s", r, msg)
	}

	if dataLen > 8 {
		return fmt.Errorf("announced length %d needs the fast shape", dataLen)
	}
	if r > 5+8 {
		return fmt.Errorf("too many data bytes in message: %s", msg)
	}

	m.Data = make([]byte, dataLen)
	for i := uint8(0); i < dataLen; i++ {
		m.Data[i] = uint8(data[i])
	}

	m.setParsedValues(prio, pgn, dst, src, dataLen)
	return nil
}

// parseFast handles the same record shape with a coalesced payload longer
// than one frame.
func (p *plainOrFastParser) parseFast(msg string, m *RawMessage) error {
	var prio, src, dst, dataLen uint8
	var pgn uint32

	pIdx := findOccurrence(msg, ',', 1)
	if pIdx == -1 {
		return fmt.Errorf("not fast")
	}
	pIdx-- // Back to comma

	tm, err := ParseTimestamp(msg[:pIdx])
	if err != nil {
		return err
	}
	m.Timestamp = tm

	r, _ := fmt.Sscanf(msg[pIdx:], ",%d,%d,%d,%d,%d ", &prio, &pgn, &src, &dst, &dataLen)
	if r < 5 {
		return fmt.Errorf("error reading message, scanned %d from %s", r, msg)
	}

	nextIdx := findOccurrence(msg[pIdx:], ',', 6)
	if nextIdx == -1 {
		return fmt.Errorf("error reading message, scanned %d bytes from %s", pIdx, msg)
	}
	m.Data = make([]byte, dataLen)
	pIdx += nextIdx
	for i := uint8(0); i < dataLen; i++ {
		advancedBy, ok := scanHex(msg[pIdx:], &m.Data[i])
		if !ok {
			return fmt.Errorf("error reading message, scanned %d bytes from %s, index %d", pIdx, msg, i)
		}
		pIdx += advancedBy
		if i < dataLen && pIdx < len(msg) {
			if msg[pIdx] != ',' && !unicode.IsSpace(rune(msg[pIdx])) {
				return fmt.Errorf("error reading message, scanned %d bytes from %s", pIdx, msg)
			}
			pIdx++
		}
	}

	m.setParsedValues(prio, pgn, dst, src, dataLen)
	return nil
}

func (p *plainOrFastParser) Detect(msg string) bool {
	_, ok := DataLengthInPlainOrFast(msg)
	return ok
}

func (p *plainOrFastParser) Marshal(rawMsg *RawMessage, packetTypeFast bool, multi MultiPackets) (string, error) {
	if packetTypeFast {
		return MarshalRawMessageToFastFormat(rawMsg, multi)
	}

	if multi == MultiPacketsCoalesced {
		return MarshalRawMessageToPlainFormat(rawMsg, multi)
	}

	if len(rawMsg.Data) > 8 {
		return MarshalRawMessageToFastFormat(rawMsg, multi)
	}

	return MarshalRawMessageToPlainFormat(rawMsg, multi)
}

func (p *plainOrFastParser) MultiPacketsCoalesced() bool { return true }
func (p *plainOrFastParser) SkipFirstLine() bool         { return false }
func (p *plainOrFastParser) Name() string                { return "PLAIN_OR_FAST" }

// DataLengthInPlainOrFast returns the announced payload length of a
// PLAIN/FAST record, distinguishing the two shapes.
func DataLengthInPlainOrFast(msg string) (int, bool) {
	var prio, src, dst, dataLen uint8
	var pgn uint32
	var junk, r int

	pIdx := findOccurrence(msg, ',', 1)
	if pIdx == -1 {
		return 0, false
	}
	pIdx-- // Back to comma

	if _, err := ParseTimestamp(msg[:pIdx]); err != nil {
		return 0, false
	}

	r, _ = fmt.Sscanf(msg[pIdx:],
		",%d,%d,%d,%d,%d"+
			",%x,%x,%x,%x,%x,%x,%x,%x,%x",
		&prio,
		&pgn,
		&src,
		&dst,
		&dataLen,
		&junk,
		&junk,
		&junk,
		&junk,
		&junk,
		&junk,
		&junk,
		&junk,
		&junk)
	if r < 5 {
		return 0, false
	}

	return int(dataLen), true
}

// --------------

const garminCSVHeader = "Sequence #,Timestamp,PGN,Name,Manufacturer,Remote Address,Local Address,Priority,Single Frame,Size,packet\n"

type garminCSV1 struct{}

func (p *garminCSV1) Parse(msg string, m *RawMessage) error {
	return parseRawFormatGarminCSV(msg, m, false)
}

func (p *garminCSV1) Detect(msg string) bool {
	return msg == garminCSVHeader
}

func (p *garminCSV1) Marshal(rawMsg *RawMessage, packetTypeFast bool, multi MultiPackets) (string, error) {
	return "", fmt.Errorf("marshal not implemented for %s", p.Name())
}

func (p *garminCSV1) MultiPacketsCoalesced() bool { return true }
func (p *garminCSV1) SkipFirstLine() bool         { return true }
func (p *garminCSV1) Name() string                { return "GARMIN_CSV1" }

type garminCSV2 struct{}

func (p *garminCSV2) Parse(msg string, m *RawMessage) error {
	return parseRawFormatGarminCSV(msg, m, true)
}

func (p *garminCSV2) Detect(msg string) bool {
	return msg == garminCSVHeader
}

func (p *garminCSV2) Marshal(rawMsg *RawMessage, packetTypeFast bool, multi MultiPackets) (string, error) {
	return "", fmt.Errorf("marshal not implemented for %s", p.Name())
}

func (p *garminCSV2) MultiPacketsCoalesced() bool { return true }
func (p *garminCSV2) SkipFirstLine() bool         { return true }
func (p *garminCSV2) Name() string                { return "GARMIN_CSV2" }

// parseRawFormatGarminCSV handles both Garmin CSV dialects:
//
//	Sequence #,Timestamp,PGN,Name,Manufacturer,Remote Address,Local Address,Priority,Single Frame,Size,packet
//	0,486942,127508,Battery Status,Garmin,6,255,2,1,8,0x017505FF7FFFFFFF
//
// The second dialect replaces the millisecond counter with a
// Month_Day_Year_Hours_Minutes_Seconds_Millis timestamp.
func parseRawFormatGarminCSV(msg string, m *RawMessage, absolute bool) error {
	var seq, tstamp, pgn, src, dst, prio, single, count uint

	if len(msg) == 0 || msg[0] == '\n' {
		return fmt.Errorf("invalid garmin csv message")
	}

	var pIdx int
	if absolute {
		var month, day, year, hours, minutes, seconds, ms uint

		if r, _ := fmt.Sscanf(
			msg,
			"%d,%d_%d_%d_%d_%d_%d_%d,%d,",
			&seq, &month, &day, &year, &hours, &minutes, &seconds, &ms, &pgn); r < 9 {
			return fmt.Errorf("error reading Garmin CSV message: %s", msg)
		}

		//nolint:gosmopolitan
		m.Timestamp = time.Date(
			int(year),
			time.Month(month),
			int(day),
			int(hours),
			int(minutes),
			int(seconds),
			int((ms%1000)*1e6),
			time.Local,
		)

		pIdx = findOccurrence(msg, ',', 6)
	} else {
		if r, _ := fmt.Sscanf(msg, "%d,%d,%d,", &seq, &tstamp, &pgn); r < 3 {
			return fmt.Errorf("error reading Garmin CSV message: %s", msg)
		}

		t := int(tstamp / 1000)
		//nolint:gosmopolitan
		m.Timestamp = time.Unix(int64(t), 0).Local()

		pIdx = findOccurrence(msg, ',', 5)
	}

	if pIdx == -1 || len(msg[pIdx:]) == 0 {
		return fmt.Errorf("error reading Garmin CSV message: %s", msg)
	}

	var restOfData string
	if r, _ := fmt.Sscanf(msg[pIdx:], "%d,%d,%d,%d,%d,0x%s", &src, &dst, &prio, &single, &count, &restOfData); r < 5 {
		return fmt.Errorf("error reading Garmin CSV message: %s", msg)
	}
	dataStart := strings.Index(msg[pIdx:], ",0x")
	if dataStart == -1 {
		return fmt.Errorf("error reading Garmin CSV message: %s", msg)
	}
	pIdx += dataStart + 3

	m.Data = make([]byte, count)
	var i uint
	for i = 0; len(msg[pIdx:]) != 0 && i < count; i++ {
		advancedBy, ok := scanHex(msg[pIdx:], &m.Data[i])
		if !ok {
			return fmt.Errorf("error reading message, scanned %d bytes from %s, index %d", pIdx, msg, i)
		}
		pIdx += advancedBy
	}

	m.setParsedValues(uint8(prio), uint32(pgn), uint8(dst), uint8(src), uint8(i))
	return nil
}

// ----------------

type chetcoParser struct{}

func (p *chetcoParser) Detect(msg string) bool {
	return strings.HasPrefix(msg, "$PCDIN")
}

func (p *chetcoParser) Marshal(rawMsg *RawMessage, packetTypeFast bool, multi MultiPackets) (string, error) {
	return "", fmt.Errorf("marshal not implemented for %s", p.Name())
}

func (p *chetcoParser) MultiPacketsCoalesced() bool { return true }
func (p *chetcoParser) SkipFirstLine() bool         { return false }
func (p *chetcoParser) Name() string                { return "CHETCO" }

// Parse handles Chetco records:
//
//	$PCDIN,01F119,00000000,0F,2AAF00D1067414FF*59
func (p *chetcoParser) Parse(msg string, m *RawMessage) error {
	var tstamp uint

	if len(msg) == 0 || msg[0] == '\n' {
		return fmt.Errorf("invalid chetco message")
	}

	if r, _ := fmt.Sscanf(msg, "$PCDIN,%x,%x,%x,", &m.PGN, &tstamp, &m.Src); r < 3 {
		return fmt.Errorf("error reading Chetco message: %s", msg)
	}

	t := int(tstamp / 1000)
	//nolint:gosmopolitan
	m.Timestamp = time.Unix(int64(t), 0).Local()

	// the three leading fields are fixed width
	pIdx := len("$PCDIN,01FD07,089C77D!,03,")

	var i uint
	for i = 0; pIdx < len(msg) && msg[pIdx] != '*'; i++ {
		m.Data = append(m.Data, 0x00)
		advancedBy, ok := scanHex(msg[pIdx:], &m.Data[i])
		if !ok {
			return fmt.Errorf("error reading message, scanned %d bytes from %s, index %d", pIdx, msg, i)
		}
		pIdx += advancedBy
	}

	m.Prio = 0
	m.Dst = 255
	m.Len = uint8(i)
	return nil
}

// --------------

type airmarParser struct{}

func (p *airmarParser) Detect(msg string) bool {
	idx := strings.Index(msg, " ")
	return idx != -1 && idx+2 < len(msg) && (msg[idx+1] == '-' || msg[idx+2] == '-')
}

func (p *airmarParser) Marshal(rawMsg *RawMessage, packetTypeFast bool, multi MultiPackets) (string, error) {
	return "", fmt.Errorf("marshal not implemented for %s", p.Name())
}

func (p *airmarParser) MultiPacketsCoalesced() bool { return true }
func (p *airmarParser) SkipFirstLine() bool         { return false }
func (p *airmarParser) Name() string                { return "AIRMAR" }

// Parse handles Airmar USB100 records:
//
//	<timestamp> <P>-<pgn> <canid> <data hex>
func (p *airmarParser) Parse(msg string, m *RawMessage) error {
	var prio, src, dst uint8
	var pgn uint32
	var id uint

	pIdx := findOccurrence(msg, ' ', 1)
	if pIdx < 4 || pIdx >= 60 {
		return fmt.Errorf("invalid airmar message")
	}

	tm, err := ParseTimestamp(msg[:pIdx-1])
	if err != nil {
		return err
	}
	m.Timestamp = tm
	pIdx += 3

	r, _ := fmt.Sscanf(msg[pIdx:], "%d", &pgn)
	if r != 1 {
		return fmt.Errorf("error reading message, scanned %d bytes from %s", pIdx, msg)
	}
	pIdx += len(strconv.FormatUint(uint64(pgn), 10))
	if pIdx < len(msg) && msg[pIdx] == ' ' {
		pIdx++

		r, _ := fmt.Sscanf(msg[pIdx:], "%x", &id)
		if r != 1 {
			return fmt.Errorf("error reading message, scanned %d bytes from %s", pIdx, msg)
		}
		pIdx += len(strconv.FormatUint(uint64(id), 16))
	}
	if pIdx >= len(msg) || msg[pIdx] != ' ' {
		return fmt.Errorf("error reading message, scanned %d bytes from %s", pIdx, msg)
	}

	prio, pgn, src, dst = GetISO11783BitsFromCanID(id)

	pIdx++
	dataLen := uint(len(msg[pIdx:]) / 2)
	m.Data = make([]byte, dataLen)
	for i := uint(0); i < dataLen; i++ {
		advancedBy, ok := scanHex(msg[pIdx:], &m.Data[i])
		if !ok {
			return fmt.Errorf("error reading message, scanned %d bytes from %s, index %d", pIdx, msg, i)
		}
		pIdx += advancedBy
		if i < dataLen && pIdx < len(msg) {
			if msg[pIdx] != ',' && msg[pIdx] != ' ' {
				return fmt.Errorf("error reading message, scanned %d bytes from %s", pIdx, msg)
			}
			pIdx++
		}
	}

	m.setParsedValues(prio, pgn, dst, src, uint8(dataLen))
	return nil
}

// -------------

type actisenseParser struct {
	tiden int
}

func (p *actisenseParser) Detect(msg string) bool {
	var a, b, c, d int
	r1, _ := fmt.Sscanf(msg, "A%d.%d %x %x ", &a, &b, &c, &d)
	r2, _ := fmt.Sscanf(msg, "A%d %x %x ", &a, &b, &c)
	return r1 == 4 || r2 == 3
}

func (p *actisenseParser) Marshal(rawMsg *RawMessage, packetTypeFast bool, multi MultiPackets) (string, error) {
	return "", fmt.Errorf("marshal not implemented for %s", p.Name())
}

func (p *actisenseParser) MultiPacketsCoalesced() bool { return true }
func (p *actisenseParser) SkipFirstLine() bool         { return false }
func (p *actisenseParser) Name() string                { return "ACTISENSE_N2K_ASCII" }

// Parse handles Actisense N2K ASCII records:
//
//	A<secs>.<millis> <src><dst><P> <pgn> <data hex>
//
// The device counts seconds from power-up; the offset to the wall clock is
// pinned on the first record seen.
func (p *actisenseParser) Parse(msg string, m *RawMessage) error {
	splitBySpaces := strings.Split(msg, " ")
	if len(splitBySpaces) < 4 || splitBySpaces[0][0] != 'A' {
		return fmt.Errorf("no message or does not start with 'A'")
	}

	var secs, millis int
	r, _ := fmt.Sscanf(splitBySpaces[0][1:], "%d.%d", &secs, &millis)
	if r < 1 {
		return fmt.Errorf("invalid actisense ascii timestamp: %s", splitBySpaces[0])
	}

	if p.tiden == 0 {
		p.tiden = int(Now().Unix()) - secs
	}
	now := p.tiden + secs

	//nolint:gosmopolitan
	m.Timestamp = time.Unix(int64(now), 0).Add(time.Millisecond * time.Duration(millis)).Local()

	// <SRC><DST><P> packed in one hex number
	splitBySpaces = splitBySpaces[1:]
	//nolint:errcheck
	n, _ := strconv.ParseInt(splitBySpaces[0], 16, 64)
	m.Prio = uint8(n & 0xf)
	m.Dst = uint8((n >> 4) & 0xff)
	m.Src = uint8((n >> 12) & 0xff)

	// <PGN>
	splitBySpaces = splitBySpaces[1:]
	//nolint:errcheck
	n, _ = strconv.ParseInt(splitBySpaces[0], 16, 64)
	m.PGN = uint32(n)

	// <DATA>
	rest := strings.Join(splitBySpaces[1:], " ")
	var i uint8
	m.Data = make([]byte, 0, 8)
	for i = 0; int(i) < FastPacketMaxSize; i++ {
		if len(rest) < 2 || unicode.IsSpace(rune(rest[0])) {
			break
		}
		var b byte
		advancedBy, ok := scanHex(rest, &b)
		if !ok {
			return fmt.Errorf("error reading message from %s, index %d", msg, i)
		}
		m.Data = append(m.Data, b)
		rest = rest[advancedBy:]
	}
	m.Len = i

	return nil
}
