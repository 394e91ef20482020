// Package analyzer analyzes NMEA 2000 PGN messages
package analyzer

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
	"io"
	"math"
	"strings"
	"sync"

	"go.viam.com/rdk/logging"

	"github.com/seabus/n2kbridge/common"
)

func init() {
	initLookupTypes()
	initFieldTypes()
	initPGNs()
}

// An Analyzer analyzes NMEA 2000 PGN messages.
type Analyzer interface {
	// ProcessMessage parses one line of a textual wire format and decodes
	// it into a message. hasMsg is false when the line did not yield a
	// complete message yet (e.g. a lone fast-packet frame).
	ProcessMessage(msgData string) (msg *common.Message, hasMsg bool, err error)

	// ProcessRawMessage parses one line of a textual wire format into a
	// raw (undecoded) message.
	ProcessRawMessage(msgData string) (msg *common.RawMessage, hasMsg bool, err error)

	// ConvertRawMessage decodes a raw message. hasMsg is false when more
	// frames are needed to complete a fast-packet.
	ConvertRawMessage(rawMsg *common.RawMessage) (msg *common.Message, hasMsg bool, err error)
}

// Config is used to configure an Analyzer.
type Config struct {
	Logger logging.Logger

	// DesiredFormat, when set, skips format detection and uses the named
	// wire format parser.
	DesiredFormat string

	// UseSI keeps values in strict SI units: degrees Kelvin, radians, Pascal.
	UseSI bool

	// CamelCase turns field names into camelCase (false) or UpperCamelCase
	// (true); nil leaves them as defined.
	CamelCase *bool

	// ClockSrc is the NMEA source address whose time messages are trusted
	// for the system clock; -1 trusts none.
	ClockSrc int64
}

// NewConfig returns a default config using the given logger.
func NewConfig(logger logging.Logger) *Config {
	return &Config{
		Logger:   logger,
		ClockSrc: -1,
	}
}

// ReassemblyBufferSize is how many fast-packet reassemblies may be in
// progress at once.
const ReassemblyBufferSize = 64

// A Packet tracks one fast-packet reassembly in progress.
type Packet struct {
	Size      int
	Data      [common.FastPacketMaxSize]uint8
	Frames    uint32 // Bit is one when frame is received
	AllFrames uint32 // Bit is one when frame needs to be present
	PGN       int
	Src       int
	Used      bool
}

// AnalyzerState is the mutable decoding state of an analyzer.
type AnalyzerState struct {
	FieldTypes          []FieldType
	PGNs                []PGNInfo
	MultiPackets        common.MultiPackets
	ReassemblyBuffer    [ReassemblyBufferSize]Packet
	VariableFieldRepeat [2]int64 // Actual number of repetitions
	RefPgn              int64    // Remember this over the entire set of fields
	Length              int64    // Length of the upcoming variable length field
	Skip                bool
	PreviousFieldValue  int64
	FTF                 *PGNField // Set when a key field determines the type of the next value field
	CurrentDate         uint16
	CurrentTime         uint32

	parser common.TextLineParser
}

type analyzerImpl struct {
	*Config
	state AnalyzerState
}

// NewAnalyzer returns a new analyzer using the given config.
func NewAnalyzer(conf *Config) (Analyzer, error) {
	return newAnalyzer(conf)
}

func newAnalyzer(conf *Config) (*analyzerImpl, error) {
	ana := &analyzerImpl{
		Config: conf,
		state: AnalyzerState{
			FieldTypes:          make([]FieldType, len(immutFieldTypes)),
			PGNs:                make([]PGNInfo, len(immutPGNs)),
			MultiPackets:        common.MultiPacketsSeparate,
			VariableFieldRepeat: [2]int64{0, 0},
			CurrentDate:         math.MaxUint16,
			CurrentTime:         math.MaxUint32,
		},
	}

	copy(ana.state.FieldTypes, immutFieldTypes)
	copy(ana.state.PGNs, immutPGNs)

	if conf.CamelCase != nil {
		ana.camelCase(*conf.CamelCase)
	}

	if err := ana.fillFieldType(true); err != nil {
		return nil, err
	}
	if err := checkPGNs(ana.state.PGNs, conf.Logger); err != nil {
		return nil, err
	}

	if conf.DesiredFormat != "" {
		parser := common.FindParserByName(conf.DesiredFormat)
		if parser == nil {
			return nil, fmt.Errorf("unknown message format '%s'", conf.DesiredFormat)
		}
		ana.useParser(parser)
	}

	return ana, nil
}

var (
	catalogOnce sync.Once
	catalogAna  *analyzerImpl
	catalogErr  error
)

// catalogAnalyzer returns the shared analyzer holding the canonical,
// fully resolved PGN catalog.
func catalogAnalyzer() (*analyzerImpl, error) {
	catalogOnce.Do(func() {
		catalogAna, catalogErr = newAnalyzer(NewConfig(common.NewLogger(io.Discard)))
	})
	return catalogAna, catalogErr
}

func catalogPGNs() []PGNInfo {
	ana, err := catalogAnalyzer()
	if err != nil {
		// the catalog is static data; failing to resolve it is a
		// programming error in the PGN or field type lists
		panic(err)
	}
	return ana.state.PGNs
}

// ResolveKeyValueField builds the field definition selected by a
// FIELDTYPE_LOOKUP key, describing the value field that follows it.
// Returns nil when the key is not part of the enumeration.
func ResolveKeyValueField(field *PGNField, key int, logger logging.Logger) *PGNField {
	entry := lookupFieldTypeEntry(field.Lookup.Name, key)
	if entry == nil {
		logger.Debugf("Lookup %s: unknown key %d", field.Lookup.Name, key)
		return nil
	}
	ana, err := catalogAnalyzer()
	if err != nil {
		return nil
	}
	ftf := &PGNField{Size: entry.size, PGN: field.PGN}
	if err := ana.fillFieldTypeLookupField(ftf, field.Lookup.Name, key, entry.name, entry.fieldType); err != nil {
		logger.Errorf("Lookup %s key %d: %s", field.Lookup.Name, key, err)
		return nil
	}
	return ftf
}

func (ana *analyzerImpl) State() *AnalyzerState {
	return &ana.state
}

func (ana *analyzerImpl) useParser(parser common.TextLineParser) {
	ana.state.parser = parser
	if parser.MultiPacketsCoalesced() {
		ana.state.MultiPackets = common.MultiPacketsCoalesced
	} else {
		ana.state.MultiPackets = common.MultiPacketsSeparate
	}
}

// ProcessMessage parses one line of a textual wire format and decodes it.
func (ana *analyzerImpl) ProcessMessage(msgData string) (*common.Message, bool, error) {
	rawMsg, hasMsg, err := ana.ProcessRawMessage(msgData)
	if err != nil || !hasMsg {
		return nil, false, err
	}
	return ana.ConvertRawMessage(rawMsg)
}

// ProcessRawMessage parses one line of a textual wire format into a raw message.
func (ana *analyzerImpl) ProcessRawMessage(msgData string) (*common.RawMessage, bool, error) {
	msgData = strings.TrimSpace(msgData)
	if len(msgData) == 0 || msgData[0] == '#' {
		return nil, false, nil
	}

	if strings.HasPrefix(msgData, "$PDGY,000000") {
		// digital yacht iKonvert status sentence $PDGY,000000,...
		// carries gateway health, not a PGN
		return nil, false, nil
	}

	if ana.state.parser == nil {
		parser := common.FindParser(msgData)
		if parser == nil {
			return nil, false, fmt.Errorf("unknown message format: '%s'", msgData)
		}
		ana.Logger.Debugf("Detected message format '%s'", parser.Name())
		ana.useParser(parser)
		if parser.SkipFirstLine() {
			return nil, false, nil
		}
	}

	var m common.RawMessage
	if err := ana.state.parser.Parse(msgData, &m); err != nil {
		return nil, false, fmt.Errorf("error parsing %s message: %w", ana.state.parser.Name(), err)
	}
	return &m, true, nil
}

// ConvertRawMessage decodes a raw message, reassembling fast-packets when the
// wire format delivers them frame by frame.
func (ana *analyzerImpl) ConvertRawMessage(rawMsg *common.RawMessage) (*common.Message, bool, error) {
	if rawMsg == nil {
		return nil, false, nil
	}

	pgn, _ := ana.searchForPgn(rawMsg.PGN)
	if ana.state.MultiPackets == common.MultiPacketsSeparate && pgn == nil {
		var err error
		pgn, err = ana.searchForUnknownPgn(rawMsg.PGN)
		if err != nil {
			return nil, false, err
		}
	}
	if ana.state.MultiPackets == common.MultiPacketsCoalesced ||
		pgn == nil ||
		pgn.PacketType != PacketTypeFast ||
		len(rawMsg.Data) > 8 {
		// No reassembly needed
		msg, err := ana.convertPGN(rawMsg, rawMsg.Data[:rawMsg.Len])
		if err != nil {
			return nil, false, err
		}
		return msg, true, nil
	}

	// Fast packet requires re-asssembly
	// We only get here if we know for sure that the PGN is fast-packet
	// Possibly it is of unknown length when the PGN is unknown.

	var buffer int
	var p *Packet
	for buffer = 0; buffer < ReassemblyBufferSize; buffer++ {
		p = &ana.state.ReassemblyBuffer[buffer]

		if p.Used && p.PGN == int(rawMsg.PGN) && p.Src == int(rawMsg.Src) {
			// Found existing slot
			break
		}
	}
	if buffer == ReassemblyBufferSize {
		// Find a free slot
		for buffer = 0; buffer < ReassemblyBufferSize; buffer++ {
			p = &ana.state.ReassemblyBuffer[buffer]
			if !p.Used {
				break
			}
		}
		if buffer == ReassemblyBufferSize {
			return nil, false, fmt.Errorf("out of reassembly buffers for PGN %d", rawMsg.PGN)
		}
		p.Used = true
		p.Src = int(rawMsg.Src)
		p.PGN = int(rawMsg.PGN)
		p.Frames = 0
	}

	// YDWG can receive frames out of order, so handle this.
	seq := uint8(rawMsg.Data[0]&0xe0) >> 5
	frame := uint8(rawMsg.Data[0] & 0x1f)

	idx := uint32(0)
	frameLen := common.FastPacketBucket0Size
	msgIdx := common.FastPacketBucket0Offset

	if frame != 0 {
		idx = common.FastPacketBucket0Size + uint32(frame-1)*common.FastPacketBucketNSize
		frameLen = common.FastPacketBucketNSize
		msgIdx = common.FastPacketBucketNOffset
	}

	if (p.Frames & (1 << frame)) != 0 {
		ana.Logger.Errorf("Received incomplete fast packet PGN %d from source %d", rawMsg.PGN, rawMsg.Src)
		p.Frames = 0
	}

	if frame == 0 && p.Frames == 0 {
		p.Size = int(rawMsg.Data[1])
		p.AllFrames = (1 << (1 + (p.Size / 7))) - 1
	}

	if len(rawMsg.Data[msgIdx:]) < frameLen {
		return nil, false, fmt.Errorf("frame (len=%d) smaller than expected (len=%d)", len(rawMsg.Data[msgIdx:]), frameLen)
	}
	copy(p.Data[idx:], rawMsg.Data[msgIdx:msgIdx+frameLen])
	p.Frames |= 1 << frame

	ana.Logger.Debugf("Using buffer %d for reassembly of PGN %d: size %d frame %d sequence %d idx=%d frames=%x mask=%x",
		buffer,
		rawMsg.PGN,
		p.Size,
		frame,
		seq,
		idx,
		p.Frames,
		p.AllFrames)
	if p.Frames == p.AllFrames {
		// Received all data
		msg, err := ana.convertPGN(rawMsg, p.Data[:p.Size])
		if err != nil {
			return nil, false, err
		}
		p.Used = false
		p.Frames = 0
		return msg, true, nil
	}
	return nil, false, nil
}

func (ana *analyzerImpl) searchForPgn(pgn uint32) (*PGNInfo, int) {
	return searchForPgnIn(ana.state.PGNs, pgn)
}

func (ana *analyzerImpl) searchForUnknownPgn(pgnID uint32) (*PGNInfo, error) {
	return searchForUnknownPgnIn(ana.state.PGNs, pgnID, ana.Logger)
}

func (ana *analyzerImpl) convertPGN(rawMsg *common.RawMessage, data []byte) (*common.Message, error) {
	if rawMsg == nil {
		return nil, errors.New("expected message")
	}
	pgn, err := ana.getMatchingPgn(rawMsg.PGN, data)
	if err != nil {
		return nil, err
	}
	if pgn == nil {
		return nil, fmt.Errorf("no PGN definition found for PGN %d", rawMsg.PGN)
	}

	convertedMsg := &common.Message{
		Timestamp:   rawMsg.Timestamp,
		Priority:    int(rawMsg.Prio),
		Src:         int(rawMsg.Src),
		Dst:         int(rawMsg.Dst),
		PGN:         int(rawMsg.PGN),
		Description: pgn.Description,
		Sequence:    rawMsg.Sequence,
	}
	if pgn.FieldCount == 0 {
		return convertedMsg, nil
	}
	convertedMsg.Fields = make(map[string]interface{}, pgn.FieldCount)

	ana.Logger.Debugf("FieldCount=%d RepeatingStart1=%d", pgn.FieldCount, pgn.RepeatingStart1)

	ana.state.VariableFieldRepeat[0] = 255 // Can be overridden by '# of parameters'
	ana.state.VariableFieldRepeat[1] = 0   // Can be overridden by '# of parameters'
	repetition := 0
	variableFields := int64(0)

	startBit := 0
	variableFieldStart := 0
	variableFieldCount := 0
	var repeatingList []interface{}
	var repeatingListName string
	for i := 0; (startBit >> 3) < len(data); i++ {
		field := &pgn.FieldList[i]

		if variableFields == 0 {
			repetition = 0
		}

		if pgn.RepeatingCount1 > 0 && field.Order == pgn.RepeatingStart1 && repetition == 0 {
			// Only now is VariableFieldRepeat set
			variableFields = int64(pgn.RepeatingCount1) * ana.state.VariableFieldRepeat[0]
			repeatingList = make([]interface{}, 0, variableFields)
			repeatingListName = "list"
			variableFieldCount = int(pgn.RepeatingCount1)
			variableFieldStart = int(pgn.RepeatingStart1)
			repetition = 1
		}
		if pgn.RepeatingCount2 > 0 && field.Order == pgn.RepeatingStart2 && repetition == 0 {
			// Only now is VariableFieldRepeat set
			variableFields = int64(pgn.RepeatingCount2) * ana.state.VariableFieldRepeat[1]
			if repeatingList != nil {
				convertedMsg.Fields[repeatingListName] = repeatingList
			}
			repeatingList = make([]interface{}, 0, variableFields)
			repeatingListName = "list2"
			variableFieldCount = int(pgn.RepeatingCount2)
			variableFieldStart = int(pgn.RepeatingStart2)
			repetition = 1
		}

		if variableFields > 0 {
			if i+1 == variableFieldStart+variableFieldCount {
				i = variableFieldStart - 1
				field = &pgn.FieldList[i]
				repetition++
			}
			ana.Logger.Debugf("variableFields: repetition=%d field=%d variableFieldStart=%d variableFieldCount=%d remaining=%d",
				repetition,
				i+1,
				variableFieldStart,
				variableFieldCount,
				variableFields)
			variableFields--
		}

		if field.CamelName == "" && field.Name == "" {
			ana.Logger.Debugf("PGN %d has unknown bytes at end: %d", rawMsg.PGN, len(data)-(startBit>>3))
			break
		}

		fieldName := field.Name
		if field.CamelName != "" {
			fieldName = field.CamelName
		}

		var countBits int
		fieldValue, ok, err := ana.convertField(field, fieldName, data, startBit, &countBits)
		if err != nil {
			return nil, err
		}
		if ok {
			if repeatingList == nil {
				convertedMsg.Fields[fieldName] = fieldValue
			} else {
				repeatingList = append(repeatingList, map[string]interface{}{
					fieldName: fieldValue,
				})
			}
		}

		startBit += countBits
	}

	if repeatingList != nil {
		convertedMsg.Fields[repeatingListName] = repeatingList
	}

	if rawMsg.PGN == 126992 &&
		ana.state.CurrentDate < math.MaxUint16 &&
		ana.state.CurrentTime < math.MaxUint32 &&
		ana.ClockSrc == int64(rawMsg.Src) {
		ana.Logger.Errorf("WILL NOT SETSYSTEMCLOCK FOR 126992")
	}
	return convertedMsg, nil
}

// SetCurrentFieldMetadata remembers decoding state that later fields of the
// same PGN depend on: the referenced PGN of a proprietary command and the
// length of an upcoming variable length field.
func (ana *analyzerImpl) SetCurrentFieldMetadata(
	fieldName string,
	data []byte,
	startBit int,
	numBits int,
) {
	var value int64
	var maxValue int64

	switch fieldName {
	case "PGN":
		ExtractNumber(nil, data, startBit, numBits, &value, &maxValue, ana.Logger)
		ana.Logger.Debugf("Reference PGN = %d", value)
		ana.state.RefPgn = value
	case "Length":
		ExtractNumber(nil, data, startBit, numBits, &value, &maxValue, ana.Logger)
		ana.Logger.Debugf("for next field: length = %d", value)
		ana.state.Length = value
	}
}

func (ana *analyzerImpl) convertField(
	field *PGNField,
	fieldName string,
	data []byte,
	startBit int,
	bits *int,
) (interface{}, bool, error) {
	resolution := field.Resolution
	if resolution == 0.0 {
		resolution = field.FT.Resolution
	}

	ana.Logger.Debugf("PGN %d: convertField(<%s>, \"%s\", ..., startBit=%d) resolution=%g",
		field.PGN.PGN,
		field.Name,
		fieldName,
		startBit,
		resolution)

	var bytes int
	if field.Size != 0 || field.FT != nil {
		if field.Size != 0 {
			*bits = int(field.Size)
		} else {
			*bits = int(field.FT.Size)
		}
		bytes = (*bits + 7) / 8
		bytes = common.Min(bytes, len(data)-startBit/8)
		*bits = common.Min(bytes*8, *bits)
	} else {
		*bits = 0
	}

	ana.SetCurrentFieldMetadata(field.Name, data, startBit, *bits)

	ana.Logger.Debugf("PGN %d: convertField <%s>, \"%s\": bits=%d proprietary=%t refPgn=%d",
		field.PGN.PGN,
		field.Name,
		fieldName,
		*bits,
		field.Proprietary,
		ana.state.RefPgn)

	if field.Proprietary {
		if (ana.state.RefPgn >= 65280 && ana.state.RefPgn <= 65535) ||
			(ana.state.RefPgn >= 126720 && ana.state.RefPgn <= 126975) ||
			(ana.state.RefPgn >= 130816 && ana.state.RefPgn <= 131071) {
			// proprietary, allow field
		} else {
			// standard PGN, skip field
			*bits = 0
			return nil, false, nil
		}
	}

	if field.FT != nil && field.FT.CF != nil {
		ana.Logger.Debugf(
			"PGN %d: convertField <%s>, \"%s\": calling function for %s", field.PGN.PGN, field.Name, fieldName, field.FieldType)
		ana.state.Skip = false
		return field.FT.CF(ana, field, fieldName, data, startBit, bits)
	}
	return nil, false, fmt.Errorf("PGN %d: no function found to convert field '%s'", field.PGN.PGN, fieldName)
}
