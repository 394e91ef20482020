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
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/seabus/n2kbridge/common"
)

// SchemaVersion is the version of the PGN database export format.
const SchemaVersion = "1.5"

// An Explainer renders the PGN catalog as human-readable text or as the
// XML database export consumed by downstream tooling.
type Explainer struct {
	ana *analyzerImpl
}

// NewExplainer returns an Explainer over the full PGN catalog. Camel case
// settings on the config change how field identifiers are rendered.
func NewExplainer(conf *Config) (*Explainer, error) {
	ana, err := newAnalyzer(conf)
	if err != nil {
		return nil, err
	}
	return &Explainer{ana: ana}, nil
}

// ExplainText writes the PGN database in text format, completely understood
// messages first.
func (e *Explainer) ExplainText(w io.Writer) {
	fmt.Fprintf(w, "NMEA 2000 PGN database.\n\n"+
		"What follows is an explanation of the messages that this module understands. First is a list\n"+
		"of completely understood messages. What follows is a list of messages whose fields have\n"+
		"unknown content or size.\n\n")

	pgns := e.ana.state.PGNs
	fmt.Fprintf(w, "_______ Complete PGNs _________\n\n")
	for i := range pgns {
		if pgns[i].Complete == PacketStatusComplete && pgns[i].PGN < common.ActisenseBEM {
			e.explainPGN(w, &pgns[i])
		}
	}
	fmt.Fprintf(w, "_______ Incomplete PGNs _________\n\n")
	for i := range pgns {
		if pgns[i].Complete != PacketStatusComplete && pgns[i].PGN < common.ActisenseBEM {
			e.explainPGN(w, &pgns[i])
		}
	}
}

func (e *Explainer) explainPGN(w io.Writer, pgn *PGNInfo) {
	fmt.Fprintf(w, "PGN: %d / %08o / %05X - %s\n\n", pgn.PGN, pgn.PGN, pgn.PGN, pgn.Description)

	if pgn.RepeatingCount1 > 0 && pgn.RepeatingCount2 > 0 {
		fmt.Fprintf(w, "     The last %d and %d fields repeat until the data is exhausted.\n\n",
			pgn.RepeatingCount2, pgn.RepeatingCount1)
	} else if pgn.RepeatingCount1 > 0 {
		fmt.Fprintf(w, "     The last %d fields repeat until the data is exhausted.\n\n", pgn.RepeatingCount1)
	}

	for i := 0; i < int(pgn.FieldCount); i++ {
		f := &pgn.FieldList[i]

		if f.Description != "" {
			fmt.Fprintf(w, "  Field #%d: %s - %s\n", i+1, f.Name, f.Description)
		} else {
			fmt.Fprintf(w, "  Field #%d: %s\n", i+1, f.Name)
		}
		if f.Size == lenVariable {
			fmt.Fprintf(w, "                  Bits: variable\n")
		} else {
			fmt.Fprintf(w, "                  Bits: %d\n", f.Size)
		}

		if strings.HasPrefix(f.Unit, "=") {
			fmt.Fprintf(w, "                  Match: %s\n", f.Unit[1:])
		} else if f.Unit != "" {
			fmt.Fprintf(w, "                  Unit: %s\n", f.Unit)
		}

		if f.Resolution != 1.0 && f.Resolution != 0.0 {
			fmt.Fprintf(w, "                  Resolution: %g\n", f.Resolution)
		}
		fmt.Fprintf(w, "                  Signed: %t\n", f.HasSign)
		if f.Offset != 0 {
			fmt.Fprintf(w, "                  Offset: %d\n", f.Offset)
		}

		if f.Lookup.Name == "" {
			continue
		}
		if f.FieldType == "BITLOOKUP" {
			fmt.Fprintf(w, "                  BitEnumeration: %s\n", f.Lookup.Name)
			fmt.Fprintf(w, "           BitRange: 0..%d\n", f.Size-1)
			for _, bit := range sortedLookupKeys(lookupPairs[f.Lookup.Name]) {
				fmt.Fprintf(w, "                  Bit: %d=%s\n", bit, lookupPairs[f.Lookup.Name][bit])
			}
		} else {
			fmt.Fprintf(w, "                  Enumeration: %s\n", f.Lookup.Name)
			if !strings.HasPrefix(f.Unit, "=") && f.FieldType == "LOOKUP" {
				fmt.Fprintf(w, "                  Range: 0..%d\n", (uint64(1)<<f.Size)-1)
				for _, val := range sortedLookupKeys(lookupPairs[f.Lookup.Name]) {
					fmt.Fprintf(w, "                  Lookup: %d=%s\n", val, lookupPairs[f.Lookup.Name][val])
				}
			}
		}
	}

	fmt.Fprintf(w, "\n\n")
}

// ExplainXML writes the PGN database in XML format. The three booleans select
// which catalog ranges are exported: the normal bus PGNs, the Actisense
// pseudo range and the iKonvert pseudo range.
func (e *Explainer) ExplainXML(w io.Writer, normal, actisense, ikonvert bool) {
	fmt.Fprintf(w, "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n"+
		"<PGNDefinitions xmlns:xsi=\"http://www.w3.org/2001/XMLSchema-instance\" Version=\"%s\">\n"+
		"  <CreatorCode>N2K packet analyzer</CreatorCode>\n"+
		"  <License>Apache License Version 2.0</License>\n",
		SchemaVersion)

	if normal {
		e.explainLookupsXML(w)
	}

	fmt.Fprintf(w, "  <PGNs>\n")
	pgns := e.ana.state.PGNs
	for i := range pgns {
		prn := pgns[i].PGN
		if (normal && prn < common.ActisenseBEM) ||
			(actisense && prn >= common.ActisenseBEM && prn < common.IKonvertBEM) ||
			(ikonvert && prn >= common.IKonvertBEM) {
			e.explainPGNXML(w, &pgns[i])
		}
	}
	fmt.Fprintf(w, "  </PGNs>\n</PGNDefinitions>\n")
}

// explainLookupsXML exports every enumeration referenced from the catalog.
// Bit enumerations are listed separately since their keys are bit positions,
// not values.
func (e *Explainer) explainLookupsXML(w io.Writer) {
	bitTypes := map[string]bool{}
	pgns := e.ana.state.PGNs
	for i := range pgns {
		for j := 0; j < int(pgns[i].FieldCount); j++ {
			f := &pgns[i].FieldList[j]
			if f.FieldType == "BITLOOKUP" && f.Lookup.Name != "" {
				bitTypes[f.Lookup.Name] = true
			}
		}
	}

	names := make([]string, 0, len(lookupPairs))
	for name := range lookupPairs {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(w, "  <LookupEnumerations>\n")
	for _, name := range names {
		if bitTypes[name] {
			continue
		}
		keys := sortedLookupKeys(lookupPairs[name])
		if len(keys) == 0 {
			continue
		}
		fmt.Fprintf(w, "    <LookupEnumeration Name='%s' MaxValue='%d'>\n", name, keys[len(keys)-1])
		for _, val := range keys {
			fmt.Fprintf(w, "      <EnumPair Value='%d' Name='%s' />\n", val, xmlEscape(lookupPairs[name][val]))
		}
		fmt.Fprintf(w, "    </LookupEnumeration>\n")
	}
	fmt.Fprintf(w, "  </LookupEnumerations>\n")

	fmt.Fprintf(w, "  <LookupBitEnumerations>\n")
	for _, name := range names {
		if !bitTypes[name] {
			continue
		}
		keys := sortedLookupKeys(lookupPairs[name])
		if len(keys) == 0 {
			continue
		}
		fmt.Fprintf(w, "    <LookupBitEnumeration Name='%s' MaxValue='%d'>\n", name, keys[len(keys)-1])
		for _, bit := range keys {
			fmt.Fprintf(w, "      <BitPair Bit='%d' Name='%s' />\n", bit, xmlEscape(lookupPairs[name][bit]))
		}
		fmt.Fprintf(w, "    </LookupBitEnumeration>\n")
	}
	fmt.Fprintf(w, "  </LookupBitEnumerations>\n")
}

func (e *Explainer) explainPGNXML(w io.Writer, pgn *PGNInfo) {
	fmt.Fprintf(w, "    <PGNInfo>\n      <PGN>%d</PGN>\n", pgn.PGN)
	xmlElement(w, 6, "Id", pgn.CamelDescription)
	xmlElement(w, 6, "Description", pgn.Description)
	xmlElement(w, 6, "Explanation", pgn.Explanation)
	xmlElement(w, 6, "URL", pgn.URL)
	xmlElement(w, 6, "Type", pgn.PacketType.String())
	xmlElement(w, 6, "Complete", fmt.Sprintf("%t", pgn.Complete == PacketStatusComplete))
	xmlElement(w, 6, "Fallback", fmt.Sprintf("%t", pgn.Fallback))

	if pgn.Complete != PacketStatusComplete {
		fmt.Fprintf(w, "      <Missing>\n")
		missing := []struct {
			status PacketStatus
			name   string
		}{
			{PacketStatusFieldsUnknown, "Fields"},
			{PacketStatusFieldLengthsUnknown, "FieldLengths"},
			{PacketStatusResolutionUnknown, "Resolution"},
			{PacketStatusLookupsUnknown, "Lookups"},
			{PacketStatusNotSeen, "SampleData"},
			{PacketStatusIntervalUnknown, "Interval"},
		}
		for _, m := range missing {
			if pgn.Complete&m.status != 0 {
				fmt.Fprintf(w, "        <MissingAttribute>%s</MissingAttribute>\n", m.name)
			}
		}
		fmt.Fprintf(w, "      </Missing>\n")
	}

	if pgn.Interval != 0 {
		xmlElement(w, 6, "TransmissionInterval", fmt.Sprintf("%d", pgn.Interval))
	}
	if pgn.RepeatingCount1 > 0 {
		xmlElement(w, 6, "RepeatingFieldSet1Size", fmt.Sprintf("%d", pgn.RepeatingCount1))
		xmlElement(w, 6, "RepeatingFieldSet1StartField", fmt.Sprintf("%d", pgn.RepeatingStart1))
	}
	if pgn.RepeatingCount2 > 0 {
		xmlElement(w, 6, "RepeatingFieldSet2Size", fmt.Sprintf("%d", pgn.RepeatingCount2))
		xmlElement(w, 6, "RepeatingFieldSet2StartField", fmt.Sprintf("%d", pgn.RepeatingStart2))
	}

	fmt.Fprintf(w, "      <Fields>\n")
	bitOffset := 0
	showBitOffset := true
	for i := 0; i < int(pgn.FieldCount); i++ {
		f := &pgn.FieldList[i]

		fmt.Fprintf(w, "        <Field>\n")
		xmlElement(w, 10, "Order", fmt.Sprintf("%d", f.Order))
		xmlElement(w, 10, "Id", f.CamelName)
		xmlElement(w, 10, "Name", f.Name)
		xmlElement(w, 10, "Description", f.Description)
		if f.Size == lenVariable {
			xmlElement(w, 10, "BitLengthVariable", "true")
			showBitOffset = false
		} else {
			xmlElement(w, 10, "BitLength", fmt.Sprintf("%d", f.Size))
		}
		if showBitOffset {
			xmlElement(w, 10, "BitOffset", fmt.Sprintf("%d", bitOffset))
			xmlElement(w, 10, "BitStart", fmt.Sprintf("%d", bitOffset%8))
		}
		if strings.HasPrefix(f.Unit, "=") {
			xmlElement(w, 10, "Match", f.Unit[1:])
		} else if f.Unit != "" {
			xmlElement(w, 10, "Units", f.Unit)
		}
		if f.Resolution != 1.0 && f.Resolution != 0.0 {
			xmlElement(w, 10, "Resolution", fmt.Sprintf("%g", f.Resolution))
		}
		xmlElement(w, 10, "Signed", fmt.Sprintf("%t", f.HasSign))
		if f.Offset != 0 {
			xmlElement(w, 10, "Offset", fmt.Sprintf("%d", f.Offset))
		}
		xmlElement(w, 10, "FieldType", f.FieldType)
		if f.Lookup.Name != "" {
			if f.FieldType == "BITLOOKUP" {
				xmlElement(w, 10, "LookupBitEnumeration", f.Lookup.Name)
			} else {
				xmlElement(w, 10, "LookupEnumeration", f.Lookup.Name)
			}
		}
		fmt.Fprintf(w, "        </Field>\n")

		bitOffset += int(f.Size)
	}
	fmt.Fprintf(w, "      </Fields>\n    </PGNInfo>\n")
}

func xmlElement(w io.Writer, indent int, element, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(w, "%s<%s>%s</%s>\n", strings.Repeat(" ", indent), element, xmlEscape(value), element)
}

func xmlEscape(s string) string {
	var b strings.Builder
	//nolint:errcheck
	xml.EscapeText(&b, []byte(s))
	return b.String()
}

func sortedLookupKeys(pairs map[int]string) []int {
	keys := make([]int, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
