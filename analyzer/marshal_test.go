package analyzer

import (
	"io"
	"strings"
	"testing"
	"time"

	"go.viam.com/test"

	"github.com/seabus/n2kbridge/common"
)

var (
	shortMessage = &common.Message{
		Timestamp:   time.Date(2022, time.September, 10, 12, 10, 16, 614000000, time.UTC),
		Priority:    6,
		Src:         5,
		Dst:         255,
		PGN:         60928,
		Description: "ISO Address Claim",
		Fields: map[string]interface{}{
			"Arbitrary Address Capable": 1,
			"Device Class":              "Steering and Control surfaces",
			"Device Function":           "Rudder",
			"Device Instance Lower":     0,
			"Device Instance Upper":     0,
			"Industry Group":            "Marine Industry",
			"Manufacturer Code":         "Navico",
			"System Instance":           0,
			"Unique Number":             1088507,
		},
	}
	longMessage = &common.Message{
		Timestamp:   time.Date(2022, time.September, 28, 11, 36, 59, 668000000, time.UTC),
		Priority:    3,
		Src:         0,
		Dst:         255,
		PGN:         129029,
		Description: "GNSS Position Data",
		Fields: map[string]interface{}{
			"Altitude":           90.98460299999999,
			"Date":               time.Date(2013, time.March, 1, 0, 0, 0, 0, time.UTC),
			"GNSS type":          "GPS+SBAS/WAAS",
			"Geoidal Separation": -33.63,
			"HDOP":               1.11,
			"Integrity":          "No integrity checking",
			"Latitude":           42.496768422109845,
			"Longitude":          -71.58366365704198,
			"Method":             "GNSS fix",
			"Number of SVs":      8,
			"PDOP":               1.9000000000000001,
			"Reference Stations": 0,
			"SID":                231,
			"Time":               time.Duration(70192000000000),
		},
	}
)

func TestMarshalMessageToRaw(t *testing.T) {
	t.Run("short", func(t *testing.T) {
		rawMsg, err := MarshalMessageToRaw(shortMessage)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, rawMsg.Len, test.ShouldEqual, 8)

		rtMsg, ok, err := ConvertRawMessage(rawMsg)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, rtMsg, test.ShouldResemble, shortMessage)
	})

	t.Run("long", func(t *testing.T) {
		rawMsg, err := MarshalMessageToRaw(longMessage)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, rawMsg.Len, test.ShouldEqual, 43)

		rtMsg, ok, err := ConvertRawMessage(rawMsg)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, rtMsg, test.ShouldResemble, longMessage)
	})
}

func TestMarshalRawToPlainTextRoundTrip(t *testing.T) {
	rawMsg, err := MarshalMessageToRaw(shortMessage)
	test.That(t, err, test.ShouldBeNil)

	md, err := common.MarshalRawMessageToPlainFormat(rawMsg, common.MultiPacketsSeparate)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, strings.Count(md, "\n"), test.ShouldEqual, 1)

	reader, err := NewMessageReader(strings.NewReader(md))
	test.That(t, err, test.ShouldBeNil)
	rtMsg, err := reader.Read()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rtMsg, test.ShouldResemble, shortMessage)

	_, err = reader.Read()
	test.That(t, err, test.ShouldBeError, io.EOF)
}

func TestMarshalRawToFastTextRoundTrip(t *testing.T) {
	rawMsg, err := MarshalMessageToRaw(longMessage)
	test.That(t, err, test.ShouldBeNil)

	// a payload this size cannot be a single plain frame
	_, err = common.MarshalRawMessageToPlainFormat(rawMsg, common.MultiPacketsSeparate)
	test.That(t, err, test.ShouldNotBeNil)

	md, err := common.MarshalRawMessageToFastFormat(rawMsg, common.MultiPacketsCoalesced)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, strings.Count(md, "\n"), test.ShouldEqual, 1)

	reader, err := NewMessageReader(strings.NewReader(md))
	test.That(t, err, test.ShouldBeNil)
	rtMsg, err := reader.Read()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rtMsg, test.ShouldResemble, longMessage)

	_, err = reader.Read()
	test.That(t, err, test.ShouldBeError, io.EOF)
}

func TestMarshalRawToSeparateFrames(t *testing.T) {
	rawMsg, err := MarshalMessageToRaw(longMessage)
	test.That(t, err, test.ShouldBeNil)

	raws, err := rawMsg.SeparateSingleOrFastPackets(true)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(raws), test.ShouldEqual, 7)

	ana, err := newOneOffAnalyzer()
	test.That(t, err, test.ShouldBeNil)

	for _, raw := range raws[:len(raws)-1] {
		_, hasMsg, err := ana.ConvertRawMessage(raw)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, hasMsg, test.ShouldBeFalse)
	}
	rtMsg, hasMsg, err := ana.ConvertRawMessage(raws[len(raws)-1])
	test.That(t, err, test.ShouldBeNil)
	test.That(t, hasMsg, test.ShouldBeTrue)

	test.That(t, rtMsg, test.ShouldResemble, longMessage)
}
