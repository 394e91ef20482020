package analyzer

import (
	"testing"
	"time"

	"go.viam.com/rdk/logging"
	"go.viam.com/test"

	"github.com/seabus/n2kbridge/common"
)

func TestProcessMessageWaterDepth(t *testing.T) {
	a, err := NewAnalyzer(NewConfig(logging.NewTestLogger(t)))
	test.That(t, err, test.ShouldBeNil)

	line := "2014-08-12-22:07:50.139,3,128267,36,255,8,1a,11,00,00,00,00,00,ff"
	msg, hasMsg, err := a.ProcessMessage(line)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, hasMsg, test.ShouldBeTrue)
	test.That(t, msg.PGN, test.ShouldEqual, 128267)
	test.That(t, msg.Description, test.ShouldEqual, "Water Depth")
	test.That(t, msg.Priority, test.ShouldEqual, 3)
	test.That(t, msg.Src, test.ShouldEqual, 36)
	test.That(t, msg.Dst, test.ShouldEqual, 255)

	test.That(t, msg.Fields["SID"], test.ShouldEqual, 26)
	test.That(t, msg.Fields["Depth"], test.ShouldAlmostEqual, 0.17)
	test.That(t, msg.Fields["Offset"], test.ShouldAlmostEqual, 0)
	// 0xff means the max measurement range is unavailable
	_, hasRange := msg.Fields["Range"]
	test.That(t, hasRange, test.ShouldBeFalse)
}

func TestFastPacketReassembly(t *testing.T) {
	a, err := NewAnalyzer(NewConfig(logging.NewTestLogger(t)))
	test.That(t, err, test.ShouldBeNil)

	// PGN 126998 from src 200 split over six frames, with frames one and
	// two swapped the way a YDWG-02 can deliver them.
	lines := []string{
		"00:17:55.475 R 19F016C8 00 24 05 01 69 64 31 05",
		"00:17:55.477 R 19F016C8 02 70 6F 74 5A 65 72 6F",
		"00:17:55.476 R 19F016C8 01 01 69 64 32 1A 01 53",
		"00:17:55.478 R 19F016C8 03 20 52 65 76 65 72 73",
		"00:17:55.479 R 19F016C8 04 65 20 4F 73 6D 6F 73",
	}
	for _, line := range lines {
		msg, hasMsg, err := a.ProcessMessage(line)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, hasMsg, test.ShouldBeFalse)
		test.That(t, msg, test.ShouldBeNil)
	}

	msg, hasMsg, err := a.ProcessMessage("00:17:55.480 R 19F016C8 05 69 73 FF FF FF FF FF")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, hasMsg, test.ShouldBeTrue)
	test.That(t, msg.PGN, test.ShouldEqual, 126998)
	test.That(t, msg.Description, test.ShouldEqual, "Configuration Information")
	test.That(t, msg.Src, test.ShouldEqual, 200)
	test.That(t, msg.Fields["Installation Description #1"], test.ShouldEqual, "id1")
	test.That(t, msg.Fields["Installation Description #2"], test.ShouldEqual, "id2")
	test.That(t, msg.Fields["Manufacturer Information"], test.ShouldEqual, "SpotZero Reverse Osmosis")
}

func TestProcessMessageUnknownPGNFallsBack(t *testing.T) {
	a, err := NewAnalyzer(NewConfig(logging.NewTestLogger(t)))
	test.That(t, err, test.ShouldBeNil)

	line := "2014-08-12-22:07:50.139,7,65290,36,255,8,13,99,10,20,30,40,50,60"
	msg, hasMsg, err := a.ProcessMessage(line)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, hasMsg, test.ShouldBeTrue)
	test.That(t, msg.PGN, test.ShouldEqual, 65290)
	test.That(t, msg.Description, test.ShouldEqual, "0xFF00-0xFFFF: Manufacturer Proprietary single-frame non-addressed")
	test.That(t, len(msg.Fields), test.ShouldBeGreaterThan, 0)
}

func TestProcessMessageUnknownFormat(t *testing.T) {
	a, err := NewAnalyzer(NewConfig(logging.NewTestLogger(t)))
	test.That(t, err, test.ShouldBeNil)

	_, _, err = a.ProcessMessage("this is not nmea data")
	test.That(t, err, test.ShouldNotBeNil)

	// comments and blank lines are skipped without error
	_, hasMsg, err := a.ProcessMessage("# a comment")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, hasMsg, test.ShouldBeFalse)
	_, hasMsg, err = a.ProcessMessage("   ")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, hasMsg, test.ShouldBeFalse)
}

func TestConvertRawMessageIKonvertStatus(t *testing.T) {
	a, err := NewAnalyzer(NewConfig(logging.NewTestLogger(t)))
	test.That(t, err, test.ShouldBeNil)

	raw := &common.RawMessage{
		Prio: 7,
		PGN:  common.IKonvertBEM,
		Src:  0,
		Dst:  255,
		Len:  15,
		Data: []byte{
			12, // network load
			0, 0, 0, 0, // errors
			14,                     // device count
			0x80, 0x51, 0x01, 0x00, // uptime 86400 s
			3,                      // gateway address
			0xff, 0xff, 0xff, 0xff, // rejected TX requests unavailable
		},
	}
	msg, hasMsg, err := a.ConvertRawMessage(raw)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, hasMsg, test.ShouldBeTrue)
	test.That(t, msg.Description, test.ShouldEqual, "iKonvert: Network status")
	test.That(t, msg.Fields["CAN network load"], test.ShouldEqual, 12)
	test.That(t, msg.Fields["Errors"], test.ShouldEqual, 0)
	test.That(t, msg.Fields["Device count"], test.ShouldEqual, 14)
	test.That(t, msg.Fields["Uptime"], test.ShouldEqual, 24*time.Hour)
	test.That(t, msg.Fields["Gateway address"], test.ShouldEqual, 3)
	_, hasRejected := msg.Fields["Rejected TX requests"]
	test.That(t, hasRejected, test.ShouldBeFalse)
}
