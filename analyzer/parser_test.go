package analyzer

import (
	"testing"
	"time"

	"go.viam.com/rdk/logging"
	"go.viam.com/test"

	"github.com/seabus/n2kbridge/common"
)

func TestParser(t *testing.T) {
	msgData := "!PDGY,126998,6,200,255,7525.87,BQFpZDEFAWlkMhoBU3BvdFplcm8gUmV2ZXJzZSBPc21vc2lz"
	expected := &common.Message{
		Timestamp:   time.Time{}.Add(time.Microsecond * time.Duration(7525.87*1e3)),
		Priority:    6,
		Src:         200,
		Dst:         255,
		PGN:         126998,
		Description: "Configuration Information",
		Fields: map[string]interface{}{
			"Installation Description #1": "id1",
			"Installation Description #2": "id2",
			"Manufacturer Information":    "SpotZero Reverse Osmosis",
		},
	}

	t.Run("one shot", func(t *testing.T) {
		msg, format, err := ParseTextMessage(msgData)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, format.Name(), test.ShouldEqual, "NAVLINK2")
		test.That(t, msg, test.ShouldResemble, expected)
	})

	t.Run("preset parser format", func(t *testing.T) {
		msg, err := ParseTextMessageWithFormat(msgData, "NAVLINK2")
		test.That(t, err, test.ShouldBeNil)
		test.That(t, msg, test.ShouldResemble, expected)

		// try it again
		msg, err = ParseTextMessageWithFormat(msgData, "NAVLINK2")
		test.That(t, err, test.ShouldBeNil)
		test.That(t, msg, test.ShouldResemble, expected)
	})

	t.Run("invalid format for data is rejected", func(t *testing.T) {
		_, err := ParseTextMessageWithFormat(msgData, "GARMIN_CSV2")
		test.That(t, err, test.ShouldNotBeNil)
	})

	t.Run("unknown format name", func(t *testing.T) {
		_, err := ParseTextMessageWithFormat(msgData, "NOT_A_FORMAT")
		test.That(t, err, test.ShouldNotBeNil)
	})
}

func TestParseRawTextMessage(t *testing.T) {
	msg, format, err := ParseRawTextMessage(
		"!PDGY,126998,6,200,255,7525.87,BQFpZDEFAWlkMhoBU3BvdFplcm8gUmV2ZXJzZSBPc21vc2lz")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, format.Name(), test.ShouldEqual, "NAVLINK2")
	test.That(t, msg.PGN, test.ShouldEqual, 126998)
	test.That(t, len(msg.Data), test.ShouldEqual, 36)
}

func TestDYParse(t *testing.T) {
	logger := logging.NewTestLogger(t)
	parser, err := NewAnalyzer(NewConfig(logger))
	test.That(t, err, test.ShouldBeNil)

	// gateway status sentences do not carry a PGN
	msg, finished, err := parser.ProcessMessage("$PDGY,000000,0,0,2,28830,0,0")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, finished, test.ShouldBeFalse)
	test.That(t, msg, test.ShouldBeNil)
}

func TestSZParse(t *testing.T) {
	msgData := "!PDGY,126998,6,200,255,7525.87,BQFpZDEFAWlkMhoBU3BvdFplcm8gUmV2ZXJzZSBPc21vc2lz"

	logger := logging.NewTestLogger(t)
	p, err := NewAnalyzer(NewConfig(logger))
	test.That(t, err, test.ShouldBeNil)

	msg, finished, err := p.ProcessMessage(msgData)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, finished, test.ShouldBeTrue)
	test.That(t, len(msg.Fields), test.ShouldEqual, 3)
	test.That(t, msg.Fields["Manufacturer Information"], test.ShouldEqual, "SpotZero Reverse Osmosis")
}
