package analyzer

import (
	"testing"

	"go.viam.com/rdk/logging"
	"go.viam.com/test"
)

func TestGetMatchingPgnIdempotent(t *testing.T) {
	logger := logging.NewTestLogger(t)

	data := []byte{0x1a, 0x11, 0x00, 0x00, 0x00, 0x00, 0x00, 0xff}
	first, err := GetMatchingPgn(128267, data, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, first.Description, test.ShouldEqual, "Water Depth")

	second, err := GetMatchingPgn(128267, data, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, second, test.ShouldEqual, first)
}

func TestGetMatchingPgnFallbackRange(t *testing.T) {
	logger := logging.NewTestLogger(t)

	data := []byte{0x13, 0x99, 0x10, 0x20, 0x30, 0x40, 0x50, 0x60}
	first, err := GetMatchingPgn(65290, data, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, first.Fallback, test.ShouldBeTrue)
	test.That(t, first.PGN, test.ShouldEqual, 0xff00)

	second, err := GetMatchingPgn(65290, data, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, second, test.ShouldEqual, first)
}

func TestProprietaryFieldsStayInProprietaryRanges(t *testing.T) {
	a, err := NewAnalyzer(NewConfig(logging.NewTestLogger(t)))
	test.That(t, err, test.ShouldBeNil)

	msg, hasMsg, err := a.ProcessMessage("2014-08-12-22:07:50.139,7,65290,36,255,8,13,99,10,20,30,40,50,60")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, hasMsg, test.ShouldBeTrue)
	_, hasManufacturer := msg.Fields["Manufacturer Code"]
	test.That(t, hasManufacturer, test.ShouldBeTrue)

	msg, hasMsg, err = a.ProcessMessage("2014-08-12-22:07:50.139,3,128267,36,255,8,1a,11,00,00,00,00,00,ff")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, hasMsg, test.ShouldBeTrue)
	_, hasManufacturer = msg.Fields["Manufacturer Code"]
	test.That(t, hasManufacturer, test.ShouldBeFalse)
}
