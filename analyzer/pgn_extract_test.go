package analyzer

import (
	"math"
	"testing"

	"go.viam.com/rdk/logging"
	"go.viam.com/test"
)

func TestExtractNumberRoundTrip(t *testing.T) {
	logger := logging.NewTestLogger(t)

	cases := []struct {
		name     string
		startBit int
		bits     int
		value    int64
	}{
		{"byte aligned", 0, 8, 0x5a},
		{"sub-byte", 3, 5, 0x15},
		{"crosses byte boundary", 6, 16, 0x1234},
		{"three bytes", 2, 20, 0xabcde},
		{"full width", 0, 64, 0x0123456789abcdef},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			writer := &bitWriter{}
			writer.writeBitRepeat(false, tc.startBit)
			writer.writeIntBits(tc.value, tc.bits)
			writer.flush()

			field := &PGNField{Name: "value", Size: uint32(tc.bits)}
			var value, maxValue int64
			ok := ExtractNumber(field, writer.data, tc.startBit, tc.bits, &value, &maxValue, logger)
			test.That(t, ok, test.ShouldBeTrue)
			test.That(t, value, test.ShouldEqual, tc.value)
			if tc.bits == 64 {
				test.That(t, maxValue, test.ShouldEqual, int64(math.MaxInt64))
			} else {
				test.That(t, maxValue, test.ShouldEqual, int64(1)<<tc.bits-1)
			}
		})
	}
}

func TestExtractNumberSigned(t *testing.T) {
	logger := logging.NewTestLogger(t)

	writer := &bitWriter{}
	writer.writeIntBits(-2, 16)
	writer.flush()

	field := &PGNField{Name: "value", Size: 16, HasSign: true}
	var value, maxValue int64
	ok := ExtractNumber(field, writer.data, 0, 16, &value, &maxValue, logger)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, value, test.ShouldEqual, -2)
	test.That(t, maxValue, test.ShouldEqual, 32767)
}

func TestExtractNumberShortData(t *testing.T) {
	logger := logging.NewTestLogger(t)

	field := &PGNField{Name: "value", Size: 32}
	var value, maxValue int64
	ok := ExtractNumber(field, []byte{0x01, 0x02}, 0, 32, &value, &maxValue, logger)
	test.That(t, ok, test.ShouldBeFalse)
}
