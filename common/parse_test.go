package common

import (
	"testing"
	"time"

	"go.viam.com/test"
)

func TestParseTimestamp(t *testing.T) {
	ts, err := ParseTimestamp("2022-09-28-11:36:59.668")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, ts.Equal(time.Date(2022, time.September, 28, 11, 36, 59, 668000000, time.UTC)), test.ShouldBeTrue)

	ts, err = ParseTimestamp("2022-09-28T11:36:59.668Z")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, ts.Equal(time.Date(2022, time.September, 28, 11, 36, 59, 668000000, time.UTC)), test.ShouldBeTrue)

	ts, err = ParseTimestamp("2022-09-28T11:36:59Z")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, ts.Equal(time.Date(2022, time.September, 28, 11, 36, 59, 0, time.UTC)), test.ShouldBeTrue)

	ts, err = ParseTimestamp("04 Sep 24 15:14 +1234")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, ts, test.ShouldEqual, time.Date(2024, time.September, 4, 15, 14, 1, 234000000, time.Local))

	_, err = ParseTimestamp("not a timestamp")
	test.That(t, err, test.ShouldNotBeNil)
}

func TestSeparateSingleOrFastPacketsSingleFrame(t *testing.T) {
	rm := RawMessage{
		Prio: 3,
		PGN:  129025,
		Src:  36,
		Dst:  255,
		Data: []byte{1, 2, 3, 4, 5, 6, 7, 8},
	}
	frames, err := rm.SeparateSingleOrFastPackets(false)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(frames), test.ShouldEqual, 1)
	test.That(t, frames[0].Data, test.ShouldResemble, []byte{1, 2, 3, 4, 5, 6, 7, 8})
}

func TestSeparateFastPackets(t *testing.T) {
	data := make([]byte, 18)
	for i := range data {
		data[i] = byte(i + 1)
	}
	rm := RawMessage{
		Prio:     6,
		PGN:      129029,
		Src:      2,
		Dst:      255,
		Sequence: 2,
		Data:     data,
	}

	frames, err := rm.SeparateFastPackets()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(frames), test.ShouldEqual, 3)

	// frame 0 carries seq/frame, total size and six payload bytes
	test.That(t, frames[0].Data, test.ShouldResemble, []byte{0x40, 18, 1, 2, 3, 4, 5, 6})
	// later frames carry seq/frame and seven payload bytes
	test.That(t, frames[1].Data, test.ShouldResemble, []byte{0x41, 7, 8, 9, 10, 11, 12, 13})
	// the final frame is padded with 0xff
	test.That(t, frames[2].Data, test.ShouldResemble, []byte{0x42, 14, 15, 16, 17, 18, 0xff, 0xff})

	for idx, frame := range frames {
		test.That(t, frame.PGN, test.ShouldEqual, 129029)
		test.That(t, frame.Frame, test.ShouldEqual, byte(idx))
	}
}

func TestSeparateFastPacketsTooLarge(t *testing.T) {
	rm := RawMessage{PGN: 129029, Data: make([]byte, FastPacketMaxSize+1)}
	_, err := rm.SeparateFastPackets()
	test.That(t, err, test.ShouldNotBeNil)

	rm.Data = nil
	_, err = rm.SeparateFastPackets()
	test.That(t, err, test.ShouldNotBeNil)
}
