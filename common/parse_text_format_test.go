package common

import (
	"go.viam.com/test"
	"testing"
)

func TestNavLink2a(t *testing.T) {
	p := navLink2Parser{}
	m := RawMessage{}

	msgData := "!PDGY,130567,6,200,255,25631.18,RgPczwYAQnYeAB4AAAADAAAAAABQbiMA"
	test.That(t, p.Detect(msgData), test.ShouldBeTrue)
	err := p.Parse(msgData, &m)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(m.Data), test.ShouldEqual, 24)
	test.That(t, m.PGN, test.ShouldEqual, 130567)

	msgData = "!PDGY,126998,6,200,255,7525.87,BQFpZDEFAWlkMhoBU3BvdFplcm8gUmV2ZXJzZSBPc21vc2lz"
	test.That(t, p.Detect(msgData), test.ShouldBeTrue)
	err = p.Parse(msgData, &m)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(m.Data), test.ShouldEqual, 36)
	test.That(t, m.PGN, test.ShouldEqual, 126998)

	msgData = "!PDGY,126998,6,200,255,7525.87,050169643105016964321A0153706F745A65726F2052657665727365204F736D6F736973"
	test.That(t, p.Detect(msgData), test.ShouldBeTrue)
	err = p.Parse(msgData, &m)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, m.PGN, test.ShouldEqual, 126998)
	test.That(t, len(m.Data), test.ShouldEqual, 36)

	test.That(t, p.Detect("asd"), test.ShouldBeFalse)
}

func TestFindParser(t *testing.T) {
	cases := []struct {
		line   string
		format string
	}{
		{"!PDGY,126998,6,200,255,7525.87,BQFpZDEFAWlkMhoBU3BvdFplcm8gUmV2ZXJzZSBPc21vc2lz", "NAVLINK2"},
		{"00:17:55.475 R 19F016C8 00 24 05 01 69 64 31 05", "YDWG02"},
		{"2014-08-12-22:07:50.139,3,128267,36,255,8,1a,11,00,00,00,00,00,ff", "PLAIN_OR_FAST"},
		{"$PCDIN,01F119,00000000,0F,2AAF00D1067414FF*59", "CHETCO"},
	}
	for _, tc := range cases {
		t.Run(tc.format, func(t *testing.T) {
			p := FindParser(tc.line)
			test.That(t, p, test.ShouldNotBeNil)
			test.That(t, p.Name(), test.ShouldEqual, tc.format)

			test.That(t, FindParserByName(tc.format), test.ShouldEqual, p)
		})
	}

	test.That(t, FindParser("not a known wire format"), test.ShouldBeNil)
	test.That(t, FindParserByName("NOT_A_FORMAT"), test.ShouldBeNil)
}
