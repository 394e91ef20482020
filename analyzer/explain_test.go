package analyzer

import (
	"strings"
	"testing"

	"go.viam.com/rdk/logging"
	"go.viam.com/test"
)

func TestExplainText(t *testing.T) {
	e, err := NewExplainer(NewConfig(logging.NewTestLogger(t)))
	test.That(t, err, test.ShouldBeNil)

	var out strings.Builder
	e.ExplainText(&out)
	txt := out.String()

	test.That(t, txt, test.ShouldContainSubstring, "_______ Complete PGNs _________")
	test.That(t, txt, test.ShouldContainSubstring, "_______ Incomplete PGNs _________")
	test.That(t, txt, test.ShouldContainSubstring, "Water Depth")
	test.That(t, txt, test.ShouldContainSubstring, "Enumeration: MANUFACTURER_CODE")
	// adapter pseudo PGNs are not part of the bus database
	test.That(t, txt, test.ShouldNotContainSubstring, "iKonvert: Network status")
}

func TestExplainXML(t *testing.T) {
	e, err := NewExplainer(NewConfig(logging.NewTestLogger(t)))
	test.That(t, err, test.ShouldBeNil)

	var out strings.Builder
	e.ExplainXML(&out, true, false, false)
	x := out.String()
	test.That(t, x, test.ShouldContainSubstring, "<PGNDefinitions")
	test.That(t, x, test.ShouldContainSubstring, "</PGNDefinitions>")
	test.That(t, x, test.ShouldContainSubstring, "<Description>Water Depth</Description>")
	test.That(t, x, test.ShouldContainSubstring, "<LookupEnumeration Name='MANUFACTURER_CODE'")
	test.That(t, x, test.ShouldNotContainSubstring, "iKonvert: Network status")

	out.Reset()
	e.ExplainXML(&out, false, false, true)
	x = out.String()
	test.That(t, x, test.ShouldContainSubstring, "iKonvert: Network status")
	test.That(t, x, test.ShouldNotContainSubstring, "<Description>Water Depth</Description>")
	test.That(t, x, test.ShouldNotContainSubstring, "Actisense: Operating mode")

	out.Reset()
	e.ExplainXML(&out, false, true, false)
	x = out.String()
	test.That(t, x, test.ShouldContainSubstring, "Actisense: Operating mode")
}
