package analyzer

import (
	"testing"

	"go.viam.com/rdk/logging"
	"go.viam.com/test"
)

func TestFieldTypeRegistry(t *testing.T) {
	a, err := newAnalyzer(NewConfig(logging.NewTestLogger(t)))
	test.That(t, err, test.ShouldBeNil)

	ft, _ := a.GetFieldType("NUMBER")
	test.That(t, ft, test.ShouldNotBeNil)
	test.That(t, ft.Name, test.ShouldEqual, "NUMBER")

	ft, _ = a.GetFieldType("UNSIGNED_INTEGER")
	test.That(t, ft, test.ShouldNotBeNil)
	test.That(t, ft.BaseFieldTypePtr, test.ShouldNotBeNil)
	test.That(t, ft.BaseFieldTypePtr.Name, test.ShouldEqual, "NUMBER")

	ft, _ = a.GetFieldType("NOT_A_FIELD_TYPE")
	test.That(t, ft, test.ShouldBeNil)
}
