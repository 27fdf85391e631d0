package valueobjects_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestValueObjects(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "ValueObjects Suite")
}
