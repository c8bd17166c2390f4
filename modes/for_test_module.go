package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// ModuleForTest is the mode of package tests. It provides the running
// *testing.T to anything that asks for one.
type ModuleForTest struct {
	dscope.Module
	t *testing.T
}

func ForTest(t *testing.T) ModuleForTest {
	return ModuleForTest{
		t: t,
	}
}

func (m ModuleForTest) T() *testing.T {
	return m.t
}

func (m ModuleForTest) Mode() Mode {
	return ModeDevelopment
}
