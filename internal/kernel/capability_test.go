package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
		ok   bool
	}{
		{"generic", Generic, true},
		{"GONUM", Gonum, true},
		{" fma ", FMA, true},
		{"avx2", Generic, false},
		{"", Generic, false},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseMode(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "generic", Generic.String())
	assert.Equal(t, "gonum", Gonum.String())
	assert.Equal(t, "fma", FMA.String())
	assert.Equal(t, "unknown", Mode(42).String())
}

func TestUseRestores(t *testing.T) {
	before := ActiveMode()

	restore := Use(Generic)
	assert.Equal(t, Generic, ActiveMode())
	restore()

	assert.Equal(t, before, ActiveMode())
}

func TestUseIgnoresUnavailable(t *testing.T) {
	restore := Use(Gonum)
	defer restore()

	if HasFMA() {
		t.Skip("FMA available on this CPU")
	}

	inner := Use(FMA)
	defer inner()
	assert.Equal(t, Gonum, ActiveMode())
}

func TestDefaultModeIsNeverFMA(t *testing.T) {
	assert.Equal(t, Gonum, selectBestMode())

	if !IsOverridden() {
		assert.NotEqual(t, FMA, ActiveMode())
	}
}

func TestUseFMAIsOptIn(t *testing.T) {
	if !HasFMA() {
		t.Skip("no hardware FMA")
	}
	restore := Use(FMA)
	defer restore()

	assert.Equal(t, FMA, ActiveMode())
}
