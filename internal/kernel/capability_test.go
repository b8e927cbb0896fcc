package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"plain", Plain, true},
		{"generic", Plain, true},
		{" FMA ", FMA, true},
		{"avx2", Plain, false},
		{"", Plain, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseKind(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "plain", Plain.String())
	assert.Equal(t, "fma", FMA.String())
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestSelectKind(t *testing.T) {
	tests := []struct {
		name       string
		override   string
		fma        bool
		want       Kind
		overridden bool
	}{
		{"auto with fma", "", true, FMA, false},
		{"auto without fma", "", false, Plain, false},
		{"force plain", "plain", true, Plain, true},
		{"force fma", "fma", true, FMA, true},
		{"fma unavailable", "fma", false, Plain, false},
		{"garbage", "sse9", true, FMA, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, overridden := selectKind(tt.override, tt.fma)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.overridden, overridden)
		})
	}
}

func TestActiveRequiresHardware(t *testing.T) {
	if Active() == FMA {
		assert.True(t, HasFMA())
	}
}
