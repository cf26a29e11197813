package blend

import (
	"errors"
	"testing"
)

func TestModeNamesRoundTrip(t *testing.T) {
	for _, m := range Modes() {
		got, err := ParseMode(m.String())
		if err != nil {
			t.Fatalf("ParseMode(%q) error: %v", m.String(), err)
		}
		if got != m {
			t.Errorf("ParseMode(%q) = %v, want %v", m.String(), got, m)
		}
	}
}

func TestModeHostIndices(t *testing.T) {
	tests := []struct {
		index int
		want  Mode
		name  string
	}{
		{0, Mix, "mix"},
		{2, Multiply, "multiply"},
		{6, Divide, "divide"},
		{11, Burn, "burn"},
		{15, Color, "color"},
		{16, SoftLight, "soft"},
		{17, LinearLight, "linear"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ModeFromIndex(tt.index)
			if err != nil {
				t.Fatalf("ModeFromIndex(%d) error: %v", tt.index, err)
			}
			if got != tt.want || got.String() != tt.name {
				t.Errorf("ModeFromIndex(%d) = %v, want %v", tt.index, got, tt.want)
			}
		})
	}
}

func TestInvalidModes(t *testing.T) {
	for _, i := range []int{-1, 18, 255, 1 << 20} {
		if _, err := ModeFromIndex(i); !errors.Is(err, ErrInvalidMode) {
			t.Errorf("ModeFromIndex(%d) error = %v, want ErrInvalidMode", i, err)
		}
	}
	for _, name := range []string{"", "Mix", "normal", "soft light"} {
		if _, err := ParseMode(name); !errors.Is(err, ErrInvalidMode) {
			t.Errorf("ParseMode(%q) error = %v, want ErrInvalidMode", name, err)
		}
	}
	if Mode(18).Valid() {
		t.Error("Mode(18) should be invalid")
	}
	if got := Mode(30).String(); got != "Mode(30)" {
		t.Errorf("Mode(30).String() = %q", got)
	}
}

func TestSeparable(t *testing.T) {
	nonSeparable := map[Mode]bool{Hue: true, Saturation: true, Value: true, Color: true}
	for _, m := range Modes() {
		if got := m.Separable(); got == nonSeparable[m] {
			t.Errorf("%v.Separable() = %v", m, got)
		}
		if m.Separable() != (channelFuncs[m] != nil) {
			t.Errorf("%v: channel table disagrees with Separable()", m)
		}
	}
	if Mode(99).Separable() {
		t.Error("invalid mode reported separable")
	}
}

func TestModesCount(t *testing.T) {
	if got := len(Modes()); got != 18 {
		t.Errorf("len(Modes()) = %d, want 18", got)
	}
}
