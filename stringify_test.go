package bigword

import "testing"

func TestStringDecimal(t *testing.T) {
	tests := []struct {
		v    int64
		want string
	}{
		{0, "0"},
		{5, "5"},
		{-5, "-5"},
		{12345, "12345"},
		{-67890, "-67890"},
	}
	for _, tc := range tests {
		b := FromInt[int64, uint16](tc.v)
		if got := b.String(); got != tc.want {
			t.Errorf("String(%d) = %q, want %q", tc.v, got, tc.want)
		}
	}
}

func TestFormatHex(t *testing.T) {
	b := FromInt[int64, uint16](255)
	if got := b.Format(Hex, 0); got != "FF" {
		t.Errorf("Format(Hex) on 255 = %q, want %q", got, "FF")
	}
}

func TestFormatOctal(t *testing.T) {
	b := FromInt[int64, uint16](8)
	if got := b.Format(Octal, 0); got != "10" {
		t.Errorf("Format(Octal) on 8 = %q, want %q", got, "10")
	}
}

func TestFormatBinaryZeroPaddedToWidth(t *testing.T) {
	b := FromInt[int64, uint8](5)
	if got := b.Format(Binary, 0); got != "00000101" {
		t.Errorf("Format(Binary) on 5 (W=8) = %q, want %q", got, "00000101")
	}
}

func TestFormatBinaryZeroValue(t *testing.T) {
	b := New[uint8]()
	if got := b.Format(Binary, 0); got != "00000000" {
		t.Errorf("Format(Binary) on 0 (W=8) = %q, want %q", got, "00000000")
	}
}

func TestFormatWithSeparator(t *testing.T) {
	b := FromInt[int64, uint32](1234567)
	got := b.Format(Decimal, '_')
	want := "1_234_567"
	if got != want {
		t.Errorf("Format(Decimal, '_') on 1234567 = %q, want %q", got, want)
	}
}
