package money

import "testing"

func TestFormat(t *testing.T) {
	cases := map[int64]string{
		0:          "$0",
		999:        "$999",
		25000:      "$25,000",
		4_500_000:  "$4,500,000",
		-1_500_000: "-$1,500,000",
	}
	for in, want := range cases {
		if got := Format(in); got != want {
			t.Fatalf("Format(%d) = %q, want %q", in, got, want)
		}
	}
}
