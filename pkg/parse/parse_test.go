package parse

import (
	"testing"

	"github.com/petbrain/petway/pkg/status"
	"github.com/petbrain/petway/pkg/typereg"
)

func TestNumberDecimalSigned(t *testing.T) {
	v, st := Number("-42")
	if st.IsError() || v.AsSigned() != -42 {
		t.Fatalf("got %v, %v", v, st)
	}
}

func TestNumberOverflowsToUnsigned(t *testing.T) {
	v, st := Number("18446744073709551615") // max uint64
	if st.IsError() {
		t.Fatalf("unexpected error: %v", st)
	}
	if v.Type != typereg.Unsigned || v.AsUnsigned() != 18446744073709551615 {
		t.Fatalf("expected Unsigned max, got %v", v)
	}
}

func TestNumberPrefixesAndSeparators(t *testing.T) {
	cases := map[string]int64{
		"0b1010":   10,
		"0o17":     15,
		"0x1F":     31,
		"1_000":    1000,
		"1'000'000": 1000000,
	}
	for input, want := range cases {
		v, st := Number(input)
		if st.IsError() || v.AsSigned() != want {
			t.Errorf("Number(%q) = %v, %v; want %d", input, v, st, want)
		}
	}
}

func TestNumberRejectsBadSeparators(t *testing.T) {
	for _, bad := range []string{"_100", "100_", "1__00"} {
		if _, st := Number(bad); !st.IsError() {
			t.Errorf("Number(%q) should fail", bad)
		}
	}
}

func TestNumberFloat(t *testing.T) {
	v, st := Number("3.25e2")
	if st.IsError() || v.AsFloat() != 325 {
		t.Fatalf("got %v, %v", v, st)
	}
}

func TestDatetimeBasic(t *testing.T) {
	v, st := Datetime("2024-03-05T12:30:45.5Z")
	if st.IsError() {
		t.Fatalf("unexpected error: %v", st)
	}
	dt := v.AsDateTime()
	if dt.Year != 2024 || dt.Month != 3 || dt.Day != 5 || dt.Hour != 12 || dt.Minute != 30 || dt.Second != 45 {
		t.Fatalf("got %+v", dt)
	}
	if dt.Nanosecond != 500_000_000 {
		t.Fatalf("fractional seconds = %d, want 500000000", dt.Nanosecond)
	}
	if dt.Zone != "UTC" {
		t.Fatalf("zone = %q, want UTC", dt.Zone)
	}
}

func TestDatetimeDateOnly(t *testing.T) {
	v, st := Datetime("20240305")
	if st.IsError() {
		t.Fatalf("unexpected error: %v", st)
	}
	dt := v.AsDateTime()
	if dt.Year != 2024 || dt.Month != 3 || dt.Day != 5 {
		t.Fatalf("got %+v", dt)
	}
}

func TestTimestamp(t *testing.T) {
	v, st := Timestamp("1700000000.25")
	if st.IsError() {
		t.Fatalf("unexpected error: %v", st)
	}
	ts := v.AsTimestamp()
	if ts.Seconds != 1700000000 || ts.Nanoseconds != 250_000_000 {
		t.Fatalf("got %+v", ts)
	}
}

func TestInetAddressWithPort(t *testing.T) {
	ia, st := ParseInetAddress("192.168.0.1:8080")
	if st.IsError() || ia.Port != 8080 || !ia.HasPort {
		t.Fatalf("got %+v, %v", ia, st)
	}
}

func TestInetAddressIPv6Bracketed(t *testing.T) {
	ia, st := ParseInetAddress("[::1]:443")
	if st.IsError() || !ia.Addr.Is6() || ia.Port != 443 {
		t.Fatalf("got %+v, %v", ia, st)
	}
}

func TestInetAddressBadPort(t *testing.T) {
	if _, st := ParseInetAddress("192.168.0.1:notaport"); st.Code != status.BAD_PORT {
		t.Fatalf("expected BAD_PORT, got %v", st)
	}
}

func TestSubnetCIDR(t *testing.T) {
	sn, st := ParseSubnet("192.168.0.0/24", "")
	if st.IsError() || sn.Bits != 24 || sn.Addr.String() != "192.168.0.0" {
		t.Fatalf("got %+v, %v", sn, st)
	}
}

func TestSubnetDottedNetmask(t *testing.T) {
	sn, st := ParseSubnet("192.168.0.0", "255.255.255.0")
	if st.IsError() || sn.Bits != 24 {
		t.Fatalf("got %+v, %v", sn, st)
	}
}

func TestSubnetBadNetmask(t *testing.T) {
	if _, st := ParseSubnet("192.168.0.0/124", ""); st.Code != status.BAD_NETMASK {
		t.Fatalf("expected BAD_NETMASK, got %v", st)
	}
}
