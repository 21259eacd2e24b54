package quorum

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/quorum/crypto/bech32"
	"github.com/iov-one/quorum/errors"
)

func TestParseAddress(t *testing.T) {
	want := BytesToAddress([]byte{0xde, 0xad, 0xbe, 0xef, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16})
	bech, err := bech32.Encode("quorum", want[:])
	if err != nil {
		t.Fatalf("cannot encode bech32: %s", err)
	}

	cases := map[string]struct {
		enc     string
		want    Address
		wantErr *errors.Error
	}{
		"hex with prefix": {
			enc:  "0xdeadbeef0102030405060708090a0b0c0d0e0f10",
			want: want,
		},
		"hex without prefix": {
			enc:  "DEADBEEF0102030405060708090A0B0C0D0E0F10",
			want: want,
		},
		"bech32": {
			enc:  "bech32:" + string(bech),
			want: want,
		},
		"too short": {
			enc:     "0xdeadbeef",
			wantErr: errors.ErrInput,
		},
		"not hex": {
			enc:     "0xzz",
			wantErr: errors.ErrInput,
		},
		"broken bech32": {
			enc:     "bech32:quorum1xyz",
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := ParseAddress(tc.enc)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if got != tc.want {
				t.Fatalf("want %s, got %s", tc.want, got)
			}
		})
	}
}

func TestAddressOrdering(t *testing.T) {
	low := BytesToAddress([]byte{1})
	high := BytesToAddress([]byte{2})

	if !low.Less(high) {
		t.Fatal("low must be less than high")
	}
	if high.Less(low) || low.Less(low) {
		t.Fatal("ordering must be strict")
	}
	if low.Compare(low) != 0 {
		t.Fatal("address must be equal to itself")
	}
}

func TestAddressJSON(t *testing.T) {
	addr := BytesToAddress([]byte{0xab, 0xcd})
	raw, err := json.Marshal(addr)
	if err != nil {
		t.Fatalf("cannot marshal: %s", err)
	}
	var got Address
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("cannot unmarshal: %s", err)
	}
	if got != addr {
		t.Fatalf("want %s, got %s", addr, got)
	}
}

func TestAddressValidate(t *testing.T) {
	if err := ZeroAddress.Validate(); !errors.ErrInput.Is(err) {
		t.Fatalf("zero address must be invalid, got %v", err)
	}
	if err := BytesToAddress([]byte{1}).Validate(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
}
