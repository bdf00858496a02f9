package describe

import (
	"errors"
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		wantDirty     bool
		wantHash      string
		wantDistance  int
		wantFragments []string
	}{
		{"three fragments", "1.2.3", false, "", 0, []string{"1", "2", "3"}},
		{"two fragments", "1.2", false, "", 0, []string{"1", "2"}},
		{"release tag", "R_0_6_3", false, "", 0, []string{"0", "6", "3"}},
		{"hash and distance", "v1.2.3-5-gabcdef", false, "abcdef", 5, []string{"1", "2", "3"}},
		{"dirty", "1.2.3-dirty", true, "", 0, []string{"1", "2", "3"}},
		{"hash and dirty", "1.2.3-5-gabcdef-dirty", true, "abcdef", 5, []string{"1", "2", "3"}},
		{"dash delimited", "1-2-3", false, "", 0, []string{"1", "2", "3"}},
		{"dash delimited with hash", "1-2-3-12-g0a1b2c3", false, "0a1b2c3", 12, []string{"1", "2", "3"}},
		{"trailing newline", "0.5.1\n", false, "", 0, []string{"0", "5", "1"}},
		{"zero distance", "v4.8.0-0-gdeadbee", false, "deadbee", 0, []string{"4", "8", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if d.Dirty() != tt.wantDirty {
				t.Errorf("Dirty() = %v, want %v", d.Dirty(), tt.wantDirty)
			}

			hash, hasHash := d.CommitHash()
			distance, hasDistance := d.CommitsSinceTag()
			if hasHash != hasDistance {
				t.Errorf("hash present = %v but distance present = %v", hasHash, hasDistance)
			}
			if hash != tt.wantHash {
				t.Errorf("CommitHash() = %q, want %q", hash, tt.wantHash)
			}
			if hasHash != (tt.wantHash != "") {
				t.Errorf("CommitHash() present = %v", hasHash)
			}
			if distance != tt.wantDistance {
				t.Errorf("CommitsSinceTag() = %d, want %d", distance, tt.wantDistance)
			}
			if got := d.Fragments(); !reflect.DeepEqual(got, tt.wantFragments) {
				t.Errorf("Fragments() = %q, want %q", got, tt.wantFragments)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no delimiter", "nonsense"},
		{"four fragments", "1.2.3.4"},
		{"one fragment after prefix", "v1"},
		{"non numeric distance", "1.2.3-x-gabc"},
		{"hash without distance", "1.2.3-gabc"},
		{"empty hash", "1.2.3-4-g"},
		{"non numeric fragment", "1.2.beta"},
		{"empty fragment", "1..2"},
		{"empty string", ""},
		{"only dirty", "-dirty"},
		{"fragment overflows int", "99999999999999999999.1.2"},
		{"distance overflows int", "1.2-99999999999999999999-gabc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) expected error, got nil", tt.input)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Parse(%q) error %T is not *ParseError", tt.input, err)
			}
			if perr.Input != tt.input {
				t.Errorf("ParseError.Input = %q, want %q", perr.Input, tt.input)
			}
		})
	}
}

func TestDescriptor_RawRoundTrip(t *testing.T) {
	inputs := []string{
		"1.2",
		"1.2.3",
		"R_0_6_3",
		"v1.2.3-5-gabcdef",
		"1.2.3-5-gabcdef-dirty",
		"v0.9-dirty",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			d, err := Parse(in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", in, err)
			}
			if d.String() != in {
				t.Errorf("String() = %q, want %q", d.String(), in)
			}
			if d.Raw() != in {
				t.Errorf("Raw() = %q, want %q", d.Raw(), in)
			}
		})
	}
}

func TestDescriptor_FragmentsIsCopy(t *testing.T) {
	d, err := Parse("1.2.3")
	if err != nil {
		t.Fatal(err)
	}
	f := d.Fragments()
	f[0] = "9"
	if d.Fragments()[0] != "1" {
		t.Error("mutating Fragments() result changed the descriptor")
	}
}

func TestDescriptor_Prefix(t *testing.T) {
	tests := map[string]string{
		"v1.2.3":  "v",
		"R_1_2_3": "R_",
		"1.2.3":   "",
	}
	for in, want := range tests {
		d, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", in, err)
		}
		if d.Prefix() != want {
			t.Errorf("Parse(%q).Prefix() = %q, want %q", in, d.Prefix(), want)
		}
	}
}
