package semver

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Version
		wantErr bool
	}{
		{name: "plain version", input: "1.2.3", want: Version{1, 2, 3}},
		{name: "zero version", input: "0.0.0", want: Version{0, 0, 0}},
		{name: "surrounding whitespace", input: " 0.10.1 ", want: Version{0, 10, 1}},
		{name: "two components", input: "1.2", wantErr: true},
		{name: "four components", input: "1.2.3.4", wantErr: true},
		{name: "non numeric", input: "1.2.x", wantErr: true},
		{name: "negative component", input: "1.-2.3", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "equal", a: "1.2.3", b: "1.2.3", want: 0},
		{name: "older major", a: "0.9.9", b: "1.0.0", want: -1},
		{name: "newer minor", a: "1.3.0", b: "1.2.9", want: 1},
		{name: "older patch", a: "0.1.0", b: "0.1.1", want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Parse(tt.a)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.a, err)
			}
			b, err := Parse(tt.b)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.b, err)
			}
			if got := Compare(a, b); got != tt.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestGetNumericVersion(t *testing.T) {
	if got := GetNumericVersion("1.2.3"); got != 1002003 {
		t.Errorf("GetNumericVersion(1.2.3) = %d, want 1002003", got)
	}
	if a, b := GetNumericVersion("0.1.0"), GetNumericVersion("0.2.0"); a >= b {
		t.Errorf("expected 0.1.0 (%d) < 0.2.0 (%d)", a, b)
	}
}

func TestVersionString(t *testing.T) {
	v := Version{Major: 2, Minor: 0, Patch: 11}
	if got := v.String(); got != "2.0.11" {
		t.Errorf("String() = %q, want %q", got, "2.0.11")
	}
}
