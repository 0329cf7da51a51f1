package updater

import "testing"

func TestParseSemver(t *testing.T) {
	tests := []struct {
		in      string
		want    Semver
		wantErr bool
	}{
		{in: "1.2.3", want: Semver{Major: 1, Minor: 2, Patch: 3}},
		{in: "v0.10.0", want: Semver{Minor: 10}},
		{in: "2.0.0-rc.1", want: Semver{Major: 2, Prerelease: "rc.1"}},
		{in: "dev", wantErr: true},
		{in: "1.2", wantErr: true},
		{in: "1.2.x", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSemver(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseSemver(%q) = %v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSemver(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseSemver(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSemverLessThan(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"1.0.0", "2.0.0", true},
		{"1.2.0", "1.10.0", true},
		{"1.2.3", "1.2.4", true},
		{"1.2.3", "1.2.3", false},
		{"2.0.0", "1.9.9", false},
		{"1.0.0-rc.1", "1.0.0", true},
		{"1.0.0", "1.0.0-rc.1", false},
		{"1.0.0-rc.1", "1.0.0-rc.2", true},
	}

	for _, tt := range tests {
		a, err := ParseSemver(tt.a)
		if err != nil {
			t.Fatal(err)
		}
		b, err := ParseSemver(tt.b)
		if err != nil {
			t.Fatal(err)
		}
		if got := a.LessThan(b); got != tt.want {
			t.Errorf("%s < %s = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSemverString(t *testing.T) {
	if got := (Semver{Major: 1, Minor: 4, Patch: 0, Prerelease: "beta.2"}).String(); got != "1.4.0-beta.2" {
		t.Errorf("String() = %q", got)
	}
	if got := (Semver{Major: 0, Minor: 3, Patch: 7}).String(); got != "0.3.7" {
		t.Errorf("String() = %q", got)
	}
}
