package classify

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "shirt jiggle with side and index", in: "SHIRT_JIGGLE_L1", want: "SHIRT"},
		{name: "lowercase input", in: "shirt_jiggle_l1", want: "SHIRT"},
		{name: "pant family", in: "JIGGLE_PANT_L2", want: "PANTS"},
		{name: "hair family", in: "HAIR_JIGGLE_L", want: "HAIR"},
		{name: "root marker", in: "CAPE_ROOT", want: "CAPE"},
		{name: "skirt is not shirt", in: "SKIRT_FRONT_JIGGLE", want: "SKIRT"},
		{name: "shirt beats pant", in: "PANTS_SHIRT", want: "SHIRT"},
		{name: "plain base", in: "TAIL_JIGGLE_R3", want: "TAIL"},
		{name: "root then side", in: "SLEEVE_ROOT_R", want: "SLEEVE"},
		{name: "LW loses only _L", in: "BELT_JIGGLE_LW", want: "BELTW"},
		{name: "RW loses only _R", in: "BELT_JIGGLE_RW", want: "BELTW"},
		{name: "zero is kept", in: "SPINE_01", want: "SPINE_0"},
		{name: "digits stripped mid-name", in: "LAYER2_BELT_JIGGLE", want: "LAYER_BELT"},
		{name: "digits inside a token", in: "B12ONE_JIGGLE", want: "BONE"},
		{name: "underscores trimmed", in: "__TAIL__JIGGLE", want: "TAIL"},
		{name: "bare jiggle has no leading underscore", in: "JIGGLE", want: "JIGGLE"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize_SecondPass(t *testing.T) {
	tests := []struct {
		in         string
		wantFirst  string
		wantSecond string
	}{
		// Stable: a canonical family name has nothing left to strip
		{in: "SHIRT_JIGGLE_L1", wantFirst: "SHIRT", wantSecond: "SHIRT"},
		{in: "TAIL_JIGGLE_R3", wantFirst: "TAIL", wantSecond: "TAIL"},
		// Removing "_L" splices "_" and "L" into a new "_L"
		{in: "A__LL", wantFirst: "A_L", wantSecond: "A"},
		// Same effect with the JIGGLE marker
		{in: "X__JIGGLEJIGGLE", wantFirst: "X_JIGGLE", wantSecond: "X"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			first := Normalize(tt.in)
			if first != tt.wantFirst {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, first, tt.wantFirst)
			}
			if second := Normalize(first); second != tt.wantSecond {
				t.Errorf("Normalize(%q) = %q, want %q", first, second, tt.wantSecond)
			}
		})
	}
}
