package cli

import (
	"reflect"
	"testing"

	"github.com/matzehuels/crossbench/pkg/errors"
)

func TestParseIntList(t *testing.T) {
	tests := []struct {
		in   string
		want []int
	}{
		{"5,5,5", []int{5, 5, 5}},
		{"10", []int{10}},
		{" 3 , 4 ", []int{3, 4}},
	}

	for _, tt := range tests {
		got, err := parseIntList("layers", tt.in)
		if err != nil {
			t.Errorf("parseIntList(%q) error = %v", tt.in, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseIntList(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseIntList_Invalid(t *testing.T) {
	for _, in := range []string{"", "  ", "5,x", "5,,5"} {
		_, err := parseIntList("layers", in)
		if !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("parseIntList(%q) error = %v, want INVALID_INPUT", in, err)
		}
	}
}

func TestJoinIntList(t *testing.T) {
	if got := joinIntList([]int{5, 5, 5}); got != "5,5,5" {
		t.Errorf("joinIntList() = %q, want %q", got, "5,5,5")
	}
}
