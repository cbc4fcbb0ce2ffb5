package mmr

import (
	"errors"
	"reflect"
	"testing"
)

func TestFindPeaks(t *testing.T) {
	tests := []struct {
		name    string
		mmrSize uint64
		want    []ElementIndex
	}{
		{"size 11 gives three peaks", 11, []ElementIndex{7, 10, 11}},
		{"size 26 gives 4 peaks", 26, []ElementIndex{15, 22, 25, 26}},
		{"size 10 gives two peaks", 10, []ElementIndex{7, 10}},
		{"size 15, which is perfectly filled, gives a single peak", 15, []ElementIndex{15}},
		{"size 18 gives two peaks", 18, []ElementIndex{15, 18}},
		{"size 22 gives two peaks", 22, []ElementIndex{15, 22}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindPeaks(tt.mmrSize)
			if err != nil {
				t.Fatalf("FindPeaks() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FindPeaks() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindPeaksRejectsNonCanonicalSize(t *testing.T) {
	for _, size := range []uint64{2, 5, 6, 9, 13} {
		_, err := FindPeaks(size)
		if !errors.Is(err, ErrInvalidMmrSize) {
			t.Errorf("FindPeaks(%d) error = %v, want ErrInvalidMmrSize", size, err)
		}
	}
}
