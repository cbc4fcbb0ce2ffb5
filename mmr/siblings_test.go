package mmr

import (
	"reflect"
	"testing"
)

func TestFindSiblings(t *testing.T) {
	// elements_count=11 decomposes into peaks at 7, 10, 11:
	//
	// 2       7
	//       /   \
	// 1    3     6      10
	//     / \   / \    /  \
	// 0  1   2 4   5  8    9   11
	tests := []struct {
		name     string
		e        ElementIndex
		treeSize uint64
		want     []ElementIndex
	}{
		{"leaf 1 of the first mountain", 1, 11, []ElementIndex{2, 6}},
		{"leaf under the middle mountain", 8, 11, []ElementIndex{9}},
		{"the lone last peak has no siblings", 11, 11, nil},
		{"the first mountain's own peak has no siblings", 7, 11, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindSiblings(tt.e, tt.treeSize)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FindSiblings(%d, %d) = %v, want %v", tt.e, tt.treeSize, got, tt.want)
			}
		})
	}
}

func TestFindSiblingsMatchesPeakHeight(t *testing.T) {
	const treeSize = 11
	for e := ElementIndex(1); e <= treeSize; e++ {
		_, height, err := GetPeakInfo(treeSize, e)
		if err != nil {
			t.Fatalf("GetPeakInfo(%d) unexpected error: %v", e, err)
		}
		siblings := FindSiblings(e, treeSize)
		if uint64(len(siblings)) != height {
			t.Errorf("FindSiblings(%d, %d) returned %d siblings, GetPeakInfo height was %d", e, treeSize, len(siblings), height)
		}
	}
}
