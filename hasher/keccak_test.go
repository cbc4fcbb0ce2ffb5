package hasher

import (
	"testing"

	"golang.org/x/crypto/sha3"
)

func TestKeccakHashMatchesDirectSum(t *testing.T) {
	h := NewKeccak()
	left := []byte("left")
	right := []byte("right")

	got, err := h.Hash(left, right)
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}

	direct := sha3.NewLegacyKeccak256()
	direct.Write(left)
	direct.Write(right)
	want := direct.Sum(nil)

	if got.String() != digestHex(want) {
		t.Errorf("Hash(left, right) = %s, want %s", got.String(), digestHex(want))
	}
}

func TestKeccakHashIsOrderSensitive(t *testing.T) {
	h := NewKeccak()
	a, err := h.Hash([]byte("a"), []byte("b"))
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}
	b, err := h.Hash([]byte("b"), []byte("a"))
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}
	if a.Equal(b) {
		t.Errorf("Hash(a, b) and Hash(b, a) collided: %s", a)
	}
}

func TestKeccakIsElementSizeValidAlwaysTrue(t *testing.T) {
	h := NewKeccak()
	if !h.IsElementSizeValid(nil) {
		t.Error("IsElementSizeValid(nil) = false, want true")
	}
	if !h.IsElementSizeValid(make([]byte, 1000)) {
		t.Error("IsElementSizeValid(1000 bytes) = false, want true")
	}
}

func digestHex(b []byte) string {
	const hextable = "0123456789abcdef"
	out := make([]byte, len(b)*2)
	for i, v := range b {
		out[i*2] = hextable[v>>4]
		out[i*2+1] = hextable[v&0x0f]
	}
	return string(out)
}
