package merklelog_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/bankaixyz/mmr/kvstore"
	"github.com/bankaixyz/mmr/merklelog"
	"github.com/bankaixyz/mmr/merklelog/merklelogtesting"
)

func TestProofRoundTripsThroughCBOR(t *testing.T) {
	merklelogtesting.RunOnEveryBackend(t, func(t *testing.T, store kvstore.Store) {
		ctx := context.Background()
		log := merklelogtesting.NewKeccakLog(store)

		for _, leaf := range merklelogtesting.KeccakLeaves(5) {
			if _, err := log.Append(ctx, leaf); err != nil {
				t.Fatalf("Append failed: %v", err)
			}
		}

		proof, err := log.GetProof(ctx, 4)
		if err != nil {
			t.Fatalf("GetProof failed: %v", err)
		}

		encoded, err := proof.MarshalCBOR()
		if err != nil {
			t.Fatalf("MarshalCBOR failed: %v", err)
		}

		var decoded merklelog.Proof
		if err := decoded.UnmarshalCBOR(encoded); err != nil {
			t.Fatalf("UnmarshalCBOR failed: %v", err)
		}

		if !reflect.DeepEqual(proof, decoded) {
			t.Fatalf("proof did not round trip: got %+v, want %+v", decoded, proof)
		}

		ok, err := log.VerifyProofStateless(decoded, decoded.ElementHash)
		if err != nil {
			t.Fatalf("VerifyProofStateless failed: %v", err)
		}
		if !ok {
			t.Fatal("decoded proof failed to verify")
		}
	})
}

func TestProofCBOREncodingIsDeterministic(t *testing.T) {
	ctx := context.Background()
	log := merklelogtesting.NewKeccakLog(kvstore.NewMemory())

	for _, leaf := range merklelogtesting.KeccakLeaves(7) {
		if _, err := log.Append(ctx, leaf); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	proof, err := log.GetProof(ctx, 5)
	if err != nil {
		t.Fatalf("GetProof failed: %v", err)
	}

	first, err := proof.MarshalCBOR()
	if err != nil {
		t.Fatalf("MarshalCBOR failed: %v", err)
	}
	second, err := proof.MarshalCBOR()
	if err != nil {
		t.Fatalf("MarshalCBOR failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatal("two encodings of the same proof differed")
	}
}

func TestProofUnmarshalCBORRejectsGarbage(t *testing.T) {
	var proof merklelog.Proof
	if err := proof.UnmarshalCBOR([]byte{0xff, 0x00, 0x01}); err == nil {
		t.Fatal("expected UnmarshalCBOR to reject garbage input")
	}
}
