package merklelog

import (
	"context"
	"fmt"

	"github.com/bankaixyz/mmr/digest"
	"github.com/bankaixyz/mmr/mmr"
	"github.com/fxamacker/cbor/v2"
)

// proofEncMode is the deterministic CBOR encoding mode Proof round trips
// through: sorted map keys, no indefinite length items, no tags. Matching
// encode options on both sides of the wire is what makes MarshalCBOR output
// reproducible for the same Proof value.
var proofEncMode = func() cbor.EncMode {
	mode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return mode
}()

var proofDecMode = func() cbor.DecMode {
	mode, err := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthForbidden,
		TagsMd:      cbor.TagsForbidden,
	}.DecMode()
	if err != nil {
		panic(err)
	}
	return mode
}()

// Proof is a self-contained inclusion proof: the claimed element and its
// path to a mountain peak, plus enough of the peak list to rebuild the root
// without touching a store. It round-trips exactly through CBOR.
type Proof struct {
	ElementIndex   mmr.ElementIndex `cbor:"1,keyasint"`
	ElementHash    digest.Hash32    `cbor:"2,keyasint"`
	SiblingsHashes []digest.Hash32  `cbor:"3,keyasint"`
	PeaksHashes    []digest.Hash32  `cbor:"4,keyasint"`
	ElementsCount  uint64           `cbor:"5,keyasint"`
}

// ProofOption configures GetProof and VerifyProof.
type ProofOption func(*proofOptions)

type proofOptions struct {
	elementsCount *uint64
}

// WithElementsCount pins the tree size a proof is generated or verified
// against, overriding the namespace's current elements_count.
func WithElementsCount(n uint64) ProofOption {
	return func(o *proofOptions) { o.elementsCount = &n }
}

func resolveProofOptions(opts []ProofOption) proofOptions {
	var o proofOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// GetProof assembles an inclusion proof for elementIndex against treeSize
// (the namespace's current elements_count unless WithElementsCount is
// given).
func (l *Log) GetProof(ctx context.Context, elementIndex mmr.ElementIndex, opts ...ProofOption) (Proof, error) {
	if elementIndex == 0 {
		return Proof{}, mmr.ErrInvalidElementIndex
	}

	o := resolveProofOptions(opts)
	treeSize, err := l.resolveTreeSizeOpt(ctx, o)
	if err != nil {
		return Proof{}, err
	}
	if _, err := mmr.FindPeaks(treeSize); err != nil {
		return Proof{}, err
	}
	if uint64(elementIndex) > treeSize {
		return Proof{}, fmt.Errorf("%w: element %d exceeds tree size %d", mmr.ErrInvalidElementIndex, elementIndex, treeSize)
	}

	peakPositions, err := mmr.FindPeaks(treeSize)
	if err != nil {
		return Proof{}, err
	}
	siblingPositions := mmr.FindSiblings(elementIndex, treeSize)
	if _, height, err := mmr.GetPeakInfo(treeSize, elementIndex); err == nil && uint64(len(siblingPositions)) != height {
		panic(fmt.Sprintf("merklelog: FindSiblings(%d, %d) returned %d siblings, GetPeakInfo height is %d", elementIndex, treeSize, len(siblingPositions), height))
	}

	peakHashes, err := l.loadHashes(ctx, peakPositions)
	if err != nil {
		return Proof{}, err
	}
	siblingHashes, err := l.loadHashes(ctx, siblingPositions)
	if err != nil {
		return Proof{}, err
	}
	elementHash, err := l.loadHashes(ctx, []mmr.ElementIndex{elementIndex})
	if err != nil {
		return Proof{}, err
	}

	return Proof{
		ElementIndex:   elementIndex,
		ElementHash:    elementHash[0],
		SiblingsHashes: siblingHashes,
		PeaksHashes:    peakHashes,
		ElementsCount:  treeSize,
	}, nil
}

func (l *Log) resolveTreeSizeOpt(ctx context.Context, o proofOptions) (uint64, error) {
	if o.elementsCount != nil {
		return *o.elementsCount, nil
	}
	return l.resolveTreeSize(ctx)
}

// MarshalCBOR encodes proof using its cbor struct tags under proofEncMode,
// the wire format a Proof is shipped and stored in per §6.3.
func (proof Proof) MarshalCBOR() ([]byte, error) {
	b, err := proofEncMode.Marshal(proofFields(proof))
	if err != nil {
		return nil, fmt.Errorf("merklelog: marshal proof: %w", err)
	}
	return b, nil
}

// UnmarshalCBOR decodes b produced by MarshalCBOR back into proof.
func (proof *Proof) UnmarshalCBOR(b []byte) error {
	var decoded proofFields
	if err := proofDecMode.Unmarshal(b, &decoded); err != nil {
		return fmt.Errorf("merklelog: unmarshal proof: %w", err)
	}
	*proof = Proof(decoded)
	return nil
}

// proofFields mirrors Proof but without the Marshaler/Unmarshaler methods,
// so UnmarshalCBOR can decode into it with cbor's default struct handling
// instead of recursing into itself.
type proofFields Proof
