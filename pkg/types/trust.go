package types

import "time"

// Trust weight bounds. Weights are integers; out-of-range values are
// rejected with ErrInvalidWeight.
const (
	MinTrustWeight = 0
	MaxTrustWeight = 10
)

// TrustList is one user's curated set of trusted reviewers: a mapping
// from reviewer user ID to an integer trust weight. The backend persists
// a truster's entire list as a single transactional unit, so concurrent
// writers to the same list are serialized and never interleave.
type TrustList struct {
	TrusterID int64         `json:"truster_id"`
	Weights   map[int64]int `json:"weights"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// NewTrustList returns an empty trust list owned by trusterID.
func NewTrustList(trusterID int64) *TrustList {
	return &TrustList{
		TrusterID: trusterID,
		Weights:   make(map[int64]int),
	}
}

// Set upserts the weight for reviewerID. An existing entry is
// overwritten. Returns ErrInvalidWeight if weight is outside
// [MinTrustWeight, MaxTrustWeight].
func (t *TrustList) Set(reviewerID int64, weight int) error {
	if weight < MinTrustWeight || weight > MaxTrustWeight {
		return ErrInvalidWeight
	}
	if t.Weights == nil {
		t.Weights = make(map[int64]int)
	}
	t.Weights[reviewerID] = weight
	t.UpdatedAt = time.Now().UTC()
	return nil
}

// Remove deletes the entry for reviewerID. Reports whether an entry was
// present.
func (t *TrustList) Remove(reviewerID int64) bool {
	if _, ok := t.Weights[reviewerID]; !ok {
		return false
	}
	delete(t.Weights, reviewerID)
	t.UpdatedAt = time.Now().UTC()
	return true
}

// Weight returns the weight for reviewerID and whether an entry exists.
func (t *TrustList) Weight(reviewerID int64) (int, bool) {
	w, ok := t.Weights[reviewerID]
	return w, ok
}
