package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrustListSet(t *testing.T) {
	tests := []struct {
		name    string
		weight  int
		wantErr error
	}{
		{name: "minimum weight", weight: 0},
		{name: "maximum weight", weight: 10},
		{name: "mid weight", weight: 5},
		{name: "negative rejected", weight: -1, wantErr: ErrInvalidWeight},
		{name: "above maximum rejected", weight: 11, wantErr: ErrInvalidWeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl := NewTrustList(1)
			err := tl.Set(42, tt.weight)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				_, ok := tl.Weight(42)
				assert.False(t, ok, "no entry should be created on error")
				return
			}
			assert.NoError(t, err)
			w, ok := tl.Weight(42)
			assert.True(t, ok)
			assert.Equal(t, tt.weight, w)
		})
	}
}

func TestTrustListUpsert(t *testing.T) {
	tl := NewTrustList(1)
	assert.NoError(t, tl.Set(42, 3))
	assert.NoError(t, tl.Set(42, 9))

	w, ok := tl.Weight(42)
	assert.True(t, ok)
	assert.Equal(t, 9, w, "existing entry is overwritten")
	assert.Len(t, tl.Weights, 1)
}

func TestTrustListRemove(t *testing.T) {
	tl := NewTrustList(1)
	assert.NoError(t, tl.Set(42, 3))

	assert.True(t, tl.Remove(42))
	assert.False(t, tl.Remove(42), "second remove reports absence")
	assert.Empty(t, tl.Weights)
}

func TestTrustListNilWeights(t *testing.T) {
	tl := &TrustList{TrusterID: 1}
	assert.NoError(t, tl.Set(7, 2))
	w, ok := tl.Weight(7)
	assert.True(t, ok)
	assert.Equal(t, 2, w)
	assert.False(t, tl.Remove(99))
}
