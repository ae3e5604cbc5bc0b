package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeMorph(t *testing.T) {
	tests := []struct {
		code     string
		wantSuit int
		wantRank int
		wantOK   bool
	}{
		{code: "b1", wantSuit: 0, wantRank: 1, wantOK: true},
		{code: "11", wantSuit: 0, wantRank: 1, wantOK: true},
		{code: "g2", wantSuit: 1, wantRank: 2, wantOK: true},
		{code: "23", wantSuit: 1, wantRank: 3, wantOK: true},
		{code: "y4", wantSuit: 2, wantRank: 4, wantOK: true},
		{code: "35", wantSuit: 2, wantRank: 5, wantOK: true},
		{code: "r1", wantSuit: 3, wantRank: 1, wantOK: true},
		{code: "42", wantSuit: 3, wantRank: 2, wantOK: true},
		{code: "p3", wantSuit: 4, wantRank: 3, wantOK: true},
		{code: "54", wantSuit: 4, wantRank: 4, wantOK: true},
		{code: "k2", wantSuit: 5, wantRank: 2, wantOK: true},
		{code: "m3", wantSuit: 5, wantRank: 3, wantOK: true},
		{code: "65", wantSuit: 5, wantRank: 5, wantOK: true},
		{code: "b0", wantSuit: 0, wantRank: 0, wantOK: true},
		{code: "z9"},
		{code: "B1"},
		{code: "71"},
		{code: "b"},
		{code: ""},
		{code: "b12"},
		{code: "bx"},
		{code: "b "},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			suit, rank, ok := DecodeMorph(tt.code)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantSuit, suit)
			assert.Equal(t, tt.wantRank, rank)
		})
	}
}
