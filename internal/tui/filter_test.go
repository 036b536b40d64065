package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFuzzyScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		text      string
		query     string
		wantScore int
		wantOK    bool
	}{
		{name: "empty query", text: "Kibera Center", query: " ", wantOK: true},
		{name: "substring", text: "Kibera Center", query: "bera", wantOK: true},
		{name: "case insensitive", text: "Kibera Center", query: "KIBERA", wantOK: true},
		{name: "one typo", text: "Kibera Center", query: "kibra", wantScore: 1, wantOK: true},
		{name: "prefix typo", text: "Mathare North", query: "mathre", wantScore: 1, wantOK: true},
		{name: "too far", text: "Kibera Center", query: "nairobi", wantOK: false},
		{name: "short query is strict", text: "Kibera", query: "xyz", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			score, ok := fuzzyScore(tt.text, tt.query)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantScore, score)
			}
		})
	}
}

func TestFilterIndicesRanksExactMatchesFirst(t *testing.T) {
	t.Parallel()

	rows := []string{"Kibra Youth", "Lang'ata", "Kibera Women", "kibera"}
	assert.Equal(t, []int{2, 3, 0}, filterIndices(rows, "kibera"))
	assert.Equal(t, []int{0, 1, 2, 3}, filterIndices(rows, ""))
}
