package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleEntries() []Entry {
	return []Entry{
		{Name: "Narrator", Description: "A warm, clear narrator voice for audiobooks.", Tags: []string{"warm", "audiobook"}},
		{Name: "PROTAGONIST", Description: "Young protagonist, energetic and optimistic.", Tags: []string{"young", "energetic"}},
		{Name: "Villain", Description: "Gravelly antagonist with menacing undertones.", Tags: []string{"dark"}},
	}
}

func TestSearch_ByName(t *testing.T) {
	matches := Search(sampleEntries(), "narrator")
	assert.Len(t, matches, 1)
	assert.Equal(t, "Narrator", matches[0].Name)
}

func TestSearch_CaseInsensitive(t *testing.T) {
	matches := Search(sampleEntries(), "PROTAGONIST")
	assert.Len(t, matches, 1)

	matches = Search(sampleEntries(), "protagonist")
	assert.Len(t, matches, 1)
}

func TestSearch_ByDescription(t *testing.T) {
	matches := Search(sampleEntries(), "menacing")
	assert.Len(t, matches, 1)
	assert.Equal(t, "Villain", matches[0].Name)
}

func TestSearch_ByTag(t *testing.T) {
	matches := Search(sampleEntries(), "young")
	assert.Len(t, matches, 1)
	assert.Equal(t, "PROTAGONIST", matches[0].Name)
}

func TestSearch_PartialMatch(t *testing.T) {
	matches := Search(sampleEntries(), "ener")
	assert.Len(t, matches, 1)
	assert.Equal(t, "PROTAGONIST", matches[0].Name)
}

func TestSearch_NoMatches(t *testing.T) {
	matches := Search(sampleEntries(), "soprano")
	assert.Empty(t, matches)
}

func TestSearch_OrderPreserved(t *testing.T) {
	entries := []Entry{
		{Name: "Alpha", Description: "shared-term one"},
		{Name: "Beta", Description: "shared-term two"},
	}
	matches := Search(entries, "shared-term")
	assert.Equal(t, []string{"Alpha", "Beta"}, []string{matches[0].Name, matches[1].Name})
}
