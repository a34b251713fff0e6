package donation

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPattern(pattern string) *regexp.Regexp {
	return regexp.MustCompile(pattern)
}

func TestClassify_MatchesPlatforms(t *testing.T) {
	names := []string{
		"participant-001_source-YouTube_key-abc.json",
		"exports/participant-002_source-TikTok_key-def.json",
		"participant-003_source-YouTube_key-1700000000-questionnaire-donation.json",
		"participant-004_source-TikTok_key-1700000001-questionnaire-donation.json",
	}

	meta := Classify(names, DefaultSpecs())
	require.Len(t, meta, 4)

	assert.Equal(t, FileMetadata{ID: "001", Platform: "youtube", Name: names[0]}, meta[0])
	assert.Equal(t, FileMetadata{ID: "002", Platform: "tiktok", Name: names[1]}, meta[1])
	assert.Equal(t, FileMetadata{
		ID:        "003",
		Platform:  "youtube-questionnaire",
		Name:      names[2],
		Timestamp: "1700000000",
	}, meta[2])
	assert.Equal(t, FileMetadata{
		ID:        "004",
		Platform:  "tiktok-questionnaire",
		Name:      names[3],
		Timestamp: "1700000001",
	}, meta[3])
}

func TestClassify_SkipsUnmatchedEntries(t *testing.T) {
	names := []string{
		"README.txt",
		"__MACOSX/participant-001",
		"participant-001_source-Spotify_key-abc.json",
		"participant-001_source-YouTube_key-abc.json",
	}

	meta := Classify(names, DefaultSpecs())
	require.Len(t, meta, 1)
	assert.Equal(t, "youtube", meta[0].Platform)
}

func TestClassify_LowercasesCaptures(t *testing.T) {
	meta := Classify([]string{"participant-007B_source-YouTube_key-abc.json"}, DefaultSpecs())
	require.Len(t, meta, 1)
	assert.Equal(t, "007b", meta[0].ID)
}

func TestClassify_FirstMatchWins(t *testing.T) {
	// Two deliberately overlapping specs; registry order decides
	specs := []Spec{
		{Name: "broad", Pattern: mustPattern(`participant-(?P<id>\w+)\.json`)},
		{Name: "narrow", Pattern: mustPattern(`participant-(?P<id>\d+)\.json`)},
	}

	meta := Classify([]string{"participant-123.json"}, specs)
	require.Len(t, meta, 1)
	assert.Equal(t, "broad", meta[0].Platform)

	// Swapped order flips the winner
	meta = Classify([]string{"participant-123.json"}, []Spec{specs[1], specs[0]})
	require.Len(t, meta, 1)
	assert.Equal(t, "narrow", meta[0].Platform)
}

func TestClassify_QuestionnaireBeforeGeneralWouldStillWin(t *testing.T) {
	// The general YouTube pattern requires key-\w+ directly before .json, so
	// questionnaire names fall through to the questionnaire spec even though
	// the general spec is evaluated first.
	name := "participant-001_source-YouTube_key-1700000000-questionnaire-donation.json"
	meta := Classify([]string{name}, DefaultSpecs())
	require.Len(t, meta, 1)
	assert.Equal(t, "youtube-questionnaire", meta[0].Platform)
	assert.Equal(t, "1700000000", meta[0].Timestamp)
}
