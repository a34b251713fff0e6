package donation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeYouTube(t *testing.T) {
	body := []byte(`[
		{"youtube_watch_history": [{"url": "x"}, {"url": "y"}]},
		{"youtube_subscriptions": [{"channel": "c1"}], "unrelated_section": [{"a": 1}]}
	]`)

	frags, err := decodeYouTube(body)
	require.NoError(t, err)
	require.Len(t, frags, 2)

	assert.Equal(t, "youtube_watch_history", frags[0].Table)
	assert.Equal(t, []string{"url"}, frags[0].Columns)
	assert.Equal(t, []Row{{"url": "x"}, {"url": "y"}}, frags[0].Rows)

	assert.Equal(t, "youtube_subscriptions", frags[1].Table)
	assert.Equal(t, []Row{{"channel": "c1"}}, frags[1].Rows)
}

func TestDecodeYouTube_RejectsNonArray(t *testing.T) {
	_, err := decodeYouTube([]byte(`{"youtube_watch_history": []}`))
	assert.Error(t, err)
}

func TestDecodeTikTok(t *testing.T) {
	body := []byte(`{
		"tiktok_like_history": [{"video": "v1"}],
		"tiktok_video_browsing_history_2023": [{"video": "v2"}, {"video": "v3"}]
	}`)

	frags, err := decodeTikTok(body)
	require.NoError(t, err)
	require.Len(t, frags, 2)

	assert.Equal(t, "tiktok_like_history", frags[0].Table)
	assert.Equal(t, "tiktok_video_browsing_history", frags[1].Table,
		"browsing history key variants normalize to the canonical name")
	assert.Len(t, frags[1].Rows, 2)
}

func TestDecodeTikTok_NormalizesAnySurroundingKeyText(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"tiktok_video_browsing_history", "tiktok_video_browsing_history"},
		{"tiktok_video_browsing_history_2023", "tiktok_video_browsing_history"},
		{"old_tiktok_video_browsing_history_v2", "tiktok_video_browsing_history"},
		{"tiktok_share_history", "tiktok_share_history"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			frags, err := decodeTikTok([]byte(`{"` + tt.key + `": []}`))
			require.NoError(t, err)
			require.Len(t, frags, 1)
			assert.Equal(t, tt.want, frags[0].Table)
		})
	}
}

func TestDecodeQuestionnaire_AnswersInDocumentOrder(t *testing.T) {
	body := []byte(`{"q3": "maybe", "q1": "yes", "q2": 5}`)

	frags, err := decodeQuestionnaire("youtube_questionnaire")(body)
	require.NoError(t, err)
	require.Len(t, frags, 1)

	frag := frags[0]
	assert.Equal(t, "youtube_questionnaire", frag.Table)
	assert.Equal(t, []string{"answer"}, frag.Columns)
	assert.Equal(t, []Row{
		{"answer": "maybe"},
		{"answer": "yes"},
		{"answer": float64(5)},
	}, frag.Rows, "keys are discarded but answer order follows the document")
}

func TestDecodeRows_ScalarElements(t *testing.T) {
	frags, err := decodeTikTok([]byte(`{"tiktok_follower_list": ["alice", "bob"]}`))
	require.NoError(t, err)
	require.Len(t, frags, 1)
	assert.Equal(t, []string{"value"}, frags[0].Columns)
	assert.Equal(t, []Row{{"value": "alice"}, {"value": "bob"}}, frags[0].Rows)
}

func TestDecodeRows_RejectsNonArraySection(t *testing.T) {
	_, err := decodeTikTok([]byte(`{"tiktok_like_history": {"video": "v1"}}`))
	assert.Error(t, err)
}

func TestDefaultSpecs_OrderIsStable(t *testing.T) {
	var names []string
	for _, spec := range DefaultSpecs() {
		names = append(names, spec.Name)
	}
	assert.Equal(t, []string{
		"youtube",
		"tiktok",
		"youtube-questionnaire",
		"tiktok-questionnaire",
	}, names)
}
