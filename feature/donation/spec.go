package donation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

// Row is a single decoded record, keyed by column name.
type Row = map[string]any

// Fragment is one named row collection produced by a decoder. Columns carries
// the column names in first-seen document order, since Row maps do not.
type Fragment struct {
	Table   string
	Columns []string
	Rows    []Row
}

// Spec associates a filename pattern with the decoder for one data source.
// Pattern must define a named capture group "id" and may define "timestamp".
type Spec struct {
	Name    string
	Pattern *regexp.Regexp
	Decode  func(body []byte) ([]Fragment, error)
}

// Known YouTube export sections. Keys outside this list are ignored.
var youtubeTables = map[string]struct{}{
	"youtube_watch_history":  {},
	"youtube_search_history": {},
	"youtube_subscriptions":  {},
}

// videoBrowsingMarker identifies TikTok browsing-history key variants
// (e.g. "tiktok_video_browsing_history_2023"), which are all filed under
// the marker itself as the canonical table name.
const videoBrowsingMarker = "tiktok_video_browsing_history"

// DefaultSpecs returns the platform registry in evaluation order.
// Order is significant: the classifier stops at the first matching pattern,
// so it is the tie-break if patterns ever overlap. Callers must not re-sort.
func DefaultSpecs() []Spec {
	return []Spec{
		{
			Name:    "youtube",
			Pattern: regexp.MustCompile(`.*participant-(?P<id>\d+\w?)_source-YouTube_key-\w+\.json`),
			Decode:  decodeYouTube,
		},
		{
			Name:    "tiktok",
			Pattern: regexp.MustCompile(`.*participant-(?P<id>\d+\w?)_source-TikTok_key-\w+\.json`),
			Decode:  decodeTikTok,
		},
		{
			Name:    "youtube-questionnaire",
			Pattern: regexp.MustCompile(`.*participant-(?P<id>\d+\w?)_source-YouTube_key-(?P<timestamp>\d+)-questionnaire-donation\.json`),
			Decode:  decodeQuestionnaire("youtube_questionnaire"),
		},
		{
			Name:    "tiktok-questionnaire",
			Pattern: regexp.MustCompile(`.*participant-(?P<id>\d+\w?)_source-TikTok_key-(?P<timestamp>\d+)-questionnaire-donation\.json`),
			Decode:  decodeQuestionnaire("tiktok_questionnaire"),
		},
	}
}

// decodeYouTube handles the YouTube takeout format: an array of records, each
// holding zero or more known sections keyed by table name.
func decodeYouTube(body []byte) ([]Fragment, error) {
	doc := gjson.ParseBytes(body)
	if !doc.IsArray() {
		return nil, fmt.Errorf("youtube export: expected top-level array")
	}

	var frags []Fragment
	var err error
	doc.ForEach(func(_, record gjson.Result) bool {
		record.ForEach(func(key, value gjson.Result) bool {
			name := key.String()
			if _, ok := youtubeTables[name]; !ok {
				return true
			}
			rows, cols, derr := decodeRows(value)
			if derr != nil {
				err = fmt.Errorf("youtube export: section %q: %w", name, derr)
				return false
			}
			frags = append(frags, Fragment{Table: name, Columns: cols, Rows: rows})
			return true
		})
		return err == nil
	})
	if err != nil {
		return nil, err
	}
	return frags, nil
}

// decodeTikTok handles the TikTok export format: a mapping of table name to
// row collection. Browsing-history key variants are normalized to a single
// canonical table name.
func decodeTikTok(body []byte) ([]Fragment, error) {
	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return nil, fmt.Errorf("tiktok export: expected top-level object")
	}

	var frags []Fragment
	var err error
	doc.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if strings.Contains(name, videoBrowsingMarker) {
			name = videoBrowsingMarker
		}
		rows, cols, derr := decodeRows(value)
		if derr != nil {
			err = fmt.Errorf("tiktok export: section %q: %w", key.String(), derr)
			return false
		}
		frags = append(frags, Fragment{Table: name, Columns: cols, Rows: rows})
		return true
	})
	if err != nil {
		return nil, err
	}
	return frags, nil
}

// decodeQuestionnaire returns a decoder for the questionnaire format: a
// mapping of question identifier to answer. Keys are discarded; answers
// become a single "answer" column in document order.
func decodeQuestionnaire(table string) func(body []byte) ([]Fragment, error) {
	return func(body []byte) ([]Fragment, error) {
		doc := gjson.ParseBytes(body)
		if !doc.IsObject() {
			return nil, fmt.Errorf("questionnaire: expected top-level object")
		}

		rows := []Row{}
		doc.ForEach(func(_, value gjson.Result) bool {
			rows = append(rows, Row{"answer": value.Value()})
			return true
		})
		return []Fragment{{Table: table, Columns: []string{"answer"}, Rows: rows}}, nil
	}
}

// decodeRows turns a JSON array into rows. Object elements map directly to
// columns; scalar elements land in a single "value" column.
func decodeRows(value gjson.Result) ([]Row, []string, error) {
	if !value.IsArray() {
		return nil, nil, fmt.Errorf("expected array of records, got %s", value.Type)
	}

	rows := []Row{}
	var cols []string
	seen := map[string]struct{}{}
	value.ForEach(func(_, elem gjson.Result) bool {
		if !elem.IsObject() {
			if _, ok := seen["value"]; !ok {
				seen["value"] = struct{}{}
				cols = append(cols, "value")
			}
			rows = append(rows, Row{"value": elem.Value()})
			return true
		}
		row := Row{}
		elem.ForEach(func(key, field gjson.Result) bool {
			name := key.String()
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				cols = append(cols, name)
			}
			row[name] = field.Value()
			return true
		})
		rows = append(rows, row)
		return true
	})
	return rows, cols, nil
}
