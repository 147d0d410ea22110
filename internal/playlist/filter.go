package playlist

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/ytget/spotmobile/internal/model"
)

// FilterTracks returns the entries whose title, artists or album fuzzily
// match query. Entries keep their playlist Index.
func FilterTracks(entries []model.TrackEntry, query string) []model.TrackEntry {
	query = strings.TrimSpace(query)
	if query == "" {
		return entries
	}

	result := make([]model.TrackEntry, 0, len(entries))
	for _, entry := range entries {
		target := entry.Track.Name + " " + entry.Track.ArtistNames() + " " + entry.Track.Album
		if fuzzy.MatchFold(query, target) {
			result = append(result, entry)
		}
	}
	return result
}
