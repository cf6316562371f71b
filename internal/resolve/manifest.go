package resolve

import (
	"encoding/json"
	"os"

	"github.com/repomedia/repomedia/internal/logging"
	"github.com/repomedia/repomedia/internal/model"
)

// loadFallback reads the static manifest and returns its items verbatim.
// Any failure is swallowed: a missing or broken manifest yields an empty
// set, never an error surfaced to the gallery.
func (r *Resolver) loadFallback() model.MediaSet {
	data, err := os.ReadFile(r.manifestPath)
	if err != nil {
		logging.Debug().Err(err).Str("manifest", r.manifestPath).Msg("fallback manifest unavailable")
		return model.MediaSet{}
	}

	var set model.MediaSet
	if err := json.Unmarshal(data, &set); err != nil {
		logging.Debug().Err(err).Str("manifest", r.manifestPath).Msg("fallback manifest unreadable")
		return model.MediaSet{}
	}
	return set
}
