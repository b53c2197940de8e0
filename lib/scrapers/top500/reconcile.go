package top500

import (
	"log/slog"
	"strings"

	"github.com/antzucaro/matchr"
)

// The minimum Jaro-Winkler similarity to accept two strings as
// describing the same hardware. The listing and the details page are
// independently authored free text, so exact equality is unreliable
// (e.g. "Power BQC 16C 1.60 GHz" vs "Power BQC 16C 1.6GHz"). Tunable.
const similarityThreshold = 0.79

// KnownParts are the already-resolved fields a listing label is
// reconciled against. Empty strings mean unknown and match nothing.
type KnownParts struct {
	Processor    string
	Interconnect string
}

func couldBe(part, known string) bool {
	return known != "" && matchr.JaroWinkler(part, known, false) > similarityThreshold
}

// Reconcile removes the components of a listing label that are close
// enough to a known processor or interconnect, then reads the first
// remaining component as the system name and joins the rest into the
// coprocessor field. A component matching both known fields is removed
// once. When every component is consumed the name falls back to
// "Unknown" with a diagnostic, which usually means the threshold needs
// tuning, not that the row is broken.
func Reconcile(parts []string, known KnownParts) (name string, gpu string) {
	var kept []string
	for _, part := range parts {
		if couldBe(part, known.Processor) || couldBe(part, known.Interconnect) {
			continue
		}
		kept = append(kept, part)
	}

	if len(kept) == 0 {
		slog.Warn(
			"system listing without a name, every component matched a known field",
			"parts", strings.Join(parts, " | "),
		)
		return "Unknown", ""
	}

	return kept[0], strings.Join(kept[1:], ", ")
}
