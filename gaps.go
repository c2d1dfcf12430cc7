package perfo

import "math"

// GapConfig parametrizes gap insertion. Along each path a stretch of Length
// units of arc is removed at every multiple of Spacing, so a cutting tool
// disengages at regular intervals.
type GapConfig struct {
	Length  float64 // arc length of each gap
	Spacing float64 // distance between consecutive gap starts
}

// Validate returns a ConfigError if the parameters would erase paths
// entirely: the gap length must be positive and the spacing must exceed it.
func (cfg GapConfig) Validate() error {
	if cfg.Length <= 0.0 || cfg.Spacing <= cfg.Length {
		return &ConfigError{cfg}
	}
	return nil
}

// InsertGaps cuts path p into the subpaths that survive periodic gap removal.
// Gap starts lie at the fixed arc length offsets 0, Spacing, 2*Spacing, …
// along the path, independent of where earlier gaps ended. The surviving
// stretches between consecutive gaps are returned in path order.
//
// A path no longer than a single gap is consumed entirely and yields no
// subpaths, and a path that ends inside a gap loses its tail. Closed paths
// are treated as opened at their start point; the first gap covers the seam,
// so the seam never survives as a hairline joint.
func InsertGaps(p *Path, cfg GapConfig) ([]*Path, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	total := p.Length()
	if total <= cfg.Length {
		return nil, nil
	}

	var subpaths []*Path
	keepStart := cfg.Length // the gap at offset 0 removes [0, Length)
	for k := 1; ; k++ {
		gapStart := float64(k) * cfg.Spacing
		keepEnd := math.Min(gapStart, total)
		if lengthTolerance < keepEnd-keepStart {
			subpaths = append(subpaths, p.SubpathBetween(keepStart, keepEnd))
		}
		if total <= gapStart+cfg.Length {
			// The path ends at or inside this gap; the remaining tail is gap.
			return subpaths, nil
		}
		keepStart = gapStart + cfg.Length
	}
}
