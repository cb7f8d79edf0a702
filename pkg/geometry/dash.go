package geometry

import "math"

// DashSegments splits a segment into the visible pieces of a dash
// pattern of alternating dash and gap lengths. An odd-length pattern is
// repeated to make it even, so [5] means 5 on, 5 off. A nil, empty or
// all-zero pattern yields the whole segment.
func DashSegments(s Segment, pattern []float64) []Segment {
	length := s.Length()
	if length == 0 {
		return nil
	}

	dashes := normalizeDash(pattern)
	if dashes == nil {
		return []Segment{s}
	}

	direction := s.End.Sub(s.Start).Div(length)
	var pieces []Segment
	pos := 0.0
	for i := 0; pos < length; i = (i + 1) % len(dashes) {
		next := math.Min(pos+dashes[i], length)
		if i%2 == 0 && next > pos {
			pieces = append(pieces, Segment{
				Start: s.Start.Add(direction.Mul(pos)),
				End:   s.Start.Add(direction.Mul(next)),
			})
		}
		pos = next
	}
	return pieces
}

func normalizeDash(pattern []float64) []float64 {
	total := 0.0
	dashes := make([]float64, 0, 2*len(pattern))
	for _, l := range pattern {
		l = math.Abs(l)
		total += l
		dashes = append(dashes, l)
	}
	if total == 0 {
		return nil
	}
	if len(dashes)%2 == 1 {
		dashes = append(dashes, dashes...)
	}
	return dashes
}
