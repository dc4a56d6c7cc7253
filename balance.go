package lifeadmin

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// LifeArea is one spoke of the life balance wheel, scored 0 to 10.
type LifeArea struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
	Notes string `json:"notes"`
}

func (a LifeArea) recordID() string { return a.ID }

// DefaultLifeAreas returns the eight standard areas, all scored 5.
func DefaultLifeAreas() []LifeArea {
	names := []string{
		"Health", "Career", "Finances", "Relationships",
		"Personal Growth", "Fun", "Environment", "Spirituality",
	}
	areas := make([]LifeArea, len(names))
	for i, n := range names {
		areas[i] = LifeArea{ID: fmt.Sprintf("area-%d", i+1), Name: n, Score: 5}
	}
	return areas
}

// LifeAreaPatch is a partial update of a LifeArea.
type LifeAreaPatch struct {
	Name  *string
	Score *int
	Notes *string
}

func (a LifeArea) apply(patch LifeAreaPatch) LifeArea {
	if patch.Name != nil {
		a.Name = *patch.Name
	}
	if patch.Score != nil {
		a.Score = *patch.Score
	}
	if patch.Notes != nil {
		a.Notes = *patch.Notes
	}
	return a
}

// LifeAreas returns a copy of the life areas.
func (s *Store) LifeAreas() []LifeArea { return slices.Clone(s.lifeAreas) }

// SetLifeAreas replaces the whole life areas collection.
func (s *Store) SetLifeAreas(as []LifeArea) {
	s.lifeAreas = slices.Clone(as)
	s.persist(KeyLifeAreas, s.lifeAreas)
}

// UpdateLifeArea merges patch into the area with the given id.
func (s *Store) UpdateLifeArea(id string, patch LifeAreaPatch) bool {
	as, ok := replaceByID(s.lifeAreas, id, func(a LifeArea) LifeArea { return a.apply(patch) })
	if ok {
		s.SetLifeAreas(as)
	}
	return ok
}

// Point is a 2D coordinate on the balance wheel.
type Point struct{ X, Y float64 }

// WheelPoints computes one vertex per area on a wheel centered at (cx, cy).
// Area i sits at angle 2πi/N - π/2 (first area straight up), at a radius
// proportional to its score out of 10.
func WheelPoints(areas []LifeArea, cx, cy, maxRadius float64) []Point {
	n := len(areas)
	pts := make([]Point, n)
	for i, a := range areas {
		angle := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
		r := float64(a.Score) / 10 * maxRadius
		pts[i] = Point{X: cx + r*math.Cos(angle), Y: cy + r*math.Sin(angle)}
	}
	return pts
}

// WheelPath renders the areas as a closed SVG path ("M x y L x y ... Z").
// It returns the empty string when there are no areas.
func WheelPath(areas []LifeArea, cx, cy, maxRadius float64) string {
	if len(areas) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range WheelPoints(areas, cx, cy, maxRadius) {
		if i == 0 {
			fmt.Fprintf(&b, "M %.2f %.2f", p.X, p.Y)
		} else {
			fmt.Fprintf(&b, " L %.2f %.2f", p.X, p.Y)
		}
	}
	b.WriteString(" Z")
	return b.String()
}
