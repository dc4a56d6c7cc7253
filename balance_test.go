package lifeadmin

import (
	"math"
	"strings"
	"testing"
)

func TestWheelPointsGeometry(t *testing.T) {
	areas := DefaultLifeAreas() // 8 areas, all scored 5
	const cx, cy, maxR = 100.0, 100.0, 80.0
	pts := WheelPoints(areas, cx, cy, maxR)
	if len(pts) != 8 {
		t.Fatalf("got %d points, want 8", len(pts))
	}

	// Equal scores put every vertex on the same circle.
	wantR := 5.0 / 10 * maxR
	for i, p := range pts {
		r := math.Hypot(p.X-cx, p.Y-cy)
		if math.Abs(r-wantR) > 1e-9 {
			t.Errorf("point %d radius = %g, want %g", i, r, wantR)
		}
	}

	// First vertex points straight up.
	if math.Abs(pts[0].X-cx) > 1e-9 || math.Abs(pts[0].Y-(cy-wantR)) > 1e-9 {
		t.Errorf("first point = %+v, want (%g, %g)", pts[0], cx, cy-wantR)
	}

	// A zero score collapses its vertex to the center.
	areas[3].Score = 0
	pts = WheelPoints(areas, cx, cy, maxR)
	if math.Abs(pts[3].X-cx) > 1e-9 || math.Abs(pts[3].Y-cy) > 1e-9 {
		t.Errorf("zero-score point = %+v, want center", pts[3])
	}
}

func TestWheelPath(t *testing.T) {
	if got := WheelPath(nil, 100, 100, 80); got != "" {
		t.Errorf("empty wheel path = %q, want empty", got)
	}

	path := WheelPath(DefaultLifeAreas(), 100, 100, 80)
	if !strings.HasPrefix(path, "M ") || !strings.HasSuffix(path, " Z") {
		t.Errorf("path %q is not a closed path", path)
	}
	if got := strings.Count(path, "L "); got != 7 {
		t.Errorf("path has %d line segments, want 7", got)
	}
	if strings.Contains(path, "NaN") {
		t.Errorf("path contains NaN: %q", path)
	}
}
