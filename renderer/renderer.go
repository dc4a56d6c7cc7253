// Package renderer turns life-organizer data into markdown reports and a
// balance wheel SVG. Reports are assembled from embedded templates so that a
// main layout can be adjusted without touching Go code.
package renderer

import (
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/lifeadmin"
)

// RenderReview renders one weekly review to a markdown string.
func RenderReview(r *lifeadmin.WeeklyReview) string {
	partials := map[string]string{
		"review_title":    "review_title.md",
		"review_sections": "review_sections.md",
	}
	return renderTemplate("review", "review.md", partials, r)
}

// balanceData is the template payload for the balance report.
type balanceData struct {
	Areas   []lifeadmin.LifeArea
	Average float64
}

// RenderBalance renders the life areas as a markdown report with score bars.
func RenderBalance(areas []lifeadmin.LifeArea) string {
	data := balanceData{Areas: areas}
	for _, a := range areas {
		data.Average += float64(a.Score)
	}
	if len(areas) > 0 {
		data.Average /= float64(len(areas))
	}
	return renderTemplate("balance", "balance.md", nil, data)
}

// wheelData is the template payload for the SVG wheel.
type wheelData struct {
	Size   float64
	Center float64
	Rings  []float64
	Path   string
	Areas  []wheelLabel
}

type wheelLabel struct {
	Name string
	X, Y float64
}

// RenderWheelSVG renders the life areas as a standalone SVG balance wheel of
// the given pixel size.
func RenderWheelSVG(areas []lifeadmin.LifeArea, size float64) string {
	c := size / 2
	maxR := size * 0.38
	data := wheelData{
		Size:   size,
		Center: c,
		Rings:  []float64{maxR * 0.25, maxR * 0.5, maxR * 0.75, maxR},
		Path:   lifeadmin.WheelPath(areas, c, c, maxR),
	}
	full := make([]lifeadmin.LifeArea, len(areas))
	for i, a := range areas {
		a.Score = 10 // labels sit on the outer ring
		full[i] = a
	}
	for i, p := range lifeadmin.WheelPoints(full, c, c, maxR*1.15) {
		data.Areas = append(data.Areas, wheelLabel{Name: areas[i].Name, X: p.X, Y: p.Y})
	}
	return renderTemplate("wheel", "wheel.svg", nil, data)
}

var funcs = template.FuncMap{
	"bar": func(score int) string {
		if score < 0 {
			score = 0
		}
		if score > 10 {
			score = 10
		}
		return strings.Repeat("█", score) + strings.Repeat("░", 10-score)
	},
}

// renderTemplate renders a main template that depends on named partials.
// Errors are rendered into the output instead of returned: a broken template
// is a packaging bug, and the message in the report is the fastest way to
// spot it.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
