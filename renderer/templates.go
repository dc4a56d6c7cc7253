package renderer

import "embed"

//go:embed *.md wheel.svg
var templates embed.FS
