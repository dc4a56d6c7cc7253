package renderer

import (
	"bytes"
	"io"
)

// ConditionalBlock lets a block be fully written and then decide whether it
// shows up. If the block function returns true the content is copied to w,
// otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}
