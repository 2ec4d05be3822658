package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/pedromcd/balta-desafio-carnacode-2026-7-bridge/pkg/textfit"
)

// boxWidth is the interior width of the desktop alert box, in columns.
const boxWidth = 24

// Locator prefix limits for the boxed label lines.
const (
	imageURLLimit = 15
	videoURLLimit = 20
)

// Desktop renders notifications inside a fixed-width alert box.
type Desktop struct {
	out io.Writer
}

// NewDesktop creates a desktop renderer writing to out.
func NewDesktop(out io.Writer) *Desktop {
	return &Desktop{out: out}
}

// RenderText writes the alert label, then boxes the title and body.
func (r *Desktop) RenderText(title, body string) {
	fmt.Fprintln(r.out, "[Desktop Alert]")
	r.box(title, body)
}

// RenderImage boxes the labeled image locator and title, with the body
// below the box.
func (r *Desktop) RenderImage(title, body, imageURL string) {
	r.box("Image: "+textfit.Shorten(imageURL, imageURLLimit), title)
	fmt.Fprintln(r.out, body)
}

// RenderVideo boxes the labeled video locator and title, with the body
// below the box.
func (r *Desktop) RenderVideo(title, body, videoURL string) {
	r.box("Video: "+textfit.Shorten(videoURL, videoURLLimit), title)
	fmt.Fprintln(r.out, body)
}

// box draws the rows inside a frame with a boxWidth-column interior. Rows
// wider than the interior are cut, not ellipsized.
func (r *Desktop) box(rows ...string) {
	bar := strings.Repeat("─", boxWidth)
	fmt.Fprintf(r.out, "┌%s┐\n", bar)
	for _, row := range rows {
		fmt.Fprintf(r.out, "│%s│\n", textfit.Pad(row, boxWidth))
	}
	fmt.Fprintf(r.out, "└%s┘\n", bar)
}
