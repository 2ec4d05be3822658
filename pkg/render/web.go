package render

import (
	"fmt"
	"io"
)

// Web renders notifications as an HTML-like fragment.
type Web struct {
	out io.Writer
}

// NewWeb creates a web renderer writing to out.
func NewWeb(out io.Writer) *Web {
	return &Web{out: out}
}

// RenderText writes a div containing a heading and a paragraph.
func (r *Web) RenderText(title, body string) {
	fmt.Fprintln(r.out, `<div class="notification">`)
	fmt.Fprintf(r.out, "  <h1>%s</h1>\n", title)
	fmt.Fprintf(r.out, "  <p>%s</p>\n", body)
	fmt.Fprintln(r.out, `</div>`)
}

// RenderImage embeds the image above the heading and paragraph.
func (r *Web) RenderImage(title, body, imageURL string) {
	fmt.Fprintln(r.out, `<div class="notification">`)
	fmt.Fprintf(r.out, "  <img src=\"%s\" />\n", imageURL)
	fmt.Fprintf(r.out, "  <h1>%s</h1>\n", title)
	fmt.Fprintf(r.out, "  <p>%s</p>\n", body)
	fmt.Fprintln(r.out, `</div>`)
}

// RenderVideo embeds the video above the heading and paragraph.
func (r *Web) RenderVideo(title, body, videoURL string) {
	fmt.Fprintln(r.out, `<div class="notification">`)
	fmt.Fprintf(r.out, "  <video src=\"%s\" controls></video>\n", videoURL)
	fmt.Fprintf(r.out, "  <h1>%s</h1>\n", title)
	fmt.Fprintf(r.out, "  <p>%s</p>\n", body)
	fmt.Fprintln(r.out, `</div>`)
}
