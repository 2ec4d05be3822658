package render

import (
	"fmt"
	"io"
)

// Mobile renders notifications as push notification summaries.
type Mobile struct {
	out io.Writer
}

// NewMobile creates a mobile renderer writing to out.
func NewMobile(out io.Writer) *Mobile {
	return &Mobile{out: out}
}

// RenderText writes the labeled fields with the default icon.
func (r *Mobile) RenderText(title, body string) {
	fmt.Fprintf(r.out, "Title: %s\n", title)
	fmt.Fprintf(r.out, "Body: %s\n", body)
	fmt.Fprintln(r.out, "Icon: notification.png")
}

// RenderImage writes the labeled fields in big-picture style.
func (r *Mobile) RenderImage(title, body, imageURL string) {
	fmt.Fprintf(r.out, "Title: %s\n", title)
	fmt.Fprintf(r.out, "Body: %s\n", body)
	fmt.Fprintf(r.out, "Image: %s\n", imageURL)
	fmt.Fprintln(r.out, "Style: big-picture")
}

// RenderVideo writes the labeled fields with a tap-to-play action.
func (r *Mobile) RenderVideo(title, body, videoURL string) {
	fmt.Fprintf(r.out, "Title: %s\n", title)
	fmt.Fprintf(r.out, "Body: %s\n", body)
	fmt.Fprintf(r.out, "Video: %s\n", videoURL)
	fmt.Fprintln(r.out, "Tap to play")
}
