package render

import (
	"bytes"
	"testing"
)

func TestMobile_RenderText(t *testing.T) {
	tests := []struct {
		name  string
		title string
		body  string
		want  string
	}{
		{
			name:  "new order notification",
			title: "Novo Pedido",
			body:  "Você tem um novo pedido",
			want: `Title: Novo Pedido
Body: Você tem um novo pedido
Icon: notification.png
`,
		},
		{
			name:  "empty fields render as empty text",
			title: "",
			body:  "",
			want:  "Title: \nBody: \nIcon: notification.png\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewMobile(&buf).RenderText(tt.title, tt.body)
			if got := buf.String(); got != tt.want {
				t.Errorf("RenderText output:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestMobile_RenderImage(t *testing.T) {
	var buf bytes.Buffer
	NewMobile(&buf).RenderImage("Oferta Relâmpago", "Só hoje!", "oferta.png")

	want := `Title: Oferta Relâmpago
Body: Só hoje!
Image: oferta.png
Style: big-picture
`
	if got := buf.String(); got != want {
		t.Errorf("RenderImage output:\n%s\nwant:\n%s", got, want)
	}
}

func TestMobile_RenderVideo(t *testing.T) {
	var buf bytes.Buffer
	NewMobile(&buf).RenderVideo("Novo Tutorial", "Aprenda em 10 minutos", "tutorial.mp4")

	want := `Title: Novo Tutorial
Body: Aprenda em 10 minutos
Video: tutorial.mp4
Tap to play
`
	if got := buf.String(); got != want {
		t.Errorf("RenderVideo output:\n%s\nwant:\n%s", got, want)
	}
}
