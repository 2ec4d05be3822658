package render

import (
	"bytes"
	"testing"
)

func TestWeb_RenderText(t *testing.T) {
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
			want: `<div class="notification">
  <h1>Novo Pedido</h1>
  <p>Você tem um novo pedido</p>
</div>
`,
		},
		{
			name:  "empty fields render as empty text",
			title: "",
			body:  "",
			want: `<div class="notification">
  <h1></h1>
  <p></p>
</div>
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewWeb(&buf).RenderText(tt.title, tt.body)
			if got := buf.String(); got != tt.want {
				t.Errorf("RenderText output:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestWeb_RenderImage(t *testing.T) {
	var buf bytes.Buffer
	NewWeb(&buf).RenderImage("Oferta Relâmpago", "Só hoje!", "oferta.png")

	want := `<div class="notification">
  <img src="oferta.png" />
  <h1>Oferta Relâmpago</h1>
  <p>Só hoje!</p>
</div>
`
	if got := buf.String(); got != want {
		t.Errorf("RenderImage output:\n%s\nwant:\n%s", got, want)
	}
}

func TestWeb_RenderVideo(t *testing.T) {
	var buf bytes.Buffer
	NewWeb(&buf).RenderVideo("Novo Tutorial", "Aprenda em 10 minutos", "tutorial.mp4")

	want := `<div class="notification">
  <video src="tutorial.mp4" controls></video>
  <h1>Novo Tutorial</h1>
  <p>Aprenda em 10 minutos</p>
</div>
`
	if got := buf.String(); got != want {
		t.Errorf("RenderVideo output:\n%s\nwant:\n%s", got, want)
	}
}

func TestWeb_RenderIsDeterministic(t *testing.T) {
	var buf bytes.Buffer
	r := NewWeb(&buf)

	r.RenderText("Novo Pedido", "Você tem um novo pedido")
	first := buf.String()
	buf.Reset()
	r.RenderText("Novo Pedido", "Você tem um novo pedido")

	if got := buf.String(); got != first {
		t.Errorf("second render differs from first:\n%s\nvs:\n%s", got, first)
	}
}
