// Package notification binds notification content to a platform renderer.
package notification

import "github.com/pedromcd/balta-desafio-carnacode-2026-7-bridge/pkg/render"

// Notification renders its content on the platform it was bound to at
// construction. Render may be called any number of times with identical
// effect.
type Notification interface {
	Render()
}

// Text is a plain text notification.
type Text struct {
	renderer render.Renderer
	title    string
	body     string
}

// NewText binds a text notification to a renderer.
func NewText(r render.Renderer, title, body string) *Text {
	return &Text{renderer: r, title: title, body: body}
}

// Render draws the notification on the bound platform.
func (n *Text) Render() {
	n.renderer.RenderText(n.title, n.body)
}

// Image is a notification carrying a picture.
type Image struct {
	renderer render.Renderer
	title    string
	body     string
	imageURL string
}

// NewImage binds an image notification to a renderer.
func NewImage(r render.Renderer, title, body, imageURL string) *Image {
	return &Image{renderer: r, title: title, body: body, imageURL: imageURL}
}

// Render draws the notification on the bound platform.
func (n *Image) Render() {
	n.renderer.RenderImage(n.title, n.body, n.imageURL)
}

// Video is a notification carrying a clip.
type Video struct {
	renderer render.Renderer
	title    string
	body     string
	videoURL string
}

// NewVideo binds a video notification to a renderer.
func NewVideo(r render.Renderer, title, body, videoURL string) *Video {
	return &Video{renderer: r, title: title, body: body, videoURL: videoURL}
}

// Render draws the notification on the bound platform.
func (n *Video) Render() {
	n.renderer.RenderVideo(n.title, n.body, n.videoURL)
}
