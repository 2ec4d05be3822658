// Package render formats notification content for each target platform.
package render

// Renderer renders notification content for one platform. Implementations
// are stateless apart from their output writer and are safe to share across
// any number of notifications.
type Renderer interface {
	RenderText(title, body string)
	RenderImage(title, body, imageURL string)
	RenderVideo(title, body, videoURL string)
}
