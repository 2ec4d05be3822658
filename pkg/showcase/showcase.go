// Package showcase renders a configured sequence of notifications, pairing
// each content kind with its target platform renderer.
package showcase

import (
	"fmt"
	"io"

	"github.com/pedromcd/balta-desafio-carnacode-2026-7-bridge/pkg/config"
	"github.com/pedromcd/balta-desafio-carnacode-2026-7-bridge/pkg/notification"
	"github.com/pedromcd/balta-desafio-carnacode-2026-7-bridge/pkg/render"
)

// Runner renders the configured notifications to a single writer. One
// renderer exists per platform and is shared by every notification bound
// to that platform.
type Runner struct {
	cfg       *config.Config
	out       io.Writer
	renderers map[string]render.Renderer
}

// NewRunner creates a runner writing to out.
func NewRunner(cfg *config.Config, out io.Writer) *Runner {
	return &Runner{
		cfg: cfg,
		out: out,
		renderers: map[string]render.Renderer{
			config.PlatformWeb:     render.NewWeb(out),
			config.PlatformMobile:  render.NewMobile(out),
			config.PlatformDesktop: render.NewDesktop(out),
		},
	}
}

// Run renders every configured notification in order, framed by the banner
// and closing messages with a blank line between blocks.
func (r *Runner) Run() {
	if r.cfg.Quiet {
		return
	}

	fmt.Fprintln(r.out, r.cfg.Banner)
	for _, entry := range r.cfg.Notifications {
		fmt.Fprintln(r.out)
		r.build(entry).Render()
	}
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.cfg.Closing)
}

// build pairs one entry with its shared platform renderer.
func (r *Runner) build(entry config.Entry) notification.Notification {
	renderer, ok := r.renderers[entry.Platform]
	if !ok {
		renderer = r.renderers[config.PlatformWeb]
	}

	switch entry.Kind {
	case config.KindImage:
		return notification.NewImage(renderer, entry.Title, entry.Body, entry.Media)
	case config.KindVideo:
		return notification.NewVideo(renderer, entry.Title, entry.Body, entry.Media)
	default:
		return notification.NewText(renderer, entry.Title, entry.Body)
	}
}
