// Package rod implements browser rendering with a local headless Chromium
// instance driven by github.com/go-rod/rod.
package rod

import (
	"context"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	docsearch "github.com/chinng-inta/gemini-file-search-tool"
)

var _ docsearch.Renderer = (*Renderer)(nil)

// Renderer renders pages in a local headless browser. The browser launches
// lazily on first use and is shared across renders; each render gets its
// own page.
type Renderer struct {
	mu       sync.Mutex
	launcher *launcher.Launcher
	browser  *rod.Browser
}

// NewRenderer creates a renderer. No browser process starts until the first
// Render call.
func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) connect() (*rod.Browser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.browser != nil {
		return r.browser, nil
	}

	l := launcher.New().Headless(true)
	controlURL, err := l.Launch()
	if err != nil {
		return nil, docsearch.Errorf(docsearch.EUNAVAILABLE, "launch browser: %v", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		l.Cleanup()
		return nil, docsearch.Errorf(docsearch.EUNAVAILABLE, "connect browser: %v", err)
	}

	r.launcher = l
	r.browser = browser
	return browser, nil
}

// Render implements docsearch.Renderer.
func (r *Renderer) Render(ctx context.Context, url string) (string, error) {
	browser, err := r.connect()
	if err != nil {
		return "", err
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return "", docsearch.Errorf(docsearch.EUNAVAILABLE, "open page %s: %v", url, err)
	}
	defer page.Close()

	page = page.Context(ctx)
	if err := page.WaitLoad(); err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", docsearch.Errorf(docsearch.EUNAVAILABLE, "load %s: %v", url, err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", docsearch.Errorf(docsearch.EUNAVAILABLE, "read html %s: %v", url, err)
	}
	return html, nil
}

// Close implements docsearch.Renderer. It shuts down the shared browser
// process, if one was started.
func (r *Renderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.browser == nil {
		return nil
	}
	err := r.browser.Close()
	r.launcher.Cleanup()
	r.browser = nil
	r.launcher = nil
	if err != nil {
		return docsearch.Errorf(docsearch.EINTERNAL, "close browser: %v", err)
	}
	return nil
}
