// Package browser opens URLs in the user's default browser.
package browser

import (
	"fmt"

	pkgbrowser "github.com/pkg/browser"
)

// openURL is a test seam for pkgbrowser.OpenURL.
var openURL = pkgbrowser.OpenURL

// Opener launches the platform URL handler and waits for it to hand the URL
// over to the browser.
type Opener struct{}

func NewOpener() *Opener {
	return &Opener{}
}

func (o *Opener) Open(url string) error {
	if err := openURL(url); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	return nil
}
