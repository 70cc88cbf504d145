package main

import (
	"fmt"

	"github.com/pkg/browser"
)

// openBrowser launches the platform URL handler
var openBrowser = browser.OpenURL

// openURL opens url in the default browser
func openURL(url string) error {
	if err := openBrowser(url); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	return nil
}
