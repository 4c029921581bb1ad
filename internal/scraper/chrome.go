package scraper

import (
	"fmt"
	"os/exec"

	"listing-scraper/internal/logger"
)

// chromeBinaryNames are tried in order: PATH names first, then well-known
// install locations.
var chromeBinaryNames = []string{
	"google-chrome-stable",
	"google-chrome",
	"chromium",
	"chromium-browser",
	"chrome",
	"headless-shell",
	"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
	"/Applications/Chromium.app/Contents/MacOS/Chromium",
	"/usr/bin/google-chrome-stable",
	"/usr/bin/chromium",
	"/snap/bin/chromium",
	`C:\Program Files\Google\Chrome\Application\chrome.exe`,
	`C:\Program Files (x86)\Google\Chrome\Application\chrome.exe`,
}

// FindChromePath returns the first Chrome/Chromium binary found, or "".
func FindChromePath() string {
	return findExecutable(chromeBinaryNames)
}

func findExecutable(names []string) string {
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			logger.Debug("found Chrome binary", "name", name, "path", path)
			return path
		}
	}
	return ""
}

// resolveChromePath validates an explicit path or falls back to discovery.
func resolveChromePath(explicit string) (string, error) {
	if explicit != "" {
		path, err := exec.LookPath(explicit)
		if err != nil {
			return "", fmt.Errorf("%w: %s", ErrChromeNotFound, explicit)
		}
		return path, nil
	}
	if path := FindChromePath(); path != "" {
		return path, nil
	}
	return "", ErrChromeNotFound
}
