// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FakeRemote serves text documents and files from memory and records every
// request. It is safe for concurrent use.
type FakeRemote struct {
	mu sync.Mutex
	// Texts maps URLs to FetchText responses.
	Texts map[string]string
	// Files maps URLs to Download content. Unknown URLs fail.
	Files map[string][]byte
	// Fetched and Downloaded list requested URLs in order.
	Fetched    []string
	Downloaded []string
}

// NewFakeRemote returns an empty FakeRemote.
func NewFakeRemote() *FakeRemote {
	return &FakeRemote{Texts: map[string]string{}, Files: map[string][]byte{}}
}

// FetchText returns the text registered for url.
func (f *FakeRemote) FetchText(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Fetched = append(f.Fetched, url)
	text, ok := f.Texts[url]
	if !ok {
		return "", fmt.Errorf("GET %s: unexpected status 404 Not Found", url)
	}
	return text, nil
}

// Download writes the content registered for url to dest.
func (f *FakeRemote) Download(ctx context.Context, url, dest string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	f.Downloaded = append(f.Downloaded, url)
	data, ok := f.Files[url]
	f.mu.Unlock()

	if !ok {
		return fmt.Errorf("GET %s: unexpected status 404 Not Found", url)
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0o644)
}

// Requests returns the number of FetchText and Download calls so far.
func (f *FakeRemote) Requests() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Fetched) + len(f.Downloaded)
}

// DownloadCount returns the number of Download calls so far.
func (f *FakeRemote) DownloadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Downloaded)
}
