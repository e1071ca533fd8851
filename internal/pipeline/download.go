// SPDX-License-Identifier: MPL-2.0

package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// Artifact is a remote file and where it goes.
type Artifact struct {
	URL  string
	Dest string
}

// FetchMissing downloads every artifact whose destination does not exist
// yet, lc.Concurrency at a time. Artifacts sharing a destination are
// fetched once. It returns the number of downloads performed.
func FetchMissing(ctx context.Context, lc *Context, artifacts []Artifact) (int, error) {
	seen := make(map[string]struct{}, len(artifacts))
	pending := make([]Artifact, 0, len(artifacts))
	for _, a := range artifacts {
		if _, dup := seen[a.Dest]; dup {
			continue
		}
		seen[a.Dest] = struct{}{}

		if _, err := os.Stat(a.Dest); err == nil {
			continue
		}
		pending = append(pending, a)
	}

	slog.Debug("fetching artifacts", "missing", len(pending), "total", len(seen))
	err := Parallel(ctx, lc.Concurrency, pending, func(ctx context.Context, a Artifact) error {
		if err := lc.Remote.Download(ctx, a.URL, a.Dest); err != nil {
			return fmt.Errorf("%s: %w", a.Dest, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(pending), nil
}
