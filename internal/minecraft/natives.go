// SPDX-License-Identifier: MPL-2.0

package minecraft

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/hearthmc/hearth/internal/pipeline"
	"github.com/hearthmc/hearth/internal/rules"
	"github.com/hearthmc/hearth/pkg/platform"
)

// ExtractNatives unpacks the native classifier archives of applicable
// libraries into the natives directory, skipping excluded entries.
type ExtractNatives struct{}

// Name implements pipeline.Task.
func (ExtractNatives) Name() string { return NameExtractNatives }

// Execute implements pipeline.Task.
func (ExtractNatives) Execute(ctx context.Context, lc *pipeline.Context) error {
	if err := pipeline.Require(lc.BaseManifest != nil, "base manifest not loaded"); err != nil {
		return err
	}

	dest := lc.Root.Natives()
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return fmt.Errorf("creating natives directory: %w", err)
	}

	count := 0
	for _, lib := range lc.BaseManifest.Libraries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !rules.Applies(lib.Rules, lc.Facts) {
			continue
		}
		native, ok := nativeArtifact(lib, lc.Facts)
		if !ok {
			continue
		}
		var exclude []string
		if lib.Extract != nil {
			exclude = lib.Extract.Exclude
		}
		n, err := extractArchive(lc.Root.Library(native.Path), dest, exclude)
		if err != nil {
			return fmt.Errorf("extracting natives of %s: %w", lib.Name, err)
		}
		count += n
	}
	slog.Debug("natives extracted", "files", count, "dir", dest)
	return nil
}

// extractArchive copies the regular files of a zip archive into dest.
// Entries starting with an excluded prefix are skipped. Entries that would
// land outside dest or that Windows cannot create are rejected.
func extractArchive(archivePath, dest string, exclude []string) (_ int, err error) {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return 0, err
	}
	defer func() { _ = zr.Close() }() // read-only archive

	count := 0
	for _, f := range zr.File {
		if f.FileInfo().IsDir() || excluded(f.Name, exclude) {
			continue
		}
		if platform.HasWindowsReservedElement(f.Name) {
			return count, fmt.Errorf("archive entry %q uses a reserved device name", f.Name)
		}
		target := filepath.Join(dest, filepath.FromSlash(f.Name))
		if !strings.HasPrefix(target, filepath.Clean(dest)+string(filepath.Separator)) {
			return count, fmt.Errorf("archive entry %q escapes the natives directory", f.Name)
		}
		if err := extractFile(f, target); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func extractFile(f *zip.File, target string) (err error) {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("opening %s: %w", f.Name, err)
	}
	defer func() { _ = rc.Close() }() // read-only entry

	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o755)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if _, err := io.Copy(out, rc); err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}
	return nil
}

func excluded(name string, exclude []string) bool {
	for _, prefix := range exclude {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
