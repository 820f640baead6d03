package audio

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/viaifoundation/firstlight/internal/archive"
	"github.com/viaifoundation/firstlight/internal/logging"
)

var trackExts = map[string]bool{
	".mp3": true,
	".wav": true,
	".m4a": true,
}

func trackExt(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// ListTracks returns the audio files in a background-music directory,
// sorted by name. A missing directory yields an empty list.
func ListTracks(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read track dir: %w", err)
	}
	var tracks []string
	for _, e := range entries {
		if e.IsDir() || !trackExts[trackExt(e.Name())] {
			continue
		}
		tracks = append(tracks, filepath.Join(dir, e.Name()))
	}
	sort.Strings(tracks)
	return tracks, nil
}

// InstallPack extracts the audio files of a tar.gz or tar.xz music pack
// into dir, flattening any directory structure inside the pack. It
// returns the paths of the installed tracks.
func InstallPack(packPath, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create track dir: %w", err)
	}
	var installed []string
	err := archive.Walk(packPath, func(header *tar.Header, content io.Reader) (bool, error) {
		if header.Typeflag != tar.TypeReg || !trackExts[trackExt(header.Name)] {
			return false, nil
		}
		dest := filepath.Join(dir, filepath.Base(header.Name))
		out, err := os.Create(dest)
		if err != nil {
			return false, fmt.Errorf("create %s: %w", dest, err)
		}
		if _, err := io.Copy(out, content); err != nil {
			out.Close()
			return false, fmt.Errorf("extract %s: %w", header.Name, err)
		}
		if err := out.Close(); err != nil {
			return false, fmt.Errorf("close %s: %w", dest, err)
		}
		installed = append(installed, dest)
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(installed)
	logging.Info("music pack installed", "pack", filepath.Base(packPath), "tracks", len(installed))
	return installed, nil
}
