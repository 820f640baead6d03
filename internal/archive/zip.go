package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ExtractZip extracts every regular file in the ZIP at path into destDir,
// preserving relative member paths. Entries that would escape destDir
// (absolute paths, ".." components) are rejected. Returns the extracted
// file paths sorted lexically.
func ExtractZip(path, destDir string) ([]string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	defer zr.Close()

	var extracted []string
	for _, member := range zr.File {
		if member.FileInfo().IsDir() {
			continue
		}
		rel, err := safeMemberPath(member.Name)
		if err != nil {
			return nil, err
		}
		dest := filepath.Join(destDir, rel)
		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return nil, fmt.Errorf("create member directory: %w", err)
		}
		if err := extractMember(member, dest); err != nil {
			return nil, err
		}
		extracted = append(extracted, dest)
	}
	sort.Strings(extracted)
	return extracted, nil
}

func extractMember(member *zip.File, dest string) error {
	src, err := member.Open()
	if err != nil {
		return fmt.Errorf("open zip member %s: %w", member.Name, err)
	}
	defer src.Close()

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create %s: %w", dest, err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		os.Remove(dest)
		return fmt.Errorf("extract %s: %w", member.Name, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", dest, err)
	}
	return nil
}

// safeMemberPath normalizes an archive member name and rejects paths that
// could escape the extraction directory.
func safeMemberPath(name string) (string, error) {
	name = filepath.ToSlash(name)
	if strings.HasPrefix(name, "/") {
		return "", fmt.Errorf("absolute member path: %s", name)
	}
	clean := filepath.Clean(filepath.FromSlash(name))
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("member path escapes destination: %s", name)
	}
	return clean, nil
}
