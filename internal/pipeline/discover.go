package pipeline

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var videoExts = map[string]bool{
	".mp4":  true,
	".avi":  true,
	".mov":  true,
	".mkv":  true,
	".webm": true,
	".m4v":  true,
}

// findByExt walks root and returns all files with the given extension,
// sorted for deterministic processing order.
func findByExt(root, ext string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	sort.Strings(files)
	return files, nil
}

func findVideos(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		if videoExts[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	sort.Strings(files)
	return files, nil
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

func replaceExt(path, newExt string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + newExt
}

// outputPath maps srcPath to its result location with newExt. Without an
// output directory the result sits next to the source. With one, the
// path of srcPath relative to inputPath is preserved under outputDir;
// for a single-file input only the basename is kept. Parent directories
// are created as needed.
func outputPath(inputPath, srcPath, outputDir, newExt string) (string, error) {
	if outputDir == "" {
		return replaceExt(srcPath, newExt), nil
	}

	var rel string
	if isDir(inputPath) {
		var err error
		rel, err = filepath.Rel(inputPath, srcPath)
		if err != nil {
			rel = filepath.Base(srcPath)
		}
	} else {
		rel = filepath.Base(srcPath)
	}

	out := filepath.Join(outputDir, replaceExt(rel, newExt))
	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	return out, nil
}
