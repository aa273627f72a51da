package logging

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// filePrefix starts every log file name written by Init.
const filePrefix = "lobster-view_"

// rotate removes the oldest log files in dir until at most keep remain.
// Only files named lobster-view_*.log are considered.
func rotate(dir string, keep int) error {
	if keep <= 0 {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	type logFile struct {
		path string
		mod  time.Time
	}
	var files []logFile
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, ".log") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, logFile{path: filepath.Join(dir, name), mod: info.ModTime()})
	}
	if len(files) <= keep {
		return nil
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].mod.Equal(files[j].mod) {
			return files[i].path < files[j].path
		}
		return files[i].mod.Before(files[j].mod)
	})
	for _, f := range files[:len(files)-keep] {
		os.Remove(f.path)
	}
	return nil
}
