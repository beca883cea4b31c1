package logging

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const logFilePrefix = "commentview_"

// rotate removes the oldest commentview_*.log files in dir so that at most
// maxFiles remain.
func rotate(dir string, maxFiles int) error {
	if maxFiles <= 0 {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	type logFile struct {
		path    string
		modTime int64
	}
	var logFiles []logFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, logFilePrefix) || !strings.HasSuffix(name, ".log") {
			continue
		}
		lf := logFile{path: filepath.Join(dir, name)}
		if info, err := entry.Info(); err == nil {
			lf.modTime = info.ModTime().UnixNano()
		}
		logFiles = append(logFiles, lf)
	}
	if len(logFiles) <= maxFiles {
		return nil
	}
	sort.Slice(logFiles, func(i, j int) bool {
		if logFiles[i].modTime == logFiles[j].modTime {
			return logFiles[i].path < logFiles[j].path
		}
		return logFiles[i].modTime < logFiles[j].modTime
	})
	for _, lf := range logFiles[:len(logFiles)-maxFiles] {
		os.Remove(lf.path) // best effort
	}
	return nil
}
