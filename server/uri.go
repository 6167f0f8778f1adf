package server

import (
	"path/filepath"
	"runtime"
	"strings"
)

func pathToURI(path string) string {
	path = filepath.Clean(path)
	if runtime.GOOS == "windows" {
		path = strings.ReplaceAll(path, "\\", "/")
		return "file:///" + strings.ReplaceAll(path, ":", "%3A")
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return "file://" + path
}

func uriToPath(uri string) string {
	uri = strings.TrimPrefix(uri, "file://")
	uri = strings.ReplaceAll(uri, "%3A", ":")
	return filepath.FromSlash(uri)
}
