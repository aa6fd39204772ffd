package convert

import "github.com/ytget/picshift/internal/model"

// FirstSupported returns the first path with a supported input extension
func FirstSupported(paths []string) (string, bool) {
	for _, p := range paths {
		if _, ok := model.FormatFromPath(p); ok {
			return p, true
		}
	}
	return "", false
}
