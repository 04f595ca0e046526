// Package validation holds small checks on user supplied paths.
package validation

import (
	"fmt"
	"path/filepath"
	"strings"
)

// HasExtension checks that path ends in ext, ignoring case. ext includes the dot.
func HasExtension(path, ext string) error {
	if path == "" {
		return fmt.Errorf("path is empty")
	}
	got := filepath.Ext(path)
	if !strings.EqualFold(got, ext) {
		if got == "" {
			return fmt.Errorf("file %s has no extension, expected %s", path, ext)
		}
		return fmt.Errorf("file %s has extension %s, expected %s", path, got, ext)
	}
	return nil
}
