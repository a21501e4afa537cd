package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrExists is returned when the destination file is already there.
var ErrExists = errors.New("already exists")

var invalidFilenameChars = regexp.MustCompile(`[\\/:*?"<>|\s]+`)

// SanitizeFilename strips characters invalid in filenames and trims
// whitespace. Falls back to "ribbon" if the result is empty.
func SanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	name = invalidFilenameChars.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-")
	if name == "" {
		return "ribbon"
	}
	return name
}

// NextName returns the first "<prefix>-NNN.png" in dir that does not exist
// yet.
func NextName(dir, prefix string) string {
	prefix = SanitizeFilename(prefix)
	for i := 1; ; i++ {
		name := filepath.Join(dir, fmt.Sprintf("%s-%03d.png", prefix, i))
		if _, err := os.Stat(name); errors.Is(err, os.ErrNotExist) {
			return name
		}
	}
}

// Save writes the frame to path as PNG. It never overwrites an existing
// file.
func (p *PNG) Save(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("file %q %w", path, ErrExists)
		}
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := p.dc.EncodePNG(f); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
