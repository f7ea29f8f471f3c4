package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DirStorage writes uploads into a local directory and returns the file
// path. It is the default when no Cloudinary credentials are configured.
type DirStorage struct {
	Dir string
}

func NewDirStorage(dir string) (*DirStorage, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("media: create dir: %w", err)
	}
	return &DirStorage{Dir: dir}, nil
}

func (s *DirStorage) Save(ctx context.Context, name, mimeType string, data []byte) (string, error) {
	// Strip any path components from the client-supplied name. Base
	// passes "." and ".." through, so reject those too or the join
	// escapes the media dir.
	name = filepath.Base(strings.TrimSpace(name))
	if name == "" || name == "." || name == ".." || name == string(filepath.Separator) {
		return "", fmt.Errorf("media: invalid file name")
	}

	path := filepath.Join(s.Dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("media: write file: %w", err)
	}
	return path, nil
}
