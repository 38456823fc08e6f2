package feed

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// DirSource reads datasets from a local directory, the layout the site
// builder uses under static/data.
type DirSource struct {
	dir string
}

func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

func (s *DirSource) Fetch(_ context.Context, name string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.dir, name))
}
