package reader

import (
	"fmt"
	"os"
)

// FileReader reads samples from a meminfo formatted file. The file is read
// from scratch on every call.
type FileReader struct {
	Path string
}

func NewMemoryReader(path string) *FileReader {
	if path == "" {
		path = DefaultSourcePath
	}
	return &FileReader{Path: path}
}

func (r *FileReader) ReadSamples() (Samples, error) {
	data, err := os.ReadFile(r.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", r.Path, err)
	}
	return Parse(string(data)), nil
}

func (r *FileReader) String() string {
	return r.Path
}
