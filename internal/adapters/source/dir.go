package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DirSource reads {dir}/{name}.json and {dir}/geo/{name}.geojson.
type DirSource struct {
	dir string
}

// NewDirSource checks that dir exists.
func NewDirSource(dir string) (*DirSource, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("dataset dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("dataset dir %s: not a directory", dir)
	}
	return &DirSource{dir: dir}, nil
}

// FetchDataset implements Source.
func (s *DirSource) FetchDataset(ctx context.Context, name string) (json.RawMessage, error) {
	body, err := s.read(ctx, name, filepath.Join(s.dir, filepath.Base(name)+".json"))
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

// FetchGeoBoundary implements Source.
func (s *DirSource) FetchGeoBoundary(ctx context.Context, name string) (GeoCollection, error) {
	body, err := s.read(ctx, name, filepath.Join(s.dir, "geo", filepath.Base(name)+".geojson"))
	if err != nil {
		return GeoCollection{}, err
	}
	var g GeoCollection
	if err := json.Unmarshal(body, &g); err != nil {
		return GeoCollection{}, &TransportError{Dataset: name, Err: fmt.Errorf("decode geojson: %w", err)}
	}
	return g, nil
}

func (s *DirSource) read(ctx context.Context, name, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &TransportError{Dataset: name, Err: err}
	}
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, &TransportError{Dataset: name, Err: err}
	}
	return body, nil
}
