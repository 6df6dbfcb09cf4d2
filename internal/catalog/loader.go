package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

//go:embed data/vehicles.json
var embeddedVehicles []byte

// ErrUnknownSource is returned for a catalog source name that is not supported.
var ErrUnknownSource = errors.New("catalog: unknown source")

// Source supplies raw catalog data.
type Source interface {
	Load(ctx context.Context) (Data, error)
}

// FileSource reads a JSON catalog from disk.
type FileSource struct {
	Path string
}

func (s FileSource) Load(ctx context.Context) (Data, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// EmbeddedSource serves the catalog compiled into the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) Load(ctx context.Context) (Data, error) {
	return Decode(bytes.NewReader(embeddedVehicles))
}

// Decode reads a JSON object of the form {"brand": {"Model": [2019, 2020]}}.
func Decode(r io.Reader) (Data, error) {
	var data Data
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if data == nil {
		data = Data{}
	}
	return data, nil
}

// Load pulls data from src and builds the catalog.
func Load(ctx context.Context, src Source, logger *slog.Logger) (*Catalog, error) {
	data, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}

	c, err := New(data)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	logger.Info("vehicle catalog loaded",
		"source", fmt.Sprintf("%T", src),
		"brands", c.Len(),
		"models", c.ModelCount(),
	)

	return c, nil
}
