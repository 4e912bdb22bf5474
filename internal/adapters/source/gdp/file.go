package gdp

import (
	"context"
	"os"
)

// FileSource reads the dataset from a local copy of the document
type FileSource struct {
	Path string
}

// Fetch opens and decodes Path, failures surface like HTTP ones
func (f FileSource) Fetch(ctx context.Context) (Dataset, error) {
	if err := ctx.Err(); err != nil {
		return Dataset{}, upstream(&FetchError{Source: f.Path, Err: err})
	}
	fh, err := os.Open(f.Path)
	if err != nil {
		return Dataset{}, upstream(&FetchError{Source: f.Path, Err: err})
	}
	defer func() { _ = fh.Close() }()

	ds, err := Decode(fh)
	if err != nil {
		return Dataset{}, upstream(&FetchError{Source: f.Path, Err: err})
	}
	return ds, nil
}
