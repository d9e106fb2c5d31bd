package ingest

import (
	"io"
	"os"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"ptview/internal/cloud"
)

// Result is a freshly populated store plus the number of data rows read from the file.
type Result struct {
	Store *cloud.Store
	Rows  int
}

// Load reads path in the given format into a new store built with opts. The file is
// parsed completely before the store is populated: on any error no store is returned.
// A file without data rows yields an empty store.
func Load(path string, format Format, opts cloud.Options, logger golog.Logger) (*Result, error) {
	logger.Infow("Reading file", "path", path, "format", format.String())
	pts, err := readPoints(path, format)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	logger.Infof("read %d points", len(pts))

	store, err := FromPoints(pts, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return &Result{Store: store, Rows: len(pts)}, nil
}

// FromPoints builds a store holding pts in order.
func FromPoints(pts []r3.Vector, opts cloud.Options) (*cloud.Store, error) {
	store := cloud.New(opts)
	for _, p := range pts {
		if _, err := store.InsertPoint(p); err != nil {
			return nil, err
		}
	}
	return store, nil
}

func readPoints(path string, format Format) ([]r3.Vector, error) {
	var read func(io.Reader) ([]r3.Vector, error)
	switch format {
	case PlainXYZ:
		read = ReadPlainXYZ
	case FixedHeaderXYZ:
		read = ReadFixedHeaderXYZ
	case CSV:
		read = ReadCSV
	case PCD:
		read = ReadPCD
	case LAS:
		return readLAS(path)
	default:
		return nil, errors.Errorf("unsupported format %v", format)
	}
	return readFile(path, read)
}

func readFile(path string, read func(io.Reader) ([]r3.Vector, error)) (pts []r3.Vector, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = multierr.Combine(err, f.Close())
	}()
	return read(f)
}
