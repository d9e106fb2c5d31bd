package ingest

import (
	"io"

	"github.com/edaniels/lidario"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"github.com/seqsense/pcgol/pc"
	"go.uber.org/multierr"
)

// ReadPCD decodes a PCD stream and returns its x, y, z fields.
func ReadPCD(r io.Reader) ([]r3.Vector, error) {
	pp, err := pc.Unmarshal(r)
	if err != nil {
		return nil, errors.Wrap(err, "pcd")
	}
	it, err := pp.Vec3Iterator()
	if err != nil {
		return nil, errors.Wrap(err, "pcd: need float x, y and z fields")
	}
	pts := make([]r3.Vector, 0, pp.Points)
	for ; it.IsValid(); it.Incr() {
		v := it.Vec3()
		pts = append(pts, r3.Vector{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])})
	}
	return pts, nil
}

// readLAS returns the scaled coordinates of every point record in a LAS file.
func readLAS(path string) (pts []r3.Vector, err error) {
	lf, err := lidario.NewLasFile(path, "r")
	if err != nil {
		return nil, err
	}
	defer func() {
		err = multierr.Combine(err, lf.Close())
	}()

	pts = make([]r3.Vector, 0, lf.Header.NumberPoints)
	for i := 0; i < lf.Header.NumberPoints; i++ {
		p, err := lf.LasPoint(i)
		if err != nil {
			return nil, errors.Wrapf(err, "las point %d", i)
		}
		data := p.PointData()
		pts = append(pts, r3.Vector{X: data.X, Y: data.Y, Z: data.Z})
	}
	return pts, nil
}
