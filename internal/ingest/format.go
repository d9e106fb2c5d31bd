// Package ingest reads point files into a cloud.Store.
package ingest

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Format selects how a point file is read. PlainXYZ and FixedHeaderXYZ skip lines by
// different rules (content vs. line count) and are kept as separate strategies.
type Format int

const (
	// PlainXYZ: whitespace separated x y z rows; '#' lines and blank lines skipped anywhere.
	PlainXYZ Format = iota
	// FixedHeaderXYZ: the first FixedHeaderLines lines are dropped unread, the rest are x y z rows.
	FixedHeaderXYZ
	// CSV with a header naming the x, y and z columns.
	CSV
	// PCD is a Point Cloud Library file decoded from its header.
	PCD
	// LAS is an ASPRS LAS file.
	LAS
)

// FixedHeaderLines is the number of leading lines FixedHeaderXYZ skips.
const FixedHeaderLines = 11

var formatNames = map[Format]string{
	PlainXYZ:       "plain",
	FixedHeaderXYZ: "fixed-header",
	CSV:            "csv",
	PCD:            "pcd",
	LAS:            "las",
}

func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return "unknown"
}

// ParseFormat maps a user-facing name onto a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "plain", "xyz":
		return PlainXYZ, nil
	case "fixed-header", "pcd-ascii":
		return FixedHeaderXYZ, nil
	case "csv":
		return CSV, nil
	case "pcd":
		return PCD, nil
	case "las":
		return LAS, nil
	}
	return 0, errors.Errorf("unknown point format %q", name)
}

// DetectFormat guesses the format from the file extension. Unknown extensions are read
// as FixedHeaderXYZ.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xyz", ".txt":
		return PlainXYZ
	case ".csv":
		return CSV
	case ".pcd":
		return PCD
	case ".las":
		return LAS
	default:
		return FixedHeaderXYZ
	}
}
