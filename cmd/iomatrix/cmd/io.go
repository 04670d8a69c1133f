// Package cmd: file access and extension dispatch around the core codecs.
// The codecs themselves never touch the filesystem; everything here is the
// out-of-core collaborator layer.

package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/iomatrix/csvmat"
	"github.com/katalvlaran/iomatrix/jsonmat"
	"github.com/katalvlaran/iomatrix/marray"
	"github.com/katalvlaran/iomatrix/numfmt"
	"github.com/katalvlaran/iomatrix/texmat"
)

var (
	// ErrNotFound indicates that the source document does not exist.
	ErrNotFound = errors.New("iomatrix: file not found")

	// ErrUnreadable indicates that the source document exists but could not
	// be read.
	ErrUnreadable = errors.New("iomatrix: file unreadable")

	// ErrUnknownFormat indicates a file extension outside .tex/.json/.csv.
	ErrUnknownFormat = errors.New("iomatrix: unknown format extension")
)

// readDoc loads a whole source document into memory.
func readDoc(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%s: %w", path, ErrNotFound)
		}

		return "", fmt.Errorf("%s: %v: %w", path, err, ErrUnreadable)
	}

	return string(data), nil
}

// parseByExt dispatches the parse side on the source file's extension.
// The tabular codec yields a single array; the others may yield several.
func parseByExt(path, text string) ([]*marray.Matrix, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tex":
		return texmat.Parse(text)
	case ".json":
		return jsonmat.Parse(text)
	case ".csv":
		m, err := csvmat.Parse(text)
		if err != nil {
			return nil, err
		}

		return []*marray.Matrix{m}, nil
	}

	return nil, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
}

// serializeByExt dispatches the serialize side on the target file's
// extension. env applies to .tex only, indent to .json only.
func serializeByExt(path string, m *marray.Matrix, spec numfmt.Spec, env texmat.Env, indent int) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tex":
		return texmat.Serialize(m, env, spec)
	case ".json":
		return jsonmat.Serialize(m, spec, indent)
	case ".csv":
		return csvmat.Serialize(m, spec)
	}

	return "", fmt.Errorf("%s: %w", path, ErrUnknownFormat)
}

// shapeOf renders an array's shape for listings: "3" for a vector of
// three, "2x4" for a matrix.
func shapeOf(m *marray.Matrix) string {
	if m.Dims() == 1 {
		return fmt.Sprintf("%d", m.Cols())
	}

	return fmt.Sprintf("%dx%d", m.Rows(), m.Cols())
}
