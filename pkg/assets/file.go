package assets

import (
	"io"
	"os"
	"strings"

	"github.com/pierrec/lz4/v4"
)

// CompressedSuffix marks files stored as lz4 frames
const CompressedSuffix = ".lz4"

// ReadSource returns the contents of the file at path as a string. Files
// ending in CompressedSuffix are decompressed on the fly.
//
// On failure the returned source is empty, not partial, so that a shader
// compiler fed with it reports its own error as well.
func ReadSource(path string) (string, error) {
	data, err := ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ReadFile returns the raw, decompressed contents of the file at path
func ReadFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &ResourceError{Op: "read", Path: path, Err: err}
	}
	defer file.Close()

	var r io.Reader = file
	if strings.HasSuffix(path, CompressedSuffix) {
		r = lz4.NewReader(file)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ResourceError{Op: "read", Path: path, Err: err}
	}
	return data, nil
}
