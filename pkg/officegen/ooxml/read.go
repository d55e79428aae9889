package ooxml

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
)

// ReadPart returns the content of a named part from container bytes.
func ReadPart(container []byte, name string) ([]byte, error) {
	r, err := zip.NewReader(bytes.NewReader(container), int64(len(container)))
	if err != nil {
		return nil, err
	}
	return readZipFile(r, name)
}

// PartNames lists the parts of a container in archive order.
func PartNames(container []byte) ([]string, error) {
	r, err := zip.NewReader(bytes.NewReader(container), int64(len(container)))
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(r.File))
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	return names, nil
}

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("part %s: %w", name, os.ErrNotExist)
}
