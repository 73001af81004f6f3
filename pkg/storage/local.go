package storage

import (
	"fmt"
	"io"
	"os"
)

// localDisk reads plain filesystem paths.
type localDisk struct{}

func newLocalDisk() *localDisk {
	return &localDisk{}
}

func (d *localDisk) Get(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("storage/local: get %s: %w", path, err)
	}
	return data, nil
}

func (d *localDisk) GetStream(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("storage/local: open %s: %w", path, err)
	}
	return f, nil
}

func (d *localDisk) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
