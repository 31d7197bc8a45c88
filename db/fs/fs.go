package fs

import (
	"os"
	"path"

	"github.com/lokafit/lokafit/store"
)

func New(basePath string) (*Filesystem, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, err
	}

	return &Filesystem{path: basePath}, nil
}

// Filesystem keeps the store snapshot as a single json file, named after the
// store namespace. This is the default backend: the desktop equivalent of the
// browser's local storage.
type Filesystem struct {
	path string
}

func (f *Filesystem) Load() ([]byte, error) {
	blob, err := os.ReadFile(f.blobPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, err
	}

	return blob, nil
}

func (f *Filesystem) Save(blob []byte) error {
	return os.WriteFile(f.blobPath(), blob, 0644)
}

func (f *Filesystem) Ping() error {
	_, err := os.Stat(f.path)
	return err
}

func (f *Filesystem) blobPath() string {
	return path.Join(f.path, store.Namespace+".json")
}
