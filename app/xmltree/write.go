package xmltree

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// IOError reports a failed write of a rendered document.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Write renders root and stores it at path.
//
// The document is written to a temporary file in the same directory and
// renamed over path, so path either keeps its previous state or holds the
// complete document. Rendering errors are returned as is, before anything
// touches the file system.
func Write(root *Element, path string, opts Options) (err error) {
	data, err := Render(root, opts)
	if err != nil {
		return err
	}

	dir, base := filepath.Split(path)
	if base == "" {
		return &IOError{Op: "write", Path: path, Err: errors.New("path names a directory")}
	}
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return &IOError{Op: "create temporary file for", Path: path, Err: err}
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err = tmp.Sync(); err != nil {
		return &IOError{Op: "sync", Path: path, Err: err}
	}
	if err = tmp.Chmod(0o644); err != nil {
		return &IOError{Op: "chmod", Path: path, Err: err}
	}
	if err = tmp.Close(); err != nil {
		return &IOError{Op: "close", Path: path, Err: err}
	}
	if err = os.Rename(tmpName, path); err != nil {
		return &IOError{Op: "rename", Path: path, Err: err}
	}
	return nil
}
