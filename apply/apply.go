// Package apply replaces files in place: the running executable on update and
// compacted models on install.
package apply

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/inconshreveable/go-update"
	"github.com/kardianos/osext"
)

// Apply replaces the running executable with the contents of r.
func Apply(r io.Reader) error {
	targetPath, err := osext.Executable()
	if err != nil {
		return err
	}

	return File(targetPath, r, 0755)
}

// File atomically replaces path with the contents of r. A failed replacement
// of an existing file is rolled back; if the rollback fails too the returned
// error says so.
func File(path string, r io.Reader, mode os.FileMode) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return create(path, r, mode)
	}

	err := update.Apply(r, update.Options{
		TargetPath: path,
		TargetMode: mode,
	})
	if err != nil {
		if rerr := update.RollbackError(err); rerr != nil {
			return fmt.Errorf("replacing %s failed and could not be rolled back: %s", path, rerr)
		}
		return err
	}

	return nil
}

func create(path string, r io.Reader, mode os.FileMode) error {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, fmt.Sprintf(".%s.new", name))
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmp.Name(), mode); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
