package webm

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/shirou/gopsutil/v3/disk"
)

var ErrNoSpace = errors.New("webm: not enough free space")

// SaveToFile writes a finished document to path. The destination filesystem
// is checked for headroom first, and the target is replaced only after the
// whole buffer is on disk, via a temp file in the same directory.
func SaveToFile(path string, data []byte) error {
	dir := filepath.Dir(path)

	if d, err := disk.Usage(dir); err == nil {
		if d.Free < uint64(len(data)) {
			return fmt.Errorf("%w on %s", ErrNoSpace, dir)
		}
	}

	tmp := filepath.Join(dir, fmt.Sprintf("tmp_%s.webm", uuid.New()))
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	if _, err = f.Write(data); err == nil {
		err = f.Sync()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmp, path)
	}
	if err != nil {
		os.Remove(tmp)
	}
	return err
}
