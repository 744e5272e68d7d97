package localfs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Storage keeps uploaded images on local disk under a single directory and
// serves them from /uploads/.
type Storage struct {
	dir string
}

func New(dir string) *Storage { return &Storage{dir: dir} }

// Save writes the upload with a uuid prefix to avoid collisions and returns
// the public URL path.
func (s *Storage) Save(name string, r io.Reader) (string, error) {
	base := filepath.Base(strings.TrimSpace(name))
	if base == "" || base == "." {
		base = "archivo"
	}
	fname := uuid.New().String()[:8] + "-" + base
	dst := filepath.Join(s.dir, fname)

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("crear archivo: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("guardar archivo: %w", err)
	}
	return "/uploads/" + fname, nil
}

func (s *Storage) Remove(urlPath string) error {
	fname := strings.TrimPrefix(urlPath, "/uploads/")
	if fname == "" || strings.Contains(fname, "..") || strings.Contains(fname, "/") {
		return fmt.Errorf("ruta inválida: %s", urlPath)
	}
	err := os.Remove(filepath.Join(s.dir, fname))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
