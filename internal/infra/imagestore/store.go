package imagestore

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrStore возвращается при ошибках файловой системы
	ErrStore = errors.New("imagestore: storage error")

	// ErrInvalidFilename возвращается при некорректном имени загружаемого файла
	ErrInvalidFilename = errors.New("imagestore: invalid file name")
)

// Store файловое хранилище загруженных изображений автомобилей
// Возвращает стабильную ссылку вида "<uuid>_<имя файла>"
type Store struct {
	dir string
}

// New создает хранилище в указанной директории
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: failed to create uploads dir %s: %v", ErrStore, dir, err)
	}
	return &Store{dir: dir}, nil
}

// Save сохраняет загруженный файл и возвращает ссылку на него
func (s *Store) Save(filename string, src io.Reader) (string, error) {
	base := filepath.Base(filename)
	if base == "." || base == string(filepath.Separator) || strings.ContainsAny(base, "/\\") {
		return "", ErrInvalidFilename
	}

	ref := uuid.NewString() + "_" + base

	dst, err := os.Create(filepath.Join(s.dir, ref))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create file: %v", ErrStore, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("%w: failed to write file: %v", ErrStore, err)
	}

	return ref, nil
}

// Delete удаляет файл по ссылке
// Отсутствие файла не считается ошибкой
func (s *Store) Delete(ref string) error {
	if ref == "" {
		return nil
	}

	err := os.Remove(filepath.Join(s.dir, filepath.Base(ref)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: failed to delete %s: %v", ErrStore, ref, err)
	}

	return nil
}
