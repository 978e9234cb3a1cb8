package attachments

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/L0dyv/litepad/internal/attachments"
)

// FileStore хранит байты вложений на диске, по одному файлу на вложение.
// Имя файла — "<hash><ext>", поэтому одинаковый контент никогда
// не дублируется.
type FileStore struct {
	dir string
}

// NewFileStore создает каталог вложений, если его нет
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create attachments dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Path возвращает путь к файлу вложения
func (f *FileStore) Path(hash, ext string) string {
	return filepath.Join(f.dir, hash+ext)
}

// Write сохраняет байты вложения, предварительно сверив их хеш.
// Запись идет через временный файл и rename, чтобы при сбое на диске
// не оставалось файла с именем-хешем и другим содержимым.
func (f *FileStore) Write(hash, ext string, data []byte) error {
	if got := attachments.HashBytes(data); got != hash {
		return fmt.Errorf("content hash mismatch: expected %s, got %s", hash, got)
	}

	tmp, err := os.CreateTemp(f.dir, "upload-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write attachment: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, f.Path(hash, ext)); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to move attachment into place: %w", err)
	}
	return nil
}

// Read возвращает байты вложения
func (f *FileStore) Read(hash, ext string) ([]byte, error) {
	data, err := os.ReadFile(f.Path(hash, ext))
	if err != nil {
		return nil, fmt.Errorf("failed to read attachment %s: %w", hash, err)
	}
	return data, nil
}

// Exists сообщает, есть ли байты вложения на диске
func (f *FileStore) Exists(hash, ext string) bool {
	_, err := os.Stat(f.Path(hash, ext))
	return err == nil
}
