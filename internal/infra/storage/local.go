package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FileStoreはアップロードの保存の約束。公開URLを返す。
type FileStore interface {
	Save(filename string, src io.Reader) (string, error)
}

// ローカルディスク保存。baseURL + /uploads/<uuid><ext> を返す。
type LocalFileStore struct {
	dir     string
	baseURL string
}

// DI
func NewLocalFileStore(dir string, baseURL string) (*LocalFileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: mkdir %s: %w", dir, err)
	}
	return &LocalFileStore{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

func (s *LocalFileStore) Save(filename string, src io.Reader) (string, error) {
	//元のファイル名は使わず、UUID + 拡張子で保存する
	ext := strings.ToLower(filepath.Ext(filename))
	name := uuid.NewString() + ext

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return s.baseURL + "/uploads/" + name, nil
}

// Dirは静的配信用の保存先ディレクトリ。
func (s *LocalFileStore) Dir() string {
	return s.dir
}
