package storage

import (
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type StorageAPI interface {
	Save(path string, reader io.Reader) (int64, error)
	Load(path string, writer io.Writer) (int64, error)
	Exists(path string) bool
	Delete(path string) error
	Serve(path string, request *http.Request, writer http.ResponseWriter)
	GetFreeSpace() uint64 // 0 when unknown
	GetBucket() *Bucket
}

var (
	defaultStorage StorageAPI
)

func Init(bucket Bucket) {
	defaultStorage = New(bucket)
	log.Info().
		Str("bucket", bucket.Name).
		Str("path", bucket.Path).
		Bool("s3", bucket.IsS3()).
		Uint64("free", defaultStorage.GetFreeSpace()).
		Msg("Media storage")
}

func New(bucket Bucket) StorageAPI {
	switch bucket.StorageType {
	case StorageTypeFile:
		return NewDiskStorage(&bucket)
	case StorageTypeS3:
		return NewS3Storage(&bucket)
	}
	panic(fmt.Sprintf("storage type %d unavailable", bucket.StorageType))
}

func GetDefaultStorage() StorageAPI {
	if defaultStorage == nil {
		panic("no storage available")
	}
	return defaultStorage
}

// UniquePath returns p, or p with a random suffix before the extension if p is already taken
func UniquePath(s StorageAPI, p string) string {
	if !s.Exists(p) {
		return p
	}
	ext := path.Ext(p)
	base := strings.TrimSuffix(p, ext)
	return base + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8] + ext
}
