package storage

import (
	"strings"
	"yatube/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

type StorageType uint8

const (
	StorageTypeFile StorageType = 0
	StorageTypeS3   StorageType = 1
)

// Bucket describes where media is stored
type Bucket struct {
	Name          string // S3 bucket name
	StorageType   StorageType
	Path          string // Path on a drive or a prefix in a S3 bucket
	Endpoint      string
	Region        string
	AuthDetails   string // In case of S3 bucket - "key:secret"
	SSEEncryption string
}

// BucketFromConfig uses S3 if S3_BUCKET is configured and MEDIA_DIR otherwise
func BucketFromConfig() Bucket {
	if config.S3_BUCKET == "" {
		return Bucket{StorageType: StorageTypeFile, Path: config.MEDIA_DIR}
	}
	auth := ""
	if config.S3_ACCESS_KEY != "" {
		auth = config.S3_ACCESS_KEY + ":" + config.S3_SECRET_KEY
	}
	return Bucket{
		Name:        config.S3_BUCKET,
		StorageType: StorageTypeS3,
		Path:        config.S3_PREFIX,
		Endpoint:    config.S3_ENDPOINT,
		Region:      config.S3_REGION,
		AuthDetails: auth,
	}
}

func (b *Bucket) IsS3() bool {
	return b.StorageType == StorageTypeS3
}

func (b *Bucket) GetRemotePath(path string) string {
	if b.Path == "" {
		return path
	}
	return strings.TrimSuffix(b.Path, "/") + "/" + path
}

func (b *Bucket) CreateSVC() *s3.S3 {
	cfg := aws.NewConfig().WithRegion(b.Region)
	if b.Endpoint != "" {
		cfg = cfg.WithEndpoint(b.Endpoint).WithS3ForcePathStyle(true)
	}
	if key, secret, found := strings.Cut(b.AuthDetails, ":"); found {
		cfg = cfg.WithCredentials(credentials.NewStaticCredentials(key, secret, ""))
	}
	sess := session.Must(session.NewSession(cfg))
	return s3.New(sess)
}
