package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
)

// MinioStore 基于 MinIO 的对象存储实现
type MinioStore struct {
	client *minio.Client
}

func NewMinioStore(client *minio.Client) *MinioStore {
	return &MinioStore{client: client}
}

// Put 上传对象到指定 Bucket
func (s *MinioStore) Put(ctx context.Context, bucket, objectName string, reader io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload to minio: %w", err)
	}
	return nil
}

// Get 读取对象。先 Stat 拿到大小和类型，对象不存在时映射为 ErrObjectNotFound。
func (s *MinioStore) Get(ctx context.Context, bucket, objectName string) (*Object, error) {
	stat, err := s.client.StatObject(ctx, bucket, objectName, minio.StatObjectOptions{})
	if err != nil {
		var errResp minio.ErrorResponse
		if errors.As(err, &errResp) && errResp.Code == "NoSuchKey" {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("failed to stat minio object: %w", err)
	}

	obj, err := s.client.GetObject(ctx, bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get minio object: %w", err)
	}

	return &Object{
		Reader:      obj,
		Size:        stat.Size,
		ContentType: stat.ContentType,
	}, nil
}
