package storage

import (
	"context"
	"errors"
	"io"
)

// ErrObjectNotFound 对象不存在
var ErrObjectNotFound = errors.New("object not found")

// Object 描述一个可读取的存储对象
type Object struct {
	Reader      io.ReadCloser
	Size        int64
	ContentType string
}

// Store 二进制内容存储接口。视频文件和资料文件都通过它读写，
// 生产环境由 MinIO 实现，测试使用内存实现。
type Store interface {
	// Put 写入对象。调用方先写存储再提交数据库，
	// 提交失败时不做补偿删除。
	Put(ctx context.Context, bucket, objectName string, reader io.Reader, size int64, contentType string) error

	// Get 读取对象，调用方负责关闭 Reader。对象不存在时返回 ErrObjectNotFound。
	Get(ctx context.Context, bucket, objectName string) (*Object, error)
}
