package storage

import (
	"bytes"
	"context"
	"io"
	"sync"
)

type memoryObject struct {
	data        []byte
	contentType string
}

// MemoryStore 内存对象存储，测试和本地开发用
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string]memoryObject
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string]memoryObject)}
}

func key(bucket, objectName string) string {
	return bucket + "/" + objectName
}

func (s *MemoryStore) Put(ctx context.Context, bucket, objectName string, reader io.Reader, size int64, contentType string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key(bucket, objectName)] = memoryObject{data: data, contentType: contentType}
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, bucket, objectName string) (*Object, error) {
	s.mu.RLock()
	obj, ok := s.objects[key(bucket, objectName)]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrObjectNotFound
	}

	return &Object{
		Reader:      io.NopCloser(bytes.NewReader(obj.data)),
		Size:        int64(len(obj.data)),
		ContentType: obj.contentType,
	}, nil
}

// Exists 对象是否存在（测试断言用）
func (s *MemoryStore) Exists(bucket, objectName string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.objects[key(bucket, objectName)]
	return ok
}

// Len 存储的对象数量（测试断言用）
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
