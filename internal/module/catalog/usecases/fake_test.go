package usecases_test

import (
	"context"
	"mime/multipart"
	"sync"

	"marketplace-service/internal/pkg/storage"
)

type memTx struct{}

func (memTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeStorage struct {
	mu      sync.Mutex
	err     error
	stored  []string
	deleted []string
}

func (f *fakeStorage) Store(ctx context.Context, kind storage.Kind, file *multipart.FileHeader) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	url := "/uploads/" + string(kind) + "/" + file.Filename
	f.stored = append(f.stored, url)
	return url, nil
}

func (f *fakeStorage) Delete(ctx context.Context, url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, url)
	return nil
}
