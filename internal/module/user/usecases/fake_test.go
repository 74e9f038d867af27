package usecases_test

import (
	"context"
	"mime/multipart"
	"sync"

	"marketplace-service/internal/pkg/errors"
	"marketplace-service/internal/pkg/google"
	"marketplace-service/internal/pkg/storage"
)

type memTx struct{}

func (memTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeVerifier accepts only the tokens it knows.
type fakeVerifier map[string]google.Profile

func (f fakeVerifier) Verify(ctx context.Context, token string) (google.Profile, error) {
	p, ok := f[token]
	if !ok {
		return google.Profile{}, errors.UnauthorizedError("token rejected")
	}
	return p, nil
}

type sentMail struct {
	to, subject, body string
}

type fakeMailer struct {
	mu   sync.Mutex
	err  error
	sent []sentMail
}

func (f *fakeMailer) Send(ctx context.Context, to string, subject string, htmlBody string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: htmlBody})
	return f.err
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
