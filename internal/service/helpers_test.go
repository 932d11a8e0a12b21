package service_test

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/hamza-bely/4hybd/internal/media"
)

// mapDenyList records revocations and their TTLs for assertions.
type mapDenyList struct {
	mu   sync.Mutex
	ttls map[string]time.Duration
}

func newMapDenyList() *mapDenyList {
	return &mapDenyList{ttls: make(map[string]time.Duration)}
}

func (d *mapDenyList) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ttls[tokenID] = ttl
	return nil
}

func (d *mapDenyList) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.ttls[tokenID]
	return ok, nil
}

// fakeUploader returns a canned result without any network call.
type fakeUploader struct {
	result media.UploadResult
	err    error
	calls  int
}

func (u *fakeUploader) Upload(_ context.Context, file io.Reader, _ string) (*media.UploadResult, error) {
	u.calls++
	if u.err != nil {
		return nil, u.err
	}
	if file != nil {
		_, _ = io.Copy(io.Discard, file)
	}
	result := u.result
	return &result, nil
}
