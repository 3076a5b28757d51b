package repositories

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rohits-web03/lessonplanner/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBucket is a tiny path-style S3 endpoint keeping objects in memory.
type fakeBucket struct {
	mu      sync.Mutex
	objects map[string]string
}

func (b *fakeBucket) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch r.Method {
	case http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		b.objects[r.URL.Path] = string(body)
		w.WriteHeader(http.StatusOK)
	case http.MethodHead:
		if _, ok := b.objects[r.URL.Path]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newTestArchive(t *testing.T) (*R2Archive, *fakeBucket) {
	t.Helper()
	bucket := &fakeBucket{objects: map[string]string{}}
	srv := httptest.NewServer(bucket)
	t.Cleanup(srv.Close)

	archive := NewR2Archive(config.R2Config{
		AccessKeyID:     "test-key",
		SecretAccessKey: "test-secret",
		BucketName:      "plans",
		Region:          "auto",
		Endpoint:        srv.URL,
	})
	return archive, bucket
}

func TestR2ArchivePutAndExists(t *testing.T) {
	ctx := context.Background()
	archive, bucket := newTestArchive(t)

	exists, err := archive.Exists(ctx, "plans/1/2.txt")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, archive.Put(ctx, "plans/1/2.txt", []byte("lesson body"), "text/plain; charset=utf-8"))

	exists, err = archive.Exists(ctx, "plans/1/2.txt")
	require.NoError(t, err)
	assert.True(t, exists)

	bucket.mu.Lock()
	defer bucket.mu.Unlock()
	assert.Contains(t, bucket.objects["/plans/plans/1/2.txt"], "lesson body")
}

func TestR2ArchivePresignGet(t *testing.T) {
	archive, _ := newTestArchive(t)

	url, err := archive.PresignGet(context.Background(), "plans/1/2.txt", 15*time.Minute)
	require.NoError(t, err)
	assert.True(t, strings.Contains(url, "/plans/plans/1/2.txt"), url)
	assert.Contains(t, url, "X-Amz-Expires=900")
	assert.Contains(t, url, "X-Amz-Signature=")
}
