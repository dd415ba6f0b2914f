package mirror

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path"
	"sync"

	"briq-utils/core/storage"

	"github.com/dustin/go-humanize"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// UploadReport summarizes an upload run.
type UploadReport struct {
	Uploaded  int
	Present   int
	NotCached int
	Failed    int
	Bytes     int64
}

func (r *UploadReport) String() string {
	return fmt.Sprintf("%d uploaded (%s), %d already in bucket, %d not cached, %d failed",
		r.Uploaded, humanize.Bytes(uint64(r.Bytes)), r.Present, r.NotCached, r.Failed)
}

// Uploader pushes cached assets to object storage.
type Uploader struct {
	cfg    Config
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewUploader creates an Uploader for bucket.
func NewUploader(cfg Config, client storage.Client, bucket string, logger *zap.Logger) *Uploader {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	return &Uploader{cfg: cfg, client: client, bucket: bucket, logger: logger}
}

// Upload uploads the cached file of every URL whose key is not in the bucket.
// The bucket is listed once up front.
func (u *Uploader) Upload(ctx context.Context, urls []string) (*UploadReport, error) {
	existing, err := storage.ListKeys(ctx, u.client, u.bucket, u.cfg.Prefix)
	if err != nil {
		return nil, err
	}

	report := &UploadReport{}
	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(u.cfg.Workers)

	for _, url := range urls {
		if ctx.Err() != nil {
			break
		}
		rel, err := RelativePath(url)
		if err != nil {
			report.Failed++
			u.logger.Warn("Skipping upload", zap.String("url", url), zap.Error(err))
			continue
		}
		if _, ok := existing[ObjectKey(u.cfg.Prefix, rel)]; ok {
			report.Present++
			continue
		}

		g.Go(func() error {
			n, err := u.put(ctx, rel)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				report.Uploaded++
				report.Bytes += n
			case errors.Is(err, os.ErrNotExist):
				report.NotCached++
			default:
				report.Failed++
				u.logger.Warn("Failed to upload asset", zap.String("key", rel), zap.Error(err))
			}
			return nil
		})
	}
	_ = g.Wait()

	return report, ctx.Err()
}

func (u *Uploader) put(ctx context.Context, rel string) (int64, error) {
	local, err := CachePath(u.cfg.CacheDir, "//"+rel)
	if err != nil {
		return 0, err
	}

	f, err := os.Open(local)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, err
	}

	opts := minio.PutObjectOptions{ContentType: mime.TypeByExtension(path.Ext(rel))}
	if opts.ContentType == "" {
		opts.ContentType = "application/octet-stream"
	}

	if _, err := u.client.PutObject(ctx, u.bucket, ObjectKey(u.cfg.Prefix, rel), f, info.Size(), opts); err != nil {
		return 0, fmt.Errorf("failed to put object: %w", err)
	}
	return info.Size(), nil
}
