// Package storage provides the object storage target of the asset mirror.
//
// It wraps the MinIO Go client behind a small Client interface so that the
// mirror can be tested against core/storage/mocks. Both AWS S3 and self-hosted
// MinIO are supported.
//
// # Operations
//
//   - EnsureBucket: creates the target bucket on first use.
//   - ListKeys: lists every key under a prefix in one paginated pass, so the
//     mirror can skip objects that already exist without a HEAD per object.
//   - PutObject: uploads a cached asset.
//   - RemoveKeys: drops objects the catalog no longer references, in
//     multi-object delete requests.
//
// NewTransport is shared with the mirror's HTTP fetcher so both use the same
// connection and first-byte timeouts.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
