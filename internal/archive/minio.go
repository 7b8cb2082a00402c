// Package archive stores completed documents in object storage.
package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/linskybing/docflow/internal/config"
	"github.com/linskybing/docflow/internal/domain/document"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

type objectPutter interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minioSDK.PutObjectOptions) (minioSDK.UploadInfo, error)
}

// Record is the archived form of a completed document.
type Record struct {
	ID         uint               `json:"id"`
	TemplateID uint               `json:"template_id"`
	Title      string             `json:"title"`
	Status     document.Status    `json:"status"`
	Data       document.FieldData `json:"data"`
	Deadline   *time.Time         `json:"deadline"`
	IsRejected bool               `json:"is_rejected"`
	Version    uint               `json:"version"`
	ArchivedAt time.Time          `json:"archived_at"`
}

type MinioArchiver struct {
	client objectPutter
	bucket string
	now    func() time.Time
}

// NewMinioArchiver connects to MinIO and creates the bucket when missing.
func NewMinioArchiver(ctx context.Context) (*MinioArchiver, error) {
	client, err := minioSDK.New(config.MinioEndpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(config.MinioAccessKey, config.MinioSecretKey, ""),
		Secure: config.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to minio: %w", err)
	}

	exists, err := client.BucketExists(ctx, config.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", config.MinioBucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, config.MinioBucket, minioSDK.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", config.MinioBucket, err)
		}
		zap.L().Info("archive bucket created", zap.String("bucket", config.MinioBucket))
	}
	return newArchiver(client, config.MinioBucket), nil
}

func newArchiver(client objectPutter, bucket string) *MinioArchiver {
	return &MinioArchiver{
		client: client,
		bucket: bucket,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func ObjectName(documentID uint) string {
	return fmt.Sprintf("documents/%d/final.json", documentID)
}

func (a *MinioArchiver) ArchiveCompleted(ctx context.Context, doc document.Document) error {
	body, err := json.Marshal(Record{
		ID:         doc.ID,
		TemplateID: doc.TemplateID,
		Title:      doc.Title,
		Status:     doc.Status,
		Data:       doc.Fields(),
		Deadline:   doc.Deadline,
		IsRejected: doc.IsRejected,
		Version:    doc.Version,
		ArchivedAt: a.now(),
	})
	if err != nil {
		return err
	}

	info, err := a.client.PutObject(ctx, a.bucket, ObjectName(doc.ID), bytes.NewReader(body), int64(len(body)),
		minioSDK.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("archive document %d: %w", doc.ID, err)
	}
	zap.L().Info("document archived",
		zap.Uint("document_id", doc.ID), zap.String("object", info.Key), zap.Int64("size", info.Size))
	return nil
}
