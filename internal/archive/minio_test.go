package archive

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/linskybing/docflow/internal/domain/document"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	bucket, object, contentType string
	body                        []byte
	err                         error
}

func (f *fakePutter) PutObject(_ context.Context, bucket, object string, r io.Reader, size int64, opts minioSDK.PutObjectOptions) (minioSDK.UploadInfo, error) {
	if f.err != nil {
		return minioSDK.UploadInfo{}, f.err
	}
	f.bucket, f.object, f.contentType = bucket, object, opts.ContentType
	f.body, _ = io.ReadAll(r)
	return minioSDK.UploadInfo{Key: object, Size: size}, nil
}

func TestArchiveCompleted(t *testing.T) {
	put := &fakePutter{}
	a := newArchiver(put, "docflow-archive")

	doc := document.Document{ID: 42, Title: "Contract", Status: document.StatusCompleted}
	doc.SetFields(document.FieldData{CoordinateFields: []document.Field{
		{ID: "sig", Type: document.FieldSignerSignature, SignerEmail: "s@test.com", Value: "data:image/png"},
	}})

	require.NoError(t, a.ArchiveCompleted(context.Background(), doc))
	assert.Equal(t, "docflow-archive", put.bucket)
	assert.Equal(t, "documents/42/final.json", put.object)
	assert.Equal(t, "application/json", put.contentType)

	var rec Record
	require.NoError(t, json.Unmarshal(put.body, &rec))
	assert.Equal(t, uint(42), rec.ID)
	assert.Equal(t, document.StatusCompleted, rec.Status)
	require.Len(t, rec.Data.CoordinateFields, 1)
	assert.Equal(t, "data:image/png", rec.Data.CoordinateFields[0].Value)
}

func TestArchiveCompleted_PutFails(t *testing.T) {
	a := newArchiver(&fakePutter{err: errors.New("unreachable")}, "b")

	err := a.ArchiveCompleted(context.Background(), document.Document{ID: 1})
	assert.ErrorContains(t, err, "archive document 1")
}
