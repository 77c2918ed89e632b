package controller

import (
	"context"
	"fmt"
	"mime/multipart"
	"testing"

	"panditku_backend/internals/features/cms/media/model"
)

// fakeBlobService fails UploadImage for the file names listed in
// reject and records every stored object so cleanup can be asserted.
type fakeBlobService struct {
	reject  map[string]string // filename -> failure reason
	stored  []string
	deleted []string
}

func (f *fakeBlobService) UploadImage(_ context.Context, category string, fh *multipart.FileHeader) (string, string, error) {
	if reason, bad := f.reject[fh.Filename]; bad {
		return "", "", fmt.Errorf("%s", reason)
	}
	key := category + "/" + fh.Filename
	f.stored = append(f.stored, key)
	return "https://cdn.test/" + key, key, nil
}

func (f *fakeBlobService) UploadThumbnail(context.Context, string, []byte) (string, error) {
	return "", fmt.Errorf("no thumbnails in tests")
}

func (f *fakeBlobService) DeleteByPublicURL(_ context.Context, publicURL string) error {
	f.deleted = append(f.deleted, publicURL)
	return nil
}

func (f *fakeBlobService) DeleteManyByPublicURL(ctx context.Context, urls []string) ([]string, map[string]error) {
	for _, u := range urls {
		_ = f.DeleteByPublicURL(ctx, u)
	}
	return urls, nil
}

func headers(names ...string) []*multipart.FileHeader {
	out := make([]*multipart.FileHeader, 0, len(names))
	for _, n := range names {
		out = append(out, &multipart.FileHeader{Filename: n, Size: 1024})
	}
	return out
}

func TestUploadBatchContinuesPastFailedFile(t *testing.T) {
	blob := &fakeBlobService{reject: map[string]string{
		"broken.bmp": "Not a supported image",
	}}

	var saved []model.MediaFileModel
	results, uploaded := uploadBatch(context.Background(), blob,
		headers("aarti.jpg", "broken.bmp", "havan.png"),
		"gallery", "", "",
		func(row *model.MediaFileModel) error {
			saved = append(saved, *row)
			return nil
		})

	if uploaded != 2 {
		t.Fatalf("uploaded = %d, want 2", uploaded)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want one per file", len(results))
	}

	byName := map[string]int{}
	for i, r := range results {
		byName[r.FileName] = i
	}

	bad := results[byName["broken.bmp"]]
	if bad.Status != "failed" {
		t.Fatalf("broken.bmp status = %q, want failed", bad.Status)
	}
	if bad.Reason != "Not a supported image" {
		t.Fatalf("broken.bmp reason = %q", bad.Reason)
	}
	if bad.Media != nil {
		t.Fatal("failed file must not carry a media row")
	}

	for _, name := range []string{"aarti.jpg", "havan.png"} {
		got := results[byName[name]]
		if got.Status != "uploaded" || got.Media == nil {
			t.Fatalf("%s = %+v, want uploaded with media", name, got)
		}
	}
	if len(saved) != 2 {
		t.Fatalf("saved %d rows, want 2", len(saved))
	}
	if saved[0].MediaFileFileName != "aarti.jpg" || saved[1].MediaFileFileName != "havan.png" {
		t.Fatalf("rows saved out of order: %q, %q", saved[0].MediaFileFileName, saved[1].MediaFileFileName)
	}
}

func TestUploadBatchCleansUpWhenSaveFails(t *testing.T) {
	blob := &fakeBlobService{}

	results, uploaded := uploadBatch(context.Background(), blob,
		headers("aarti.jpg", "havan.png"),
		"gallery", "", "",
		func(row *model.MediaFileModel) error {
			if row.MediaFileFileName == "aarti.jpg" {
				return fmt.Errorf("connection reset")
			}
			return nil
		})

	if uploaded != 1 {
		t.Fatalf("uploaded = %d, want 1", uploaded)
	}
	if results[0].Status != "failed" || results[0].Reason != "Failed to save media metadata" {
		t.Fatalf("first result = %+v", results[0])
	}
	if results[1].Status != "uploaded" {
		t.Fatalf("second result = %+v", results[1])
	}

	// The orphaned binary from the failed insert was deleted.
	if len(blob.deleted) != 1 || blob.deleted[0] != "https://cdn.test/gallery/aarti.jpg" {
		t.Fatalf("deleted = %v", blob.deleted)
	}
}

func TestUploadBatchMetadataDefaults(t *testing.T) {
	blob := &fakeBlobService{}

	var saved []model.MediaFileModel
	uploadBatch(context.Background(), blob,
		headers("morning-ganga_aarti.jpg"),
		"gallery", "", "River view",
		func(row *model.MediaFileModel) error {
			saved = append(saved, *row)
			return nil
		})

	if len(saved) != 1 {
		t.Fatalf("saved %d rows", len(saved))
	}
	row := saved[0]
	if row.MediaFileTitle != "morning ganga aarti" {
		t.Fatalf("title = %q", row.MediaFileTitle)
	}
	if row.MediaFileCategory != "gallery" || row.MediaFileAltText != "River view" {
		t.Fatalf("row = %+v", row)
	}
	if row.MediaFileObjectKey != "gallery/morning-ganga_aarti.jpg" {
		t.Fatalf("object key = %q", row.MediaFileObjectKey)
	}
}
