package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/url"
	"path"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

const complaintImageFolder = "complaints"

// FirebaseImageStore writes complaint photos to the Firebase Storage bucket.
type FirebaseImageStore struct {
	client     *storage.Client
	bucketName string
}

// NewFirebaseImageStore creates a storage client from the service account file.
func NewFirebaseImageStore(ctx context.Context, serviceAccountJSONPath, bucketName string) (*FirebaseImageStore, error) {
	if bucketName == "" {
		return nil, fmt.Errorf("storage bucket is not configured")
	}
	client, err := storage.NewClient(ctx, option.WithCredentialsFile(serviceAccountJSONPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return &FirebaseImageStore{client: client, bucketName: bucketName}, nil
}

// UploadComplaintImage stores r as complaints/<filename> with public read access
// and returns its download URL.
func (s *FirebaseImageStore) UploadComplaintImage(ctx context.Context, filename string, r io.Reader, contentType string) (string, error) {
	objectPath := ComplaintObjectPath(filename)
	w := s.client.Bucket(s.bucketName).Object(objectPath).NewWriter(ctx)

	// Set public read ACL
	w.ACL = []storage.ACLRule{{Entity: storage.AllUsers, Role: storage.RoleReader}}
	w.ObjectAttrs.ContentType = detectContentType(filename, contentType)

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("failed to copy image to storage: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	return DownloadURL(s.bucketName, objectPath), nil
}

// DeleteComplaintImage removes the photo stored by UploadComplaintImage under
// the same filename. A missing object is not an error.
func (s *FirebaseImageStore) DeleteComplaintImage(ctx context.Context, filename string) error {
	return s.DeleteFile(ctx, ComplaintObjectPath(filename))
}

// DeleteFile deletes an object from the bucket.
func (s *FirebaseImageStore) DeleteFile(ctx context.Context, objectPath string) error {
	err := s.client.Bucket(s.bucketName).Object(objectPath).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *FirebaseImageStore) Close() error {
	return s.client.Close()
}

// ComplaintObjectPath places filename under the complaints folder, dropping any
// directory components the client sent.
func ComplaintObjectPath(filename string) string {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		base = "image"
	}
	return complaintImageFolder + "/" + base
}

// DownloadURL is the public Firebase download URL of an object.
func DownloadURL(bucket, objectPath string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(objectPath), "+", "%20")
	return fmt.Sprintf("https://firebasestorage.googleapis.com/v0/b/%s/o/%s?alt=media", bucket, escaped)
}

func detectContentType(filename, declared string) string {
	if declared != "" {
		return declared
	}
	if ext := path.Ext(filename); ext != "" {
		if t := mime.TypeByExtension(ext); t != "" {
			return t
		}
	}
	return "application/octet-stream"
}
