// internals/helpers/oss/oss_client.go
package oss

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	aliyun "github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"
)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

// Service wraps one bucket and exposes the blob capability the workflow
// needs: put / get / delete by opaque key.
type Service struct {
	Client     *aliyun.Client
	Bucket     *aliyun.Bucket
	Endpoint   string
	BucketName string
	Prefix     string // optional, e.g. "uploads"
}

func NewServiceFromEnv(prefix string) (*Service, error) {
	endpoint := getEnv("ALI_OSS_ENDPOINT")
	ak := getEnv("ALI_OSS_ACCESS_KEY")
	sk := getEnv("ALI_OSS_SECRET_KEY")
	sts := getEnv("ALI_OSS_SECURITY_TOKEN")
	bucketName := getEnv("ALI_OSS_BUCKET")
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("missing env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET")
	}

	var (
		client *aliyun.Client
		err    error
	)
	if sts != "" {
		client, err = aliyun.New(endpoint, ak, sk, aliyun.SecurityToken(sts))
	} else {
		client, err = aliyun.New(endpoint, ak, sk)
	}
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}

	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	if loc, err := client.GetBucketLocation(bucketName); err != nil {
		if se, ok := err.(aliyun.ServiceError); ok && se.StatusCode == 403 && se.Code == "AccessDenied" {
			log.Printf("[OSS] warn: skip location check due to AccessDenied (bucket=%s). Continuing.", bucketName)
		} else {
			return nil, fmt.Errorf("verify bucket: %w", err)
		}
	} else {
		log.Printf("[OSS] bucket %s location: %s", bucketName, loc)
	}

	return &Service{
		Client:     client,
		Bucket:     bkt,
		Endpoint:   endpoint,
		BucketName: bucketName,
		Prefix:     strings.Trim(prefix, "/"),
	}, nil
}

func (s *Service) Put(ctx context.Context, key string, r io.Reader, contentType string) error {
	if key == "" {
		return fmt.Errorf("empty key")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	opts := []aliyun.Option{
		aliyun.WithContext(ctx),
		aliyun.ContentType(contentType),
	}
	return s.Bucket.PutObject(s.withPrefix(key), r, opts...)
}

// Get returns the object body. The caller closes the reader. A missing
// object is reported via IsNotFound on the returned error.
func (s *Service) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	if key == "" {
		return nil, fmt.Errorf("empty key")
	}
	return s.Bucket.GetObject(s.withPrefix(key), aliyun.WithContext(ctx))
}

func (s *Service) Delete(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("empty key")
	}
	return s.Bucket.DeleteObject(s.withPrefix(key), aliyun.WithContext(ctx))
}

func (s *Service) withPrefix(key string) string {
	key = strings.TrimLeft(key, "/")
	if s.Prefix == "" {
		return key
	}
	return s.Prefix + "/" + key
}

func IsNotFound(err error) bool {
	if e, ok := err.(aliyun.ServiceError); ok {
		return e.StatusCode == 404
	}
	return false
}

/* =======================================================================
   Object keys
======================================================================= */

// NoteItemKey builds the object key for one explanatory note file. The
// student/project/item segments make cross-item collisions impossible by
// construction.
func NoteItemKey(studentID, projectID, itemID uuid.UUID, fileName string) string {
	return fmt.Sprintf("students/%s/%s/%s/%s",
		studentID.String(), projectID.String(), itemID.String(), SafeFileName(fileName))
}

// SafeFileName keeps the base name only and replaces path-hostile runes.
func SafeFileName(name string) string {
	name = strings.TrimSpace(name)
	if i := strings.LastIndexAny(name, "/\\"); i >= 0 {
		name = name[i+1:]
	}
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '?', '#', '%':
			return '_'
		}
		return r
	}, name)
	if name == "" {
		return "file"
	}
	return name
}
