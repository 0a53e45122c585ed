package storage

import (
	"context"
	"fmt"
	"io"
	"path"

	"alumnet/app/dto"
	appcfg "alumnet/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Uploader stores avatars in an S3 bucket under random keys.
type Uploader struct {
	client  *s3.Client
	bucket  string
	region  string
	urlBase string
}

func NewUploader(cfg appcfg.S3) *Uploader {
	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithCredentialsProvider(creds),
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil
	}

	return &Uploader{
		client:  s3.NewFromConfig(awsCfg),
		bucket:  cfg.Bucket,
		region:  cfg.Region,
		urlBase: cfg.URLBase,
	}
}

func (u *Uploader) Upload(ctx context.Context, filename string, body io.Reader) (*dto.AvatarAsset, error) {
	key := "avatars/" + uuid.NewString() + path.Ext(filename)

	input := &s3.PutObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if _, err := u.client.PutObject(ctx, input); err != nil {
		return nil, err
	}

	url := u.urlBase
	if url == "" {
		url = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", u.bucket, u.region)
	}
	return &dto.AvatarAsset{URL: url + "/" + key, Key: key}, nil
}
