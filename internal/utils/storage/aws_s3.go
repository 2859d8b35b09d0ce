package storage

import (
	"AI-Recipe-Backend/internal/utils"
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var AllowImage = []string{"image/png", "image/jpeg", "image/webp"}

type (
	AwsS3 interface {
		UploadObject(ctx context.Context, key string, data []byte, contentType string) (string, error)
		DeleteObject(ctx context.Context, key string) error
		GetPublicLinkKey(objectKey string) string
		GetObjectKeyFromLink(link string) string
	}

	awsS3 struct {
		client  *s3.Client
		bucket  string
		baseURL string
	}
)

func NewAwsS3() AwsS3 {
	cfg, err := awsconfig.LoadDefaultConfig(
		context.Background(),
		awsconfig.WithRegion(utils.GetConfig("AWS_S3_REGION")),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			utils.GetConfig("AWS_ACCESS_KEY"),
			utils.GetConfig("AWS_SECRET_KEY"),
			"",
		)),
	)
	if err != nil {
		panic(fmt.Sprintf("failed to load AWS config: %v", err))
	}

	return &awsS3{
		client:  s3.NewFromConfig(cfg),
		bucket:  utils.GetConfig("AWS_S3_BUCKET"),
		baseURL: strings.TrimSuffix(utils.GetConfig("S3_PUBLIC_BASE_URL"), "/"),
	}
}

func (a *awsS3) UploadObject(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	allowed := false
	for _, t := range AllowImage {
		if t == contentType {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", fmt.Errorf("content type %s is not allowed", contentType)
	}

	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(a.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("public, max-age=31536000, immutable"),
	})
	if err != nil {
		return "", err
	}
	return key, nil
}

func (a *awsS3) DeleteObject(ctx context.Context, key string) error {
	_, err := a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	})
	return err
}

func (a *awsS3) GetPublicLinkKey(objectKey string) string {
	if a.baseURL == "" {
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", a.bucket, utils.GetConfig("AWS_S3_REGION"), objectKey)
	}
	return a.baseURL + "/" + objectKey
}

func (a *awsS3) GetObjectKeyFromLink(link string) string {
	if a.baseURL != "" && strings.HasPrefix(link, a.baseURL+"/") {
		return strings.TrimPrefix(link, a.baseURL+"/")
	}
	idx := strings.Index(link, ".amazonaws.com/")
	if idx < 0 {
		return ""
	}
	return link[idx+len(".amazonaws.com/"):]
}
