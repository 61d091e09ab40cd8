package s3

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"blobtidy/internal/storage"
)

type Options struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
}

// Client adapts an S3-compatible endpoint (MinIO included) to the listing
// and deletion capabilities the core depends on. Containers map to buckets.
type Client struct {
	client *s3.Client
}

func New(opts Options) (*Client, error) {
	if opts.Region == "" {
		opts.Region = "us-east-1"
	}
	endpointURL, err := url.Parse(strings.TrimSpace(opts.Endpoint))
	if err != nil {
		return nil, fmt.Errorf("s3 endpoint: %w", err)
	}
	if endpointURL.Scheme == "" {
		endpointURL.Scheme = "https"
		endpointURL, _ = url.Parse(endpointURL.String())
	}

	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL:               endpointURL.String(),
			SigningRegion:     opts.Region,
			HostnameImmutable: true,
		}, nil
	})

	cfg := aws.Config{
		Region:                      opts.Region,
		EndpointResolverWithOptions: resolver,
		Credentials:                 credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	return &Client{client: client}, nil
}

// List drains the ListObjectsV2 paginator over the whole bucket.
func (c *Client) List(ctx context.Context, container string) ([]storage.Record, error) {
	var records []storage.Record
	paginator := s3.NewListObjectsV2Paginator(c.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(container),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list bucket %s: %w", container, err)
		}
		for _, obj := range page.Contents {
			if obj.Key == nil {
				continue
			}
			records = append(records, storage.Record{
				Name:         *obj.Key,
				LastModified: obj.LastModified,
			})
		}
	}
	return records, nil
}

func (c *Client) Delete(ctx context.Context, container, name string) error {
	_, err := c.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(container),
		Key:    aws.String(name),
	})
	return err
}
