package azure

import (
	"context"
	"errors"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"

	"blobtidy/internal/storage"
)

// Client wraps the Azure blob service with the listing and deletion
// capabilities the core depends on.
type Client struct {
	svc *azblob.Client
}

func New(connectionString string) (*Client, error) {
	svc, err := azblob.NewClientFromConnectionString(connectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("azure client: %w", err)
	}
	return &Client{svc: svc}, nil
}

// List drains the flat pager over every blob of the container.
func (c *Client) List(ctx context.Context, container string) ([]storage.Record, error) {
	var records []storage.Record
	pager := c.svc.NewListBlobsFlatPager(container, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list container %s: %w", container, describe(err))
		}
		if page.Segment == nil {
			continue
		}
		for _, item := range page.Segment.BlobItems {
			if item.Name == nil {
				continue
			}
			rec := storage.Record{Name: *item.Name}
			if item.Properties != nil {
				rec.LastModified = item.Properties.LastModified
			}
			records = append(records, rec)
		}
	}
	return records, nil
}

func (c *Client) Delete(ctx context.Context, container, name string) error {
	if _, err := c.svc.DeleteBlob(ctx, container, name, nil); err != nil {
		return describe(err)
	}
	return nil
}

// describe prepends the service error code when the SDK reports one, so
// container-not-found and auth failures stay diagnosable in the logs.
func describe(err error) error {
	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) && respErr.ErrorCode != "" {
		return fmt.Errorf("%s: %w", respErr.ErrorCode, err)
	}
	return err
}
