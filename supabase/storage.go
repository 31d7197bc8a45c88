package supabase

import (
	"bytes"
	"context"
	"fmt"
)

// UploadObject stores the blob under the given path inside the bucket. The
// path is expected to be unique; overwriting is not requested.
func (c *Client) UploadObject(ctx context.Context, bucket string, path string, blob []byte, contentType string) error {
	request, err := c.newRequest(ctx, "POST", fmt.Sprintf("/storage/v1/object/%s/%s", bucket, path), bytes.NewReader(blob))
	if err != nil {
		return err
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	request.Header.Set("Content-Type", contentType)

	_, err = c.do(request)

	return err
}

// PublicURL resolves the public address of an object in a public bucket. No
// request is made: the address is deterministic.
func (c *Client) PublicURL(bucket string, path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseUrl, bucket, path)
}
