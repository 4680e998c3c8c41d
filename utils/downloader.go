package utils

import (
	"fmt"
	"io"
	"net/http"
)

// MaxAttachmentSize caps how much of a remote attachment is read into
// memory. Discord's own upload limit is lower, so hitting this means the
// URL does not point at a regular attachment.
const MaxAttachmentSize = 100 << 20

// DownloadAttachment fetches the attachment at url into memory. Any
// transport error or non-200 status is returned as an error; the caller
// decides whether that aborts its flow.
func DownloadAttachment(client *http.Client, url string) ([]byte, error) {
	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to download attachment: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status: %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxAttachmentSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read attachment body: %w", err)
	}
	if len(data) > MaxAttachmentSize {
		return nil, fmt.Errorf("attachment exceeds %d bytes", MaxAttachmentSize)
	}
	return data, nil
}
