package services

import (
	"io"
	"strings"

	"github.com/tommy251/Atlas2.0/pkg/storage"
)

// resolveFeed maps a feed location to its storage disk and path.
// "s3://bucket/key" reads from object storage, anything else from disk.
func resolveFeed(feed string) (disk string, path string) {
	if after, ok := strings.CutPrefix(feed, "s3://"); ok {
		return "s3", after
	}
	return "local", feed
}

// openFeed opens the product feed for reading.
func openFeed(feed string) (io.ReadCloser, error) {
	name, path := resolveFeed(feed)
	disk, err := storage.Use(name)
	if err != nil {
		return nil, err
	}
	return disk.GetStream(path)
}

// feedPresent reports whether the feed source exists.
func feedPresent(feed string) bool {
	name, path := resolveFeed(feed)
	disk, err := storage.Use(name)
	if err != nil {
		return false
	}
	return disk.Exists(path)
}
