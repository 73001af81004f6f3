// Package storage abstracts object access behind named disks.
//
// Two drivers exist: "local" (plain filesystem) and "s3" (any S3-compatible
// store — AWS S3, MinIO, DigitalOcean Spaces, Cloudflare R2). The product
// feed importer reads from either one.
package storage

import (
	"fmt"
	"io"
	"sync"

	"github.com/tommy251/Atlas2.0/config"
	"github.com/tommy251/Atlas2.0/pkg/logger"
)

// Disk is one read-only storage backend. The feed importer is the only
// consumer; nothing in this application writes objects.
type Disk interface {
	Get(path string) ([]byte, error)
	GetStream(path string) (io.ReadCloser, error)
	Exists(path string) bool
}

var (
	managerMu sync.RWMutex
	disks     = map[string]Disk{}
)

// Connect boots the storage manager.
// Call once at application startup.
func Connect() {
	managerMu.Lock()
	defer managerMu.Unlock()

	// Always boot the local disk.
	disks["local"] = newLocalDisk()

	// Boot the S3 disk only if a region or endpoint is configured along
	// with credentials; buckets are addressed per call via s3://bucket/key.
	if config.S3Key() != "" && config.S3Secret() != "" {
		d, err := newS3Disk()
		if err != nil {
			logger.Warn("storage: s3 disk disabled", "error", err)
		} else {
			disks["s3"] = d
		}
	}
}

// Use returns the named disk ("local" or "s3").
func Use(name string) (Disk, error) {
	managerMu.RLock()
	d, ok := disks[name]
	managerMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("storage: disk %q is not configured", name)
	}
	return d, nil
}
