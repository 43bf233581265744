package export

import (
	"fmt"
	"net/url"
	"strings"
)

// Target is a parsed export destination.
type Target struct {
	// Dir is the output directory for disk targets.
	Dir string

	// Bucket and Prefix are set for S3 targets.
	Bucket string
	Prefix string
}

// IsS3 reports whether the target is an S3 bucket.
func (t Target) IsS3() bool {
	return t.Bucket != ""
}

func (t Target) String() string {
	if t.IsS3() {
		return "s3://" + t.Bucket + "/" + t.Prefix
	}
	return t.Dir
}

// ParseTarget parses "s3://bucket/prefix" or a directory path.
func ParseTarget(s string) (Target, error) {
	if s == "" {
		return Target{}, fmt.Errorf("export: empty target")
	}
	if !strings.HasPrefix(s, "s3://") {
		return Target{Dir: s}, nil
	}

	u, err := url.Parse(s)
	if err != nil {
		return Target{}, fmt.Errorf("export: invalid target %q: %w", s, err)
	}
	if u.Host == "" {
		return Target{}, fmt.Errorf("export: target %q has no bucket", s)
	}
	prefix := strings.TrimLeft(u.Path, "/")
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return Target{Bucket: u.Host, Prefix: prefix}, nil
}

// Open returns the Store for t. S3 targets use NewS3Client with config.
func (t Target) Open(config S3ClientConfig) (Store, error) {
	if t.IsS3() {
		return NewS3Store(NewS3Client(config), t.Bucket, t.Prefix), nil
	}
	return NewDiskStore(t.Dir)
}
