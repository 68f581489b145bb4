// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package storage publishes exported pages to S3-compatible object
// storage. It wraps the AWS SDK v2 and is configured for path-style
// access, which CEPH, MinIO and Hetzner require.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Config describes the bucket exported pages are published to.
type Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	Prefix    string // key prefix, e.g. "pages/alex"
	PublicURL string // optional CDN/direct URL for the bucket
}

// Publisher uploads exported documents to a bucket. It satisfies
// export.Saver.
type Publisher struct {
	s3        *s3.Client
	bucket    string
	prefix    string
	endpoint  string
	publicURL string
}

// New creates a Publisher with static credentials and path-style
// addressing. Returns (nil, nil) if endpoint, credentials or bucket are
// empty, allowing the app to start without publishing.
func New(cfg Config) (*Publisher, error) {
	if cfg.Endpoint == "" || cfg.AccessKey == "" || cfg.SecretKey == "" || cfg.Bucket == "" {
		return nil, nil
	}

	// Strip trailing slash from endpoint for consistent URL building.
	endpoint := strings.TrimRight(cfg.Endpoint, "/")

	client := s3.New(s3.Options{
		Region:       cfg.Region,
		BaseEndpoint: aws.String(endpoint),
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		UsePathStyle: true,
	})

	return &Publisher{
		s3:        client,
		bucket:    cfg.Bucket,
		prefix:    strings.Trim(cfg.Prefix, "/"),
		endpoint:  endpoint,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
	}, nil
}

// Key returns the object key a document named name is stored under.
func (p *Publisher) Key(name string) string {
	if p.prefix == "" {
		return name
	}
	return path.Join(p.prefix, name)
}

// Save uploads data as a public-read object and returns its public URL.
func (p *Publisher) Save(ctx context.Context, name, contentType string, data []byte) (string, error) {
	key := p.Key(name)
	_, err := p.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
		CacheControl:  aws.String("no-cache"),
		ACL:           s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("s3 upload %s/%s: %w", p.bucket, key, err)
	}
	return p.FileURL(key), nil
}

// FileURL returns the public URL of an object.
// Uses the configured public URL if set, otherwise builds a path-style URL.
func (p *Publisher) FileURL(key string) string {
	if p.publicURL != "" {
		return p.publicURL + "/" + key
	}
	return p.endpoint + "/" + p.bucket + "/" + key
}

// Bucket returns the name of the target bucket.
func (p *Publisher) Bucket() string {
	return p.bucket
}
