// Package objstore writes banner images to S3-compatible object
// storage. Uploads land under fixed keys so object storage never
// accumulates history; only the latest image per variant is kept.
package objstore

import (
	"context"
	"errors"
	"io"
	"strings"
)

// Variants for hero banner placement.
const (
	VariantDesktop = "desktop"
	VariantMobile  = "mobile"
)

const (
	KeyHeroDesktop = "banners/hero-desktop.jpg"
	KeyHeroMobile  = "banners/hero-mobile.jpg"
)

const (
	DefaultContentType = "image/jpeg"
	bannerCacheControl = "public, max-age=31536000"
)

var ErrInvalidVariant = errors.New("invalid banner variant")

// BannerStore stores banner images under their fixed keys.
type BannerStore interface {
	PutBanner(ctx context.Context, key, contentType string, body io.Reader, size int64) error
}

// KeyForVariant maps a variant tag to its fixed storage key.
func KeyForVariant(variant string) (string, error) {
	switch variant {
	case VariantDesktop:
		return KeyHeroDesktop, nil
	case VariantMobile:
		return KeyHeroMobile, nil
	default:
		return "", ErrInvalidVariant
	}
}

// PublicURL joins the CDN base URL with a storage key.
func PublicURL(baseURL, key string) string {
	return strings.TrimRight(baseURL, "/") + "/" + key
}
