package content

import (
	"fmt"

	"github.com/studioflow/portfolio-backend/config"
)

// PlaceholderImage is returned whenever an image reference cannot be resolved.
// It is an inline SVG so the public surface never serves an empty src.
const PlaceholderImage = `data:image/svg+xml,%3Csvg xmlns="http://www.w3.org/2000/svg" width="800" height="450" viewBox="0 0 800 450"%3E%3Crect width="800" height="450" fill="%23111"/%3E%3Ctext x="50%25" y="50%25" dominant-baseline="middle" text-anchor="middle" font-family="Arial" font-size="24" fill="%23666"%3EPROJECT%3C/text%3E%3C/svg%3E`

// ImageResolver maps persisted image references to displayable URLs. Asset
// references migrated from bucket file IDs to local static paths over the
// site's lifetime, so both shapes coexist in stored data indefinitely; a
// leading slash is the discriminator (a local path can never be a valid file
// ID under the store's ID rules).
type ImageResolver struct {
	endpoint      string
	projectID     string
	defaultBucket string
}

func NewImageResolver(cfg config.Appwrite) *ImageResolver {
	return &ImageResolver{
		endpoint:      cfg.Endpoint,
		projectID:     cfg.ProjectID,
		defaultBucket: cfg.AssetsBucket,
	}
}

func (r *ImageResolver) configured() bool {
	return r.endpoint != "" && r.projectID != ""
}

// ResolveImageURL resolves a reference against the default assets bucket.
func (r *ImageResolver) ResolveImageURL(ref string) string {
	return r.ResolveImageURLInBucket(ref, r.defaultBucket)
}

// ResolveImageURLInBucket resolves a possibly-absent, possibly-local,
// possibly-remote image reference to a displayable URL. Never returns an
// empty string.
func (r *ImageResolver) ResolveImageURLInBucket(ref, bucket string) string {
	if ref == "" || !r.configured() {
		return PlaceholderImage
	}

	// Local static-asset path; passed through without an existence check.
	// Broken links are a deployment concern, not a resolution error.
	if ref[0] == '/' {
		return ref
	}

	return fmt.Sprintf("%s/storage/buckets/%s/files/%s/view?project=%s", r.endpoint, bucket, ref, r.projectID)
}

// ResolveGalleryURLs maps ResolveImageURL over a reference list. Absent or
// empty input yields an empty list, not an error.
func (r *ImageResolver) ResolveGalleryURLs(refs []string) []string {
	if len(refs) == 0 {
		return []string{}
	}

	urls := make([]string, 0, len(refs))
	for _, ref := range refs {
		urls = append(urls, r.ResolveImageURL(ref))
	}
	return urls
}
