// Package covers caches catalog cover images locally: fetch, downscale,
// re-encode as JPEG, serve by filename.
package covers

import (
	"context"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/tsundokuhq/tsundoku/pkg/config"
	"golang.org/x/image/draw"
)

const (
	maxCoverWidth  = 600
	maxCoverHeight = 900
	jpegQuality    = 80
)

type Pipeline struct {
	dir        string
	httpClient *http.Client
}

func NewPipeline(cfg *config.Config) *Pipeline {
	return &Pipeline{
		dir: cfg.CoverCacheDir,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// EnsureDir creates the cache directory if it doesn't exist yet.
func (p *Pipeline) EnsureDir() error {
	return errors.WithStack(os.MkdirAll(p.dir, 0o755))
}

// Fetch downloads an image, scales it down to the thumbnail bound and stores
// it as JPEG. It returns the stored filename.
func (p *Pipeline) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", errors.WithStack(err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "failed to fetch cover")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("cover fetch failed: HTTP %d", resp.StatusCode)
	}

	srcImg, _, err := image.Decode(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "failed to decode cover image")
	}

	srcBounds := srcImg.Bounds()
	targetW, targetH := fitDimensions(srcBounds.Dx(), srcBounds.Dy(), maxCoverWidth, maxCoverHeight)

	dstImg := image.NewRGBA(image.Rect(0, 0, targetW, targetH))
	draw.BiLinear.Scale(dstImg, dstImg.Bounds(), srcImg, srcBounds, draw.Over, nil)

	filename := uuid.NewString() + ".jpg"
	f, err := os.Create(filepath.Join(p.dir, filename))
	if err != nil {
		return "", errors.WithStack(err)
	}
	defer f.Close()

	if err := jpeg.Encode(f, dstImg, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", errors.WithStack(err)
	}

	return filename, nil
}

// Path resolves a stored filename to its on-disk path. The filepath.Base
// call keeps traversal segments out of the cache directory.
func (p *Pipeline) Path(filename string) string {
	return filepath.Join(p.dir, filepath.Base(filename))
}

// fitDimensions scales (srcW, srcH) down to fit within (maxW, maxH),
// preserving aspect ratio. Images already within bounds keep their size.
func fitDimensions(srcW, srcH, maxW, maxH int) (int, int) {
	if srcW <= maxW && srcH <= maxH {
		return srcW, srcH
	}

	ratioW := float64(maxW) / float64(srcW)
	ratioH := float64(maxH) / float64(srcH)

	ratio := ratioW
	if ratioH < ratioW {
		ratio = ratioH
	}

	return int(float64(srcW) * ratio), int(float64(srcH) * ratio)
}
