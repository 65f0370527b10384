// Package media stores legend images on Cloudinary.
package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	cld "github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/heartmarshall/legends-backend/internal/config"
	"github.com/heartmarshall/legends-backend/internal/domain"
)

// destroyNotFound is the Destroy result for an asset the host no longer has.
const destroyNotFound = "not found"

// uploadAPI is the subset of the Cloudinary upload API this adapter uses.
type uploadAPI interface {
	Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)
	Destroy(ctx context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error)
}

// Cloudinary uploads and deletes image assets in a single folder.
type Cloudinary struct {
	api    uploadAPI
	folder string
	log    *slog.Logger
}

// NewCloudinary creates a Cloudinary adapter from credentials in cfg.
func NewCloudinary(cfg config.MediaConfig, logger *slog.Logger) (*Cloudinary, error) {
	client, err := cld.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: init client: %w", err)
	}
	return newCloudinary(&client.Upload, cfg.Folder, logger), nil
}

func newCloudinary(api uploadAPI, folder string, logger *slog.Logger) *Cloudinary {
	return &Cloudinary{
		api:    api,
		folder: folder,
		log:    logger.With("adapter", "cloudinary"),
	}
}

// Upload stores the image read from r and returns its secure URL and public id.
// Every failure wraps domain.ErrAssetUpload.
func (c *Cloudinary) Upload(ctx context.Context, r io.Reader) (url, publicID string, err error) {
	res, err := c.api.Upload(ctx, r, uploader.UploadParams{Folder: c.folder})
	if err != nil {
		return "", "", fmt.Errorf("cloudinary: upload: %w: %w", domain.ErrAssetUpload, err)
	}
	if res == nil {
		return "", "", fmt.Errorf("cloudinary: upload: %w: empty response", domain.ErrAssetUpload)
	}
	if res.Error.Message != "" {
		return "", "", fmt.Errorf("cloudinary: upload: %w: %s", domain.ErrAssetUpload, res.Error.Message)
	}
	if res.SecureURL == "" || res.PublicID == "" {
		return "", "", fmt.Errorf("cloudinary: upload: %w: missing url or public id", domain.ErrAssetUpload)
	}

	c.log.DebugContext(ctx, "asset uploaded", slog.String("public_id", res.PublicID))
	return res.SecureURL, res.PublicID, nil
}

// ErrAssetMissing is returned by Delete when the host has no asset under the id.
var ErrAssetMissing = errors.New("asset not found on media host")

// Delete removes the asset identified by publicID.
func (c *Cloudinary) Delete(ctx context.Context, publicID string) error {
	res, err := c.api.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary: destroy %s: %w", publicID, err)
	}
	if res == nil {
		return fmt.Errorf("cloudinary: destroy %s: empty response", publicID)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("cloudinary: destroy %s: %s", publicID, res.Error.Message)
	}
	if res.Result == destroyNotFound {
		return fmt.Errorf("cloudinary: destroy %s: %w", publicID, ErrAssetMissing)
	}

	c.log.DebugContext(ctx, "asset deleted", slog.String("public_id", publicID))
	return nil
}
