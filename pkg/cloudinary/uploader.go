// Package cloudinary uploads images to Cloudinary. Credentials come from the
// CLOUDINARY_URL environment variable.
package cloudinary

import (
	"bytes"
	"context"

	cld "github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type Uploader struct {
	cld *cld.Cloudinary
}

func NewUploader() (*Uploader, error) {
	c, err := cld.New()
	if err != nil {
		return nil, err
	}
	return &Uploader{cld: c}, nil
}

func (u *Uploader) UploadBytes(ctx context.Context, folder, filename string, b []byte) (string, error) {
	res, err := u.cld.Upload.Upload(ctx, bytes.NewReader(b), uploader.UploadParams{
		Folder:       folder,
		PublicID:     filename,
		ResourceType: "image",
	})
	if err != nil {
		return "", err
	}

	return res.SecureURL, nil
}
