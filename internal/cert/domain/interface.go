package domain

//go:generate mockgen -destination=../../mocks/mock_cert_repository.go -package=mocks github.com/farberstyle-netizen/holistic-dog-site/internal/cert/domain CertRepository,Uploader

import (
	"context"
	"time"
)

type CertRepository interface {
	CreateDog(ctx context.Context, dog *Dog) error
	GetByLicense(ctx context.Context, licenseID string) (*Dog, error)
	MarkPaid(ctx context.Context, dogID int64, expiresAt time.Time) error
	GetOwner(ctx context.Context, userID string) (*OwnerContact, error)

	ListPaidByUser(ctx context.Context, userID string) ([]Dog, error)
	UpdateDetails(ctx context.Context, userID string, dogID int64, in DetailsUpdate) (bool, error)

	ListGallery(ctx context.Context, limit, offset int) ([]GalleryEntry, error)
	CountGallery(ctx context.Context) (int64, error)
	Search(ctx context.Context, query string, limit int) ([]GalleryEntry, error)

	Stats(ctx context.Context) (*Stats, error)
	RecentDogs(ctx context.Context, limit int) ([]GalleryEntry, error)
	ListShipments(ctx context.Context) ([]Shipment, error)
	SetTracking(ctx context.Context, dogID int64, trackingNumber string) (bool, error)
}

// Uploader stores a photo and returns its public URL.
type Uploader interface {
	UploadBytes(ctx context.Context, folder string, filename string, b []byte) (string, error)
}
