package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/farberstyle-netizen/holistic-dog-site/internal/cert/domain"
)

type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type CertRepository struct {
	db DB
}

func NewCertRepository(db DB) *CertRepository {
	return &CertRepository{db: db}
}

func (r *CertRepository) CreateDog(ctx context.Context, dog *domain.Dog) error {
	query := `
		INSERT INTO dogs (
			user_id, dog_name, license_id, state_of_licensure, payment_status,
			photo_url, frame_orientation, paid_at, expires_at,
			is_gift, gift_name, gift_address, gift_city, gift_state, gift_zip,
			created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, now())
		RETURNING id
	`

	return r.db.QueryRow(ctx, query,
		dog.UserID, dog.DogName, dog.LicenseID, dog.StateOfLicensure, dog.PaymentStatus,
		dog.PhotoURL, dog.FrameOrientation, dog.PaidAt, dog.ExpiresAt,
		dog.IsGift, dog.GiftName, dog.GiftAddress, dog.GiftCity, dog.GiftState, dog.GiftZip,
	).Scan(&dog.ID)
}

func (r *CertRepository) GetByLicense(ctx context.Context, licenseID string) (*domain.Dog, error) {
	query := `
		SELECT id, user_id, dog_name, license_id, state_of_licensure, payment_status,
		       is_gift, gift_name
		FROM dogs
		WHERE license_id = $1
	`

	var dog domain.Dog
	err := r.db.QueryRow(ctx, query, licenseID).Scan(
		&dog.ID, &dog.UserID, &dog.DogName, &dog.LicenseID, &dog.StateOfLicensure,
		&dog.PaymentStatus, &dog.IsGift, &dog.GiftName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get dog by license: %w", err)
	}

	return &dog, nil
}

func (r *CertRepository) MarkPaid(ctx context.Context, dogID int64, expiresAt time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE dogs
		SET payment_status = 'paid', paid_at = now(), expires_at = $1
		WHERE id = $2
	`, expiresAt, dogID)

	return err
}

func (r *CertRepository) GetOwner(ctx context.Context, userID string) (*domain.OwnerContact, error) {
	var oc domain.OwnerContact
	err := r.db.QueryRow(ctx, `
		SELECT email, first_name FROM users WHERE id = $1
	`, userID).Scan(&oc.Email, &oc.FirstName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get owner: %w", err)
	}

	return &oc, nil
}

func (r *CertRepository) ListPaidByUser(ctx context.Context, userID string) ([]domain.Dog, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, dog_name, license_id, state_of_licensure, photo_url, frame_orientation,
		       paid_at, expires_at, breed, weight, height, eye_color, birthday
		FROM dogs
		WHERE user_id = $1 AND payment_status = 'paid'
		ORDER BY paid_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dogs: %w", err)
	}
	defer rows.Close()

	var out []domain.Dog
	for rows.Next() {
		var d domain.Dog
		if err := rows.Scan(
			&d.ID, &d.DogName, &d.LicenseID, &d.StateOfLicensure, &d.PhotoURL, &d.FrameOrientation,
			&d.PaidAt, &d.ExpiresAt, &d.Breed, &d.Weight, &d.Height, &d.EyeColor, &d.Birthday,
		); err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	return out, rows.Err()
}

func (r *CertRepository) UpdateDetails(ctx context.Context, userID string, dogID int64, in domain.DetailsUpdate) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE dogs
		SET breed = $1, weight = $2, height = $3, eye_color = $4, birthday = $5
		WHERE id = $6 AND user_id = $7
	`, in.Breed, in.Weight, in.Height, in.EyeColor, in.Birthday, dogID, userID)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

func (r *CertRepository) ListGallery(ctx context.Context, limit, offset int) ([]domain.GalleryEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT d.id, d.dog_name, d.license_id, d.state_of_licensure, d.photo_url,
		       d.frame_orientation, d.paid_at, u.first_name, u.last_name
		FROM dogs d
		JOIN users u ON d.user_id = u.id
		WHERE d.payment_status = 'paid' AND d.photo_url IS NOT NULL
		ORDER BY d.paid_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery: %w", err)
	}
	defer rows.Close()

	var out []domain.GalleryEntry
	for rows.Next() {
		var e domain.GalleryEntry
		if err := rows.Scan(
			&e.ID, &e.DogName, &e.LicenseID, &e.StateOfLicensure, &e.PhotoURL,
			&e.FrameOrientation, &e.PaidAt, &e.OwnerFirstName, &e.OwnerLastName,
		); err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, rows.Err()
}

func (r *CertRepository) CountGallery(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM dogs WHERE payment_status = 'paid' AND photo_url IS NOT NULL
	`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count gallery: %w", err)
	}

	return total, nil
}

func (r *CertRepository) Search(ctx context.Context, query string, limit int) ([]domain.GalleryEntry, error) {
	pattern := "%" + query + "%"

	rows, err := r.db.Query(ctx, `
		SELECT d.dog_name, d.license_id, d.state_of_licensure, d.photo_url,
		       d.paid_at, d.expires_at, u.first_name, u.last_name
		FROM dogs d
		JOIN users u ON d.user_id = u.id
		WHERE d.payment_status = 'paid'
		  AND (d.license_id ILIKE $1 OR d.dog_name ILIKE $1
		       OR u.first_name ILIKE $1 OR u.last_name ILIKE $1)
		ORDER BY d.paid_at DESC
		LIMIT $2
	`, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("verification search failed: %w", err)
	}
	defer rows.Close()

	var out []domain.GalleryEntry
	for rows.Next() {
		var e domain.GalleryEntry
		if err := rows.Scan(
			&e.DogName, &e.LicenseID, &e.StateOfLicensure, &e.PhotoURL,
			&e.PaidAt, &e.ExpiresAt, &e.OwnerFirstName, &e.OwnerLastName,
		); err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, rows.Err()
}

func (r *CertRepository) Stats(ctx context.Context) (*domain.Stats, error) {
	var s domain.Stats
	err := r.db.QueryRow(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE paid_at IS NOT NULL),
			COUNT(*) FILTER (WHERE paid_at IS NOT NULL AND expires_at > now()),
			COUNT(*) FILTER (WHERE paid_at IS NOT NULL AND shipped_at IS NULL),
			COUNT(*) FILTER (WHERE paid_at > now() - interval '30 days')
		FROM dogs
	`).Scan(&s.TotalCertifications, &s.ActiveDogs, &s.PendingShipments, &s.RecentCerts)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}

	return &s, nil
}

func (r *CertRepository) RecentDogs(ctx context.Context, limit int) ([]domain.GalleryEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT d.dog_name, d.license_id, d.state_of_licensure, d.paid_at, u.first_name, u.last_name
		FROM dogs d
		JOIN users u ON d.user_id = u.id
		WHERE d.paid_at IS NOT NULL
		ORDER BY d.paid_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent dogs: %w", err)
	}
	defer rows.Close()

	var out []domain.GalleryEntry
	for rows.Next() {
		var e domain.GalleryEntry
		if err := rows.Scan(&e.DogName, &e.LicenseID, &e.StateOfLicensure, &e.PaidAt, &e.OwnerFirstName, &e.OwnerLastName); err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, rows.Err()
}

func (r *CertRepository) ListShipments(ctx context.Context) ([]domain.Shipment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT d.id, d.dog_name, d.license_id, d.delivery_status, d.tracking_number,
		       d.shipped_at, d.paid_at, d.is_gift,
		       d.gift_name, d.gift_address, d.gift_city, d.gift_state, d.gift_zip,
		       u.email, u.first_name, u.last_name, u.address, u.city, u.state, u.zip
		FROM dogs d
		JOIN users u ON d.user_id = u.id
		WHERE d.payment_status = 'paid'
		ORDER BY d.paid_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list shipments: %w", err)
	}
	defer rows.Close()

	var out []domain.Shipment
	for rows.Next() {
		var (
			s        domain.Shipment
			giftName *string
			giftAddr *string
			giftCity *string
			giftSt   *string
			giftZip  *string
		)
		if err := rows.Scan(
			&s.ID, &s.DogName, &s.LicenseID, &s.DeliveryStatus, &s.TrackingNumber,
			&s.ShippedAt, &s.PaidAt, &s.IsGift,
			&giftName, &giftAddr, &giftCity, &giftSt, &giftZip,
			&s.Email, &s.OwnerFirstName, &s.OwnerLastName, &s.OwnerAddress, &s.OwnerCity, &s.OwnerState, &s.OwnerZip,
		); err != nil {
			return nil, err
		}

		if s.IsGift && giftName != nil {
			s.ShipToName = *giftName
			s.ShipToAddress = giftAddr
			s.ShipToCity = giftCity
			s.ShipToState = giftSt
			s.ShipToZip = giftZip
		} else {
			s.ShipToName = s.OwnerFirstName
			if s.OwnerLastName != nil {
				s.ShipToName += " " + *s.OwnerLastName
			}
			s.ShipToAddress = s.OwnerAddress
			s.ShipToCity = s.OwnerCity
			s.ShipToState = s.OwnerState
			s.ShipToZip = s.OwnerZip
		}

		out = append(out, s)
	}

	return out, rows.Err()
}

func (r *CertRepository) SetTracking(ctx context.Context, dogID int64, trackingNumber string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE dogs
		SET tracking_number = $1, shipped_at = now(), delivery_status = 'shipped'
		WHERE id = $2
	`, trackingNumber, dogID)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
