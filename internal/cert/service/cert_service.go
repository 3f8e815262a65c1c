package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	certerror "github.com/farberstyle-netizen/holistic-dog-site/internal/errors"

	"github.com/farberstyle-netizen/holistic-dog-site/internal/cert/domain"
	"github.com/farberstyle-netizen/holistic-dog-site/internal/cert/dto"
	"github.com/farberstyle-netizen/holistic-dog-site/internal/mailer"
	"github.com/farberstyle-netizen/holistic-dog-site/pkg/constant"
)

const (
	couponBeta        = "BETA2025"
	couponTest        = "TEST99"
	couponTestPercent = "TEST99PERCENT"
)

type PaymentLinks struct {
	Live string
	Test string
}

type CertService struct {
	repo     domain.CertRepository
	uploader domain.Uploader
	mail     mailer.Sender
	links    PaymentLinks
	logger   zerolog.Logger
}

func NewCertService(
	repo domain.CertRepository,
	uploader domain.Uploader,
	mail mailer.Sender,
	links PaymentLinks,
	logger zerolog.Logger,
) *CertService {
	return &CertService{
		repo:     repo,
		uploader: uploader,
		mail:     mail,
		links:    links,
		logger:   logger,
	}
}

// Checkout creates a certification order. The BETA2025 coupon completes it
// immediately; everything else gets a pending row and a hosted payment-link
// URL carrying the license id as the client reference.
func (s *CertService) Checkout(ctx context.Context, userID, email string, input dto.CheckoutInput) (*dto.CheckoutResult, error) {
	licenseID, err := newLicenseID()
	if err != nil {
		return nil, err
	}

	frame := input.FrameOrientation
	if frame == "" {
		frame = "square"
	}

	now := time.Now()
	expiresAt := now.Add(constant.CertificationTTL)

	dog := &domain.Dog{
		UserID:           userID,
		DogName:          input.DogName,
		LicenseID:        licenseID,
		StateOfLicensure: input.State,
		PaymentStatus:    domain.PaymentStatusPending,
		PhotoURL:         input.PhotoURL,
		FrameOrientation: frame,
		ExpiresAt:        &expiresAt,
		IsGift:           input.IsGift,
		GiftName:         input.GiftName,
		GiftAddress:      input.GiftAddress,
		GiftCity:         input.GiftCity,
		GiftState:        input.GiftState,
		GiftZip:          input.GiftZip,
	}

	if input.Coupon == couponBeta {
		dog.PaymentStatus = domain.PaymentStatusPaid
		dog.PaidAt = &now

		if err := s.repo.CreateDog(ctx, dog); err != nil {
			return nil, err
		}

		return &dto.CheckoutResult{
			LicenseID: licenseID,
			Free:      true,
			Message:   "Certification complete! BETA2025 coupon applied.",
		}, nil
	}

	if err := s.repo.CreateDog(ctx, dog); err != nil {
		return nil, err
	}

	if input.Coupon == couponTest || input.Coupon == couponTestPercent {
		link := s.links.Test
		if link == "" {
			link = s.links.Live
		}

		return &dto.CheckoutResult{
			LicenseID:  licenseID,
			SessionURL: paymentURL(link, licenseID, email),
			Test:       true,
			Message:    input.Coupon + " coupon applied - $1.00 payment",
		}, nil
	}

	return &dto.CheckoutResult{
		LicenseID:  licenseID,
		SessionURL: paymentURL(s.links.Live, licenseID, email),
	}, nil
}

// HandleCheckoutCompleted marks the referenced order paid and sends the
// confirmation email. Unknown or missing license ids are logged and swallowed
// so the provider never retries them.
func (s *CertService) HandleCheckoutCompleted(ctx context.Context, event dto.WebhookEvent) error {
	licenseID := event.Data.Object.ClientReferenceID
	if licenseID == "" {
		s.logger.Error().Msg("no license id in payment session")
		return nil
	}

	dog, err := s.repo.GetByLicense(ctx, licenseID)
	if err != nil {
		return err
	}
	if dog == nil {
		s.logger.Error().Str("license_id", licenseID).Msg("no dog found for paid license")
		return nil
	}

	expiresAt := time.Now().Add(constant.CertificationTTL)
	if err := s.repo.MarkPaid(ctx, dog.ID, expiresAt); err != nil {
		return err
	}

	s.logger.Info().Str("dog_name", dog.DogName).Str("license_id", licenseID).Msg("payment successful")

	owner, err := s.repo.GetOwner(ctx, dog.UserID)
	if err != nil || owner == nil {
		s.logger.Error().Err(err).Str("user_id", dog.UserID).Msg("could not load owner for confirmation email")
		return nil
	}

	if err := s.sendConfirmationEmail(owner, dog, licenseID, expiresAt); err != nil {
		s.logger.Error().Err(err).Str("license_id", licenseID).Msg("failed to send confirmation email")
	}

	return nil
}

// UploadPhoto validates and stores a dog photo, returning its public URL.
func (s *CertService) UploadPhoto(ctx context.Context, userID, contentType string, data []byte) (string, error) {
	ext, ok := photoExt(contentType)
	if !ok {
		return "", certerror.ErrInvalidFileType
	}
	if len(data) > constant.MaxPhotoBytes {
		return "", certerror.ErrPhotoTooLarge
	}

	suffix := make([]byte, 8)
	if _, err := rand.Read(suffix); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%s-%d-%s.%s", userID, time.Now().Unix(), hex.EncodeToString(suffix), ext)

	return s.uploader.UploadBytes(ctx, "dog-photos", filename, data)
}

func (s *CertService) Gallery(ctx context.Context, limit, offset int) ([]domain.GalleryEntry, int64, error) {
	entries, err := s.repo.ListGallery(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.repo.CountGallery(ctx)
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

func (s *CertService) Verify(ctx context.Context, query string) ([]domain.GalleryEntry, error) {
	return s.repo.Search(ctx, query, 20)
}

func (s *CertService) Stats(ctx context.Context) (*domain.Stats, error) {
	return s.repo.Stats(ctx)
}

func (s *CertService) RecentDogs(ctx context.Context) ([]domain.GalleryEntry, error) {
	return s.repo.RecentDogs(ctx, 10)
}

func (s *CertService) Shipments(ctx context.Context) ([]domain.Shipment, error) {
	return s.repo.ListShipments(ctx)
}

func (s *CertService) UpdateTracking(ctx context.Context, input dto.TrackingInput) error {
	ok, err := s.repo.SetTracking(ctx, input.DogID, input.TrackingNumber)
	if err != nil {
		return err
	}
	if !ok {
		return certerror.ErrDogNotFound
	}
	return nil
}

func (s *CertService) ListPaidByUser(ctx context.Context, userID string) ([]domain.Dog, error) {
	return s.repo.ListPaidByUser(ctx, userID)
}

func (s *CertService) UpdateDogDetails(ctx context.Context, userID string, input dto.DogDetailsInput) error {
	ok, err := s.repo.UpdateDetails(ctx, userID, input.DogID, domain.DetailsUpdate{
		Breed:    input.Breed,
		Weight:   input.Weight,
		Height:   input.Height,
		EyeColor: input.EyeColor,
		Birthday: input.Birthday,
	})
	if err != nil {
		return err
	}
	if !ok {
		return certerror.ErrDogNotFound
	}
	return nil
}

func (s *CertService) sendConfirmationEmail(owner *domain.OwnerContact, dog *domain.Dog, licenseID string, expiresAt time.Time) error {
	giftNote := ""
	if dog.IsGift && dog.GiftName != nil {
		giftNote = fmt.Sprintf("<p>🎁 <strong>Gift Order:</strong> This certification will be shipped to %s.</p>", *dog.GiftName)
	}

	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>%s is officially certified! Your license ID is <strong>%s</strong>.</p>
		%s
		<p>The certification is valid through %s. Your welcome kit ships soon.</p>
		<p>Holistic Therapy Dog Association</p>
	`, owner.FirstName, dog.DogName, licenseID, giftNote, expiresAt.Format("January 2, 2006"))

	return s.mail.SendHTML([]string{owner.Email}, "Certification Confirmed - "+dog.DogName, body)
}

func paymentURL(link, licenseID, email string) string {
	return fmt.Sprintf("%s?client_reference_id=%s&prefilled_email=%s", link, licenseID, url.QueryEscape(email))
}

// newLicenseID returns a random 8-digit license number.
func newLicenseID() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(90000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", n.Int64()+10000000), nil
}

func photoExt(contentType string) (string, bool) {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return "jpeg", true
	case "image/png":
		return "png", true
	case "image/webp":
		return "webp", true
	default:
		return "", false
	}
}
