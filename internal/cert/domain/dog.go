package domain

import "time"

const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"

	DeliveryStatusShipped = "shipped"
)

type Dog struct {
	ID               int64      `json:"id"`
	UserID           string     `json:"-"`
	DogName          string     `json:"dog_name"`
	LicenseID        string     `json:"license_id"`
	StateOfLicensure string     `json:"state_of_licensure"`
	PaymentStatus    string     `json:"-"`
	PhotoURL         *string    `json:"photo_url"`
	FrameOrientation string     `json:"frame_orientation"`
	PaidAt           *time.Time `json:"paid_at"`
	ExpiresAt        *time.Time `json:"expires_at"`

	DeliveryStatus *string    `json:"delivery_status,omitempty"`
	TrackingNumber *string    `json:"tracking_number,omitempty"`
	ShippedAt      *time.Time `json:"shipped_at,omitempty"`

	IsGift      bool    `json:"is_gift,omitempty"`
	GiftName    *string `json:"-"`
	GiftAddress *string `json:"-"`
	GiftCity    *string `json:"-"`
	GiftState   *string `json:"-"`
	GiftZip     *string `json:"-"`

	Breed    *string `json:"breed"`
	Weight   *string `json:"weight"`
	Height   *string `json:"height"`
	EyeColor *string `json:"eye_color"`
	Birthday *string `json:"birthday"`

	CreatedAt time.Time `json:"-"`
}

// GalleryEntry is a paid dog with owner names, as shown in the public gallery
// and verification search.
type GalleryEntry struct {
	ID               int64      `json:"id,omitempty"`
	DogName          string     `json:"dog_name"`
	LicenseID        string     `json:"license_id"`
	StateOfLicensure string     `json:"state_of_licensure"`
	PhotoURL         *string    `json:"photo_url"`
	FrameOrientation *string    `json:"frame_orientation,omitempty"`
	PaidAt           *time.Time `json:"paid_at"`
	ExpiresAt        *time.Time `json:"expires_at,omitempty"`
	OwnerFirstName   string     `json:"first_name"`
	OwnerLastName    *string    `json:"last_name"`
}

// Shipment is the admin dashboard projection: when the order is a gift the
// ship-to address comes from the gift fields, otherwise from the owner.
type Shipment struct {
	ID             int64      `json:"id"`
	DogName        string     `json:"dog_name"`
	LicenseID      string     `json:"license_id"`
	DeliveryStatus *string    `json:"delivery_status"`
	TrackingNumber *string    `json:"tracking_number"`
	ShippedAt      *time.Time `json:"shipped_at"`
	PaidAt         *time.Time `json:"paid_at"`
	IsGift         bool       `json:"is_gift"`
	Email          string     `json:"email"`

	OwnerFirstName string  `json:"owner_first_name"`
	OwnerLastName  *string `json:"owner_last_name"`
	OwnerAddress   *string `json:"owner_address"`
	OwnerCity      *string `json:"owner_city"`
	OwnerState     *string `json:"owner_state"`
	OwnerZip       *string `json:"owner_zip"`

	ShipToName    string  `json:"ship_to_name"`
	ShipToAddress *string `json:"ship_to_address"`
	ShipToCity    *string `json:"ship_to_city"`
	ShipToState   *string `json:"ship_to_state"`
	ShipToZip     *string `json:"ship_to_zip"`
}

type Stats struct {
	TotalCertifications int64 `json:"total_certifications"`
	ActiveDogs          int64 `json:"active_dogs"`
	PendingShipments    int64 `json:"pending_shipments"`
	RecentCerts         int64 `json:"recent_certifications"`
}

// OwnerContact is what the payment webhook needs to send a confirmation email.
type OwnerContact struct {
	Email     string
	FirstName string
}

type DetailsUpdate struct {
	Breed    *string
	Weight   *string
	Height   *string
	EyeColor *string
	Birthday *string
}
