package dto

type CheckoutInput struct {
	DogName          string  `json:"dog_name"`
	State            string  `json:"state"`
	PhotoURL         *string `json:"photo_url"`
	FrameOrientation string  `json:"frame_orientation"`
	Coupon           string  `json:"coupon"`

	IsGift      bool    `json:"is_gift"`
	GiftName    *string `json:"gift_name"`
	GiftAddress *string `json:"gift_address"`
	GiftCity    *string `json:"gift_city"`
	GiftState   *string `json:"gift_state"`
	GiftZip     *string `json:"gift_zip"`
}

// CheckoutResult is either an immediately completed certification (coupon) or
// a redirect to the hosted payment link.
type CheckoutResult struct {
	LicenseID  string
	SessionURL string
	Free       bool
	Test       bool
	Message    string
}

type TrackingInput struct {
	DogID          int64  `json:"dog_id"`
	TrackingNumber string `json:"tracking_number"`
	// Carrier is accepted from the admin UI but not stored yet; carriers are
	// inferred from the tracking number format on the front end.
	Carrier string `json:"carrier"`
}

type DogDetailsInput struct {
	DogID    int64   `json:"dog_id"`
	Breed    *string `json:"breed"`
	Weight   *string `json:"weight"`
	Height   *string `json:"height"`
	EyeColor *string `json:"eye_color"`
	Birthday *string `json:"birthday"`
}
