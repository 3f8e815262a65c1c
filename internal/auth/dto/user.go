package dto

type UserOutput struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	IsAdmin   bool   `json:"is_admin"`
}

// AuthResponse is the body shared by login and signup.
type AuthResponse struct {
	Success bool       `json:"success"`
	Token   string     `json:"token"`
	User    UserOutput `json:"user"`
}

type ProfileOutput struct {
	ID             string  `json:"id"`
	Email          string  `json:"email"`
	FirstName      string  `json:"first_name"`
	LastName       *string `json:"last_name"`
	Address        *string `json:"address"`
	City           *string `json:"city"`
	State          *string `json:"state"`
	Zip            *string `json:"zip"`
	BillingName    *string `json:"billing_name"`
	BillingAddress *string `json:"billing_address"`
	BillingCity    *string `json:"billing_city"`
	BillingState   *string `json:"billing_state"`
	BillingZip     *string `json:"billing_zip"`
}

type ProfileUpdateInput struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Address   *string `json:"address"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	Zip       *string `json:"zip"`
}

type BillingUpdateInput struct {
	BillingName    *string `json:"billing_name"`
	BillingAddress *string `json:"billing_address"`
	BillingCity    *string `json:"billing_city"`
	BillingState   *string `json:"billing_state"`
	BillingZip     *string `json:"billing_zip"`
}

type SavedAddressInput struct {
	ID      int64  `json:"id"`
	Label   string `json:"label"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
}

type SavedAddressOutput struct {
	ID      int64  `json:"id"`
	Label   string `json:"label"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
}
