package dto

// WebhookEvent is the subset of the payment provider's event payload the
// webhook consumes.
type WebhookEvent struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			ClientReferenceID string `json:"client_reference_id"`
		} `json:"object"`
	} `json:"data"`
}

const EventCheckoutCompleted = "checkout.session.completed"
