package request

import (
	"encoding/json"
	"strings"
)

// MilestonePaymentRequest records a milestone payment received for a payment
// configuration. GatewayPayload is passed through to the payment provider
// untouched.
type MilestonePaymentRequest struct {
	MilestoneName  string          `json:"milestone_name" binding:"required"`
	GatewayPayload json.RawMessage `json:"gateway_payload"`
}

func (r MilestonePaymentRequest) ResolveMilestoneName() string {
	return strings.TrimSpace(r.MilestoneName)
}
