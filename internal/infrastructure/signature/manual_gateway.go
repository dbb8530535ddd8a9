package signature

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/sperry-entelech/entelech-sales-process-automation/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// ManualSignatureGateway stands in for an e-signature provider. It issues an
// envelope id and logs the send; the actual document delivery is handled by
// the sales team until a provider integration lands.
type ManualSignatureGateway struct{}

var _ interfaces.ISignatureGateway = (*ManualSignatureGateway)(nil)

func NewManualSignatureGateway() *ManualSignatureGateway {
	return &ManualSignatureGateway{}
}

func (g *ManualSignatureGateway) SendEnvelope(ctx context.Context, contractNumber, signatoryEmail, content string) (string, error) {
	if strings.TrimSpace(signatoryEmail) == "" {
		return "", fmt.Errorf("missing signatory email for contract %s", contractNumber)
	}

	envelopeID := uuid.NewString()
	log.Printf("[contract][signature] envelope created contract_number=%s envelope_id=%s signatory=%s content_len=%d",
		contractNumber, envelopeID, signatoryEmail, len(content))
	return envelopeID, nil
}
