package interfaces

import "context"

// ISignatureGateway abstracts the e-signature provider. The real integration
// lives outside this service; the default implementation only hands back an
// envelope id so the contract lifecycle can progress.
type ISignatureGateway interface {
	SendEnvelope(ctx context.Context, contractNumber, signatoryEmail, content string) (envelopeID string, err error)
}
