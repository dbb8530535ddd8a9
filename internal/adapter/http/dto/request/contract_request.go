package request

import "strings"

// ContractGenerationRequest selects the template a contract is rendered
// from.
type ContractGenerationRequest struct {
	TemplateID string `json:"template_id" binding:"required"`
}

func (r ContractGenerationRequest) ResolveTemplateID() string {
	return strings.TrimSpace(r.TemplateID)
}
