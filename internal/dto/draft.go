package dto

// DraftStepRequest applies one edit to an in-progress movement draft.
// Field names the input being edited using the store's field names.
type DraftStepRequest struct {
	Draft MovementDraftPayload `json:"draft"`
	Field string               `json:"field" binding:"required,oneof=valor percentual_retido retido"`
	Value string               `json:"value"`
}

// DraftStepResponse returns the recomputed draft plus the masked display
// strings for the two currency inputs.
type DraftStepResponse struct {
	Draft           MovementDraftPayload `json:"draft"`
	GrossDisplay    string               `json:"valor_display"`
	RetainedDisplay string               `json:"retido_display"`
}
