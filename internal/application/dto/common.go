package dto

// DeletePayload confirmación de un borrado.
type DeletePayload struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
