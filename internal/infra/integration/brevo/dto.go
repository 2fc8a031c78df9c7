package brevo

// CreateContactInput is the create-or-update contact call.
type CreateContactInput struct {
	Email         string
	Attributes    map[string]string
	ListIDs       []int64
	UpdateEnabled bool
}

// UpdateContactInput is the partial update addressed by email.
type UpdateContactInput struct {
	Attributes map[string]string
}

type createContactRequest struct {
	Email         string            `json:"email"`
	Attributes    map[string]string `json:"attributes,omitempty"`
	ListIDs       []int64           `json:"listIds,omitempty"`
	UpdateEnabled bool              `json:"updateEnabled"`
}

type updateContactRequest struct {
	Attributes map[string]string `json:"attributes"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
