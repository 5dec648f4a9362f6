package handler

import "github.com/drakeshop/inventory-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Item payloads ---

// itemRequest is the body of POST and PUT /api/items. Price and amount are
// pointers so that an explicit zero passes "required".
type itemRequest struct {
	Name        string   `json:"name"        validate:"required,max=100"`
	Description string   `json:"description" validate:"required,max=200"`
	Price       *float64 `json:"price"       validate:"required,gte=0"`
	ImageURL    string   `json:"imageUrl"    validate:"required,max=2000"`
	Amount      *int64   `json:"amount"      validate:"required,gte=0"`
}

func (r itemRequest) toPayload() domain.ItemPayload {
	return domain.ItemPayload{
		Name:        r.Name,
		Description: r.Description,
		Price:       *r.Price,
		ImageURL:    r.ImageURL,
		Amount:      *r.Amount,
	}
}

// adjustAmountRequest is the body of PATCH /api/items/:id. Amount is a signed
// delta.
type adjustAmountRequest struct {
	Amount *int64 `json:"amount" validate:"required"`
}

// --- User payloads ---

// userRequest is the body of create and replace.
type userRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required,bcrypt"`
}

// loginRequest carries no length rules: any credentials that fail to match
// get the same answer from the service.
type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}
