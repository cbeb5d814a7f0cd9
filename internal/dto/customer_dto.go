package dto

// RegisterCustomerRequest is the body of POST /api/clients/register.
type RegisterCustomerRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=60"`
	Email    string  `json:"email"    validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6,max=72"`
	Name     string  `json:"name"     validate:"required,min=2,max=120"`
	Phone    *string `json:"phone"    validate:"omitempty,max=30"`
	Address  *string `json:"address"  validate:"omitempty,max=250"`
}

// CustomerLoginRequest accepts a username or an email as identifier.
type CustomerLoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password"   validate:"required"`
}

// UpdateCustomerRequest is the enumerated patch structure for
// PUT /api/admin/clients/:id. Omitted fields keep their previous value.
type UpdateCustomerRequest struct {
	Name     *string `json:"name"     validate:"omitempty,min=2,max=120"`
	Phone    *string `json:"phone"    validate:"omitempty,max=30"`
	Address  *string `json:"address"  validate:"omitempty,max=250"`
	Active   *bool   `json:"active"`
	Password *string `json:"password" validate:"omitempty,min=6,max=72"`
}

// CustomerResponse is the public profile shape (hash excluded).
type CustomerResponse struct {
	ID          string  `json:"id"`
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	Name        string  `json:"name"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	Active      bool    `json:"active"`
	Role        string  `json:"role"`
	LastLoginAt *string `json:"last_login_at"`
	CreatedAt   string  `json:"created_at"`
}
