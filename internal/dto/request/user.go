package request

import "account-service/internal/data/entity"

// UpdateProfileRequest carries a partial update. Pointer fields distinguish
// "absent" from "set to empty": only non-nil fields are applied.
type UpdateProfileRequest struct {
	Name      *string           `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Phone     *string           `json:"phone,omitempty" validate:"omitempty,min=10,max=15"`
	Addresses *[]entity.Address `json:"addresses,omitempty"`
}
