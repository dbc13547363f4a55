package user

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ListUsersRequest carries filters and pagination for the user list.
type ListUsersRequest struct {
	Search    string `form:"search" json:"search"`
	Role      string `form:"role" json:"role"`
	Status    string `form:"status" json:"status"`
	SortBy    string `form:"sortBy" json:"sortBy"`
	SortOrder string `form:"sortOrder" json:"sortOrder"`
	Page      int    `form:"page" json:"page"`
	Limit     int    `form:"limit" json:"limit"`
}

func (r *ListUsersRequest) SetDefaults() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 {
		r.Limit = 10
	}
	if r.SortOrder == "" {
		r.SortOrder = "asc"
	}
}

func (r ListUsersRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Role,
			validation.In(string(RoleAdmin), string(RoleUser)),
		),
		validation.Field(&r.Status,
			validation.In(string(StatusActive), string(StatusInactive)),
		),
		validation.Field(&r.SortBy,
			validation.In("name", "email", "createdAt"),
		),
		validation.Field(&r.SortOrder,
			validation.In("asc", "desc"),
		),
	)
}

// ListUsersResult is the paginated list payload.
type ListUsersResult struct {
	Users []User `json:"users"`
	Total int    `json:"total"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}

// Patch carries a partial update; only provided keys override.
type Patch struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Role   *Role   `json:"role,omitempty"`
	Status *Status `json:"status,omitempty"`
}

func (p Patch) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Email,
			validation.When(p.Email != nil, is.Email.Error("invalid email format")),
		),
		validation.Field(&p.Role,
			validation.When(p.Role != nil, validation.By(func(interface{}) error {
				if !p.Role.IsValid() {
					return validation.NewError("validation_invalid_role", "role must be admin or user")
				}
				return nil
			})),
		),
		validation.Field(&p.Status,
			validation.When(p.Status != nil, validation.By(func(interface{}) error {
				if !p.Status.IsValid() {
					return validation.NewError("validation_invalid_status", "status must be active or inactive")
				}
				return nil
			})),
		),
	)
}

// DeleteSummary reports a user delete.
type DeleteSummary struct {
	Success   bool   `json:"success"`
	DeletedID string `json:"deletedId"`
	Message   string `json:"message"`
}

// BatchDeleteSummary / RestoreSummary cover the declared bulk hooks.
type BatchDeleteSummary struct {
	Success      bool     `json:"success"`
	DeletedCount int      `json:"deletedCount"`
	DeletedIDs   []string `json:"deletedIds"`
	Message      string   `json:"message"`
}

type RestoreSummary struct {
	Success       bool   `json:"success"`
	RestoredCount int    `json:"restoredCount"`
	Message       string `json:"message"`
}
