// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest is the payload of POST /api/user/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,maxbytes=72"`
}

// LoginRequest is the payload of POST /api/user/login.
type LoginRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	DeviceName string `json:"device_name" validate:"required,max=255"`
}

// ListUsersRequest selects one page of users.
type ListUsersRequest struct {
	Page    int
	PerPage int
}

// Offset returns the number of rows preceding the requested page.
func (r ListUsersRequest) Offset() int {
	if r.Page < 1 {
		return 0
	}
	return (r.Page - 1) * r.PerPage
}

// UsersPage is one page of users together with the total count.
type UsersPage struct {
	Users      []User
	TotalCount int
	Page       int
	Size       int
}

// Total implements response.Paginator.
func (p UsersPage) Total() int { return p.TotalCount }

// PerPage implements response.Paginator.
func (p UsersPage) PerPage() int { return p.Size }

// CurrentPage implements response.Paginator.
func (p UsersPage) CurrentPage() int { return p.Page }
