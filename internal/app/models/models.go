package models

import (
	"slices"
	"time"
)

// AuthSession is the authenticated identity held by the running client. It is
// a projection of the UserAccount that logged in, plus the transport token.
// The backend returns it from POST /api/auth/login.
type AuthSession struct {
	Token     string `json:"token"`
	TokenType string `json:"type"`
	UserID    int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Admin     bool   `json:"admin"`
}

// ClassSession is a bookable class instance. The backend owns it; the client
// only ever holds transient copies.
type ClassSession struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Date            time.Time `json:"date"`
	TeacherID       int64     `json:"teacher_id"`
	AttendeeUserIDs []int64   `json:"users"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// HasAttendee reports whether userID is in the attendee set. Membership is
// binary; the backend guarantees no duplicates.
func (s *ClassSession) HasAttendee(userID int64) bool {
	return slices.Contains(s.AttendeeUserIDs, userID)
}

// SessionDraft is the editable subset of a ClassSession sent on create and
// update. Update has full-replace semantics, so every field is always sent.
type SessionDraft struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	TeacherID   int64     `json:"teacher_id"`
}

// Complete reports whether the draft satisfies the required-field constraints
// the form submit is gated on. Field-level validation stays in the form rules.
func (d *SessionDraft) Complete() bool {
	return d.Name != "" && d.Description != "" && !d.Date.IsZero() && d.TeacherID != 0
}

// Teacher is read-only reference data.
type Teacher struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserAccount is the full account record behind an AuthSession. The password
// hash never leaves the backend.
type UserAccount struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Admin     bool      `json:"admin"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Email     string `json:"email" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

// MessageResponse is the backend's generic confirmation payload.
type MessageResponse struct {
	Message string `json:"message"`
}
