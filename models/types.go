package models

// Request types

type AddParticipantRequest struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
}

type AddAdminRequest struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
}

type InsertHistoryRequest struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name,omitempty"`
	Date   string `json:"date"`
}

type DeleteHistoryRequest struct {
	UserID int64  `json:"user_id"`
	Date   string `json:"date"`
}

// Response types

type MessageResponse struct {
	Message string `json:"message"`
}

type ParticipantsResponse struct {
	Participants []string `json:"participants"`
}

type AdminsResponse struct {
	Admins []string `json:"admins"`
}

type IsParticipantResponse struct {
	Participant bool `json:"participant"`
}

type IsAdminResponse struct {
	Admin bool `json:"admin"`
}

type WinnerResponse struct {
	UserID  int64  `json:"user_id"`
	Message string `json:"message"`
}

type HistoryResponse struct {
	History []HistoryRecord `json:"history"`
}

type CountsResponse struct {
	Counts []CountRecord `json:"counts"`
}

// Domain types

// HistoryRecord is one past selection. Ago is a human-readable relative
// time ("3 days ago"), empty when the stored date does not parse.
type HistoryRecord struct {
	Name string `json:"name"`
	Date string `json:"date"`
	Ago  string `json:"ago,omitempty"`
}

type CountRecord struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
