package api

import (
	"github.com/gaebar/social-media-blog-api/internal/domain"
)

// RegisterRequest defines the payload for the registration endpoint.
// Length rules are enforced by the account service.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateAccountRequest replaces an account's username and password.
// Password is plaintext; the service hashes it.
type UpdateAccountRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AccountResponse is the public view of an account. Passwords never leave
// the server.
type AccountResponse struct {
	AccountID int    `json:"account_id"`
	Username  string `json:"username"`
}

// CreateMessageRequest defines the payload for posting a message.
type CreateMessageRequest struct {
	PostedBy        int    `json:"posted_by"         validate:"gt=0"`
	MessageText     string `json:"message_text"`
	TimePostedEpoch int64  `json:"time_posted_epoch" validate:"gte=0"`
}

// UpdateMessageRequest carries the replacement text for a message.
type UpdateMessageRequest struct {
	MessageText string `json:"message_text"`
}

// MessageResponse mirrors the persisted message layout.
type MessageResponse struct {
	MessageID       int    `json:"message_id"`
	PostedBy        int    `json:"posted_by"`
	MessageText     string `json:"message_text"`
	TimePostedEpoch int64  `json:"time_posted_epoch"`
}

func accountToResponse(account *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID: account.ID,
		Username:  account.Username,
	}
}

func accountsToResponse(accounts []*domain.Account) []AccountResponse {
	response := make([]AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		response = append(response, accountToResponse(account))
	}
	return response
}

func messageToResponse(message *domain.Message) MessageResponse {
	return MessageResponse{
		MessageID:       message.ID,
		PostedBy:        message.PostedBy,
		MessageText:     message.Text,
		TimePostedEpoch: message.TimePostedEpoch,
	}
}

func messagesToResponse(messages []*domain.Message) []MessageResponse {
	response := make([]MessageResponse, 0, len(messages))
	for _, message := range messages {
		response = append(response, messageToResponse(message))
	}
	return response
}
