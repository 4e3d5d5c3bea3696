package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxMessageLength is the longest message text accepted, in characters.
const MaxMessageLength = 254

// Message validation errors. All of them wrap ErrValidation.
var (
	ErrEmptyMessageID     = fmt.Errorf("%w: message ID cannot be empty", ErrValidation)
	ErrEmptyMessageAuthor = fmt.Errorf("%w: message author cannot be empty", ErrValidation)
	ErrEmptyMessageText   = fmt.Errorf("%w: message text cannot be empty", ErrValidation)
	ErrMessageTooLong     = fmt.Errorf("%w: message text must be at most %d characters long", ErrValidation, MaxMessageLength)
)

// Message is a short text post owned by the account in PostedBy.
type Message struct {
	ID              int    `json:"message_id"`
	PostedBy        int    `json:"posted_by"`
	Text            string `json:"message_text"`
	TimePostedEpoch int64  `json:"time_posted_epoch"`
}

// NewMessage creates a new, not yet persisted Message.
// The timestamp is supplied by the caller and preserved verbatim.
func NewMessage(postedBy int, text string, timePostedEpoch int64) (*Message, error) {
	message := &Message{
		PostedBy:        postedBy,
		Text:            text,
		TimePostedEpoch: timePostedEpoch,
	}

	if err := message.ValidateText(); err != nil {
		return nil, err
	}

	return message, nil
}

// ValidateText checks the message text. The text is stored untrimmed;
// trimming only decides whether it is blank.
func (m *Message) ValidateText() error {
	return ValidateMessageText(m.Text)
}

// Validate checks that a message is ready to be persisted.
func (m *Message) Validate() error {
	if m.PostedBy == 0 {
		return ErrEmptyMessageAuthor
	}
	return m.ValidateText()
}

// ValidateMessageText rejects blank and over-long message text.
func ValidateMessageText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyMessageText
	}
	if utf8.RuneCountInString(text) > MaxMessageLength {
		return ErrMessageTooLong
	}
	return nil
}

// IsOwnedBy reports whether the message was posted by the given account.
func (m *Message) IsOwnedBy(account *Account) bool {
	return account != nil && account.ID != 0 && m.PostedBy == account.ID
}
