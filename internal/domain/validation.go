package domain

import (
	"strings"

	"github.com/google/uuid"
)

const (
	// MsgRequired is the feedback for an empty name or text.
	MsgRequired = "Required"
	// MsgAlreadyExists is the feedback for a duplicated name or text.
	MsgAlreadyExists = "already exists"
)

// ValidateListName checks a new list name against the existing lists.
func ValidateListName(name string, lists []List) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return NewValidationErr(MsgRequired)
	}
	for _, l := range lists {
		if l.Name == name {
			return NewValidationErr(name + " " + MsgAlreadyExists)
		}
	}
	return nil
}

// ValidateTaskText checks a new task text against the tasks of listID only.
func ValidateTaskText(text string, listID uuid.UUID, tasks []Task) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return NewValidationErr(MsgRequired)
	}
	for _, t := range tasks {
		if t.ListID == listID && t.Text == text {
			return NewValidationErr(text + " " + MsgAlreadyExists)
		}
	}
	return nil
}
