package contact

import "fmt"

// Subject returns the email subject line for sub.
func Subject(sub Submission) string {
	return fmt.Sprintf("Contact form submission: %s (%s)", sub.Name, sub.Email)
}

// FormatBody renders the fixed plain-text layout for sub.
func FormatBody(sub Submission) string {
	return fmt.Sprintf("NAME: %s\nEMAIL: %s\nMESSAGE: \"%s\"\n", sub.Name, sub.Email, sub.Message)
}
