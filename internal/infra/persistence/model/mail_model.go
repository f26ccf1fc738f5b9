package model

import "displaygram/internal/domain/entity"

// MailToDoc encodes a message in the layout read by the Firebase Trigger
// Email extension: recipients at the top level, content under "message".
func MailToDoc(m *entity.MailMessage, ts any) map[string]any {
	message := map[string]any{
		"subject": m.Subject,
		"text":    m.Text,
	}
	if m.HTML != "" {
		message["html"] = m.HTML
	}

	doc := map[string]any{
		"to":           m.To,
		"message":      message,
		FieldCreatedAt: ts,
	}
	if m.RequestID != "" {
		doc["requestId"] = m.RequestID
	}

	return doc
}
