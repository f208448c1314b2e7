package notification

import (
	"strings"

	"equipment-rental/internal/domain/rental"
	"equipment-rental/internal/usecase/commands"
)

type Kind string

const (
	KindApproval    Kind = "approval"
	KindDisapproval Kind = "disapproval"
)

const signature = "Best regards,\nEquipment Rental Team"

type Message struct {
	To      string
	ToName  string
	Subject string
	Body    string
}

// KindFor maps a decided status to its template. Pending has none.
func KindFor(status rental.Status) (Kind, bool) {
	switch status {
	case rental.StatusApproved:
		return KindApproval, true
	case rental.StatusDisapproved:
		return KindDisapproval, true
	default:
		return "", false
	}
}

// Compose renders the message for kind. The output depends only on its
// inputs.
func Compose(kind Kind, n commands.StatusNotification) Message {
	var b strings.Builder
	var subject string

	b.WriteString("Dear " + n.UserName + ",\n\n")

	switch kind {
	case KindApproval:
		subject = "✅ Equipment Rental Request Approved - " + n.EquipmentTitle
		b.WriteString("Great news! Your equipment rental request has been APPROVED.\n\n")
		b.WriteString("📋 Booking Details:\n")
		b.WriteString("• Equipment: " + n.EquipmentTitle + "\n")
		b.WriteString("• Start: " + when(n.StartDate, n.StartTime) + "\n")
		b.WriteString("• End: " + when(n.EndDate, n.EndTime) + "\n\n")
		if n.Note != "" {
			b.WriteString("📝 Admin Note: " + n.Note + "\n\n")
		}
		b.WriteString("Please ensure you collect and return the equipment on time.\n\n")
	default:
		subject = "❌ Equipment Rental Request Disapproved - " + n.EquipmentTitle
		b.WriteString("We regret to inform you that your equipment rental request has been DISAPPROVED.\n\n")
		b.WriteString("📋 Request Details:\n")
		b.WriteString("• Equipment: " + n.EquipmentTitle + "\n")
		b.WriteString("• Requested: " + when(n.StartDate, n.StartTime) + " to " + when(n.EndDate, n.EndTime) + "\n\n")
		if n.Note != "" {
			b.WriteString("📝 Reason: " + n.Note + "\n\n")
		}
		b.WriteString("Please feel free to submit a new request or contact us for more information.\n\n")
	}
	b.WriteString(signature)

	return Message{
		To:      n.UserEmail,
		ToName:  n.UserName,
		Subject: subject,
		Body:    b.String(),
	}
}

func when(date, clock string) string {
	if clock == "" {
		return date
	}
	return date + " at " + clock
}
