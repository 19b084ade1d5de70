package notifications

import (
	"context"
	"log"
)

// LogMailer writes outgoing mail to the process log instead of delivering it.
type LogMailer struct {
	From string
}

func (m LogMailer) Send(_ context.Context, to, subject, body string) error {
	log.Printf("[MAIL] from=%s to=%s subject=%q\n%s", m.From, to, subject, body)
	return nil
}
