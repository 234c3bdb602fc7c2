package repository

import (
	"context"
	"fmt"

	"github.com/golangid/candi/tracer"
	gomail "gopkg.in/gomail.v2"
)

const matchMailSubject = "New Research Match!"

const matchMailBody = `Hi,

Great news! You and %s have matched based on your research interests.

Best regards,
Luke In The Clouds Research Team
`

type matchNotifierSMTP struct {
	dialer *gomail.Dialer
	sender string
}

// NewMatchNotifierSMTP smtp notifier constructor
func NewMatchNotifierSMTP(host string, port int, username, password string) MatchNotifier {
	return &matchNotifierSMTP{
		dialer: gomail.NewDialer(host, port, username, password),
		sender: username,
	}
}

func (n *matchNotifierSMTP) Notify(ctx context.Context, recipient, counterpart string) (err error) {
	trace, _ := tracer.StartTraceWithContext(ctx, "MatchNotifierSMTP:Notify")
	defer func() { trace.SetError(err); trace.Finish() }()
	trace.SetTag("recipient", recipient)

	message := gomail.NewMessage()
	message.SetHeader("From", n.sender)
	message.SetHeader("To", recipient)
	message.SetHeader("Subject", matchMailSubject)
	message.SetBody("text/plain", fmt.Sprintf(matchMailBody, counterpart))

	return n.dialer.DialAndSend(message)
}
