package libs

import (
	"errors"
	"fmt"
	"html"
	"log"
	"strings"

	"frydays/config"

	"gopkg.in/gomail.v2"
)

var ErrMailerNotConfigured = errors.New("SMTP configuration missing")

const contactSubjectPrefix = "Contato Fryday's - "

// ContactMessage is a contact-form submission. Phone is optional.
type ContactMessage struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

type Mailer interface {
	SendContactEmail(msg ContactMessage) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

// NewMailer returns an SMTP mailer when SMTP is configured. Outside
// production a missing configuration falls back to a mailer that only logs.
func NewMailer(cfg *config.Config) (Mailer, error) {
	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		if cfg.IsProduction() {
			return nil, ErrMailerNotConfigured
		}
		log.Println("SMTP not configured, contact emails will only be logged")
		return LogMailer{}, nil
	}

	from := cfg.SMTPFrom
	if from == "" {
		from = cfg.SMTPUser
	}
	to := cfg.ContactEmail
	if to == "" {
		to = from
	}

	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   from,
		to:     to,
	}, nil
}

func (s *SMTPMailer) SendContactEmail(msg ContactMessage) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from, msg.Name)
	m.SetHeader("To", s.to)
	m.SetHeader("Reply-To", msg.Email)
	m.SetHeader("Subject", ContactSubject(msg.Subject))
	m.SetBody("text/html", ContactBody(msg))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// LogMailer writes contact messages to the log instead of sending them.
type LogMailer struct{}

func (LogMailer) SendContactEmail(msg ContactMessage) error {
	log.Printf("[mailer] contact from %s <%s>: %s", msg.Name, msg.Email, ContactSubject(msg.Subject))
	return nil
}

func ContactSubject(subject string) string {
	return contactSubjectPrefix + subject
}

// ContactBody renders the HTML body. Every user supplied field is escaped;
// newlines in the message become <br>.
func ContactBody(msg ContactMessage) string {
	name := html.EscapeString(msg.Name)
	email := html.EscapeString(msg.Email)
	subject := html.EscapeString(msg.Subject)
	message := strings.ReplaceAll(html.EscapeString(msg.Message), "\n", "<br>")

	phone := ""
	if strings.TrimSpace(msg.Phone) != "" {
		phone = fmt.Sprintf("<p><strong>Telefone:</strong> %s</p>", html.EscapeString(msg.Phone))
	}

	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; line-height: 1.6;">
    <h2 style="color: #c0392b;">Nova Mensagem do Formulário de Contato Fryday's</h2>
    <p>Você recebeu uma nova mensagem através do site.</p>
    <hr>
    <p><strong>Nome:</strong> %s</p>
    <p><strong>Email:</strong> <a href="mailto:%s">%s</a></p>
    %s
    <p><strong>Assunto:</strong> %s</p>
    <h3 style="margin-top: 20px;">Mensagem:</h3>
    <div style="background-color: #f4f4f4; padding: 15px; border-radius: 5px; border-left: 4px solid #c0392b;">
        <p style="margin: 0;">%s</p>
    </div>
    <hr>
    <p style="font-size: 0.9em; color: #777;">E-mail enviado automaticamente pelo site Fryday's.</p>
</div>
`, name, email, email, phone, subject, message)
}
