package mailer

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"ai-datachat-be/pkg/store"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

// ProviderConfig is one resolvable SMTP configuration.
type ProviderConfig struct {
	Host       string `json:"host"`
	Port       int    `json:"port"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	Sender     string `json:"sender"`
	SenderName string `json:"sender_name"`
}

// SendRequest is a single outbound message.
type SendRequest struct {
	To       string
	Subject  string
	Text     string
	HTML     string
	Provider *ProviderConfig // optional per-call override
}

// ReminderInput carries everything needed for one invoice reminder.
type ReminderInput struct {
	RecipientEmail string
	RecipientName  string
	InvoiceNumber  string
	AmountDue      string
	DueDate        string
	Provider       *ProviderConfig
}

// IEmailService sends mail through the SMTP transport. Transport failures
// are wrapped into the outcome; the returned error is reserved for client
// errors (missing configuration), where no dial is attempted.
type IEmailService interface {
	Send(req SendRequest) (store.EmailSendOutcome, error)
	SendInvoiceReminder(in ReminderInput) (store.EmailSendOutcome, error)
}

type emailService struct {
	defaults *ProviderConfig // singleton config from bootstrap, may be nil
}

func NewEmailService(defaults *ProviderConfig) IEmailService {
	if defaults != nil && defaults.Host == "" {
		defaults = nil
	}
	return &emailService{defaults: defaults}
}

// resolveConfig applies the precedence: per-call override, then the
// initialized singleton, then environment variables.
func (s *emailService) resolveConfig(override *ProviderConfig) (*ProviderConfig, error) {
	if override != nil && override.Host != "" {
		return fillDefaults(override), validateConfig(override)
	}
	if s.defaults != nil {
		return fillDefaults(s.defaults), validateConfig(s.defaults)
	}

	env := &ProviderConfig{
		Host:       os.Getenv("SMTP_HOST"),
		Username:   os.Getenv("SMTP_EMAIL"),
		Password:   os.Getenv("SMTP_PASSWORD"),
		Sender:     os.Getenv("SMTP_EMAIL"),
		SenderName: os.Getenv("SMTP_SENDER_NAME"),
	}
	if port, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil {
		env.Port = port
	}
	return fillDefaults(env), validateConfig(env)
}

func fillDefaults(cfg *ProviderConfig) *ProviderConfig {
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	if cfg.Sender == "" {
		cfg.Sender = cfg.Username
	}
	return cfg
}

func validateConfig(cfg *ProviderConfig) error {
	var missing []string
	if cfg.Host == "" {
		missing = append(missing, "host")
	}
	if cfg.Username == "" {
		missing = append(missing, "username")
	}
	if cfg.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return fmt.Errorf("email provider not configured, missing: %s", strings.Join(missing, ", "))
	}
	return nil
}

func (s *emailService) Send(req SendRequest) (store.EmailSendOutcome, error) {
	cfg, err := s.resolveConfig(req.Provider)
	if err != nil {
		return store.EmailSendOutcome{}, err
	}

	m := gomail.NewMessage()
	from := cfg.Sender
	if cfg.SenderName != "" {
		from = m.FormatAddress(cfg.Sender, cfg.SenderName)
	}
	m.SetHeader("From", from)
	m.SetHeader("To", req.To)
	m.SetHeader("Subject", req.Subject)

	switch {
	case req.HTML != "" && req.Text != "":
		m.SetBody("text/plain", req.Text)
		m.AddAlternative("text/html", req.HTML)
	case req.HTML != "":
		m.SetBody("text/html", req.HTML)
	default:
		m.SetBody("text/plain", req.Text)
	}

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return store.EmailSendOutcome{
			Success:   false,
			Error:     err.Error(),
			Recipient: req.To,
		}, nil
	}

	return store.EmailSendOutcome{
		Success:   true,
		MessageId: uuid.NewString(),
		Recipient: req.To,
	}, nil
}

func (s *emailService) SendInvoiceReminder(in ReminderInput) (store.EmailSendOutcome, error) {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Payment Reminder</h2>
			<p>Dear %s,</p>
			<p>This is a friendly reminder that invoice <strong>%s</strong> is due.</p>
			<table style="margin: 16px 0;">
				<tr><td style="padding-right: 12px;"><strong>Amount due:</strong></td><td>%s</td></tr>
				<tr><td style="padding-right: 12px;"><strong>Due date:</strong></td><td>%s</td></tr>
			</table>
			<p>If you have already made this payment, please disregard this message.</p>
			<p>Thank you.</p>
		</div>
	`, in.RecipientName, in.InvoiceNumber, in.AmountDue, in.DueDate)

	return s.Send(SendRequest{
		To:       in.RecipientEmail,
		Subject:  fmt.Sprintf("Payment Reminder: Invoice %s", in.InvoiceNumber),
		HTML:     body,
		Provider: in.Provider,
	})
}
