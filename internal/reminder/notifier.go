package reminder

import (
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/saulo-duarte/menteviva-api/internal/config"
	"github.com/saulo-duarte/menteviva-api/internal/habit"
	"github.com/saulo-duarte/menteviva-api/internal/user"
	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

type Notifier interface {
	Notify(ctx context.Context, u user.User, h habit.Habit) error
}

// LogNotifier only records the reminder. Used when SMTP is not configured.
type LogNotifier struct{}

func (LogNotifier) Notify(ctx context.Context, u user.User, h habit.Habit) error {
	config.WithContext(ctx).WithFields(logrus.Fields{
		"user_id":  u.ID,
		"habit_id": h.ID,
		"habit":    h.Name,
	}).Info("Reminder due")
	return nil
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type MailNotifier struct {
	cfg    SMTPConfig
	dialer *gomail.Dialer
}

func NewMailNotifier(cfg SMTPConfig) *MailNotifier {
	return &MailNotifier{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

const reminderTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2 style="color: #0d9488;">Hora do seu hábito!</h2>
        <p>Olá, {{.FirstName}}!</p>
        <p>Este é o seu lembrete para <strong>{{.Habit}}</strong>. Cada pequena ação conta.</p>
        <p>Depois, não esqueça de registrar seu check-in no Mente Viva.</p>
    </div>
</body>
</html>
`

var reminderBody = template.Must(template.New("reminder").Parse(reminderTemplate))

func renderReminder(u user.User, h habit.Habit) (string, error) {
	firstName := u.FullName
	if fields := strings.Fields(u.FullName); len(fields) > 0 {
		firstName = fields[0]
	}

	var buf strings.Builder
	if err := reminderBody.Execute(&buf, map[string]string{
		"FirstName": firstName,
		"Habit":     h.Name,
	}); err != nil {
		return "", fmt.Errorf("failed to render reminder: %w", err)
	}
	return buf.String(), nil
}

func (n *MailNotifier) Notify(ctx context.Context, u user.User, h habit.Habit) error {
	body, err := renderReminder(u, h)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.From)
	m.SetHeader("To", u.Email)
	m.SetHeader("Subject", "Lembrete: "+h.Name)
	m.SetBody("text/html", body)

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send reminder email: %w", err)
	}
	return nil
}
