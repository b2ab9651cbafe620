package notify

import (
	"fmt"
	"strings"
	"time"

	"boutique/internal/config"
	"boutique/internal/usecase"

	"gopkg.in/gomail.v2"
)

// SMTPで注文通知を送る。usecase.OrderMailerの実装。
type OrderEmailNotifier struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

// NewOrderEmailNotifierはSMTP_HOSTが未設定ならnilを返す（通知なしで動かす）。
func NewOrderEmailNotifier(cfg config.Config) *OrderEmailNotifier {
	if cfg.SMTPHost == "" || cfg.NotificationEmail == "" {
		return nil
	}
	return &OrderEmailNotifier{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.SMTPUser,
		to:     cfg.NotificationEmail,
	}
}

func (n *OrderEmailNotifier) SendOrderNotification(o usecase.OrderNotification) error {
	var lines []string
	for _, item := range o.Items {
		lines = append(lines, fmt.Sprintf("%dx %s - %s MAD each",
			item.Quantity, item.ProductName, item.Price.StringFixed(2)))
	}

	body := fmt.Sprintf(`New Order Received!

Order ID: %s
Date: %s

Customer Information:
Name: %s
Email: %s
Phone: %s
City: %s
Address: %s

Order Items:
%s

Total: %s MAD

Please log in to the admin dashboard to process this order.
`,
		o.OrderID,
		time.Now().Format(time.RFC1123),
		o.CustomerName,
		o.Email,
		o.Phone,
		o.City,
		o.Address,
		strings.Join(lines, "\n"),
		o.Total.StringFixed(2),
	)

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", n.to)
	m.SetHeader("Subject", fmt.Sprintf("New Order #%s", o.OrderID))
	m.SetBody("text/plain", body)

	return n.dialer.DialAndSend(m)
}
