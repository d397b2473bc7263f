package notification

import (
	"bytes"
	"context"
	"fmt"
	"net/smtp"
	"text/template"

	"github.com/jordan-wright/email"
)

const orderConfirmationTemplateID = "order_confirmation"

// EmailNotifier 寄送顧客訂單確認信
// 模板以template id選取  參數用flat map帶入
type EmailNotifier struct {
	senderName string
	from       string
	password   string
	smtpHost   string
	smtpPort   string
	templates  map[string]*template.Template
}

func NewEmailNotifier(senderName, from, password, smtpHost, smtpPort string) *EmailNotifier {
	return &EmailNotifier{
		senderName: senderName,
		from:       from,
		password:   password,
		smtpHost:   smtpHost,
		smtpPort:   smtpPort,
		templates: map[string]*template.Template{
			orderConfirmationTemplateID: template.Must(template.New(orderConfirmationTemplateID).Parse(orderConfirmationTemplate)),
		},
	}
}

var _ Notifier = (*EmailNotifier)(nil)

func (m *EmailNotifier) Name() string {
	return "email"
}

func (m *EmailNotifier) NotifyOrderPlaced(ctx context.Context, details *OrderDetails) error {
	params := map[string]any{
		"CustomerName":  details.CustomerName,
		"OrderID":       details.OrderID,
		"PaymentMethod": details.PaymentMethod,
		"Subtotal":      details.Subtotal.StringFixed(2),
		"Discount":      details.Discount.StringFixed(2),
		"Total":         details.Total.StringFixed(2),
		"CouponCode":    details.CouponCode,
		"SenderName":    m.senderName,
		"Items":         details.Items,
	}

	html, err := m.renderTemplate(orderConfirmationTemplateID, params)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Order confirmed - %s", details.OrderID)
	return m.send(subject, html, details.CustomerEmail)
}

func (m *EmailNotifier) renderTemplate(templateID string, params map[string]any) (string, error) {
	tmpl, ok := m.templates[templateID]
	if !ok {
		return "", fmt.Errorf("unknown email template: %s", templateID)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params); err != nil {
		return "", fmt.Errorf("failed to execute email template %s: %w", templateID, err)
	}
	return buf.String(), nil
}

func (m *EmailNotifier) send(subject, html, to string) error {
	e := email.NewEmail()
	e.From = fmt.Sprintf("%s <%s>", m.senderName, m.from)
	e.To = []string{to}
	e.Subject = subject
	e.HTML = []byte(html)

	auth := smtp.PlainAuth("", m.from, m.password, m.smtpHost)
	return e.Send(fmt.Sprintf("%s:%s", m.smtpHost, m.smtpPort), auth)
}

const orderConfirmationTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Order Confirmation</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #e85d75; color: white; padding: 20px; text-align: center; }
        .content { padding: 30px; background-color: #f9f9f9; }
        .row { display: flex; justify-content: space-between; }
        .total { font-weight: bold; font-size: 18px; }
        .footer { padding: 20px; text-align: center; font-size: 12px; color: #666; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Thank you for your order!</h1>
        </div>

        <div class="content">
            <p>Hi {{.CustomerName}},</p>
            <p>We have received your order <b>{{.OrderID}}</b> and will start working on it shortly.</p>

            <table width="100%" cellpadding="6">
                {{range .Items}}
                <tr>
                    <td>{{.Quantity}} x {{.ProductName}} ({{.SelectedColor}}){{if .CustomName}} - "{{.CustomName}}"{{end}}</td>
                    <td align="right">Rs.{{.UnitPrice}}</td>
                </tr>
                {{end}}
            </table>

            <hr>
            <p>Subtotal: Rs.{{.Subtotal}}</p>
            {{if .CouponCode}}<p>Discount ({{.CouponCode}}): -Rs.{{.Discount}}</p>{{end}}
            <p class="total">Total: Rs.{{.Total}}</p>
            <p>Payment method: {{.PaymentMethod}}</p>
        </div>

        <div class="footer">
            <p>This email was sent automatically by {{.SenderName}}, please do not reply.</p>
        </div>
    </div>
</body>
</html>
`
