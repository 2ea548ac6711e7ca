package notifications

import (
	"bytes"
	"fmt"
	"html/template"

	"corus-backend/internal/models"
)

var consultationAckTemplate = template.Must(template.New("consultationAck").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; color: #1f2937; margin: 0; padding: 24px;">
    <div style="max-width: 560px; margin: 0 auto;">
      <h2 style="color: #111827;">Thanks for reaching out, {{.Name}}</h2>
      <p>We received your consultation request and a member of our team will get back to you within one business day.</p>
      <table style="border-collapse: collapse; width: 100%; margin: 16px 0;">
        {{if .ProjectType}}
        <tr>
          <td style="padding: 8px 12px; background: #f3f4f6; font-weight: bold;">Project type</td>
          <td style="padding: 8px 12px;">{{.ProjectType}}</td>
        </tr>
        {{end}}
        {{if .Budget}}
        <tr>
          <td style="padding: 8px 12px; background: #f3f4f6; font-weight: bold;">Budget</td>
          <td style="padding: 8px 12px;">{{.Budget}}</td>
        </tr>
        {{end}}
        {{if .Timeline}}
        <tr>
          <td style="padding: 8px 12px; background: #f3f4f6; font-weight: bold;">Timeline</td>
          <td style="padding: 8px 12px;">{{.Timeline}}</td>
        </tr>
        {{end}}
      </table>
      <p style="color: #4b5563;">Your message: {{.Message}}</p>
      <p style="margin-top: 24px;">Corus Initiative</p>
    </div>
  </body>
</html>`))

var consultationAlertTemplate = template.Must(template.New("consultationAlert").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; color: #1f2937; margin: 0; padding: 24px;">
    <div style="max-width: 560px; margin: 0 auto;">
      <h2 style="color: #111827;">New consultation request</h2>
      <table style="border-collapse: collapse; width: 100%; margin: 16px 0;">
        <tr>
          <td style="padding: 8px 12px; background: #f3f4f6; font-weight: bold;">Name</td>
          <td style="padding: 8px 12px;">{{.Name}}</td>
        </tr>
        <tr>
          <td style="padding: 8px 12px; background: #f3f4f6; font-weight: bold;">Email</td>
          <td style="padding: 8px 12px;">{{.Email}}</td>
        </tr>
        {{if .Phone}}
        <tr>
          <td style="padding: 8px 12px; background: #f3f4f6; font-weight: bold;">Phone</td>
          <td style="padding: 8px 12px;">{{.Phone}}</td>
        </tr>
        {{end}}
        {{if .Company}}
        <tr>
          <td style="padding: 8px 12px; background: #f3f4f6; font-weight: bold;">Company</td>
          <td style="padding: 8px 12px;">{{.Company}}</td>
        </tr>
        {{end}}
        {{if .ProjectType}}
        <tr>
          <td style="padding: 8px 12px; background: #f3f4f6; font-weight: bold;">Project type</td>
          <td style="padding: 8px 12px;">{{.ProjectType}}</td>
        </tr>
        {{end}}
        {{if .Budget}}
        <tr>
          <td style="padding: 8px 12px; background: #f3f4f6; font-weight: bold;">Budget</td>
          <td style="padding: 8px 12px;">{{.Budget}}</td>
        </tr>
        {{end}}
        {{if .Timeline}}
        <tr>
          <td style="padding: 8px 12px; background: #f3f4f6; font-weight: bold;">Timeline</td>
          <td style="padding: 8px 12px;">{{.Timeline}}</td>
        </tr>
        {{end}}
      </table>
      <p style="color: #4b5563;">{{.Message}}</p>
    </div>
  </body>
</html>`))

func buildConsultationAcknowledgementHTML(item models.Consultation) (string, error) {
	var buf bytes.Buffer
	if err := consultationAckTemplate.Execute(&buf, item); err != nil {
		return "", fmt.Errorf("render consultation acknowledgement email: %w", err)
	}
	return buf.String(), nil
}

func buildConsultationAlertHTML(item models.Consultation) (string, error) {
	var buf bytes.Buffer
	if err := consultationAlertTemplate.Execute(&buf, item); err != nil {
		return "", fmt.Errorf("render consultation alert email: %w", err)
	}
	return buf.String(), nil
}
