package notifications

import (
	"bytes"
	"fmt"
	"html/template"

	"corus-backend/internal/models"
)

var scheduleReceivedTemplate = template.Must(template.New("scheduleReceived").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; color: #1f2937; margin: 0; padding: 24px;">
    <div style="max-width: 560px; margin: 0 auto;">
      <h2 style="color: #111827;">Thanks, {{.Name}} — we got your request</h2>
      <p>Your meeting request is in and our team is looking at it now. We will send a confirmation shortly.</p>
      <table style="border-collapse: collapse; width: 100%; margin: 16px 0;">
        <tr>
          <td style="padding: 8px 12px; background: #f3f4f6; font-weight: bold;">Meeting type</td>
          <td style="padding: 8px 12px;">{{.MeetingType}}</td>
        </tr>
        <tr>
          <td style="padding: 8px 12px; background: #f3f4f6; font-weight: bold;">Date</td>
          <td style="padding: 8px 12px;">{{.PreferredDate}}</td>
        </tr>
        <tr>
          <td style="padding: 8px 12px; background: #f3f4f6; font-weight: bold;">Time</td>
          <td style="padding: 8px 12px;">{{.PreferredTime}} ({{.Timezone}})</td>
        </tr>
      </table>
      {{if .Message}}<p style="color: #4b5563;">Your note: {{.Message}}</p>{{end}}
      <p>If the slot no longer works for you, just reply to this email.</p>
      <p style="margin-top: 24px;">Corus Initiative</p>
    </div>
  </body>
</html>`))

var scheduleConfirmedTemplate = template.Must(template.New("scheduleConfirmed").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; color: #1f2937; margin: 0; padding: 24px;">
    <div style="max-width: 560px; margin: 0 auto;">
      <h2 style="color: #111827;">Your meeting is confirmed</h2>
      <p>Hi {{.Name}}, your {{.MeetingType}} on <strong>{{.PreferredDate}}</strong> at <strong>{{.PreferredTime}} ({{.Timezone}})</strong> is confirmed.</p>
      {{if .MeetingLink}}
      <p style="margin: 24px 0;">
        <a href="{{.MeetingLink}}" style="background: #2563eb; color: #ffffff; padding: 12px 20px; border-radius: 6px; text-decoration: none;">Join the meeting</a>
      </p>
      {{end}}
      {{if .AdminNotes}}<p style="color: #4b5563;">{{.AdminNotes}}</p>{{end}}
      <p>See you there.</p>
      <p style="margin-top: 24px;">Corus Initiative</p>
    </div>
  </body>
</html>`))

func buildScheduleReceivedHTML(item models.Schedule) (string, error) {
	var buf bytes.Buffer
	if err := scheduleReceivedTemplate.Execute(&buf, item); err != nil {
		return "", fmt.Errorf("render schedule received email: %w", err)
	}
	return buf.String(), nil
}

func buildScheduleConfirmedHTML(item models.Schedule) (string, error) {
	var buf bytes.Buffer
	if err := scheduleConfirmedTemplate.Execute(&buf, item); err != nil {
		return "", fmt.Errorf("render schedule confirmed email: %w", err)
	}
	return buf.String(), nil
}
