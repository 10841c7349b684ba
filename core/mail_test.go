package core

import (
	"strings"
	"testing"
)

func TestEmailMessage_Render(t *testing.T) {
	data := map[string]interface{}{
		"Name":       "David Wilson",
		"Course":     "CS101",
		"Percentage": 67,
		"Minimum":    75,
		"AppName":    "Gradebook",
	}

	tests := []struct {
		name     string
		msg      EmailMessage
		wantText string
		wantHTML string
		wantErr  bool
	}{
		{name: "plain body", msg: EmailMessage{BodyStr: "hi"}, wantText: "hi"},
		{
			name:     "template",
			msg:      EmailMessage{TemplateName: "low_attendance", TemplateData: data},
			wantText: "Your attendance in CS101 is 67%, below the required minimum of 75%.",
			wantHTML: "<strong>CS101</strong>",
		},
		{name: "missing key", msg: EmailMessage{TemplateName: "low_attendance", TemplateData: map[string]interface{}{"Name": "x"}}, wantErr: true},
		{name: "unknown template", msg: EmailMessage{TemplateName: "nope"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.msg
			err := msg.Render()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Render() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !strings.Contains(msg.TextContent, tt.wantText) {
				t.Errorf("TextContent = %q, want it to contain %q", msg.TextContent, tt.wantText)
			}
			if !strings.Contains(msg.HTMLContent, tt.wantHTML) {
				t.Errorf("HTMLContent = %q, want it to contain %q", msg.HTMLContent, tt.wantHTML)
			}
		})
	}
}
