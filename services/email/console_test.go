package emailsvc

import (
	"bytes"
	"log"
	"net/mail"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/tests"
)

func TestConsoleService(t *testing.T) {
	var buf bytes.Buffer
	conf := &core.Config{AppName: "Gradebook"}
	svc := NewConsoleService(log.New(&buf, "", 0), new(testutil.Logger), conf)

	svc.SendMessages(
		&core.EmailMessage{To: []mail.Address{{Name: "David", Address: "david.wilson@student.edu"}}, Subject: "Hi", BodyStr: "hello there"},
		&core.EmailMessage{Subject: "nobody", BodyStr: "dropped"},
	)
	svc.Wait()

	out := buf.String()
	assert.Contains(t, out, "Subject: [Gradebook] Hi")
	assert.Contains(t, out, `To: "David" <david.wilson@student.edu>`)
	assert.Contains(t, out, "hello there")
	assert.NotContains(t, out, "dropped")
}

func TestConsoleServiceMock(t *testing.T) {
	logger := new(testutil.Logger)
	svc := NewConsoleServiceMock(logger, &core.Config{AppName: "Gradebook"})
	to := []mail.Address{{Address: "emma.davis@student.edu"}}

	svc.SendMessages(
		&core.EmailMessage{
			To:           to,
			Subject:      "Low attendance",
			TemplateName: "low_attendance",
			TemplateData: map[string]interface{}{"Name": "Emma", "Course": "CS101", "Percentage": 67, "Minimum": 75, "AppName": "Gradebook"},
		},
		&core.EmailMessage{To: to, Subject: "empty"},
		&core.EmailMessage{To: to, TemplateName: "low_attendance", TemplateData: map[string]interface{}{}},
	)

	sent := svc.SentMessages()
	if assert.Len(t, sent, 1) {
		assert.True(t, strings.Contains(sent[0].TextContent, "Hello Emma"))
		assert.NotEmpty(t, sent[0].HTMLContent)
	}
	assert.Equal(t, 1, logger.Count("error"))
}
