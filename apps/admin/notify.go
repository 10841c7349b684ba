package main

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/trezcool/gradebook/core"
)

type lowAttendanceData struct {
	Name       string
	Course     string
	Percentage int
	Minimum    int
	AppName    string
}

// notify emails every student whose attendance in a course is under `minimum`.
func (cli *commandLine) notify(minimum int) error {
	ctx := context.Background()
	if minimum <= 0 {
		minimum = cli.attSvc.Minimum()
	}

	shortfalls, err := cli.attSvc.BelowMinimum(ctx, minimum)
	if err != nil {
		return err
	}
	doc, err := cli.store.Load(ctx)
	if err != nil {
		return err
	}

	var msgs []*core.EmailMessage
	for _, sf := range shortfalls {
		usr, ok := doc.User(sf.Student.UserID)
		if !ok || usr.Email == "" {
			fmt.Fprintf(cli.out, "Skipping %s: no email address\n", sf.Student.ID)
			continue
		}
		course := sf.Course.Code + " " + sf.Course.Name
		msgs = append(msgs, &core.EmailMessage{
			To:           []mail.Address{{Name: sf.Student.FullName(), Address: usr.Email}},
			Subject:      "Low attendance in " + sf.Course.Code,
			TemplateName: "low_attendance",
			TemplateData: lowAttendanceData{
				Name:       sf.Student.FullName(),
				Course:     course,
				Percentage: sf.Percentage,
				Minimum:    minimum,
				AppName:    cli.conf.AppName,
			},
		})
		fmt.Fprintf(cli.out, "%s\t%s\t%d%%\n", sf.Student.ID, sf.Course.Code, sf.Percentage)
	}

	cli.mailSvc.SendMessages(msgs...)
	cli.mailSvc.Wait()

	fmt.Fprintf(cli.out, "%d student(s) notified.\n", len(msgs))
	return nil
}
