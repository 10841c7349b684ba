package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/trezcool/gradebook/core/attendance"
)

func (cli *commandLine) report(studentID string) error {
	ctx := context.Background()

	tr, err := cli.gradeSvc.Transcript(ctx, studentID)
	if err != nil {
		return err
	}
	sum, err := cli.attSvc.Summary(ctx, studentID)
	if err != nil {
		return err
	}
	doc, err := cli.store.Load(ctx)
	if err != nil {
		return err
	}

	stu := tr.Student
	fmt.Fprintf(cli.out, "Student: %s (%s) - %s, year %d\n\n", stu.FullName(), stu.ID, stu.Program, stu.Year)
	fmt.Fprintf(cli.out, "Attendance: %d%% (%d classes: %d present, %d late, %d absent)\n",
		sum.Percentage, sum.Total, sum.Present, sum.Late, sum.Absent)
	fmt.Fprintf(cli.out, "Overall: %d%% (%s, CGPA %s)\n\n", tr.Overall.Percentage, tr.Overall.Grade, tr.Overall.CGPA)

	w := tabwriter.NewWriter(cli.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tCOURSE\tCREDITS\tATTENDANCE\tSCORE\tGRADE\t")
	for _, c := range tr.Courses {
		att := attendance.Percentage(doc, stu.ID, c.CourseID)
		warn := ""
		if cli.attSvc.IsBelowMinimum(att) {
			warn = " (!)"
		}
		score := "-"
		if c.Graded {
			score = fmt.Sprintf("%d%%", c.Percentage)
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d%%%s\t%s\t%s\t\n", c.Code, c.Name, c.Credits, att, warn, score, c.Grade)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(cli.out, "\nGPA: %s\n", tr.GPA)
	return nil
}
