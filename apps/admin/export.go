package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/gradebook/core/school"
)

var errUnknownExport = errors.New("unknown export, expected attendance or results")

// export writes records as CSV to `path`, or to the CLI output if empty.
func (cli *commandLine) export(what, path string) (err error) {
	doc, err := cli.store.Load(context.Background())
	if err != nil {
		return err
	}

	var rows [][]string
	switch what {
	case "attendance":
		rows = attendanceRows(doc, cli.store.Location())
	case "results":
		rows = resultRows(doc)
	default:
		return errUnknownExport
	}

	var out io.Writer = cli.out
	if path != "" {
		f, fErr := os.Create(path)
		if fErr != nil {
			return errors.Wrap(fErr, "creating export file")
		}
		defer func() {
			if cErr := f.Close(); cErr != nil && err == nil {
				err = errors.Wrap(cErr, "closing export file")
			}
		}()
		out = f
	}

	w := csv.NewWriter(out)
	if err := w.WriteAll(rows); err != nil {
		return errors.Wrap(err, "writing csv")
	}
	if path != "" {
		fmt.Fprintf(cli.out, "Exported %d %s records to %s\n", len(rows)-1, what, path)
	}
	return nil
}

func attendanceRows(doc school.Document, loc *time.Location) [][]string {
	rows := [][]string{{"id", "courseId", "studentId", "date", "status"}}
	for _, rec := range doc.Attendance {
		rows = append(rows, []string{
			rec.ID, rec.CourseID, rec.StudentID, school.DayOf(rec.Date, loc), string(rec.Status),
		})
	}
	return rows
}

func resultRows(doc school.Document) [][]string {
	rows := [][]string{{"id", "assessmentId", "studentId", "marksObtained"}}
	for _, res := range doc.Results {
		rows = append(rows, []string{
			res.ID, res.AssessmentID, res.StudentID, strconv.FormatFloat(res.MarksObtained, 'f', -1, 64),
		})
	}
	return rows
}
