package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"syscall"

	"golang.org/x/term"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/attendance"
	"github.com/trezcool/gradebook/core/auth"
	"github.com/trezcool/gradebook/core/grade"
	"github.com/trezcool/gradebook/storage/document"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	conf     *core.Config
	out      io.Writer
	store    *document.Store
	authSvc  *auth.Service
	attSvc   *attendance.Service
	gradeSvc *grade.Service
	mailSvc  core.EmailService
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  seed [-force] - store the default dataset (-force overwrites stored data)")
	fmt.Fprintln(cli.out, "  resetpassword -email EMAIL - reset user's password")
	fmt.Fprintln(cli.out, "  report -student ID - print a student's attendance and grades")
	fmt.Fprintln(cli.out, "  export -what attendance|results [-o FILE] - export records as CSV")
	fmt.Fprintln(cli.out, "  notify [-minimum N] - email students whose attendance is below the minimum")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	seedForce := seedCmd.Bool("force", false, "Overwrite the stored data.")

	resetPasswordCmd := flag.NewFlagSet("resetpassword", flag.ExitOnError)
	resetPasswordEmail := resetPasswordCmd.String("email", "", "The user's email. The password will be prompted next.")

	reportCmd := flag.NewFlagSet("report", flag.ExitOnError)
	reportStudent := reportCmd.String("student", "", "The student ID, eg: S2024001.")

	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	exportWhat := exportCmd.String("what", "", "The records to export: attendance|results.")
	exportOut := exportCmd.String("o", "", "The output file (stdout if empty).")

	notifyCmd := flag.NewFlagSet("notify", flag.ExitOnError)
	notifyMinimum := notifyCmd.Int("minimum", 0, "The minimum attendance percentage (configured minimum if 0).")

	switch args[1] {
	case "seed":
		if err := seedCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.seed(*seedForce)

	case "resetpassword":
		if err := resetPasswordCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *resetPasswordEmail == "" {
			resetPasswordCmd.Usage()
			return errHelp
		}
		fmt.Fprint(cli.out, "Enter password:")
		pwd, err := readPasswordFunc(int(syscall.Stdin))
		fmt.Fprintln(cli.out)
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			resetPasswordCmd.Usage()
			return errHelp
		}
		fmt.Fprint(cli.out, "Confirm password:")
		confirm, err := readPasswordFunc(int(syscall.Stdin))
		fmt.Fprintln(cli.out)
		if err != nil {
			return err
		}
		return cli.resetPassword(*resetPasswordEmail, string(pwd), string(confirm))

	case "report":
		if err := reportCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *reportStudent == "" {
			reportCmd.Usage()
			return errHelp
		}
		return cli.report(*reportStudent)

	case "export":
		if err := exportCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *exportWhat == "" {
			exportCmd.Usage()
			return errHelp
		}
		return cli.export(*exportWhat, *exportOut)

	case "notify":
		if err := notifyCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.notify(*notifyMinimum)

	default:
		cli.printUsage()
		return errHelp
	}
}
