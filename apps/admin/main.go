package main

import (
	"context"
	"log"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/attendance"
	"github.com/trezcool/gradebook/core/auth"
	"github.com/trezcool/gradebook/core/grade"
	"github.com/trezcool/gradebook/core/school"
	emailsvc "github.com/trezcool/gradebook/services/email"
	logsvc "github.com/trezcool/gradebook/services/logger"
	"github.com/trezcool/gradebook/storage/database"
	"github.com/trezcool/gradebook/storage/document"
)

func main() {
	conf := core.NewConfig()

	std := log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	logger := logsvc.NewRollbarLogger(std, conf)

	// set up storage
	backend, closer, err := database.Open(context.Background(), conf)
	if err != nil {
		logger.Fatal("setting up storage", err)
	}
	store := document.NewStore(backend, logger, document.WithKey(conf.Storage.Key))

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	school.InitValidators(validate, translator)
	auth.InitValidators(validate, translator)

	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(log.New(os.Stdout, "", 0), logger, conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(logger, conf)
	}

	// start CLI
	cli := commandLine{
		conf:     conf,
		out:      os.Stdout,
		store:    store,
		authSvc:  auth.NewService(store, logger, validate),
		attSvc:   attendance.NewService(store, logger, conf.Attendance.Minimum),
		gradeSvc: grade.NewService(store, logger, validate, conf.Grading.Passing),
		mailSvc:  mailSvc,
	}
	err = cli.run(os.Args)

	if cErr := closer.Close(); cErr != nil {
		std.Printf("closing storage: %v\n", cErr)
	}
	logger.Close()

	if err != nil {
		if err != errHelp {
			if vErrs, ok := err.(validator.ValidationErrors); ok {
				for fld, msg := range core.TranslateErrors(vErrs, translator) {
					std.Printf("%s: %s\n", fld, msg)
				}
			} else if vErr, ok := core.AsValidationError(err); ok && len(vErr.Fields) > 0 {
				for _, f := range vErr.Fields {
					std.Printf("%s: %s\n", f.Field, f.Error)
				}
			} else {
				std.Printf("\nerror: %s\n", err)
			}
		}
		os.Exit(1)
	}
}
