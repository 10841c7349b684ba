package main

import (
	"context"
	"fmt"

	"github.com/trezcool/gradebook/core/auth"
)

func (cli *commandLine) resetPassword(email, pwd, confirm string) error {
	err := cli.authSvc.ResetPassword(context.Background(), auth.NewPassword{
		Email:           email,
		Password:        pwd,
		PasswordConfirm: confirm,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "Password updated.")
	return nil
}
