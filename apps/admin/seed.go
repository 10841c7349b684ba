package main

import (
	"context"
	"fmt"
)

func (cli *commandLine) seed(force bool) error {
	ctx := context.Background()
	if force {
		if err := cli.store.Reset(ctx); err != nil {
			return err
		}
		fmt.Fprintln(cli.out, "Default dataset stored.")
		return nil
	}

	seeded, err := cli.store.Initialize(ctx)
	if err != nil {
		return err
	}
	if seeded {
		fmt.Fprintln(cli.out, "Default dataset stored.")
	} else {
		fmt.Fprintln(cli.out, "Data already stored, nothing to do (use -force to overwrite).")
	}
	return nil
}
