package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/zkauth/internal/common"
)

func (a *App) Register(ctx context.Context) {

	userName, err := GetSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	defer WipeByteArray(password)

	if err := a.auth.Register(ctx, userName, password); err != nil {
		if errors.Is(err, common.ErrAlreadyRegistered) {
			fmt.Fprintln(a.out, "User is already registered")
			return
		}
		fmt.Fprintf(a.out, "Registration unsuccessful: %v\n", err)
		return
	}

	fmt.Fprintln(a.out, "Registration successful")
}
