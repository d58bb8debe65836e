package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/zkauth/internal/client/client"
)

func (a *App) Login(ctx context.Context) {

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

	token, err := a.auth.Login(ctx, userName, password)
	if err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			fmt.Fprintln(a.out, "Server unavailable")
			return
		}
		fmt.Fprintf(a.out, "Login unsuccessful: %v\n", err)
		return
	}

	a.sessionToken = token
	fmt.Fprintln(a.out, "Login successful")
}
