// Package cli implements the interactive client: a small prompt loop
// for enrolling and logging in against a zkauth server.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/zkauth/internal/client/client"
	"github.com/dmitrijs2005/zkauth/internal/client/config"
	"github.com/dmitrijs2005/zkauth/internal/client/services"
)

// authService is the protocol flow the CLI drives.
type authService interface {
	Register(ctx context.Context, user string, password []byte) error
	Login(ctx context.Context, user string, password []byte) (string, error)
}

type App struct {
	config       *config.Config
	auth         authService
	sessionToken string
	reader       *bufio.Reader
	out          io.Writer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	apiClient, err := client.NewAuthClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	// the group must come from the server: both sides have to share the
	// exact same beta, and the server derives a fresh one at startup
	params, err := apiClient.GetParams(ctx)
	if err != nil {
		return nil, err
	}

	as := services.NewAuthService(apiClient, params)

	return &App{
		config: c,
		auth:   as,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Run drives the prompt loop until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	for {
		cmd, err := GetSimpleText(a.reader, "Enter command (register / login / exit)", a.out)
		if err != nil {
			return
		}

		switch cmd {
		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "exit":
			return
		case "":
		default:
			fmt.Fprintf(a.out, "unknown command: %s\n", cmd)
		}
	}
}
