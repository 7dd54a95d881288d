package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"user-service/internal/client/api"
	"user-service/internal/common"
)

type App struct {
	api    *api.Client
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(apiClient *api.Client, in io.Reader, out io.Writer) *App {
	return &App{
		api:    apiClient,
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Run dispatches a single command. Read commands talk to the service
// directly; mutating commands authenticate first and use the fresh token.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return errors.New("no command given")
	}

	cmd, rest := args[0], args[1:]

	switch cmd {
	case "login":
		return a.login(ctx)
	case "verify":
		if len(rest) != 1 {
			return errors.New("usage: verify <token>")
		}
		return a.verify(ctx, rest[0])
	case "list":
		return a.list(ctx)
	case "get":
		if len(rest) != 1 {
			return errors.New("usage: get <id>")
		}
		return a.get(ctx, rest[0])
	case "create":
		if len(rest) != 2 {
			return errors.New("usage: create <name> <email>")
		}
		return a.create(ctx, rest[0], rest[1])
	case "update":
		if len(rest) < 2 {
			return errors.New("usage: update <id> name=<value> email=<value>")
		}
		return a.update(ctx, rest[0], rest[1:])
	case "delete":
		if len(rest) != 1 {
			return errors.New("usage: delete <id>")
		}
		return a.delete(ctx, rest[0])
	case "help":
		a.usage()
		return nil
	default:
		a.usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *App) usage() {
	fmt.Fprintln(a.out, "Commands:")
	fmt.Fprintln(a.out, "  login                                 obtain a token")
	fmt.Fprintln(a.out, "  verify <token>                        check a token")
	fmt.Fprintln(a.out, "  list                                  list users")
	fmt.Fprintln(a.out, "  get <id>                              show one user")
	fmt.Fprintln(a.out, "  create <name> <email>                 create a user (asks for credentials)")
	fmt.Fprintln(a.out, "  update <id> name=<v> email=<v>        update a user (asks for credentials)")
	fmt.Fprintln(a.out, "  delete <id>                           delete a user (asks for credentials)")
}

// authenticate prompts for admin credentials and logs in.
func (a *App) authenticate(ctx context.Context) (string, error) {
	username, err := GetSimpleText(a.reader, "Enter admin username", a.out)
	if err != nil {
		return "", err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(password)

	result, err := a.api.Login(ctx, username, string(password))
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			return "", errors.New("invalid credentials")
		}
		return "", err
	}

	return result.Token, nil
}

func (a *App) login(ctx context.Context) error {
	token, err := a.authenticate(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, token)
	return nil
}

func (a *App) verify(ctx context.Context, token string) error {
	info, err := a.api.Verify(ctx, token)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			return errors.New("token is invalid or expired")
		}
		return err
	}
	fmt.Fprintf(a.out, "valid token for %q, expires at unix %d\n", info.Username, info.Exp)
	return nil
}

func (a *App) list(ctx context.Context) error {
	list, err := a.api.ListUsers(ctx)
	if err != nil {
		return err
	}
	for _, user := range list {
		a.printUser(&user)
	}
	fmt.Fprintf(a.out, "%d user(s)\n", len(list))
	return nil
}

func (a *App) get(ctx context.Context, id string) error {
	user, err := a.api.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return errors.New("user not found")
		}
		return err
	}
	a.printUser(user)
	return nil
}

func (a *App) create(ctx context.Context, name, email string) error {
	token, err := a.authenticate(ctx)
	if err != nil {
		return err
	}

	user, err := a.api.CreateUser(ctx, token, name, email)
	if err != nil {
		return err
	}
	a.printUser(user)
	return nil
}

func (a *App) update(ctx context.Context, id string, fields []string) error {
	var patch api.UserPatch
	for _, field := range fields {
		key, value, found := strings.Cut(field, "=")
		if !found {
			return fmt.Errorf("expected field=value, got %q", field)
		}
		v := value
		switch key {
		case "name":
			patch.Name = &v
		case "email":
			patch.Email = &v
		default:
			return fmt.Errorf("unknown field %q", key)
		}
	}

	token, err := a.authenticate(ctx)
	if err != nil {
		return err
	}

	user, err := a.api.UpdateUser(ctx, token, id, patch)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return errors.New("user not found")
		}
		return err
	}
	a.printUser(user)
	return nil
}

func (a *App) delete(ctx context.Context, id string) error {
	token, err := a.authenticate(ctx)
	if err != nil {
		return err
	}

	if err := a.api.DeleteUser(ctx, token, id); err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return errors.New("user not found")
		}
		return err
	}
	fmt.Fprintln(a.out, "deleted")
	return nil
}

func (a *App) printUser(user *api.User) {
	fmt.Fprintf(a.out, "%s\t%s\t%s\t%s\n", user.ID, user.Name, user.Email, user.CreatedAt.Format("2006-01-02 15:04:05"))
}
