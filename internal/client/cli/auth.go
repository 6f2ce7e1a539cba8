package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/ivlasenko/bookvault/internal/common"
)

func (a *App) SignUp(ctx context.Context) {
	userName, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	if err := a.api.SignUp(ctx, userName, password); err != nil {
		if errors.Is(err, common.ErrUsernameTaken) {
			fmt.Fprintln(a.out, "Username already exists, pick another one")
			return
		}
		fmt.Fprintf(a.out, "Signup unsuccessful: %v\n", err)
		return
	}

	fmt.Fprintf(a.out, "Registered %s, you can log in now\n", userName)
}

func (a *App) Login(ctx context.Context) {
	userName, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	if err := a.api.Login(ctx, userName, password); err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			fmt.Fprintln(a.out, "Invalid username or password")
			return
		}
		fmt.Fprintf(a.out, "Login unsuccessful: %v\n", err)
		return
	}

	a.userName = userName
	fmt.Fprintln(a.out, "Login successful")
}

func (a *App) ChangePassword(ctx context.Context) {
	userName := a.userName
	if userName == "" {
		var err error
		userName, err = GetSimpleText(a.reader, "Enter username", a.out)
		if err != nil {
			fmt.Fprintf(a.out, "error: %v\n", err)
			return
		}
	}

	oldPassword, err := GetPassword("Enter current password", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	newPassword, err := GetPassword("Enter new password", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	if err := a.api.ChangePassword(ctx, userName, oldPassword, newPassword); err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			fmt.Fprintln(a.out, "Invalid username or password")
			return
		}
		fmt.Fprintf(a.out, "Password change unsuccessful: %v\n", err)
		return
	}

	fmt.Fprintln(a.out, "Password changed")
}
