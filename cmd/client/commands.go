// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/MKhiriev/restful-users/internal/adapter"
	"github.com/MKhiriev/restful-users/models"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errMissingUserID  = errors.New("a numeric user id is required")
)

// run executes command against api and prints its result to out as JSON.
// Export writes raw CSV.
func run(ctx context.Context, api adapter.UsersAPI, command string, args []string, out io.Writer) error {
	switch command {
	case "version":
		info, err := api.Version(ctx)
		if err != nil {
			return err
		}
		return printJSON(out, info)

	case "register":
		fs := flag.NewFlagSet(command, flag.ContinueOnError)
		req := models.RegisterRequest{}
		fs.StringVar(&req.Name, "name", "", "display name")
		fs.StringVar(&req.Email, "email", "", "email address")
		fs.StringVar(&req.Password, "password", "", "password")
		if err := fs.Parse(args); err != nil {
			return err
		}

		user, err := api.Register(ctx, req)
		if err != nil {
			return describe(err)
		}
		return printJSON(out, user)

	case "login":
		fs := flag.NewFlagSet(command, flag.ContinueOnError)
		req := models.LoginRequest{}
		fs.StringVar(&req.Email, "email", "", "email address")
		fs.StringVar(&req.Password, "password", "", "password")
		fs.StringVar(&req.DeviceName, "device", hostname(), "device name the token is issued for")
		if err := fs.Parse(args); err != nil {
			return err
		}

		token, err := api.Login(ctx, req)
		if err != nil {
			return describe(err)
		}
		return printJSON(out, map[string]string{"token": token, "token_type": models.TokenType})

	case "me":
		user, err := api.CurrentUser(ctx)
		if err != nil {
			return describe(err)
		}
		return printJSON(out, user)

	case "list":
		fs := flag.NewFlagSet(command, flag.ContinueOnError)
		page := fs.Int("page", 1, "page number")
		perPage := fs.Int("per-page", 15, "users per page")
		if err := fs.Parse(args); err != nil {
			return err
		}

		users, meta, err := api.ListUsers(ctx, *page, *perPage)
		if err != nil {
			return describe(err)
		}
		return printJSON(out, map[string]any{"data": users, "paginator": meta})

	case "get":
		userID, err := parseUserID(args)
		if err != nil {
			return err
		}

		user, err := api.GetUser(ctx, userID)
		if err != nil {
			return describe(err)
		}
		return printJSON(out, user)

	case "delete":
		userID, err := parseUserID(args)
		if err != nil {
			return err
		}

		if err = api.DeleteUser(ctx, userID); err != nil {
			return describe(err)
		}
		return printJSON(out, map[string]string{"message": "Resource deleted successfully"})

	case "export":
		fs := flag.NewFlagSet(command, flag.ContinueOnError)
		file := fs.String("o", "", "write the CSV to this file instead of stdout")
		if err := fs.Parse(args); err != nil {
			return err
		}

		content, err := api.ExportUsers(ctx)
		if err != nil {
			return describe(err)
		}
		if *file != "" {
			return os.WriteFile(*file, content, 0o600)
		}
		_, err = out.Write(content)
		return err

	default:
		return fmt.Errorf("%w: %q", errUnknownCommand, command)
	}
}

func parseUserID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, errMissingUserID
	}
	userID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || userID <= 0 {
		return 0, errMissingUserID
	}
	return userID, nil
}

// describe appends the field errors of a validation failure to its message.
func describe(err error) error {
	var apiErr *adapter.APIError
	if !errors.As(err, &apiErr) || len(apiErr.Errors) == 0 {
		return err
	}

	fields, _ := json.Marshal(apiErr.Errors)
	return fmt.Errorf("%w %s", err, fields)
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func hostname() string {
	name, err := os.Hostname()
	if err != nil || name == "" {
		return "cli"
	}
	return name
}
