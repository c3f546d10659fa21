// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/restful-users/internal/adapter"
	"github.com/MKhiriev/restful-users/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `usage: client [flags] <command> [command flags]

commands:
  version                                   server build information
  register -name N -email E -password P     create an account
  login -email E -password P [-device D]    print a bearer token
  me                                        the account of -token
  list [-page N] [-per-page N]              list users
  get <id>                                  show one user
  delete <id>                               delete your own account
  export [-o FILE]                          users as CSV

flags:
`

func main() {
	fs := flag.NewFlagSet("client", flag.ExitOnError)
	address := fs.String("a", envOr("USERS_API_ADDRESS", "localhost:8080"), "users API address")
	token := fs.String("token", os.Getenv("USERS_API_TOKEN"), "bearer token for authenticated commands")
	hashKey := fs.String("k", os.Getenv("APP_HASH_KEY"), "HMAC key for request and response bodies")
	timeout := fs.Duration("timeout", 10*time.Second, "request timeout")
	logLevel := fs.String("log-level", "error", "log level")
	showBuild := fs.Bool("build-info", false, "print build information and exit")
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}
	_ = fs.Parse(os.Args[1:])

	if *showBuild {
		printBuildInfo()
		return
	}
	if fs.NArg() == 0 {
		fs.Usage()
		os.Exit(2)
	}

	log := logger.NewLogger("restful-users-client")
	if err := logger.SetLevel(*logLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	api, err := adapter.NewHTTPUsersAPI(*address, *timeout, *hashKey, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating users api client")
	}
	api.SetToken(*token)

	if err = run(context.Background(), api, fs.Arg(0), fs.Args()[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
