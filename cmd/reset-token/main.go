// Command reset-token mints the X-Reset-Token JWT accepted by the reset
// endpoints when APP_RESET_SIGN_KEY is configured.
//
//	reset-token -service posts -ttl 5m
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/MKhiriev/go-travel-board/internal/config"
	"github.com/MKhiriev/go-travel-board/internal/utils"
	"github.com/caarlos0/env/v11"
)

type options struct {
	Service string        `env:"RESET_SERVICE"`
	SignKey string        `env:"APP_RESET_SIGN_KEY"`
	Issuer  string        `env:"APP_TOKEN_ISSUER" envDefault:"go-travel-board"`
	TTL     time.Duration `env:"RESET_TOKEN_TTL" envDefault:"5m"`
}

var errMissingSignKey = errors.New("sign key is required (-key or APP_RESET_SIGN_KEY)")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "reset-token: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	opts, err := env.ParseAs[options]()
	if err != nil {
		return fmt.Errorf("parsing env: %w", err)
	}

	fs := flag.NewFlagSet("reset-token", flag.ContinueOnError)
	fs.StringVar(&opts.Service, "service", opts.Service, "service the token is valid for: users, routes or posts")
	fs.StringVar(&opts.SignKey, "key", opts.SignKey, "HMAC sign key")
	fs.StringVar(&opts.Issuer, "issuer", opts.Issuer, "token issuer")
	fs.DurationVar(&opts.TTL, "ttl", opts.TTL, "token lifetime")
	if err = fs.Parse(args); err != nil {
		return err
	}

	svc := config.Service(opts.Service)
	switch svc {
	case config.ServiceUsers, config.ServiceRoutes, config.ServicePosts:
	default:
		return fmt.Errorf("%w: %q", config.ErrUnknownService, opts.Service)
	}
	if opts.SignKey == "" {
		return errMissingSignKey
	}

	token, err := utils.GenerateJWTToken(opts.Issuer, svc.String(), opts.TTL, opts.SignKey)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, token)
	return err
}
