package config

import (
	"errors"
	"flag"
	"os"

	"github.com/prasetyowira/qrmailer/constant"
)

type Config struct {
	Email      string
	Subject    string
	LogoPath   string
	Body       string
	BodySet    bool
	OutputPath string
	LogLevel   string
}

// LoadConfig parses command-line flags. Email, subject, and logo are
// required; a missing one yields a usage message and an error.
func LoadConfig(args []string) (Config, error) {
	fs := flag.NewFlagSet("qrmailer", flag.ContinueOnError)

	email := fs.String("email", "", "Recipient email address")
	subject := fs.String("subject", "", "Subject of the email")
	logo := fs.String("logo", "", "Path to the logo image")
	body := fs.String("body", "", "Email body (default: French recruitment text)")
	output := fs.String("output", constant.DefaultOutputFile, "Output filename for the QR code image")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// An explicitly empty --body must stay empty; only an absent flag
	// falls back to the default text later.
	bodySet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "body" {
			bodySet = true
		}
	})

	var err error
	switch {
	case *email == "":
		err = errors.New(constant.ErrMissingEmail)
	case *subject == "":
		err = errors.New(constant.ErrMissingSubject)
	case *logo == "":
		err = errors.New(constant.ErrMissingLogo)
	}
	if err != nil {
		fs.Usage()
		return Config{}, err
	}

	return Config{
		Email:      *email,
		Subject:    *subject,
		LogoPath:   *logo,
		Body:       *body,
		BodySet:    bodySet,
		OutputPath: *output,
		LogLevel:   getEnv("LOG_LEVEL", "INFO"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
