package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/davidmichaelmontiza/Campus-Information-System/internal/service"
	"github.com/davidmichaelmontiza/Campus-Information-System/pkg/config"
)

// token prints a bearer token signed with the configured JWT secret.
func main() {
	subject := flag.String("sub", "dev", "token subject (user id)")
	email := flag.String("email", "", "optional email claim")
	ttl := flag.Duration("ttl", 0, "token lifetime, defaults to JWT_EXPIRATION")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	expiration := cfg.JWT.Expiration
	if *ttl > 0 {
		expiration = *ttl
	}

	auth := service.NewAuthService(service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		Expiration: expiration,
	})

	token, expiresAt, err := auth.IssueToken(*subject, *email)
	if err != nil {
		log.Fatalf("failed to sign token: %v", err)
	}

	fmt.Println(token)
	log.Printf("expires at %s", expiresAt.Format(time.RFC3339))
}
