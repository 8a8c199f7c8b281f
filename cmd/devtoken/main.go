// Command devtoken prints a signed bearer token for local development, standing in for the
// identity provider. It signs with JWT_SECRET from the environment or .env.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"sportsessions/config"
	"sportsessions/internal/adapters/auth"
	"sportsessions/internal/domain"
)

func main() {
	var p domain.Principal
	flag.StringVar(&p.ID, "sub", "", "principal id (required)")
	flag.StringVar(&p.Name, "name", "", "display name")
	flag.StringVar(&p.Email, "email", "", "email address")
	flag.StringVar(&p.Role, "role", domain.RolePlayer, "role: admin or player")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if p.ID == "" {
		fmt.Fprintln(os.Stderr, "devtoken: -sub is required")
		flag.Usage()
		os.Exit(2)
	}
	if p.Role != domain.RoleAdmin && p.Role != domain.RolePlayer {
		fmt.Fprintf(os.Stderr, "devtoken: unknown role %q\n", p.Role)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "devtoken: %v\n", err)
		os.Exit(1)
	}
	token, err := auth.NewJWTIssuer(cfg.JWTSecret).Issue(p, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "devtoken: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
