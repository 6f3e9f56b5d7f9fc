package main

import (
	"flag"
	"fmt"
	"os"

	"gymmaster/internal/config"
	"gymmaster/internal/modules/auth"
	"gymmaster/internal/pkg/jwt"
)

// Prints a staff bearer token for the booking routes, or with -hash a bcrypt
// hash for STAFF_PASSWORD_HASH.
func main() {
	staff := flag.String("staff", "front-desk", "staff name placed in the token")
	hash := flag.String("hash", "", "print the bcrypt hash of this password and exit")
	flag.Parse()

	if *hash != "" {
		h, err := auth.HashPassword(*hash)
		if err != nil {
			fmt.Fprintln(os.Stderr, "hash:", err)
			os.Exit(1)
		}
		fmt.Println(h)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	if !cfg.AuthEnabled() {
		fmt.Fprintln(os.Stderr, "JWT_SECRET is not set")
		os.Exit(1)
	}

	token, err := jwt.New(cfg.JWTSecret, cfg.JWTTTL).GenerateToken(*staff)
	if err != nil {
		fmt.Fprintln(os.Stderr, "token:", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
