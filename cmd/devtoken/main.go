// Command devtoken issues an access token for local testing against the
// configured JWT secret. Production tokens come from the identity service.
//
// Usage: devtoken -user <uuid> [-ttl 24h]
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/myenglish-srs/internal/auth"
	"github.com/heartmarshall/myenglish-srs/internal/config"
)

func main() {
	userFlag := flag.String("user", "", "user ID (UUID) to put in the token subject")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	userID, err := uuid.Parse(*userFlag)
	if err != nil {
		log.Fatalf("invalid -user: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, clockwork.NewRealClock()).Issue(userID, *ttl)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}
	fmt.Println(token)
}
