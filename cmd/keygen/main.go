// Command keygen prints a signed API key for the editor server.
//
// It reads the same configuration as the server (APP_TOKEN_SIGN_KEY,
// APP_TOKEN_ISSUER, APP_TOKEN_DURATION, APP_KEY_ROLE) so the issued key is
// accepted by it. The key goes to stdout, details to stderr.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-cloud-editor/internal/config"
	"github.com/MKhiriev/go-cloud-editor/internal/logger"
	"github.com/MKhiriev/go-cloud-editor/internal/utils"
)

func main() {
	log := logger.NewWriterLogger(os.Stderr, "editor-keygen")

	cfg, err := config.GetKeygenConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	token, err := utils.GenerateAPIKey(cfg.TokenIssuer, cfg.Role, cfg.TokenDuration, cfg.TokenSignKey)
	if err != nil {
		log.Fatal().Err(err).Msg("error generating api key")
	}

	fmt.Fprintf(os.Stderr, "role: %s\nissuer: %s\nexpires: %s\n",
		token.Claims.Role,
		token.Claims.Issuer,
		token.Claims.ExpiresAt.Time.Format(time.RFC3339),
	)
	fmt.Println(token.SignedString)
}
