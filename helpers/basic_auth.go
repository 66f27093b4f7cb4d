package helpers

import (
	"net/http"

	"github.com/gsiscaler/autoscaler/models"

	"code.cloudfoundry.org/lager/v3"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores everything after the 72nd byte.
const bcryptMaxLength = 72

type BasicAuthenticationMiddleware struct {
	usernameHash []byte
	passwordHash []byte
	logger       lager.Logger
}

func (bam *BasicAuthenticationMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if bam.usernameHash == nil && bam.passwordHash == nil {
			next.ServeHTTP(w, r)
			return
		}

		username, password, authOK := r.BasicAuth()
		if !authOK || bcrypt.CompareHashAndPassword(bam.usernameHash, []byte(username)) != nil || bcrypt.CompareHashAndPassword(bam.passwordHash, []byte(password)) != nil {
			bam.logger.Info("unauthorized-request", lager.Data{"path": r.URL.Path})
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CreateBasicAuthMiddleware hashes cleartext credentials once at startup so
// that requests are always compared against bcrypt hashes.
func CreateBasicAuthMiddleware(logger lager.Logger, ba models.BasicAuth) (*BasicAuthenticationMiddleware, error) {
	logger = logger.Session("basic-auth")

	usernameHash, err := hashOrKeep(logger, "username", ba.UsernameHash, ba.Username)
	if err != nil {
		return nil, err
	}
	passwordHash, err := hashOrKeep(logger, "password", ba.PasswordHash, ba.Password)
	if err != nil {
		return nil, err
	}

	return &BasicAuthenticationMiddleware{
		usernameHash: usernameHash,
		passwordHash: passwordHash,
		logger:       logger,
	}, nil
}

func hashOrKeep(logger lager.Logger, field string, hash string, cleartext string) ([]byte, error) {
	if hash != "" {
		return []byte(hash), nil
	}
	if cleartext == "" {
		return nil, nil
	}
	if len(cleartext) > bcryptMaxLength {
		logger.Info("configured-value-too-long-using-only-first-72-characters", lager.Data{"field": field, "length": len(cleartext)})
		cleartext = cleartext[:bcryptMaxLength]
	}
	// MinCost: the value was configured in cleartext anyway
	hashed, err := bcrypt.GenerateFromPassword([]byte(cleartext), bcrypt.MinCost)
	if err != nil {
		logger.Error("failed-to-hash", err, lager.Data{"field": field})
		return nil, err
	}
	return hashed, nil
}
