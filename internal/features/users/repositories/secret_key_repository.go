package users_repositories

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"

	users_models "codetutor/internal/features/users/models"
	"codetutor/internal/storage"

	"gorm.io/gorm"
)

type SecretKeyRepository struct {
	mu     sync.Mutex
	cached string
}

// GetSecretKey returns the JWT signing secret, generating and persisting
// one on first use.
func (r *SecretKeyRepository) GetSecretKey() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cached != "" {
		return r.cached, nil
	}

	var secretKey users_models.SecretKey

	err := storage.GetDb().First(&secretKey).Error
	if err == nil {
		r.cached = secretKey.Secret
		return r.cached, nil
	}

	if err != gorm.ErrRecordNotFound {
		return "", fmt.Errorf("failed to read secret key: %w", err)
	}

	randomBytes := make([]byte, 32)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate secret key: %w", err)
	}

	secretKey.Secret = hex.EncodeToString(randomBytes)

	if err := storage.GetDb().Create(&secretKey).Error; err != nil {
		return "", fmt.Errorf("failed to store secret key: %w", err)
	}

	r.cached = secretKey.Secret

	return r.cached, nil
}
