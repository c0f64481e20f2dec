package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"
)

// LoadOrGenerateKey returns the PEM-encoded Ed25519 session key at path,
// generating and persisting a fresh keypair when the file does not exist.
// An empty path yields an ephemeral key: sessions won't survive restarts,
// which is fine for dev.
func LoadOrGenerateKey(path string) ([]byte, error) {
	if path == "" {
		return generateKeyPEM()
	}

	path = filepath.Clean(path)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		pemKey, err := generateKeyPEM()
		if err != nil {
			return nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
			return nil, err
		}
		if err := os.WriteFile(path, pemKey, 0600); err != nil {
			return nil, fmt.Errorf("jwtx: persist session key: %w", err)
		}
		return pemKey, nil
	}

	pemKey, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("jwtx: read session key: %w", err)
	}
	return pemKey, nil
}

func generateKeyPEM() ([]byte, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("jwtx: generate Ed25519 key: %w", err)
	}

	der, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return nil, fmt.Errorf("jwtx: marshal PKCS8: %w", err)
	}

	return pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}), nil
}
