// Package qr produces the QR code artifacts handed to the mobile client.
// Each artifact encodes a deep link that identifies a company by its
// account number.
package qr

import (
	"fmt"
	"os"
	"path/filepath"

	qrcode "github.com/skip2/go-qrcode"
)

// AppScheme is the deep link prefix the mobile client registers.
const AppScheme = "gowallet://company/"

const defaultSize = 256

type Service interface {
	// Generate writes a PNG QR code for the account number's deep link
	// and returns the artifact path.
	Generate(accountNumber string) (string, error)

	// DeepLink returns the URI encoded into the artifact.
	DeepLink(accountNumber string) string
}

type service struct {
	dir string
}

// NewService creates a QR service writing artifacts under dir.
func NewService(dir string) Service {
	return &service{dir: dir}
}

func (s *service) DeepLink(accountNumber string) string {
	return AppScheme + accountNumber
}

func (s *service) Generate(accountNumber string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create qr directory: %w", err)
	}

	path := filepath.Join(s.dir, accountNumber+".png")
	if err := qrcode.WriteFile(s.DeepLink(accountNumber), qrcode.Medium, defaultSize, path); err != nil {
		return "", fmt.Errorf("failed to write qr code: %w", err)
	}
	return path, nil
}
