package utils

import (
	"crypto/rand"
	"fmt"
)

// tokenAlphabet is the character set for generated tokens: uppercase letters
// and digits, matching the printed discount-code and invoice-number formats.
const tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomToken generates a random token of the given length drawn from the
// uppercase-alphanumeric alphabet.
func RandomToken(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("token length must be positive, got %d", length)
	}
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	for i := range b {
		b[i] = tokenAlphabet[int(b[i])%len(tokenAlphabet)]
	}
	return string(b), nil
}

// GenerateInvoiceNumber generates an invoice number candidate.
// Format: FACT-XXXXXXXXXX (10 random uppercase-alphanumeric characters).
// Uniqueness is enforced by the sales table constraint; callers retry on
// collision with a bounded attempt count.
func GenerateInvoiceNumber() (string, error) {
	token, err := RandomToken(10)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("FACT-%s", token), nil
}
