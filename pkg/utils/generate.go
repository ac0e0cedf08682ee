package utils

import (
	"encoding/hex"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

// ==================== UUID ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// ==================== POLICY NUMBER ====================

// GeneratePolicyNumber formats HGN-YYYYMMDD-HHMMSS-NNNN from now.
func GeneratePolicyNumber(now time.Time) string {
	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := fmt.Sprintf("%04d", rand.Intn(10000))

	return fmt.Sprintf("HGN-%s-%s-%s", datePart, timePart, randomPart)
}

// ==================== CARD ====================

// CardFingerprint is a keyed BLAKE2b-256 digest of the card number, stable for one key.
func CardFingerprint(key, cardNumber string) (string, error) {
	var k []byte
	if key != "" {
		k = []byte(key)
	}

	h, err := blake2b.New256(k)
	if err != nil {
		return "", fmt.Errorf("init card fingerprint: %w", err)
	}
	h.Write([]byte(cardNumber))

	return hex.EncodeToString(h.Sum(nil)), nil
}

// CardLast4 returns the last four characters of a card number, or all of it when shorter.
func CardLast4(cardNumber string) string {
	if len(cardNumber) <= 4 {
		return cardNumber
	}
	return cardNumber[len(cardNumber)-4:]
}
