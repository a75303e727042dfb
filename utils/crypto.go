package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// APISecretBytes API 키 시크릿 엔트로피 (256bit)
const APISecretBytes = 32

// GenerateAPISecret 디바이스용 API 키 시크릿 생성 (64자리 hex)
func GenerateAPISecret() (string, error) {
	bytes := make([]byte, APISecretBytes)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// HashAPIKey 저장용 시크릿 다이제스트 (blake2b-256)
// 같은 시크릿은 항상 같은 다이제스트가 되므로 정확 일치 조회가 그대로 유지된다.
func HashAPIKey(secret string) string {
	sum := blake2b.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// MaskSecret 로그 출력용 시크릿 마스킹
func MaskSecret(secret string) string {
	if len(secret) <= 8 {
		return "****"
	}
	return secret[:8] + "..."
}
