package password

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

var (
	ErrSaltTooShort        = errors.New("salt must be at least 8 bytes")
	ErrInvalidPasswordHash = errors.New("invalid password hash format")
)

type Argon2idParams struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	KeyLength   uint32
}

var DefaultArgon2idParams = Argon2idParams{
	Memory:      64 * 1024,
	Iterations:  3,
	Parallelism: 4,
	KeyLength:   32,
}

// Hasher 以整個 process 共用的固定 salt 產生 argon2id 雜湊
type Hasher struct {
	salt   []byte
	params Argon2idParams
}

func NewHasher(salt string) (*Hasher, error) {
	return NewHasherWithParams(salt, DefaultArgon2idParams)
}

func NewHasherWithParams(salt string, params Argon2idParams) (*Hasher, error) {
	if len(salt) < 8 {
		return nil, ErrSaltTooShort
	}
	return &Hasher{salt: []byte(salt), params: params}, nil
}

// Hash 回傳 PHC 格式：$argon2id$v=19$m=...,t=...,p=...$salt$hash
func (h *Hasher) Hash(plain string) string {
	key := argon2.IDKey([]byte(plain), h.salt, h.params.Iterations, h.params.Memory, h.params.Parallelism, h.params.KeyLength)

	b64Salt := base64.RawStdEncoding.EncodeToString(h.salt)
	b64Hash := base64.RawStdEncoding.EncodeToString(key)

	format := "$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s"
	return fmt.Sprintf(format, argon2.Version, h.params.Memory, h.params.Iterations, h.params.Parallelism, b64Salt, b64Hash)
}

// Verify 比對明文與已儲存的雜湊
func (h *Hasher) Verify(encoded, plain string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false, ErrInvalidPasswordHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false, ErrInvalidPasswordHash
	}

	var p Argon2idParams
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Iterations, &p.Parallelism); err != nil {
		return false, ErrInvalidPasswordHash
	}
	// argon2.IDKey 在參數為 0 時會 panic
	if p.Memory == 0 || p.Iterations == 0 || p.Parallelism == 0 {
		return false, ErrInvalidPasswordHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, ErrInvalidPasswordHash
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, ErrInvalidPasswordHash
	}

	got := argon2.IDKey([]byte(plain), salt, p.Iterations, p.Memory, p.Parallelism, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
