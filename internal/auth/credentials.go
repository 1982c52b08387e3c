package auth

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

const RoleAdmin = "admin"

var ErrInvalidCredentials = errors.New("invalid username or password")

type Identity struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// CredentialProvider checks a username/password pair.
type CredentialProvider interface {
	Authenticate(username, password string) (*Identity, error)
}

// StaticCredentials holds the single club administrator.
type StaticCredentials struct {
	username string
	hash     []byte
}

func NewStaticCredentials(username, passwordHash string) (*StaticCredentials, error) {
	if username == "" {
		return nil, errors.New("admin username must not be empty")
	}
	if _, err := bcrypt.Cost([]byte(passwordHash)); err != nil {
		return nil, err
	}
	return &StaticCredentials{username: username, hash: []byte(passwordHash)}, nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (c *StaticCredentials) Authenticate(username, password string) (*Identity, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(c.hash, []byte(password))
	if !userOK || passErr != nil {
		return nil, ErrInvalidCredentials
	}
	return &Identity{UserID: "1", Username: c.username, Role: RoleAdmin}, nil
}
