// Package session manages accounts, AI-call credits, and saved resume
// snapshots on top of an injected key-value backend. The store is the single
// writer for account state; the users table and the per-user session
// snapshot are separate keys written one after the other, so a crash between
// the two writes can leave them briefly divergent until the next login.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jordan/resume-studio/internal/config"
	"github.com/jordan/resume-studio/internal/storage"
	"github.com/jordan/resume-studio/internal/types"
)

// StartingCredits is the AI-call balance granted to every new account.
const StartingCredits = 3

const (
	usersKey         = "users"
	sessionKeyPrefix = "session:"
	resumeKeyPrefix  = "resume:"
)

// userRecord is the persisted shape of an account. It exists separately from
// types.User so the password hash survives storage round-trips while staying
// out of API responses.
type userRecord struct {
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Credits      int       `json:"credits"`
	PasswordHash string    `json:"passwordHash,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (r userRecord) toUser() *types.User {
	return &types.User{
		Username:     r.Username,
		Email:        r.Email,
		Credits:      r.Credits,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
	}
}

// Store manages accounts and resume snapshots over a KV backend.
type Store struct {
	mu        sync.Mutex
	kv        storage.KV
	passwords *config.PasswordConfig
}

// NewStore creates a session store. The password config may be nil when no
// signup passwords will be hashed.
func NewStore(kv storage.KV, passwords *config.PasswordConfig) *Store {
	return &Store{kv: kv, passwords: passwords}
}

// Register creates an account with the starting credit balance. The password
// is optional; when present it is hashed before storage and never read back
// for verification.
func (s *Store) Register(ctx context.Context, username, email, password string) (*types.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email = normalizeEmail(email)

	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	if _, exists := users[email]; exists {
		return nil, &DuplicateUserError{Email: email}
	}

	record := userRecord{
		Username:  username,
		Email:     email,
		Credits:   StartingCredits,
		CreatedAt: time.Now().UTC(),
	}
	if password != "" && s.passwords != nil {
		hash, err := s.passwords.HashPassword(password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		record.PasswordHash = hash
	}

	users[email] = record
	if err := s.saveUsers(ctx, users); err != nil {
		return nil, err
	}
	if err := s.saveSession(ctx, record); err != nil {
		return nil, err
	}

	return record.toUser(), nil
}

// Login looks the account up by email. No password is checked; the stored
// hash is write-only.
func (s *Store) Login(ctx context.Context, email string) (*types.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email = normalizeEmail(email)

	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	record, exists := users[email]
	if !exists {
		return nil, &UserNotFoundError{Email: email}
	}

	if err := s.saveSession(ctx, record); err != nil {
		return nil, err
	}
	return record.toUser(), nil
}

// GetUser returns the current account state for the email.
func (s *Store) GetUser(ctx context.Context, email string) (*types.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email = normalizeEmail(email)

	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	record, exists := users[email]
	if !exists {
		return nil, &UserNotFoundError{Email: email}
	}
	return record.toUser(), nil
}

// ConsumeCredit debits one credit. At zero balance it returns NoCreditsError
// and mutates nothing; otherwise it decrements and persists both the users
// table and the session snapshot.
func (s *Store) ConsumeCredit(ctx context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	email = normalizeEmail(email)

	users, err := s.loadUsers(ctx)
	if err != nil {
		return err
	}
	record, exists := users[email]
	if !exists {
		return &UserNotFoundError{Email: email}
	}
	if record.Credits <= 0 {
		return &NoCreditsError{Email: email}
	}

	record.Credits--
	users[email] = record
	if err := s.saveUsers(ctx, users); err != nil {
		return err
	}
	return s.saveSession(ctx, record)
}

// SaveResume persists the account's resume snapshot as a whole.
func (s *Store) SaveResume(ctx context.Context, email string, doc *types.ResumeDocument) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize resume: %w", err)
	}
	return s.kv.Put(ctx, resumeKeyPrefix+normalizeEmail(email), data)
}

// LoadResume returns the account's saved resume snapshot, or a fresh empty
// document when none has been saved yet.
func (s *Store) LoadResume(ctx context.Context, email string) (*types.ResumeDocument, error) {
	data, err := s.kv.Get(ctx, resumeKeyPrefix+normalizeEmail(email))
	if storage.IsNotFound(err) {
		return types.NewResumeDocument(), nil
	}
	if err != nil {
		return nil, err
	}

	var doc types.ResumeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse stored resume: %w", err)
	}
	return &doc, nil
}

func (s *Store) loadUsers(ctx context.Context) (map[string]userRecord, error) {
	data, err := s.kv.Get(ctx, usersKey)
	if storage.IsNotFound(err) {
		return map[string]userRecord{}, nil
	}
	if err != nil {
		return nil, err
	}

	var users map[string]userRecord
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("failed to parse users table: %w", err)
	}
	if users == nil {
		users = map[string]userRecord{}
	}
	return users, nil
}

func (s *Store) saveUsers(ctx context.Context, users map[string]userRecord) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to serialize users table: %w", err)
	}
	return s.kv.Put(ctx, usersKey, data)
}

func (s *Store) saveSession(ctx context.Context, record userRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}
	return s.kv.Put(ctx, sessionKeyPrefix+record.Email, data)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
