package identity

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"displaygram/internal/domain/entity"
	"displaygram/internal/domain/service"
	"displaygram/internal/errors"

	"github.com/google/uuid"
)

type memoryAccount struct {
	account      entity.Account
	passwordHash string
	claims       entity.AccountClaims
}

// MemoryProvider is an in-process IdentityProvider for local development and
// tests. ID tokens are HS256 JWTs signed by the TokenService.
type MemoryProvider struct {
	mu       sync.RWMutex
	byUID    map[string]*memoryAccount
	byEmail  map[string]string
	tokens   service.TokenService
	hasher   service.PasswordHasher
	linkBase string
}

// NewMemoryProvider creates an empty account table. linkBase is the web app
// origin used for verification links.
func NewMemoryProvider(tokens service.TokenService, hasher service.PasswordHasher, linkBase string) *MemoryProvider {
	return &MemoryProvider{
		byUID:    make(map[string]*memoryAccount),
		byEmail:  make(map[string]string),
		tokens:   tokens,
		hasher:   hasher,
		linkBase: strings.TrimRight(linkBase, "/"),
	}
}

func (p *MemoryProvider) GetUserByEmail(_ context.Context, email string) (*entity.Account, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	uid, ok := p.byEmail[entity.NormalizeEmail(email)]
	if !ok {
		return nil, service.ErrAccountNotFound
	}
	account := p.byUID[uid].account

	return &account, nil
}

func (p *MemoryProvider) CreateUser(_ context.Context, toCreate *entity.AccountToCreate) (*entity.Account, error) {
	email := entity.NormalizeEmail(toCreate.Email)
	if email == "" {
		return nil, errors.New("email is required")
	}

	var passwordHash string
	if toCreate.Password != "" {
		hash, err := p.hasher.Hash(toCreate.Password)
		if err != nil {
			return nil, errors.Wrap(err, "hash password")
		}
		passwordHash = hash
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.byEmail[email]; exists {
		return nil, service.ErrAccountExists
	}

	stored := &memoryAccount{
		account:      entity.Account{UID: uuid.NewString(), Email: email},
		passwordHash: passwordHash,
	}
	p.byUID[stored.account.UID] = stored
	p.byEmail[email] = stored.account.UID

	account := stored.account

	return &account, nil
}

func (p *MemoryProvider) SetCustomClaims(_ context.Context, uid string, claims entity.AccountClaims) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	stored, ok := p.byUID[uid]
	if !ok {
		return service.ErrAccountNotFound
	}
	stored.claims = claims

	return nil
}

// Claims returns the custom claims currently set on uid.
func (p *MemoryProvider) Claims(uid string) (entity.AccountClaims, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	stored, ok := p.byUID[uid]
	if !ok {
		return entity.AccountClaims{}, false
	}

	return stored.claims, true
}

func (p *MemoryProvider) EmailVerificationLink(_ context.Context, email string) (string, error) {
	p.mu.RLock()
	uid, ok := p.byEmail[entity.NormalizeEmail(email)]
	p.mu.RUnlock()
	if !ok {
		return "", service.ErrAccountNotFound
	}
	if p.linkBase == "" {
		return "", errors.New("verification links need a base url")
	}

	code, err := p.tokens.GenerateIDToken(uid, entity.NormalizeEmail(email), nil)
	if err != nil {
		return "", err
	}

	query := url.Values{}
	query.Set("mode", "verifyEmail")
	query.Set("oobCode", code)

	return p.linkBase + "/auth/action?" + query.Encode(), nil
}

// IssueIDToken signs an ID token for an existing account, as the provider's
// client SDK would after sign-in.
func (p *MemoryProvider) IssueIDToken(uid string) (string, error) {
	p.mu.RLock()
	stored, ok := p.byUID[uid]
	p.mu.RUnlock()
	if !ok {
		return "", service.ErrAccountNotFound
	}

	return p.tokens.GenerateIDToken(uid, stored.account.Email, stored.claims.ToMap())
}

// SignIn checks a password and issues an ID token.
func (p *MemoryProvider) SignIn(email, password string) (string, error) {
	p.mu.RLock()
	uid, ok := p.byEmail[entity.NormalizeEmail(email)]
	var hash string
	if ok {
		hash = p.byUID[uid].passwordHash
	}
	p.mu.RUnlock()

	if !ok || hash == "" || !p.hasher.Check(password, hash) {
		return "", service.ErrInvalidIDToken
	}

	return p.IssueIDToken(uid)
}

func (p *MemoryProvider) VerifyIDToken(_ context.Context, idToken string) (*entity.IdentityToken, error) {
	claims, err := p.tokens.ValidateIDToken(idToken)
	if err != nil {
		return nil, err
	}

	p.mu.RLock()
	_, ok := p.byUID[claims.Subject]
	p.mu.RUnlock()
	if !ok {
		return nil, errors.Wrap(service.ErrInvalidIDToken, "unknown account")
	}

	return &entity.IdentityToken{
		UID:    claims.Subject,
		Email:  claims.Email,
		Claims: claims.Claims,
	}, nil
}
