package usecase

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/ployem/account-api/internal/model"
	"github.com/ployem/account-api/internal/repository"
)

// fakeAccountRepo is an in-memory AccountRepository that mirrors the Mongo
// sentinels: ErrNoDocuments on a miss and a duplicate-key write exception on
// a unique email collision.
type fakeAccountRepo struct {
	mu       sync.Mutex
	accounts map[string]*model.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[string]*model.Account)}
}

func duplicateKeyError() error {
	return mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000}},
	}
}

func (r *fakeAccountRepo) CreateAccount(_ context.Context, account *model.Account) (*model.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.accounts {
		if existing.Email == account.Email {
			return nil, duplicateKeyError()
		}
	}

	account.ID = bson.NewObjectID()
	r.accounts[account.ID.Hex()] = account

	return account, nil
}

func (r *fakeAccountRepo) GetAccount(_ context.Context, id string) (*model.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	return account, nil
}

func (r *fakeAccountRepo) GetAccountByEmail(_ context.Context, email string) (*model.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, account := range r.accounts {
		if account.Email == email {
			return account, nil
		}
	}

	return nil, mongo.ErrNoDocuments
}

func (r *fakeAccountRepo) RotateVerificationCode(_ context.Context, id, code string) (*model.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	account.VerificationCode = code

	return account, nil
}

func (r *fakeAccountRepo) MarkVerified(_ context.Context, id, nextCode string) (*model.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	account.Verified = true
	account.VerificationCode = nextCode

	return account, nil
}

// fakeSessionRepo is an in-memory SessionRepository.
type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*model.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*model.Session)}
}

func (r *fakeSessionRepo) CreateSession(_ context.Context, session *model.Session) (*model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session.ID = bson.NewObjectID()
	r.sessions[session.ID.Hex()] = session

	return session, nil
}

func (r *fakeSessionRepo) GetSessionByAccountID(_ context.Context, accountID string) (*model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, session := range r.sessions {
		if session.AccountID == accountID {
			return session, nil
		}
	}

	return nil, mongo.ErrNoDocuments
}

func (r *fakeSessionRepo) UpdateTokens(_ context.Context, id string, params repository.UpdateTokensParams) (*model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	session.AccessToken = params.AccessToken
	session.RefreshToken = params.RefreshToken
	session.AccessTokenExpiresAt = params.AccessTokenExpiresAt
	session.RefreshTokenExpiresAt = params.RefreshTokenExpiresAt

	return session, nil
}

func (r *fakeSessionRepo) DeleteSessionsByAccountID(_ context.Context, accountID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var deleted int64
	for id, session := range r.sessions {
		if session.AccountID == accountID {
			delete(r.sessions, id)
			deleted++
		}
	}

	return deleted, nil
}

// recorderMailer captures verification emails instead of dialing SMTP.
type recorderMailer struct {
	sendErr error
	sent    []sentEmail
}

type sentEmail struct {
	to   string
	code string
}

func (m *recorderMailer) SendVerificationCode(to, code string) error {
	if m.sendErr != nil {
		return m.sendErr
	}

	m.sent = append(m.sent, sentEmail{to: to, code: code})

	return nil
}
