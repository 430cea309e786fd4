package account

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/shadowbay/marketkit/pkg/logger"
	"github.com/shadowbay/marketkit/pkg/mnemonic"
	"github.com/shadowbay/marketkit/pkg/qrcode"
	"github.com/shadowbay/marketkit/pkg/ratelimiter"
	"github.com/shadowbay/marketkit/pkg/sanitizer"
	"github.com/shadowbay/marketkit/pkg/secrets"
	"github.com/shadowbay/marketkit/pkg/sessiontoken"
	"github.com/shadowbay/marketkit/pkg/totp"
	"github.com/shadowbay/marketkit/pkg/validator"
)

const (
	defaultBcryptCost = 10
	defaultIssuerName = "marketkit"

	usernameMinLen = 5
	usernameMaxLen = 32
	phraseMinLen   = 5
	phraseMaxLen   = 32

	qrSize = 256
)

// LoginLimiter throttles login attempts per username bucket.
// *ratelimiter.Bucket satisfies it.
type LoginLimiter interface {
	Allow(ctx context.Context, key string) (*ratelimiter.Result, error)
	Reset(ctx context.Context, key string) error
}

// Manager orchestrates the account lifecycle: registration, mnemonic
// reveal, two-factor enrollment, login, session issuance, ban
// enforcement and account mutation. It consumes the credential store,
// the secret codec, the TOTP engine and the session issuer, and
// exposes gated operations to the routing layer.
type Manager struct {
	storage  Storage
	codec    *secrets.Codec
	sessions *sessiontoken.Issuer
	limiter  LoginLimiter

	log        *slog.Logger
	bcryptCost int
	skewWindow int
	issuerName string
	password   validator.PasswordPolicy
	now        func() time.Time
}

// Option configures a Manager during construction.
type Option func(*Manager)

// WithLogger sets a structured logger; the default discards output.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		m.log = log
	}
}

// WithBcryptCost overrides the password hashing cost.
func WithBcryptCost(cost int) Option {
	return func(m *Manager) {
		m.bcryptCost = cost
	}
}

// WithSkewWindow sets the TOTP verification window in periods.
func WithSkewWindow(window int) Option {
	return func(m *Manager) {
		m.skewWindow = window
	}
}

// WithIssuerName sets the issuer label embedded in enrollment URIs.
func WithIssuerName(name string) Option {
	return func(m *Manager) {
		m.issuerName = name
	}
}

// WithLoginLimiter enables login throttling per username bucket.
func WithLoginLimiter(limiter LoginLimiter) Option {
	return func(m *Manager) {
		m.limiter = limiter
	}
}

// WithClock overrides the time source, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// New creates a lifecycle manager over the given collaborators.
func New(storage Storage, codec *secrets.Codec, sessions *sessiontoken.Issuer, opts ...Option) (*Manager, error) {
	if storage == nil {
		return nil, errors.New("account: storage is required")
	}
	if codec == nil {
		return nil, errors.New("account: secret codec is required")
	}
	if sessions == nil {
		return nil, errors.New("account: session issuer is required")
	}

	m := &Manager{
		storage:    storage,
		codec:      codec,
		sessions:   sessions,
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		bcryptCost: defaultBcryptCost,
		skewWindow: totp.DefaultWindow,
		issuerName: defaultIssuerName,
		password:   validator.DefaultPasswordPolicy(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Username        string
	Password        string
	ConfirmPassword string
	PhraseHint      string
}

// RegisterResult is returned on successful registration. The session
// is enrollment-gated: NextStep routes into onboarding, never home.
type RegisterResult struct {
	Account   *Account
	Token     string
	ExpiresAt time.Time
	NextStep  Step
}

// Register creates a new account in the initial onboarding state,
// generates its recovery mnemonic exactly once, and issues a session.
func (m *Manager) Register(ctx context.Context, in RegisterInput) (*RegisterResult, error) {
	username := sanitizer.NormalizeUsername(in.Username)

	if err := validator.Apply(
		validator.Required("username", username),
		validator.LengthBetween("username", username, usernameMinLen, usernameMaxLen),
		validator.Alphanumeric("username", username),
		validator.StrongPassword("password", in.Password, m.password),
		validator.Equal("confirm_password", in.ConfirmPassword, in.Password, "passwords do not match"),
		validator.LengthBetween("phrase", in.PhraseHint, phraseMinLen, phraseMaxLen),
	); err != nil {
		return nil, errors.Join(ErrValidation, err)
	}

	if _, err := m.storage.GetByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, ErrAccountNotFound) {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), m.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	phrase, err := mnemonic.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate mnemonic: %w", err)
	}
	encryptedPhrase, err := m.codec.EncryptString(secrets.PurposeMnemonic, phrase)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt mnemonic: %w", err)
	}

	roleID, err := m.storage.EnsureRole(ctx, RoleBuyer)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure default role: %w", err)
	}

	now := m.now()
	acc := &Account{
		ID:                uuid.New(),
		Username:          username,
		PasswordHash:      hash,
		PhraseHint:        in.PhraseHint,
		EncryptedMnemonic: encryptedPhrase,
		RoleID:            roleID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := m.storage.Create(ctx, acc); err != nil {
		return nil, err
	}

	token, expiresAt, err := m.sessions.Issue(acc.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session: %w", err)
	}

	m.log.InfoContext(ctx, "account registered",
		logger.AccountID(acc.ID),
		logger.Username(acc.Username),
		logger.Component("account"),
	)

	return &RegisterResult{
		Account:   acc,
		Token:     token,
		ExpiresAt: expiresAt,
		NextStep:  StepMnemonic,
	}, nil
}

// LoginInput carries the login form fields. Code may be empty for
// accounts that have not enrolled two-factor yet.
type LoginInput struct {
	Username string
	Password string
	Code     string
}

// LoginResult is returned on successful authentication. NextStep is
// StepHome only for fully enrolled accounts; otherwise the session is
// enrollment-gated and routes into the onboarding sequence.
type LoginResult struct {
	Account   *Account
	Token     string
	ExpiresAt time.Time
	NextStep  Step
}

// Login authenticates raw credentials and issues a session. Failures
// on unknown usernames and wrong passwords are indistinguishable.
func (m *Manager) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	username := sanitizer.NormalizeUsername(in.Username)

	if m.limiter != nil {
		result, err := m.limiter.Allow(ctx, username)
		if err != nil {
			return nil, fmt.Errorf("failed to check login rate: %w", err)
		}
		if !result.Allowed() {
			return nil, ErrRateLimited
		}
	}

	acc, err := m.storage.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(acc.PasswordHash, []byte(in.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if acc.IsBanned {
		return nil, m.bannedError(acc)
	}

	if acc.TwoFactorEnabled {
		if in.Code == "" {
			return nil, ErrMissingCode
		}
		secret, err := m.codec.DecryptString(secrets.PurposeTOTP, acc.EncryptedTwoFactorSecret)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt totp secret: %w", err)
		}
		ok, err := totp.Verify(secret, in.Code, m.skewWindow)
		if err != nil || !ok {
			return nil, ErrInvalidCode
		}
	}

	token, expiresAt, err := m.sessions.Issue(acc.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session: %w", err)
	}

	if m.limiter != nil {
		if err := m.limiter.Reset(ctx, username); err != nil {
			m.log.WarnContext(ctx, "failed to reset login limiter",
				logger.Username(username),
				logger.Error(err),
				logger.Component("account"),
			)
		}
	}

	return &LoginResult{
		Account:   acc,
		Token:     token,
		ExpiresAt: expiresAt,
		NextStep:  requiredStep[acc.OnboardingState()],
	}, nil
}

// Logout ends the client-held session. Tokens are stateless, so the
// server only acknowledges the disposal; the caller clears the token.
func (m *Manager) Logout(ctx context.Context, token string) Step {
	if claims, err := m.sessions.Parse(token); err == nil {
		m.log.InfoContext(ctx, "session ended",
			logger.AccountID(claims.Subject),
			logger.Component("account"),
		)
	}
	return StepLogin
}

// Authenticate resolves a bearer token into an Identity. It is the
// single token-verification step; gated operations take the resulting
// Identity instead of re-deriving it per call site.
func (m *Manager) Authenticate(ctx context.Context, token string) (*Identity, error) {
	claims, err := m.sessions.Parse(token)
	if err != nil {
		return nil, errors.Join(ErrInvalidCredentials, err)
	}
	accountID, err := claims.AccountID()
	if err != nil {
		return nil, errors.Join(ErrInvalidCredentials, err)
	}
	return &Identity{
		AccountID: accountID,
		TokenID:   claims.ID,
		ExpiresAt: time.Unix(claims.ExpiresAt, 0),
	}, nil
}

// GateAccess checks whether the identity may visit the requested step.
// The ban gate runs first: a banned account gets *BannedError no
// matter its onboarding state. Otherwise the decision comes from the
// central transition table.
func (m *Manager) GateAccess(ctx context.Context, identity *Identity, requested Step) (*GateDecision, error) {
	acc, err := m.storage.GetByID(ctx, identity.AccountID)
	if err != nil {
		return nil, err
	}
	if acc.IsBanned {
		return nil, m.bannedError(acc)
	}
	decision := resolveStep(acc.OnboardingState(), requested)
	return &decision, nil
}

// MnemonicReveal is the outcome of a reveal request. Mnemonic is set
// only when Revealed is true; a repeat request redirects onward
// without re-displaying the secret.
type MnemonicReveal struct {
	Mnemonic string
	Revealed bool
	NextStep Step
}

// RevealMnemonic returns the recovery mnemonic at most once. The shown
// flag is flipped durably before the plaintext is returned, so a crash
// after the flip loses the reveal rather than allowing a second one.
func (m *Manager) RevealMnemonic(ctx context.Context, identity *Identity) (*MnemonicReveal, error) {
	acc, err := m.storage.GetByID(ctx, identity.AccountID)
	if err != nil {
		return nil, err
	}
	if acc.IsBanned {
		return nil, m.bannedError(acc)
	}
	if acc.MnemonicShown {
		return &MnemonicReveal{NextStep: requiredStep[acc.OnboardingState()]}, nil
	}

	phrase, err := m.codec.DecryptString(secrets.PurposeMnemonic, acc.EncryptedMnemonic)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt mnemonic: %w", err)
	}

	acc.MnemonicShown = true
	acc.UpdatedAt = m.now()
	if err := m.storage.Update(ctx, acc); err != nil {
		if errors.Is(err, ErrVersionConflict) {
			// A concurrent request won the flip; re-read and redirect
			// without exposing the secret a second time.
			fresh, readErr := m.storage.GetByID(ctx, identity.AccountID)
			if readErr == nil && fresh.MnemonicShown {
				return &MnemonicReveal{NextStep: requiredStep[fresh.OnboardingState()]}, nil
			}
		}
		return nil, err
	}

	return &MnemonicReveal{
		Mnemonic: phrase,
		Revealed: true,
		NextStep: StepTwoFactorSetup,
	}, nil
}

// Enrollment is ephemeral two-factor material. Nothing is persisted
// until the caller proves possession via CompleteTwoFactorEnrollment.
type Enrollment struct {
	Secret    string
	URI       string
	QRDataURI string
}

// BeginTwoFactorEnrollment generates a fresh secret and its scannable
// representation. Requires the mnemonic to have been revealed and
// two-factor to be disabled.
func (m *Manager) BeginTwoFactorEnrollment(ctx context.Context, identity *Identity) (*Enrollment, error) {
	acc, err := m.storage.GetByID(ctx, identity.AccountID)
	if err != nil {
		return nil, err
	}
	if acc.IsBanned {
		return nil, m.bannedError(acc)
	}
	if acc.OnboardingState() != StateMnemonicShown {
		return nil, fmt.Errorf("%w: expected %s", ErrSequence, requiredStep[acc.OnboardingState()])
	}

	material, err := totp.GenerateEnrollment(m.issuerName, acc.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate enrollment: %w", err)
	}
	dataURI, err := qrcode.GenerateDataURI(material.URI, qrSize)
	if err != nil {
		return nil, fmt.Errorf("failed to render enrollment code: %w", err)
	}

	return &Enrollment{
		Secret:    material.Secret,
		URI:       material.URI,
		QRDataURI: dataURI,
	}, nil
}

// CompleteTwoFactorEnrollment commits the candidate secret once the
// caller proves possession with a valid code. A wrong code leaves the
// account unchanged and the caller retries with fresh material.
func (m *Manager) CompleteTwoFactorEnrollment(ctx context.Context, identity *Identity, secret, code string) error {
	acc, err := m.storage.GetByID(ctx, identity.AccountID)
	if err != nil {
		return err
	}
	if acc.IsBanned {
		return m.bannedError(acc)
	}
	if acc.OnboardingState() != StateMnemonicShown {
		return fmt.Errorf("%w: expected %s", ErrSequence, requiredStep[acc.OnboardingState()])
	}
	if code == "" {
		return ErrMissingCode
	}

	ok, err := totp.Verify(secret, code, m.skewWindow)
	if err != nil || !ok {
		return ErrInvalidCode
	}

	encrypted, err := m.codec.EncryptString(secrets.PurposeTOTP, secret)
	if err != nil {
		return fmt.Errorf("failed to encrypt totp secret: %w", err)
	}

	acc.TwoFactorEnabled = true
	acc.EncryptedTwoFactorSecret = encrypted
	acc.UpdatedAt = m.now()
	if err := m.storage.Update(ctx, acc); err != nil {
		return err
	}

	m.log.InfoContext(ctx, "two-factor enrolled",
		logger.AccountID(acc.ID),
		logger.Component("account"),
	)
	return nil
}

// ResetPasswordInput carries the recovery form fields. The mnemonic
// proof substitutes for the forgotten password.
type ResetPasswordInput struct {
	Username        string
	MnemonicProof   string
	NewPassword     string
	ConfirmPassword string
}

// ResetPassword replaces the password hash after the caller proves
// ownership with the recovery mnemonic. Two-factor state is untouched.
func (m *Manager) ResetPassword(ctx context.Context, in ResetPasswordInput) error {
	username := sanitizer.NormalizeUsername(in.Username)

	if err := validator.Apply(
		validator.Required("username", username),
		validator.StrongPassword("password", in.NewPassword, m.password),
		validator.Equal("confirm_password", in.ConfirmPassword, in.NewPassword, "passwords do not match"),
	); err != nil {
		return errors.Join(ErrValidation, err)
	}

	acc, err := m.storage.GetByUsername(ctx, username)
	if err != nil {
		return err
	}

	phrase, err := m.codec.DecryptString(secrets.PurposeMnemonic, acc.EncryptedMnemonic)
	if err != nil {
		return fmt.Errorf("failed to decrypt mnemonic: %w", err)
	}
	if !mnemonic.Verify(phrase, in.MnemonicProof) {
		return ErrMnemonicMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), m.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	acc.PasswordHash = hash
	acc.UpdatedAt = m.now()
	return m.storage.Update(ctx, acc)
}

// ChangePassword replaces the password hash after re-proving the
// current password. The new password must differ from the current one.
func (m *Manager) ChangePassword(ctx context.Context, identity *Identity, current, newPassword, confirm string) error {
	acc, err := m.storage.GetByID(ctx, identity.AccountID)
	if err != nil {
		return err
	}
	if acc.IsBanned {
		return m.bannedError(acc)
	}

	if err := validator.Apply(
		validator.StrongPassword("password", newPassword, m.password),
		validator.Equal("confirm_password", confirm, newPassword, "passwords do not match"),
	); err != nil {
		return errors.Join(ErrValidation, err)
	}

	if err := bcrypt.CompareHashAndPassword(acc.PasswordHash, []byte(current)); err != nil {
		return ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(acc.PasswordHash, []byte(newPassword)) == nil {
		return ErrSamePassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), m.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	acc.PasswordHash = hash
	acc.UpdatedAt = m.now()
	return m.storage.Update(ctx, acc)
}

// ChangeTwoFactor disables two-factor after a verifying code against
// the current secret, clearing it and forcing re-enrollment before
// the account regains full access.
func (m *Manager) ChangeTwoFactor(ctx context.Context, identity *Identity, code string) error {
	acc, err := m.storage.GetByID(ctx, identity.AccountID)
	if err != nil {
		return err
	}
	if acc.IsBanned {
		return m.bannedError(acc)
	}
	if !acc.TwoFactorEnabled {
		return fmt.Errorf("%w: two-factor is not enabled", ErrSequence)
	}
	if code == "" {
		return ErrMissingCode
	}

	secret, err := m.codec.DecryptString(secrets.PurposeTOTP, acc.EncryptedTwoFactorSecret)
	if err != nil {
		return fmt.Errorf("failed to decrypt totp secret: %w", err)
	}
	ok, err := totp.Verify(secret, code, m.skewWindow)
	if err != nil || !ok {
		return ErrInvalidCode
	}

	acc.TwoFactorEnabled = false
	acc.EncryptedTwoFactorSecret = ""
	acc.UpdatedAt = m.now()
	if err := m.storage.Update(ctx, acc); err != nil {
		return err
	}

	m.log.InfoContext(ctx, "two-factor disabled",
		logger.AccountID(acc.ID),
		logger.Component("account"),
	)
	return nil
}

// DeleteAccount destroys the account after two independent ownership
// proofs: the password and the recovery mnemonic. Either mismatch
// leaves the account untouched.
func (m *Manager) DeleteAccount(ctx context.Context, identity *Identity, password, mnemonicProof string) error {
	acc, err := m.storage.GetByID(ctx, identity.AccountID)
	if err != nil {
		return err
	}
	if acc.IsBanned {
		return m.bannedError(acc)
	}

	if err := bcrypt.CompareHashAndPassword(acc.PasswordHash, []byte(password)); err != nil {
		return ErrInvalidCredentials
	}

	phrase, err := m.codec.DecryptString(secrets.PurposeMnemonic, acc.EncryptedMnemonic)
	if err != nil {
		return fmt.Errorf("failed to decrypt mnemonic: %w", err)
	}
	if !mnemonic.Verify(phrase, mnemonicProof) {
		return ErrMnemonicMismatch
	}

	if err := m.storage.Delete(ctx, acc.ID, acc.Version); err != nil {
		return err
	}

	m.log.InfoContext(ctx, "account deleted",
		logger.AccountID(acc.ID),
		logger.Username(acc.Username),
		logger.Component("account"),
	)
	return nil
}

// Ban marks the account banned with a reason and an expiry. Admin
// collaborator surface; not reachable through the gated operations.
func (m *Manager) Ban(ctx context.Context, accountID uuid.UUID, reason string, until time.Time) error {
	acc, err := m.storage.GetByID(ctx, accountID)
	if err != nil {
		return err
	}

	acc.IsBanned = true
	acc.BannedReason = &reason
	acc.BannedUntil = &until
	acc.UpdatedAt = m.now()
	if err := m.storage.Update(ctx, acc); err != nil {
		return err
	}

	m.log.InfoContext(ctx, "account banned",
		logger.AccountID(acc.ID),
		slog.String("reason", reason),
		slog.Time("until", until),
		logger.Component("account"),
	)
	return nil
}

// Unban clears the ban flag, reason and expiry, restoring the account
// to its prior onboarding state.
func (m *Manager) Unban(ctx context.Context, accountID uuid.UUID) error {
	acc, err := m.storage.GetByID(ctx, accountID)
	if err != nil {
		return err
	}

	acc.IsBanned = false
	acc.BannedReason = nil
	acc.BannedUntil = nil
	acc.UpdatedAt = m.now()
	if err := m.storage.Update(ctx, acc); err != nil {
		return err
	}

	m.log.InfoContext(ctx, "account unbanned",
		logger.AccountID(acc.ID),
		logger.Component("account"),
	)
	return nil
}

// ExpiredBans returns all accounts whose ban expiry lies in the past,
// for the periodic unban sweep.
func (m *Manager) ExpiredBans(ctx context.Context) ([]Account, error) {
	return m.storage.ExpiredBans(ctx, m.now())
}

func (m *Manager) bannedError(acc *Account) *BannedError {
	e := &BannedError{}
	if acc.BannedReason != nil {
		e.Reason = *acc.BannedReason
	}
	if acc.BannedUntil != nil {
		e.Until = *acc.BannedUntil
		e.Remaining = CountdownUntil(*acc.BannedUntil, m.now())
	}
	return e
}
