package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/JSN05/user-accounts/internal/logger"
	"github.com/JSN05/user-accounts/internal/models"
)

// Error variables
var (
	ErrEmailAlreadyTaken  = errors.New("email already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidPassword    = errors.New("password confirmation does not match")
	ErrAccountLocked      = errors.New("account is locked due to too many failed login attempts")
)

const (
	// loginAttemptThreshold is the number of tolerated consecutive
	// failures. The lock trips when the counter exceeds it.
	loginAttemptThreshold = 5

	defaultLockoutWindow = 30 * time.Minute
)

// fillerPasswordHash is compared against when the account does not
// exist, so the bcrypt step runs on every login and timing does not
// reveal whether the email is registered.
const fillerPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user models.UserDB) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	IncrementAttempt(ctx context.Context, email string, now time.Time) (int, error)
	ResetAttempt(ctx context.Context, email string) error
}

// JWTGenerator defines an interface for generating session tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, email string) (string, error)
}

// AuthService handles registration, login with attempt lockout, and
// password changes.
type AuthService struct {
	reader      UserReader
	writer      UserWriter
	jwt         JWTGenerator
	kafkaWriter KafkaWriter

	threshold int
	window    time.Duration
	now       func() time.Time
}

// AuthOpt configures an AuthService.
type AuthOpt func(*AuthService)

// WithLoginThreshold overrides the tolerated failed-attempt count.
func WithLoginThreshold(threshold int) AuthOpt {
	return func(s *AuthService) { s.threshold = threshold }
}

// WithLockoutWindow overrides the lockout duration measured from the
// last counter mutation.
func WithLockoutWindow(window time.Duration) AuthOpt {
	return func(s *AuthService) { s.window = window }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) AuthOpt {
	return func(s *AuthService) { s.now = now }
}

// NewAuthService creates a new AuthService instance. kafkaWriter may be
// nil, in which case security events are not published.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator, kafkaWriter KafkaWriter, opts ...AuthOpt) *AuthService {
	svc := &AuthService{
		reader:      reader,
		writer:      writer,
		jwt:         jwt,
		kafkaWriter: kafkaWriter,
		threshold:   loginAttemptThreshold,
		window:      defaultLockoutWindow,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Register creates a new user with a hashed password.
func (svc *AuthService) Register(ctx context.Context, email, name, password, confirmPassword string) error {
	if password != confirmPassword {
		return ErrInvalidPassword
	}

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if existing != nil {
		logger.Log.Errorw("email already taken", "email", email)
		return ErrEmailAlreadyTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	user := models.UserDB{
		UserID:       uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hashedPassword),
	}
	if err := svc.writer.Save(ctx, user); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	return nil
}

// Login authenticates a user. It returns the session descriptor on
// success, (nil, nil) on ordinary bad credentials, and ErrAccountLocked
// while the lockout window is open.
//
// The attempt counter locks the account once it exceeds the threshold;
// the lock holds until the window measured from the last counter
// mutation elapses, after which the counter is reset and the login is
// evaluated as if unlocked. The password comparison runs on every call,
// against a filler hash when the email is unknown.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.LoginResult, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}

	if user != nil && user.Attempt > svc.threshold {
		if user.UpdatedOn != nil && svc.now().Before(user.UpdatedOn.Add(svc.window)) {
			logger.Log.Infow("login rejected, account locked",
				"email", email,
				"attempt", user.Attempt,
				"updated_on", user.UpdatedOn,
			)
			return nil, ErrAccountLocked
		}

		// Lock expired: clear the counter and evaluate as unlocked.
		if err := svc.writer.ResetAttempt(ctx, email); err != nil {
			logger.Log.Errorw("failed to reset attempt counter", "err", err)
			return nil, err
		}
		user.Attempt = 0
	}

	hash := fillerPasswordHash
	if user != nil {
		hash = user.PasswordHash
	}
	matches := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil

	if user == nil || !matches {
		// Unknown emails never touch a counter; there is no record to
		// count against.
		if user != nil {
			attempt, err := svc.writer.IncrementAttempt(ctx, email, svc.now())
			if err != nil {
				logger.Log.Errorw("failed to increment attempt counter", "err", err)
				return nil, err
			}

			kind := models.EventLoginFailed
			if attempt > svc.threshold {
				kind = models.EventAccountLocked
			}
			publishEvent(ctx, svc.kafkaWriter, models.SecurityEvent{
				EventID:   uuid.NewString(),
				Timestamp: svc.now().Unix(),
				Kind:      kind,
				UserID:    user.UserID.String(),
				Email:     email,
			})
		}
		return nil, nil
	}

	if err := svc.writer.ResetAttempt(ctx, email); err != nil {
		logger.Log.Errorw("failed to reset attempt counter", "err", err)
		return nil, err
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, err
	}

	return &models.LoginResult{
		Email:  user.Email,
		Name:   user.Name,
		UserID: user.UserID,
		Token:  token,
	}, nil
}

// ChangePassword replaces a user's password after verifying the old one.
func (svc *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword, confirmPassword string) error {
	if newPassword != confirmPassword {
		return ErrInvalidPassword
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)); err != nil {
		logger.Log.Errorw("old password mismatch", "user_id", userID)
		return ErrInvalidCredentials
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.UpdatePassword(ctx, userID, string(hashedPassword)); err != nil {
		logger.Log.Errorw("failed to update password", "err", err)
		return err
	}

	publishEvent(ctx, svc.kafkaWriter, models.SecurityEvent{
		EventID:   uuid.NewString(),
		Timestamp: svc.now().Unix(),
		Kind:      models.EventPasswordChanged,
		UserID:    user.UserID.String(),
		Email:     user.Email,
	})

	return nil
}
