package user

import (
	"context"
	"strings"
	"sync"

	"cooktok/domain"
	"cooktok/entities"
)

type (
	// AuthState is a point-in-time snapshot of the auth screen's observable
	// state. CurrentUser is nil while logged out, ErrorMessage empty while
	// no error is pending.
	AuthState struct {
		CurrentUser  *entities.User
		IsLoading    bool
		ErrorMessage string
	}

	// AuthService owns the session. The current user is held here, by the
	// caller-facing layer, rather than cached inside the repository, so
	// Logout cannot desynchronize from a stale data-layer cache.
	AuthService interface {
		Login(ctx context.Context, email, password string) (*entities.User, error)
		Signup(ctx context.Context, displayName, email, password string) (*entities.User, error)
		Logout()
		ClearError()
		Resume(ctx context.Context, id uint) (*entities.User, error)
		State() AuthState
	}

	authService struct {
		userRepository UserRepository

		mu    sync.RWMutex
		state AuthState
	}
)

func NewAuthService(userRepository UserRepository) AuthService {
	return &authService{userRepository: userRepository}
}

func (s *authService) Login(ctx context.Context, email, password string) (*entities.User, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		s.setError(domain.ErrCredentialsRequired.Error())
		return nil, domain.ErrCredentialsRequired
	}

	s.beginLoading()
	defer s.endLoading()

	user, err := s.userRepository.Login(ctx, email, password)
	if err != nil {
		s.setError("Login failed: " + err.Error())
		return nil, err
	}
	if user == nil {
		s.setError(domain.ErrInvalidCredentials.Error())
		return nil, domain.ErrInvalidCredentials
	}

	s.setCurrentUser(user)
	return user, nil
}

func (s *authService) Signup(ctx context.Context, displayName, email, password string) (*entities.User, error) {
	if strings.TrimSpace(displayName) == "" || strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		s.setError(domain.ErrFieldsRequired.Error())
		return nil, domain.ErrFieldsRequired
	}

	s.beginLoading()
	defer s.endLoading()

	newUser := &entities.User{DisplayName: displayName, Email: email, Password: password}
	id, err := s.userRepository.Signup(ctx, newUser)
	if err != nil {
		s.setError("Signup failed: " + err.Error())
		return nil, err
	}
	if id == 0 {
		s.setError(domain.ErrCreateAccount.Error())
		return nil, domain.ErrCreateAccount
	}

	// Local copy with the generated id; the row is not re-read.
	created := &entities.User{
		ID:          id,
		DisplayName: displayName,
		Email:       email,
		Password:    password,
	}
	s.setCurrentUser(created)
	return created, nil
}

func (s *authService) Logout() {
	s.mu.Lock()
	s.state.CurrentUser = nil
	s.state.ErrorMessage = ""
	s.mu.Unlock()
}

func (s *authService) ClearError() {
	s.mu.Lock()
	s.state.ErrorMessage = ""
	s.mu.Unlock()
}

// Resume re-resolves the session from a last-known user id, the startup
// lookup a fresh process performs. It prefers the in-memory session when
// the ids already match. A missing row leaves the session logged out.
func (s *authService) Resume(ctx context.Context, id uint) (*entities.User, error) {
	s.mu.RLock()
	current := s.state.CurrentUser
	s.mu.RUnlock()
	if current != nil && current.ID == id {
		return current, nil
	}

	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	s.setCurrentUser(user)
	return user, nil
}

func (s *authService) State() AuthState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *authService) beginLoading() {
	s.mu.Lock()
	s.state.IsLoading = true
	s.state.ErrorMessage = ""
	s.mu.Unlock()
}

func (s *authService) endLoading() {
	s.mu.Lock()
	s.state.IsLoading = false
	s.mu.Unlock()
}

func (s *authService) setError(msg string) {
	s.mu.Lock()
	s.state.ErrorMessage = msg
	s.mu.Unlock()
}

func (s *authService) setCurrentUser(user *entities.User) {
	s.mu.Lock()
	s.state.CurrentUser = user
	s.state.ErrorMessage = ""
	s.mu.Unlock()
}
