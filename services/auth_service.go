package services

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"quickbite/entity"
	"quickbite/repository"
	"quickbite/utils"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// AuthService จัดการ business logic ของการ login/register
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

type RegisterIn struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register สร้าง user ใหม่ ถ้า email/username ซ้ำจะ error รายฟิลด์
func (s *AuthService) Register(in *RegisterIn) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	username := strings.TrimSpace(in.Username)

	errs := ValidationErrors{}
	if email == "" || !strings.Contains(email, "@") {
		errs["email"] = "a valid email is required"
	}
	if len(username) < 3 || len(username) > 20 {
		errs["username"] = "username must be between 3 and 20 characters"
	} else if !usernamePattern.MatchString(username) {
		errs["username"] = "username can only contain letters, numbers, and underscores"
	}
	if len(in.Password) < 8 {
		errs["password"] = "password must be at least 8 characters long"
	}
	if len(errs) > 0 {
		return nil, errs
	}

	if count, err := s.userRepo.CountByEmail(email); err != nil {
		return nil, err
	} else if count > 0 {
		return nil, ValidationErrors{"email": "email already registered"}
	}
	if count, err := s.userRepo.CountByUsername(username); err != nil {
		return nil, err
	} else if count > 0 {
		return nil, ValidationErrors{"username": "username already taken"}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	user := &entity.User{
		Email:        email,
		Username:     username,
		PasswordHash: string(hashed),
		IsActive:     true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login ตรวจสอบ credentials + ออก JWT
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}
	if !user.IsActive {
		return "", nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.IsAdmin, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}

// UpdateProfile รับเฉพาะฟิลด์โปรไฟล์ — ห้ามแก้ is_admin ผ่านทางนี้
func (s *AuthService) UpdateProfile(userID uint, updates map[string]any) (*entity.User, error) {
	allowed := map[string]bool{
		"first_name": true, "last_name": true, "phone": true,
		"address": true, "city": true, "postal_code": true,
	}
	filtered := make(map[string]any, len(updates))
	for k, v := range updates {
		if allowed[k] {
			filtered[k] = v
		}
	}
	if len(filtered) > 0 {
		if err := s.userRepo.Update(userID, filtered); err != nil {
			return nil, err
		}
	}
	return s.userRepo.FindByID(userID)
}
