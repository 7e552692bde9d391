package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/barberbook/internal/config"
	"github.com/m04kA/barberbook/internal/domain"
	"github.com/m04kA/barberbook/internal/infra/storage"
	accountRepo "github.com/m04kA/barberbook/internal/infra/storage/account"
	"github.com/m04kA/barberbook/pkg/logger"
	"github.com/m04kA/barberbook/pkg/ptr"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

var (
	errMissingEmail    = errors.New("email is required")
	errShortPassword   = errors.New("password must be at least 8 characters")
	errInvalidSlug     = errors.New("slug must contain only lowercase letters, digits and dashes")
	errReservedSlug    = errors.New("slug is reserved")
	errMissingName     = errors.New("business name is required")
	errUnsupportedRole = errors.New("role must be owner or admin")
)

type params struct {
	Email    string
	Password string
	Slug     string
	Name     string
	Role     string
}

func main() {
	var p params
	configPath := flag.String("config", "config.toml", "path to config file")
	flag.StringVar(&p.Email, "email", "", "owner email")
	flag.StringVar(&p.Password, "password", "", "owner password (min 8 characters)")
	flag.StringVar(&p.Slug, "slug", "", "public booking slug")
	flag.StringVar(&p.Name, "name", "", "business display name")
	flag.StringVar(&p.Role, "role", string(domain.RoleOwner), "account role: owner or admin")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	account, err := newOwner(p, bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Invalid owner parameters: %v", err)
	}

	ctx := context.Background()

	db, err := storage.Open(ctx, cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	created, err := accountRepo.NewRepository(db).Create(ctx, account)
	if err != nil {
		if errors.Is(err, accountRepo.ErrDuplicate) {
			log.Fatal("Account with email %s or slug %s already exists", account.Email, p.Slug)
		}
		log.Fatal("Failed to create account: %v", err)
	}

	log.Info("Created %s account id=%s email=%s slug=%s", created.Role, created.ID, created.Email, *created.Slug)
}

// newOwner проверяет параметры и собирает аккаунт с bcrypt хэшем пароля
func newOwner(p params, cost int) (*domain.Account, error) {
	email := strings.ToLower(strings.TrimSpace(p.Email))
	if email == "" {
		return nil, errMissingEmail
	}
	if len(p.Password) < 8 {
		return nil, errShortPassword
	}

	slug := domain.NormalizeSlug(p.Slug)
	if len(slug) > domain.MaxSlugLength || !slugPattern.MatchString(slug) {
		return nil, errInvalidSlug
	}
	if domain.IsReservedSlug(slug) {
		return nil, fmt.Errorf("%w: %s", errReservedSlug, slug)
	}

	name := strings.TrimSpace(p.Name)
	if name == "" || len([]rune(name)) > domain.MaxBusinessNameLength {
		return nil, errMissingName
	}

	role := domain.Role(p.Role)
	if !role.CanManageSchedule() {
		return nil, errUnsupportedRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return &domain.Account{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Slug:         ptr.Ptr(slug),
		BusinessName: name,
	}, nil
}
