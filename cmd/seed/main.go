// Command seed populates Redis with a default admin account and a handful of
// demo users and jobs. Safe to re-run: existing accounts are left alone.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/maintenox/maintenance-system/internal/core/domain"
	"github.com/maintenox/maintenance-system/internal/core/ports"
	"github.com/maintenox/maintenance-system/internal/core/service"
	"github.com/maintenox/maintenance-system/internal/infrastructure/config"
	"github.com/maintenox/maintenance-system/internal/infrastructure/repository"
	"github.com/maintenox/maintenance-system/internal/infrastructure/storage"
	"github.com/maintenox/maintenance-system/pkg/logger"
)

type seedUser struct {
	ports.SignupInput
	jobs []ports.CreateJobInput
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Service: "maintenox-seed", Pretty: true})

	rdb, err := storage.Connect(ctx, storage.RedisConfig{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	store := storage.NewRedisStore(rdb)
	userRepo := repository.NewUserRepository(store)
	jobRepo := repository.NewJobRepository(store)
	sessionStore := repository.NewSessionStore(store)

	authService := service.NewAuthService(userRepo, sessionStore, nil,
		cfg.JWTSecret, cfg.TokenTTL, cfg.BcryptCost, log)
	jobService := service.NewJobService(jobRepo, userRepo, nil, log)

	seeds := []seedUser{
		{
			SignupInput: ports.SignupInput{
				Name:     "System Admin",
				Email:    "admin@maintenox.local",
				Password: "admin123",
				Role:     domain.RoleAdmin,
			},
		},
		{
			SignupInput: ports.SignupInput{
				Name:     "Jane Carter",
				Email:    "jane@maintenox.local",
				Password: "password123",
				Role:     domain.RoleUser,
			},
			jobs: []ports.CreateJobInput{
				{
					Title:       "Replace lobby air filter",
					Description: "Quarterly filter change for the lobby HVAC unit.",
					Category:    domain.CategoryHVAC,
				},
				{
					Title:       "Fix dripping faucet in restroom 2B",
					Description: "Tenant reported a steady drip from the cold tap.",
					Category:    domain.CategoryPlumbing,
				},
			},
		},
		{
			SignupInput: ports.SignupInput{
				Name:     "Luis Ortega",
				Email:    "luis@maintenox.local",
				Password: "password123",
				Role:     domain.RoleUser,
			},
			jobs: []ports.CreateJobInput{
				{
					Title:       "Repaint east stairwell",
					Description: "Scuffed walls on floors 3 through 5.",
					Category:    domain.CategoryPainting,
				},
			},
		},
	}

	created, skipped := 0, 0
	var admin ports.Actor

	for _, seed := range seeds {
		user, err := authService.Signup(ctx, seed.SignupInput)
		switch {
		case errors.Is(err, domain.ErrUserExists):
			log.Info().Str("email", seed.Email).Msg("user exists, skipping")
			existing, ferr := authService.FindUserByEmail(ctx, seed.Email)
			if ferr != nil {
				log.Fatal().Err(ferr).Str("email", seed.Email).Msg("lookup failed")
			}
			user = existing
			skipped++
		case err != nil:
			log.Fatal().Err(err).Str("email", seed.Email).Msg("signup failed")
		default:
			log.Info().Str("email", seed.Email).Str("role", seed.Role).Msg("user created")
			created++
		}

		if user.Role == domain.RoleAdmin && admin.UserID == "" {
			admin = ports.Actor{UserID: user.ID, Name: user.Name, Role: user.Role}
		}

		for _, jobInput := range seed.jobs {
			jobInput.AssignedTo = user.ID
			job, err := jobService.Create(ctx, admin, jobInput)
			if err != nil {
				log.Fatal().Err(err).Str("title", jobInput.Title).Msg("job creation failed")
			}
			log.Info().Str("id", job.ID).Str("title", job.Title).Msg("job created")
		}
	}

	log.Info().Int("created", created).Int("skipped", skipped).Msg("seed complete")
}
