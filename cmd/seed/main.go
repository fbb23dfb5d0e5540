// Package main seeds a ColorPal database with demo users, colours and palettes.
//
// It opens the same data directory as the server, so stop the server first:
// the search index holds an exclusive lock.
//
// Usage:
//
//	DATA_PATH=~/.colorpal go run ./cmd/seed
//	DATA_PATH=~/.colorpal go run ./cmd/seed --users 4 --palettes 6
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/colorpal/colorpal-server/internal/auth"
	"github.com/colorpal/colorpal-server/internal/color"
	"github.com/colorpal/colorpal-server/internal/domain"
	cperrors "github.com/colorpal/colorpal-server/internal/errors"
	"github.com/colorpal/colorpal-server/internal/search"
	"github.com/colorpal/colorpal-server/internal/service"
	"github.com/colorpal/colorpal-server/internal/store/sqlite"
)

var (
	userCount    = flag.Int("users", 3, "Number of demo users to create")
	paletteCount = flag.Int("palettes", 4, "Palettes to generate per user")
	password     = flag.String("password", "password123", "Password for every demo user")
)

var companies = []string{"Farrow & Ball", "Benjamin Moore", "Dulux", "Sherwin-Williams"}

var accessLevels = []domain.Access{domain.AccessPublic, domain.AccessFriends, domain.AccessPrivate}

func main() {
	flag.Parse()

	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		dataPath = os.ExpandEnv("$HOME/.colorpal")
	}
	if err := os.MkdirAll(dataPath, 0o755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	fmt.Printf("Opening data directory: %s\n", dataPath)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	st, err := sqlite.Open(filepath.Join(dataPath, "colorpal.db"), logger)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer st.Close()

	idx, err := search.NewSearchIndex(search.Options{Dir: filepath.Join(dataPath, "search"), Logger: logger})
	if err != nil {
		log.Fatalf("Failed to open search index: %v", err)
	}
	defer idx.Close()

	key, err := auth.LoadOrGenerateKey(dataPath)
	if err != nil {
		log.Fatalf("Failed to load auth key: %v", err)
	}
	tokens, err := auth.NewTokenService(key, 15*time.Minute, 30*24*time.Hour)
	if err != nil {
		log.Fatalf("Failed to create token service: %v", err)
	}

	sessions := service.NewSessionService(st, tokens, logger)
	s := &seeder{
		auth:      service.NewAuthService(st, tokens, sessions, idx, logger),
		colors:    service.NewColorService(st, idx, logger),
		palettes:  service.NewPaletteService(st, idx, logger),
		social:    service.NewSocialService(st, logger),
		generator: service.NewGeneratorService(nil, logger),
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}

	ctx := context.Background()

	users := s.createUsers(ctx, *userCount)
	if len(users) == 0 {
		log.Fatal("No users created.")
	}

	total := 0
	for _, user := range users {
		fmt.Printf("\nSeeding palettes for %s (%s)\n", user.Name, user.ID)
		for range *paletteCount {
			p, err := s.createPalette(ctx, user)
			if err != nil {
				log.Printf("  Failed to create palette: %v", err)
				continue
			}
			total++
			fmt.Printf("  %-28s %-20s %s\n", p.Name, p.SchemeType, p.Access)
		}
	}

	s.befriendNeighbours(ctx, users)

	fmt.Printf("\nDone: %d users, %d palettes\n", len(users), total)
}

type seeder struct {
	auth      *service.AuthService
	colors    *service.ColorService
	palettes  *service.PaletteService
	social    *service.SocialService
	generator *service.GeneratorService
	rng       *rand.Rand
}

// createUsers registers demo users, skipping any that already exist.
func (s *seeder) createUsers(ctx context.Context, n int) []*domain.User {
	var users []*domain.User
	for i := 1; i <= n; i++ {
		req := service.RegisterRequest{
			Email:    fmt.Sprintf("demo%d@colorpal.test", i),
			Password: *password,
			Name:     fmt.Sprintf("Demo User %d", i),
		}
		resp, err := s.auth.Register(ctx, req)
		if errors.Is(err, cperrors.AlreadyExists("")) {
			login, err := s.auth.Login(ctx, service.LoginRequest{Email: req.Email, Password: req.Password})
			if err != nil {
				log.Printf("Failed to log in existing user %s: %v", req.Email, err)
				continue
			}
			fmt.Printf("Using existing user: %s\n", req.Email)
			users = append(users, login.User)
			continue
		}
		if err != nil {
			log.Printf("Failed to create user %s: %v", req.Email, err)
			continue
		}
		fmt.Printf("Created user: %s\n", req.Email)
		users = append(users, resp.User)
	}
	return users
}

// createPalette generates a scheme from a random base colour and saves both
// the swatches and the palette on behalf of user.
func (s *seeder) createPalette(ctx context.Context, user *domain.User) (*domain.Palette, error) {
	schemes := color.Schemes()
	scheme := schemes[s.rng.IntN(len(schemes))]
	base := color.Random(s.rng)

	generated, err := s.generator.Generate(service.GenerateRequest{BaseHex: base.Hex(), Scheme: string(scheme)})
	if err != nil {
		return nil, err
	}

	company := companies[s.rng.IntN(len(companies))]
	ids := make([]string, 0, len(generated.Colors))
	for i, sw := range generated.Colors {
		c, err := s.colors.Create(ctx, user.ID, service.CreateColorRequest{
			Name:    fmt.Sprintf("%s %d", scheme, i+1),
			Hex:     sw.Hex,
			Company: company,
			Code:    fmt.Sprintf("%s-%03d", sw.Hex[1:4], s.rng.IntN(1000)),
		})
		if err != nil {
			return nil, fmt.Errorf("create color %s: %w", sw.Hex, err)
		}
		ids = append(ids, c.ID)
	}

	return s.palettes.Create(ctx, user.ID, service.CreatePaletteRequest{
		Name:       fmt.Sprintf("%s %s", base.Hex(), scheme),
		SchemeType: string(scheme),
		ColorIDs:   ids,
		Access:     accessLevels[s.rng.IntN(len(accessLevels))],
	})
}

// befriendNeighbours makes each user friends with the next one so FRIENDS
// palettes have an audience.
func (s *seeder) befriendNeighbours(ctx context.Context, users []*domain.User) {
	for i := 0; i+1 < len(users); i++ {
		a, b := users[i], users[i+1]
		req, err := s.social.SendFriendRequest(ctx, a.ID, b.ID)
		if err != nil {
			log.Printf("Skipping friendship %s -> %s: %v", a.Name, b.Name, err)
			continue
		}
		if _, err := s.social.RespondToFriendRequest(ctx, b.ID, req.ID, service.RespondRequest{Action: domain.ActionAccept}); err != nil {
			log.Printf("Failed to accept friendship %s -> %s: %v", a.Name, b.Name, err)
			continue
		}
		fmt.Printf("Friends: %s <-> %s\n", a.Name, b.Name)
	}
}
