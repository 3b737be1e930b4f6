package main

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"anonchat/domain"
	"anonchat/errors"
	"anonchat/infrastructure/netaddr"
	"anonchat/infrastructure/storage"
	"anonchat/internal"
	"anonchat/projection"
	"anonchat/repositories"
	"anonchat/runtime"
	"anonchat/services"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// Exit codes to provide meaningful status to the operating system.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Chat terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, drives the session loop, and centralizes
// error reporting so deferred cleanup always executes before exit.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	logger := internal.GetLoggerFromString(config.LogLevel)

	// 2. Local cache (BadgerDB) and backing store (Redis)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).WithLoggingLevel(badger.ERROR))
	if err != nil {
		return exitRuntime, fmt.Errorf("local cache opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing local cache...")
		_ = db.Close()
	}()

	client := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
		DB:       config.RedisDB,
	})
	defer func() { _ = client.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := client.Ping(ctx).Err(); err != nil {
		return exitRuntime, fmt.Errorf("backing store unreachable at %s: %w", config.RedisAddr, err)
	}

	// 3. Wire the core
	collection := storage.NewMessageCollection(client, logger)
	directory := storage.NewNameDirectory(client)
	blocklist := storage.NewBlocklist(client)

	identityService := services.NewIdentityService(directory, repositories.NewIdentityRepository(db), logger)
	limiter := services.NewRateLimiter(repositories.NewQuotaRepository(db), logger, config.DailyMessageLimit)
	gate := services.NewBlocklistGate(blocklist)
	resolver := netaddr.NewResolver(
		&http.Client{Timeout: 10 * time.Second},
		repositories.NewAddressRepository(db),
		logger,
		config.AddressEndpoint,
		config.AddressFieldPath,
		config.AddressCacheTTL,
	)

	roster := domain.NewRoster(config.AdminNameList())
	timeline := projection.NewTimeline(newRenderer(roster).render)

	session := runtime.NewSession(
		logger, identityService, limiter, resolver,
		collection, timeline, roster, config.QuotaCheckInterval,
	)
	pipeline := services.NewSendPipeline(
		logger, gate, limiter, collection, timeline, session.CurrentIdentity,
		config.SendCooldown, config.MaxTextLength,
		config.ExternalAvatarRef, config.DefaultAvatarRef,
	)
	session.AttachPipeline(pipeline)
	defer session.Close()

	if err := session.Start(ctx); err != nil {
		return exitRuntime, err
	}

	// 4. Interactive loop
	lines := readLines(ctx)
	if session.State() == runtime.StateAwaitingName {
		if ok := promptForName(ctx, session, lines); !ok {
			return exitOK, nil
		}
	}
	color.Greenln("Connected. Type a message, or /profile, /logout, /quit.")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Shutdown signal received")
			return exitOK, nil
		case line, ok := <-lines:
			if !ok {
				return exitOK, nil
			}
			switch {
			case line == "/quit":
				return exitOK, nil
			case line == "/profile":
				printProfile(session)
			case line == "/logout":
				if err := session.Logout(); err != nil {
					color.Redln(err.Error())
					continue
				}
				if ok := promptForName(ctx, session, lines); !ok {
					return exitOK, nil
				}
			default:
				if err := session.Send(ctx, line); err != nil {
					printSendError(err)
				}
			}
		}
	}
}

// readLines pumps stdin into a channel so the main loop can also react to
// context cancellation.
func readLines(ctx context.Context) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			select {
			case <-ctx.Done():
				return
			case lines <- scanner.Text():
			}
		}
	}()
	return lines
}

// promptForName runs the name-entry state: ask for a display name and an
// optional avatar image path until the directory accepts the claim.
func promptForName(ctx context.Context, session *runtime.Session, lines <-chan string) bool {
	for {
		color.Cyanln("Enter your display name:")
		name, ok := <-lines
		if !ok {
			return false
		}
		color.Cyanln("Avatar image path (GIF/PNG/JPEG, optional, Enter to skip):")
		avatarPath, ok := <-lines
		if !ok {
			return false
		}

		var avatar []byte
		if trimmed := strings.TrimSpace(avatarPath); trimmed != "" {
			data, err := os.ReadFile(trimmed)
			if err != nil {
				color.Redln("Could not read avatar image:", err)
				continue
			}
			avatar = data
		}

		err := session.SubmitName(ctx, name, avatar)
		if err == nil {
			return true
		}
		switch {
		case stderrors.Is(err, errors.ErrNameTaken):
			color.Redln("This name is already taken by someone else, pick another one.")
		case stderrors.Is(err, errors.ErrUnsupportedAvatarFormat),
			stderrors.Is(err, errors.ErrAvatarTooLarge):
			color.Redln(err.Error())
		default:
			color.Redln("Registration failed:", err)
		}
	}
}

func printProfile(session *runtime.Session) {
	profile, err := session.Profile()
	if err != nil {
		color.Redln(err.Error())
		return
	}
	badge := ""
	if profile.Admin {
		badge = color.Green.Sprint(" [verified admin]")
	}
	fmt.Printf("%s%s\nMessages today: %d\n",
		color.Bold.Sprint(profile.Identity.DisplayName), badge, profile.MessageCount)
}

func printSendError(err error) {
	switch {
	case stderrors.Is(err, errors.ErrEmptyInput):
		color.Yellowln("Nothing to send, type a message first.")
	case stderrors.Is(err, errors.ErrBlocked):
		color.Redln("Your address is blocked and cannot send messages.")
	case stderrors.Is(err, errors.ErrQuotaExceeded):
		color.Redln("Daily message limit exceeded, try again tomorrow.")
	case stderrors.Is(err, errors.ErrSendInFlight):
		// Double submit, drop silently like a disabled send button would.
	default:
		color.Redln("Send failed:", err)
	}
}

// renderer prints only the messages appended since the previous update,
// and only moves the view when the follow-tail flag allows it. Updates
// arrive from both the subscription goroutine and the input loop, hence
// the mutex.
type renderer struct {
	mu     sync.Mutex
	roster domain.Roster
	shown  int
}

func newRenderer(roster domain.Roster) *renderer {
	return &renderer{roster: roster}
}

func (r *renderer) render(messages []domain.Message, followTail bool) {
	if !followTail {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(messages) < r.shown {
		r.shown = 0
	}
	for _, message := range messages[r.shown:] {
		name := color.Cyan.Sprint(message.Sender.DisplayName)
		if r.roster.IsAdmin(message.Sender.DisplayName) {
			name += color.Green.Sprint(" ✔")
		}
		timestamp := message.CreatedAt.Local().Format("Jan 2 15:04")
		fmt.Printf("%s  %s\n  %s\n", name, color.Gray.Sprint(timestamp), message.Text)
	}
	r.shown = len(messages)
}
