package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"anonchat/contract"
	"anonchat/domain"
	"anonchat/infrastructure/storage"
	"anonchat/internal"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
	"github.com/redis/go-redis/v9"
	"github.com/samber/lo"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// tailLength bounds how much history each refresh renders.
const tailLength = 25

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Viewer error: %v\n", err)
	}
	os.Exit(code)
}

// run subscribes read-only to the shared stream and re-renders the tail of
// the history as a table on every snapshot. No identity, no gating: the
// viewer never writes.
func run() (int, error) {
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	logger := internal.GetLoggerFromString(config.LogLevel)

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

	collection := storage.NewMessageCollection(client, logger)
	sink := contract.SnapshotFunc(func(_ context.Context, snapshot []domain.Message) error {
		renderSnapshot(snapshot)
		return nil
	})

	unsubscribe, err := collection.Subscribe(ctx, sink)
	if err != nil {
		return exitRuntime, err
	}
	defer unsubscribe()

	logger.Info("Viewer connected, waiting for messages", "addr", config.RedisAddr)
	<-ctx.Done()
	logger.Info("Stopping viewer...")
	return exitOK, nil
}

func renderSnapshot(snapshot []domain.Message) {
	tail := snapshot
	if len(tail) > tailLength {
		tail = tail[len(tail)-tailLength:]
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Time", "Sender", "Message"})
	for _, message := range tail {
		table.Append([]string{
			message.CreatedAt.Local().Format("15:04:05"),
			message.Sender.DisplayName,
			message.Text,
		})
	}
	table.Render()

	senders := storage.LatestSenders(snapshot)
	fmt.Printf("%d message(s), recent senders: %s\n\n",
		len(snapshot), strings.Join(lo.Slice(senders, 0, 5), ", "))
}
