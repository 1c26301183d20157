package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/frontandrew/motofleet/internal/domain"
	"github.com/frontandrew/motofleet/internal/infrastructure/notifier"
	"github.com/frontandrew/motofleet/internal/pkg/config"
	"github.com/frontandrew/motofleet/internal/pkg/redis"
	"github.com/frontandrew/motofleet/internal/repository/cached"
	"github.com/frontandrew/motofleet/internal/repository/memory"
)

func main() {
	fmt.Println("=========================================")
	fmt.Println("MotoFleet Redis check")
	fmt.Println("=========================================")
	fmt.Println()

	cfg, err := config.Load()
	if err != nil {
		fail("Failed to load config", err)
	}

	client, err := redis.NewClient(redis.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		fail("Failed to connect to Redis", err)
	}
	defer client.Close()

	fmt.Printf("✅ Connected to Redis (%s)\n\n", cfg.Redis.Address())

	ctx := context.Background()

	// 1. PING
	fmt.Println("Test 1: PING")
	if err := client.Ping(ctx); err != nil {
		fail("PING failed", err)
	}
	fmt.Println("✅ PING successful")
	fmt.Println()

	// 2. SET/GET/DEL
	fmt.Println("Test 2: SET/GET/DEL")
	testKey := "test:motofleet:key"
	if err := client.Set(ctx, testKey, "ok", time.Minute); err != nil {
		fail("SET failed", err)
	}
	value, err := client.Get(ctx, testKey)
	if err != nil || value != "ok" {
		fail("GET returned wrong value", err)
	}
	if err := client.Del(ctx, testKey); err != nil {
		fail("DEL failed", err)
	}
	if _, err := client.Get(ctx, testKey); !redis.IsNil(err) {
		fail("Key should not exist but does", err)
	}
	fmt.Println("✅ SET/GET/DEL successful")
	fmt.Println()

	// 3. Compteur de non lues en cache
	fmt.Println("Test 3: unread counter cache")
	notifications := cached.NewNotificationRepository(memory.NewRegistry().Notifications, client)
	notification, err := domain.NewNotification(domain.NotificationProps{
		Client:           domain.NewGestionnaire(),
		Message:          "Vérification Redis",
		DateNotification: time.Now(),
	})
	if err != nil {
		fail("Failed to build notification", err)
	}
	saved, err := notifications.Save(ctx, notification)
	if err != nil {
		fail("Failed to save notification", err)
	}
	count, err := notifications.UnreadCount(ctx)
	if err != nil || count != 1 {
		fail(fmt.Sprintf("Unread count = %d, want 1", count), err)
	}
	fmt.Printf("✅ Unread count = %d\n", count)
	fmt.Println()

	// 4. Publication
	fmt.Println("Test 4: PUBLISH")
	dispatcher := notifier.NewRedisDispatcher(client, cfg.Redis.Channel)
	if err := dispatcher.Dispatch(ctx, saved); err != nil {
		fail("PUBLISH failed", err)
	}
	fmt.Printf("✅ Notification %d published on %s\n", saved.ID(), cfg.Redis.Channel)
	fmt.Println()

	_, _ = notifications.Delete(ctx, saved.ID())

	fmt.Println("=========================================")
	fmt.Println("✅ All Redis checks passed!")
	fmt.Println("=========================================")
}

func fail(msg string, err error) {
	if err != nil {
		fmt.Printf("❌ %s: %v\n", msg, err)
	} else {
		fmt.Printf("❌ %s\n", msg)
	}
	os.Exit(1)
}
