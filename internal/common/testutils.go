package common

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestBroker connects to a fresh RabbitMQ container with the newsletter topology declared.
func TestBroker(t *testing.T) *MessageBroker {
	broker, err := NewMessageBroker(TestRabbitMQ(t))
	if err != nil {
		t.Fatalf("could not connect to rabbitmq: %v", err)
	}

	t.Cleanup(func() { broker.Close() })

	if err := SetupNewsletterExchange(broker); err != nil {
		t.Fatalf("could not set up the newsletter exchange: %v", err)
	}

	return broker
}

func TestRabbitMQ(t *testing.T) string {
	ctx := context.Background()

	container, err := rabbitmq.Run(ctx, "rabbitmq:3.12.11-management-alpine", rabbitmq.WithAdminUsername("guest"), rabbitmq.WithAdminPassword("guest"))
	if err != nil {
		t.Fatalf("could not start rabbitmq container: %v", err)
	}

	connURL, err := container.AmqpURL(ctx)
	if err != nil {
		t.Fatalf("could not get rabbitmq connection URL: %v", err)
	}

	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Fatalf("could not terminate container: %v", err)
		}
	})

	return connURL
}

// TestPostgres starts an empty postgres container and returns its connection URL.
func TestPostgres(t *testing.T) string {
	ctx := context.Background()

	c, err := postgres.Run(ctx,
		"docker.io/postgres:14.11-bookworm",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2).WithStartupTimeout(30*time.Second)))
	if err != nil {
		t.Fatalf("could not start postgres container: %v", err)
	}

	t.Cleanup(func() {
		c.Terminate(ctx)
	})

	connURL, err := c.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %s", err)
	}

	return connURL
}

// TestDB starts a postgres container and migrates it. The source parameter changes according to the
// caller file location relative to the migrations directory, e.g. "file://../../migrations".
func TestDB(source string, t *testing.T) *sql.DB {
	connURL := TestPostgres(t)

	m, err := MigrateUp(source, connURL)
	if err != nil {
		t.Fatalf("could not run migrations: %v", err)
	}

	db, err := sql.Open("postgres", connURL)
	if err != nil {
		t.Fatalf("could not open database: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
		m.Drop()
		m.Close()
	})

	return db
}
