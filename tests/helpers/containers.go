// Helpers for running database-backed tests with testcontainers.
// Image names can be overridden with DB_IMAGE / POSTGRES_IMAGE.

package helpers

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testDBUser     = "testuser"
	testDBPassword = "testpass"
	testDBRootPass = "rootpass"
)

// DBContainer bundles a started database container with the connection
// coordinates tests need.
type DBContainer struct {
	Container testcontainers.Container
	Host      string
	Port      string
	Database  string
	User      string
	Password  string
}

// Terminate stops the container, logging instead of failing on cleanup
// errors.
func (c *DBContainer) Terminate(t *testing.T) {
	if c.Container == nil {
		return
	}
	if err := c.Container.Terminate(context.Background()); err != nil {
		t.Logf("Failed to terminate database container: %v", err)
	}
}

// StartMariaDB starts a throwaway MariaDB container with a uniquely
// named database and waits until it accepts connections.
func StartMariaDB(t *testing.T) *DBContainer {
	t.Helper()
	ctx := context.Background()

	image := os.Getenv("DB_IMAGE")
	if image == "" {
		image = "mariadb:11"
	}
	dbName := "listings_" + uuid.New().String()[:8]

	tcpPort, err := nat.NewPort("tcp", "3306")
	if err != nil {
		t.Fatalf("Failed to create DB port: %v", err)
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{string(tcpPort)},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": testDBRootPass,
				"MYSQL_DATABASE":      dbName,
				"MYSQL_USER":          testDBUser,
				"MYSQL_PASSWORD":      testDBPassword,
			},
			WaitingFor: wait.ForListeningPort(tcpPort).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start MariaDB container: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}
	port, err := container.MappedPort(ctx, tcpPort)
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	waitForMySQL(t, host, port.Port(), dbName)

	return &DBContainer{
		Container: container,
		Host:      host,
		Port:      port.Port(),
		Database:  dbName,
		User:      testDBUser,
		Password:  testDBPassword,
	}
}

// StartPostgres starts a throwaway PostgreSQL container.
func StartPostgres(t *testing.T) *DBContainer {
	t.Helper()
	ctx := context.Background()

	image := os.Getenv("POSTGRES_IMAGE")
	if image == "" {
		image = "postgres:17"
	}
	dbName := "listings_" + uuid.New().String()[:8]

	tcpPort, err := nat.NewPort("tcp", "5432")
	if err != nil {
		t.Fatalf("Failed to create DB port: %v", err)
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{string(tcpPort)},
			Env: map[string]string{
				"POSTGRES_PASSWORD": testDBPassword,
				"POSTGRES_USER":     testDBUser,
				"POSTGRES_DB":       dbName,
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL container: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}
	port, err := container.MappedPort(ctx, tcpPort)
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	return &DBContainer{
		Container: container,
		Host:      host,
		Port:      port.Port(),
		Database:  dbName,
		User:      testDBUser,
		Password:  testDBPassword,
	}
}

// waitForMySQL pings the server until it really answers; the listening
// port opens before the first init pass finishes.
func waitForMySQL(t *testing.T, host, port, dbName string) {
	t.Helper()

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", testDBUser, testDBPassword, host, port, dbName)
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("Failed to open MariaDB connection: %v", err)
	}
	defer db.Close()

	for i := 0; i < 30; i++ {
		if err = db.Ping(); err == nil {
			return
		}
		time.Sleep(1 * time.Second)
	}
	t.Fatalf("MariaDB not ready after 30 seconds: %v", err)
}
