package config

import (
	"flag"
	"os"
	"time"

	"github.com/travelpath/server/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-l string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-s string   token HMAC secret key
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-m int      max photo size, MiB
//	-q string   places catalog endpoint
//	-k string   places catalog API key
//	-t int      planner daily time budget, hours
//	-n int      planner minimum viable candidate count
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-l", "-d", "-s", "-u", "-p", "-b", "-g", "-e", "-m", "-q", "-k", "-t", "-n"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port for the gRPC server")
	fs.StringVar(&config.EndpointAddrHTTP, "l", config.EndpointAddrHTTP, "address and port for the HTTP server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	maxPhotoMiB := fs.Int("m", int(config.MaxPhotoBytes>>20), "max photo size (in MiB)")

	fs.StringVar(&config.PlacesEndpoint, "q", config.PlacesEndpoint, "places catalog endpoint")
	fs.StringVar(&config.PlacesAPIKey, "k", config.PlacesAPIKey, "places catalog API key")

	dailyBudgetHours := fs.Int("t", int(config.DailyTimeBudget.Hours()), "planner daily time budget (in hours)")
	fs.IntVar(&config.MinViableCandidates, "n", config.MinViableCandidates, "planner minimum viable candidate count")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.MaxPhotoBytes = int64(*maxPhotoMiB) << 20
	config.DailyTimeBudget = time.Duration(*dailyBudgetHours) * time.Hour
}
