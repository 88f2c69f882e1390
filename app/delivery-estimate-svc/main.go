package main

import (
	"fmt"
	logger "log"
	"os"
	"os/signal"
	"syscall"

	"github.com/OpenStorefrontTools/deliverydate/app/delivery-estimate-svc/estimatesvc"
	"github.com/ardanlabs/conf"
	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"
)

var build = "develop"

func main() {
	log := logger.New(os.Stdout, "DELIVERY_SVC : ", logger.LstdFlags|logger.Lmicroseconds|logger.Lshortfile)
	if err := run(log); err != nil {
		log.Printf("main: error: %v", err)
		os.Exit(1)
	}
}

func run(log *logger.Logger) error {
	if err := godotenv.Load(); err != nil {
		log.Println("main: No .env file found (using environment variables)")
	}

	var cfg struct {
		conf.Version
		Args conf.Args
		Web  struct {
			HTTPPort int `conf:"default:8080"`
		}
		NATS struct {
			URL                  string `conf:"default:"`
			EstimateEventSubject string `conf:"default:delivery-estimates"`
		}
	}
	cfg.Version.SVN = build
	cfg.Version.Desc = "Serve storefront delivery date estimates"
	const prefix = "DELIVERY"
	if err := conf.Parse(os.Args[1:], prefix, &cfg); err != nil {
		switch err {
		case conf.ErrHelpWanted:
			usage, err := conf.Usage(prefix, &cfg)
			if err != nil {
				return fmt.Errorf("generating config usage: %w", err)
			}
			fmt.Println(usage)
			return nil
		case conf.ErrVersionWanted:
			version, err := conf.VersionString(prefix, &cfg)
			if err != nil {
				return fmt.Errorf("generating config version: %w", err)
			}
			fmt.Println(version)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	// =========================================================================
	// App Starting

	log.Printf("main : Started : Application initializing : version %s", build)
	defer log.Println("main: Completed")

	out, err := conf.String(&cfg)
	if err != nil {
		return fmt.Errorf("generating config for output: %w", err)
	}
	log.Printf("main: Config :\n%v\n", out)

	// =========================================================================
	// Optional NATS for estimate analytics events

	var natsConn *nats.Conn
	if cfg.NATS.URL != "" {
		log.Printf("main: Connecting to NATS at %s", cfg.NATS.URL)
		natsConn, err = nats.Connect(cfg.NATS.URL)
		if err != nil {
			return fmt.Errorf("connecting to nats: %w", err)
		}
		defer natsConn.Close()
	} else {
		log.Println("main: No NATS url configured, estimate events disabled")
	}

	// Make a channel to listen for an interrupt or terminate signal from the OS.
	// Use a buffered channel because the signal package requires it.
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	return estimatesvc.StartService(log, cfg.Web.HTTPPort, natsConn, cfg.NATS.EstimateEventSubject, shutdown)
}
