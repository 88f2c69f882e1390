package main

import (
	"fmt"
	logger "log"
	"os"
	"time"

	"github.com/OpenStorefrontTools/deliverydate/business/data/zippref"
	"github.com/OpenStorefrontTools/deliverydate/business/delivery"
	"github.com/OpenStorefrontTools/deliverydate/foundation/database"
	"github.com/ardanlabs/conf"
)

var build = "develop"

//delivery-estimate-cli checks delivery dates from the command line. The last
//ZIP used is remembered in a local preferences database, the same way the
//storefront remembers it between visits.
func main() {
	log := logger.New(os.Stdout, "DELIVERY_CLI : ", logger.LstdFlags)
	if err := run(log); err != nil {
		log.Printf("main: error: %v", err)
		os.Exit(1)
	}
}

func run(log *logger.Logger) error {
	var cfg struct {
		conf.Version
		Args conf.Args
		DB   struct {
			Path string `conf:"default:deliverydate.db"`
		}
	}
	cfg.Version.SVN = build
	cfg.Version.Desc = "Check storefront delivery date estimates"
	const prefix = "DELIVERY_CLI"
	if err := conf.Parse(os.Args[1:], prefix, &cfg); err != nil {
		switch err {
		case conf.ErrHelpWanted:
			usage, err := conf.Usage(prefix, &cfg)
			if err != nil {
				return fmt.Errorf("generating config usage: %w", err)
			}
			fmt.Println(usage)
			printCommands()
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

	db, err := database.Open(database.Config{Path: cfg.DB.Path})
	if err != nil {
		return fmt.Errorf("opening preferences database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("main: error closing database: %v", err)
		}
	}()
	store, err := zippref.MakeStore(db)
	if err != nil {
		return fmt.Errorf("building zip preference store: %w", err)
	}

	switch cfg.Args.Num(0) {
	case "estimate", "":
		return runEstimate(store, cfg.Args.Num(1))
	case "forget":
		return store.Clear()
	default:
		printCommands()
		return fmt.Errorf("unknown command %q", cfg.Args.Num(0))
	}
}

//runEstimate prints per-method estimates for the given ZIP, falling back to
//the remembered ZIP when none is given and remembering a valid new one
func runEstimate(store *zippref.Store, zipCode string) error {
	if zipCode == "" {
		remembered, err := store.Get()
		if err != nil {
			return err
		}
		if remembered == "" {
			printCommands()
			return fmt.Errorf("no ZIP code given and none remembered")
		}
		zipCode = remembered
	}
	if !delivery.IsValidZipCode(zipCode) {
		return fmt.Errorf("%q is not a valid 5-digit US ZIP code", zipCode)
	}
	if err := store.Put(zipCode); err != nil {
		return err
	}

	calendar, err := delivery.MakeCalendar()
	if err != nil {
		return fmt.Errorf("building delivery calendar: %w", err)
	}
	fmt.Printf("Delivery estimates to %s:\n", zipCode)
	for _, estimate := range calendar.EstimatesForAllMethods(time.Now(), zipCode) {
		fmt.Printf("  %-19s $%5.2f  %d business day(s)  %s\n",
			estimate.Method.Name, estimate.Method.Price, estimate.TransitDays, estimate.DisplayMessage)
	}
	return nil
}

func printCommands() {
	fmt.Println("commands:")
	fmt.Println("  estimate [zip]  print delivery estimates (uses the remembered ZIP when omitted)")
	fmt.Println("  forget          clear the remembered ZIP")
}
