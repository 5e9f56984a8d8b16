package main

import (
	"fmt"
	"log"
	"time"

	"oh-server/config"
	"oh-server/di"
)

func main() {
	container := di.NewContainer("prod")

	fmt.Println("seeding location catalog!")
	if err := container.LocationSeederService.SeedLocations(); err != nil {
		log.Fatalf("Initial catalog seed failed: %v", err)
	}

	fmt.Println("starting periodic job!")
	container.LocationSeederService.StartPeriodicJob(config.LOCATIONS_SEEDER_SCHEDULE_MINUTES * time.Minute)

	fmt.Println("starting server!")
	container.HoursHttpServer.Start()
}
