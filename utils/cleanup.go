package utils

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

const maxRetries = 3
const retryDelay = 2 * time.Minute

// RunScheduledCacheSweep clears the cached view payloads daily at 1 AM with
// retries, so a stale entry never outlives the day it was rendered on.
func RunScheduledCacheSweep(cache *ViewCache, resourceTypes []string) *cron.Cron {
	c := cron.New()

	c.AddFunc("0 1 * * *", func() {
		log.Println("running scheduled cache sweep...")

		var retries int
		for retries < maxRetries {
			err := sweepAll(cache, resourceTypes)
			if err == nil {
				log.Println("cache sweep successful")
				return
			}
			log.Printf("cache sweep failed: %v", err)
			retries++
			time.Sleep(retryDelay)
		}
		log.Printf("cache sweep gave up after %d attempts", maxRetries)
	})

	c.Start()
	return c
}

func sweepAll(cache *ViewCache, resourceTypes []string) error {
	ctx := context.Background()
	for _, resourceType := range resourceTypes {
		if err := cache.InvalidateCache(ctx, resourceType); err != nil {
			return err
		}
	}
	return nil
}
