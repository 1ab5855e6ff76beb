package utils

import (
	"log"

	"coursecraft/config"
	"coursecraft/database"
	"coursecraft/models"

	"github.com/robfig/cron/v3"
)

// InitializeShopifySyncScheduler sets up the nightly catalog reconcile. A
// failed id write after a remote create, or an edit made while Shopify was
// unreachable, gets repaired on the next run.
func InitializeShopifySyncScheduler() {
	if !config.ShopifyEnabled() {
		log.Println("[SHOPIFY-SCHEDULER] Shopify bridge not configured, scheduler disabled")
		return
	}

	log.Println("[SHOPIFY-SCHEDULER] Initializing Shopify sync scheduler...")

	c := cron.New()

	// Run daily at 2 AM to re-sync linked courses
	c.AddFunc("0 2 * * *", func() {
		log.Println("[SHOPIFY-SCHEDULER] Running nightly catalog reconcile...")
		ReconcileShopifyCourses(NewShopifyClient())
	})

	c.Start()
	log.Println("[SHOPIFY-SCHEDULER] Shopify sync scheduler started - runs daily at 2 AM")
}

// ReconcileShopifyCourses re-syncs every course linked to a remote product.
func ReconcileShopifyCourses(client *ShopifyClient) {
	db := database.Database.Db

	var courses []models.Course
	if err := db.Where("shopify_product_id <> '' AND is_deleted = ?", false).Find(&courses).Error; err != nil {
		log.Printf("[SHOPIFY-SCHEDULER] Error fetching linked courses: %v", err)
		return
	}

	log.Printf("[SHOPIFY-SCHEDULER] Found %d linked courses", len(courses))

	for i := range courses {
		if _, _, err := client.SyncCourse(db, &courses[i]); err != nil {
			log.Printf("[SHOPIFY-SCHEDULER] Failed to sync course %d: %v", courses[i].ID, err)
			continue
		}
	}

	log.Println("[SHOPIFY-SCHEDULER] Catalog reconcile completed")
}
