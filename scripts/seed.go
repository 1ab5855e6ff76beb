package main

import (
	"coursecraft/config"
	"coursecraft/database"
	"coursecraft/models"
	"log"

	"golang.org/x/crypto/bcrypt"
)

// Seeds a demo admin account and a starter catalog. Run once against a fresh
// database: go run ./scripts
func main() {
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin12345"), config.AppConfig.SaltRound)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin := models.User{
		FullName: "CourseCraft Admin",
		Email:    "admin@coursecraft.app",
		Password: string(hashed),
		Role:     "ADMIN",
	}
	if err := db.Where("email = ?", admin.Email).FirstOrCreate(&admin).Error; err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}
	log.Printf("Seeded admin user %s", admin.Email)

	courses := []models.Course{
		{
			Title:       "Go for Web Developers",
			Description: "Build and ship production web services in Go.",
			Price:       19900,
			Category:    "Programming",
			Rating:      4.8,
			IsPublished: true,
		},
		{
			Title:       "Figma Fundamentals",
			Description: "Design interfaces from wireframe to handoff.",
			Price:       9900,
			Category:    "Design",
			Rating:      4.6,
			IsPublished: true,
		},
		{
			Title:       "Marketing Analytics",
			Description: "Measure campaigns and report what matters.",
			Price:       14900,
			IsPublished: false,
		},
	}

	for i := range courses {
		courses[i].ApplyDefaults()
		if err := db.Where("title = ?", courses[i].Title).FirstOrCreate(&courses[i]).Error; err != nil {
			log.Fatalf("Failed to seed course %q: %v", courses[i].Title, err)
		}

		lessons := []models.Lesson{
			{CourseID: courses[i].ID, Title: "Welcome & course overview", VideoURL: "https://videos.coursecraft.app/intro.mp4", OrderIndex: 1},
			{CourseID: courses[i].ID, Title: "Getting set up", VideoURL: "https://videos.coursecraft.app/setup.mp4", OrderIndex: 2},
			{CourseID: courses[i].ID, Title: "First project", VideoURL: "https://videos.coursecraft.app/project.mp4", OrderIndex: 3},
		}
		for j := range lessons {
			if err := db.Where("course_id = ? AND title = ?", lessons[j].CourseID, lessons[j].Title).FirstOrCreate(&lessons[j]).Error; err != nil {
				log.Fatalf("Failed to seed lesson %q: %v", lessons[j].Title, err)
			}
		}
	}

	log.Println("Seeding completed successfully.")
}
