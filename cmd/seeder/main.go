// Command seeder fills the database with fake users, groups, posts,
// comments, and follow edges for development.
package main

import (
	"log"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/scribehq/scribe/internal/models"
	"github.com/scribehq/scribe/pkg/config"
	"golang.org/x/crypto/bcrypt"
)

const (
	userCount    = 12
	groupCount   = 4
	postCount    = 80
	commentCount = 150
	followCount  = 25
)

func main() {
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()

	gdb := db.Postgres
	err = gdb.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Post{},
		&models.Comment{},
		&models.Follow{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}

	// Every seeded user logs in with this password.
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	var users []models.User
	for i := 0; i < userCount; i++ {
		user := models.User{
			Username:     strings.ToLower(gofakeit.Username()),
			Email:        gofakeit.Email(),
			DisplayName:  gofakeit.Name(),
			PasswordHash: string(hash),
		}
		if err := gdb.Create(&user).Error; err != nil {
			log.Printf("skip user: %v", err)
			continue
		}
		users = append(users, user)
	}
	log.Printf("Seeded %d users.", len(users))

	var groups []models.Group
	for i := 0; i < groupCount; i++ {
		group := models.Group{
			Slug:        gofakeit.Word() + "-" + gofakeit.Word(),
			Title:       gofakeit.BookTitle(),
			Description: gofakeit.Sentence(12),
		}
		if err := gdb.Create(&group).Error; err != nil {
			log.Printf("skip group: %v", err)
			continue
		}
		groups = append(groups, group)
	}
	log.Printf("Seeded %d groups.", len(groups))

	if len(users) == 0 {
		log.Fatal("No users seeded, nothing else to do.")
	}

	var posts []models.Post
	for i := 0; i < postCount; i++ {
		post := models.Post{
			Text:     gofakeit.Paragraph(1, 3, 12, " "),
			AuthorID: users[gofakeit.Number(0, len(users)-1)].ID,
		}
		if len(groups) > 0 && gofakeit.Bool() {
			post.GroupID = &groups[gofakeit.Number(0, len(groups)-1)].ID
		}
		if err := gdb.Create(&post).Error; err != nil {
			log.Printf("skip post: %v", err)
			continue
		}
		posts = append(posts, post)
	}
	log.Printf("Seeded %d posts.", len(posts))

	seeded := 0
	for i := 0; i < commentCount && len(posts) > 0; i++ {
		comment := models.Comment{
			Text:     gofakeit.Sentence(10),
			PostID:   posts[gofakeit.Number(0, len(posts)-1)].ID,
			AuthorID: users[gofakeit.Number(0, len(users)-1)].ID,
		}
		if err := gdb.Create(&comment).Error; err != nil {
			log.Printf("skip comment: %v", err)
			continue
		}
		seeded++
	}
	log.Printf("Seeded %d comments.", seeded)

	seeded = 0
	for i := 0; i < followCount; i++ {
		follower := users[gofakeit.Number(0, len(users)-1)]
		author := users[gofakeit.Number(0, len(users)-1)]
		if follower.ID == author.ID {
			continue
		}
		follow := models.Follow{UserID: follower.ID, AuthorID: author.ID}
		// Duplicate pairs bounce off the unique index; that is fine.
		if err := gdb.Create(&follow).Error; err != nil {
			continue
		}
		seeded++
	}
	log.Printf("Seeded %d follow edges.", seeded)
}
