// Command seed creates a development database with sample catalog data.
// Usage: go run cmd/seed/main.go [-db path/to/catalog.db]
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/locallibrary/catalog/internal/config"
	"github.com/locallibrary/catalog/internal/database"
	"github.com/locallibrary/catalog/internal/database/authors"
	"github.com/locallibrary/catalog/internal/database/books"
	"github.com/locallibrary/catalog/internal/database/genres"
	"github.com/locallibrary/catalog/internal/database/instances"
	"github.com/locallibrary/catalog/internal/entities"
)

func main() {
	dbPath := flag.String("db", config.DefaultDatabasePath, "path to the database file")
	flag.Parse()

	log.Printf("Seeding catalog database at %s...", *dbPath)

	// Delete any existing database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	genreRepo := genres.NewRepository(db.DB)
	genresByName := map[string]*entities.Genre{}
	for _, name := range []string{"Fantasy", "Science Fiction", "French Poetry"} {
		genre := &entities.Genre{Name: name}
		if err := genreRepo.Create(genre); err != nil {
			log.Fatalf("Failed to create genre %s: %v", name, err)
		}
		genresByName[name] = genre
	}

	authorRepo := authors.NewRepository(db.DB)
	authorList := []*entities.Author{
		{FirstName: "Patrick", FamilyName: "Rothfuss", DateOfBirth: date(1973, 6, 6)},
		{FirstName: "Ben", FamilyName: "Bova", DateOfBirth: date(1932, 11, 8)},
		{FirstName: "Isaac", FamilyName: "Asimov", DateOfBirth: date(1920, 1, 2), DateOfDeath: date(1992, 4, 6)},
		{FirstName: "Bob", FamilyName: "Billings"},
		{FirstName: "Jim", FamilyName: "Jones", DateOfBirth: date(1971, 12, 16)},
	}
	for _, author := range authorList {
		if err := authorRepo.Create(author); err != nil {
			log.Fatalf("Failed to create author %s: %v", author.Name(), err)
		}
	}

	bookRepo := books.NewRepository(db.DB)
	bookList := []*entities.Book{
		{
			Title:    "The Name of the Wind (The Kingkiller Chronicle, #1)",
			Summary:  "I have stolen princesses back from sleeping barrow kings. I burned down the town of Trebon. I have spent the night with Felurian and left with both my sanity and my life. I was expelled from the University at a younger age than most people are allowed in. I tread paths by moonlight that others fear to speak of during day. I have talked to Gods, loved women, and written songs that make the minstrels weep.",
			AuthorID: authorList[0].ID,
			Genres:   []entities.Genre{*genresByName["Fantasy"]},
		},
		{
			Title:    "The Wise Man's Fear (The Kingkiller Chronicle, #2)",
			Summary:  "Picking up the tale of Kvothe Kingkiller once again, we follow him into exile, into political intrigue, courtship, adventure, love and magic.",
			AuthorID: authorList[0].ID,
			Genres:   []entities.Genre{*genresByName["Fantasy"]},
		},
		{
			Title:    "The Slow Regard of Silent Things (Kingkiller Chronicle)",
			Summary:  "Deep below the University, there is a dark place. Few people know of it: a broken web of ancient passageways and abandoned rooms. A young woman lives there, tucked among the sprawling tunnels of the Underthing, snug in the heart of this forgotten place.",
			AuthorID: authorList[0].ID,
			Genres:   []entities.Genre{*genresByName["Fantasy"]},
		},
		{
			Title:    "Apes and Angels",
			Summary:  "Humankind headed out to the stars not for conquest, nor exploration, nor even for curiosity. Humans went to the stars in a desperate crusade to save intelligent life wherever they found it.",
			AuthorID: authorList[1].ID,
			Genres:   []entities.Genre{*genresByName["Science Fiction"]},
		},
		{
			Title:    "Death Wave",
			Summary:  "In Ben Bova's previous novel New Earth, Jordan Kell led the first human mission beyond the solar system. They discovered the ruins of an ancient alien civilization. But one alien AI survived, and it revealed to Jordan Kell that an explosion in the black hole at the heart of the Milky Way galaxy has created a wave of deadly radiation, expanding out from the core toward Earth.",
			AuthorID: authorList[1].ID,
			Genres:   []entities.Genre{*genresByName["Science Fiction"]},
		},
		{
			Title:    "Test Book 1",
			Summary:  "Summary of test book 1",
			AuthorID: authorList[3].ID,
			Genres:   []entities.Genre{*genresByName["Fantasy"], *genresByName["Science Fiction"]},
		},
		{
			Title:    "Test Book 2",
			Summary:  "Summary of test book 2",
			AuthorID: authorList[3].ID,
		},
	}
	for _, book := range bookList {
		if err := bookRepo.Create(book); err != nil {
			log.Fatalf("Failed to create book %s: %v", book.Title, err)
		}
		log.Printf("Saved: %s", book.Title)
	}

	instanceRepo := instances.NewRepository(db.DB)
	dueBack := time.Now().AddDate(0, 0, 14)
	instanceList := []*entities.BookInstance{
		{BookID: bookList[0].ID, Imprint: "London Gollancz, 2014.", Status: entities.StatusAvailable},
		{BookID: bookList[1].ID, Imprint: "Gollancz, 2011.", Status: entities.StatusLoaned, DueBack: &dueBack},
		{BookID: bookList[2].ID, Imprint: "Gollancz, 2015.", Status: entities.StatusAvailable},
		{BookID: bookList[3].ID, Imprint: "New York Tom Doherty Associates, 2016.", Status: entities.StatusAvailable},
		{BookID: bookList[3].ID, Imprint: "New York Tom Doherty Associates, 2016.", Status: entities.StatusMaintenance},
		{BookID: bookList[4].ID, Imprint: "New York, NY Tom Doherty Associates, LLC, 2015.", Status: entities.StatusAvailable},
		{BookID: bookList[4].ID, Imprint: "New York, NY Tom Doherty Associates, LLC, 2015.", Status: entities.StatusMaintenance},
		{BookID: bookList[5].ID, Imprint: "Imprint XXX2", Status: entities.StatusReserved},
		{BookID: bookList[6].ID, Imprint: "Imprint XXX3", Status: entities.StatusLoaned, DueBack: &dueBack},
	}
	for _, instance := range instanceList {
		if err := instanceRepo.Create(instance); err != nil {
			log.Fatalf("Failed to create instance %s: %v", instance.Imprint, err)
		}
	}

	log.Println("Catalog database seeded successfully!")
}

func date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}
