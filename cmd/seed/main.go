package main

import (
	"context"
	"log"
	"time"

	"samvidhan-ai-be/internal/config"
	"samvidhan-ai-be/internal/entity"
	"samvidhan-ai-be/internal/repository/implementation"
	"samvidhan-ai-be/internal/repository/specification"
	"samvidhan-ai-be/pkg/database"

	"github.com/google/uuid"
)

func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Error: Failed to connect to database: %v", err)
	}

	repo := implementation.NewLegalDomainRepository(db)
	ctx := context.Background()

	domains := []entity.LegalDomain{
		{Code: "CRIMINAL", Name: "Criminal Law", Description: "Offences, punishments and criminal procedure (BNS, BNSS)", Icon: "⚖️"},
		{Code: "CIVIL", Name: "Civil Law", Description: "Contracts, torts and civil remedies", Icon: "📜"},
		{Code: "FAMILY", Name: "Family Law", Description: "Marriage, divorce, maintenance and custody", Icon: "👪"},
		{Code: "PROPERTY", Name: "Property Law", Description: "Transfer of property, tenancy and land disputes", Icon: "🏠"},
		{Code: "CONSUMER", Name: "Consumer Protection", Description: "Consumer rights and grievance redressal", Icon: "🛒"},
		{Code: "CYBER", Name: "Cyber Law", Description: "IT Act offences and digital evidence", Icon: "💻"},
		{Code: "LABOUR", Name: "Labour Law", Description: "Employment, wages and industrial disputes", Icon: "🏭"},
		{Code: "CONSTITUTIONAL", Name: "Constitutional Law", Description: "Fundamental rights and constitutional remedies", Icon: "🏛️"},
		{Code: "CASE_LAW", Name: "Case Law", Description: "Landmark judgments of the Supreme Court and High Courts", Icon: "🗂️"},
	}

	seeded, skipped := 0, 0
	for _, domain := range domains {
		existing, err := repo.FindOne(ctx, specification.FilterBy{Field: "code", Value: domain.Code})
		if err != nil {
			log.Fatalf("Error: Failed to check domain %s: %v", domain.Code, err)
		}
		if existing != nil {
			skipped++
			continue
		}

		domain.Id = uuid.New()
		domain.CreatedAt = time.Now()
		if err := repo.Create(ctx, &domain); err != nil {
			log.Fatalf("Error: Failed to seed domain %s: %v", domain.Code, err)
		}
		seeded++
	}

	log.Printf("✅ Legal domains seeded: %d created, %d already present", seeded, skipped)
}
