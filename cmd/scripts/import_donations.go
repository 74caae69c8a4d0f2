package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/greenroots/treefund-backend/internal/models"
	"github.com/greenroots/treefund-backend/pkg/mongodb"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Bulk-imports historical donation records from a CSV file.
// Expected columns: userId, name, amount, donorType, paymentMode,
// transactionId, status, amountUsed, date (YYYY-MM-DD).
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable is required")
	}
	dbName := os.Getenv("MONGODB_DATABASE")
	if dbName == "" {
		dbName = "treefund"
	}

	if len(os.Args) < 2 {
		log.Fatal("CSV file path is required as a command line argument")
	}
	csvFilePath := os.Args[1]

	client, err := mongodb.NewClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(dbName)

	imported, err := importDonations(db, csvFilePath)
	if err != nil {
		log.Fatalf("Failed to import donations: %v", err)
	}
	log.Printf("Imported %d donations", imported)
}

func importDonations(db *mongo.Database, path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("failed to read CSV file: %w", err)
	}
	if len(records) < 2 {
		return 0, fmt.Errorf("CSV file has no data rows")
	}

	docs := make([]interface{}, 0, len(records)-1)
	for i, row := range records[1:] { // skip header
		donation, err := parseDonationRow(row)
		if err != nil {
			return 0, fmt.Errorf("row %d: %w", i+2, err)
		}
		docs = append(docs, donation)
	}

	result, err := db.Collection("donations").InsertMany(context.Background(), docs)
	if err != nil {
		return 0, fmt.Errorf("failed to insert donations: %w", err)
	}
	return len(result.InsertedIDs), nil
}

func parseDonationRow(row []string) (*models.Donation, error) {
	if len(row) < 9 {
		return nil, fmt.Errorf("expected 9 columns, got %d", len(row))
	}

	userID, err := primitive.ObjectIDFromHex(row[0])
	if err != nil {
		return nil, fmt.Errorf("invalid userId %q", row[0])
	}

	amount, err := strconv.Atoi(row[2])
	if err != nil || amount <= 0 {
		return nil, fmt.Errorf("invalid amount %q", row[2])
	}

	donorType := models.DonorType(row[3])
	if !donorType.Valid() {
		return nil, fmt.Errorf("invalid donorType %q", row[3])
	}

	if row[5] == "" {
		return nil, fmt.Errorf("transactionId is required")
	}

	status := models.DonationStatus(row[6])
	if !status.Valid() {
		return nil, fmt.Errorf("invalid status %q", row[6])
	}

	amountUsed := models.AmountUsedFlag(row[7])
	if !amountUsed.Valid() {
		return nil, fmt.Errorf("invalid amountUsed %q", row[7])
	}

	date, err := time.Parse("2006-01-02", row[8])
	if err != nil {
		return nil, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", row[8])
	}

	return &models.Donation{
		UserID:        userID,
		Name:          row[1],
		Amount:        amount,
		DonorType:     donorType,
		PaymentMode:   row[4],
		TransactionID: row[5],
		Status:        status,
		AmountUsed:    amountUsed,
		CreatedAt:     date,
		UpdatedAt:     date,
	}, nil
}
