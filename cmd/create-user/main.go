// CLI tool to create a user with a bcrypt-hashed password, a default
// profile and default preferences.
// Usage: go run ./cmd/create-user
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"lg/macro-calc-api/nutrition"
)

// defaultProfile is what a new account starts with until the user saves
// their own.
var defaultProfile = nutrition.UserProfile{
	Age:      30,
	Sex:      nutrition.Male,
	HeightCM: 175,
	WeightKG: 70,
	Activity: nutrition.Moderate,
}

var defaultGoal = nutrition.Goal{Mode: nutrition.Maintain, DeltaKcalPerDay: 500}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	s, _ := reader.ReadString('\n')
	return strings.TrimSpace(s)
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, os.Getenv("DB_URL"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	reader := bufio.NewReader(os.Stdin)
	username := prompt(reader, "Username: ")
	email := prompt(reader, "Email: ")
	password := prompt(reader, "Password: ")
	if username == "" || password == "" {
		fmt.Fprintln(os.Stderr, "Username and password are required")
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error hashing password: %v\n", err)
		os.Exit(1)
	}
	authToken := uuid.New().String()

	userID, err := createUser(ctx, conn, username, email, string(hash), authToken)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating user: %v\n", err)
		os.Exit(1)
	}

	result := nutrition.Evaluate(defaultProfile, defaultGoal)

	fmt.Printf("\nUser created successfully!\n")
	fmt.Printf("  ID:         %d\n", userID)
	fmt.Printf("  Username:   %s\n", username)
	fmt.Printf("  Auth Token: %s\n", authToken)
	fmt.Printf("  Default target: %d kcal (P %dg / C %dg / F %dg)\n",
		result.GoalCalories, result.Macros.ProteinG, result.Macros.CarbsG, result.Macros.FatG)
}

// createUser inserts the user, profile and preferences rows together.
func createUser(ctx context.Context, conn *pgx.Conn, username, email, hash, authToken string) (int, error) {
	tx, err := conn.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var userID int
	err = tx.QueryRow(ctx,
		`INSERT INTO users (username, email, password, auth_token)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		username, email, hash, authToken,
	).Scan(&userID)
	if err != nil {
		return 0, err
	}

	p, g := defaultProfile, defaultGoal
	_, err = tx.Exec(ctx,
		`INSERT INTO user_profiles
			(user_id, age, sex, height_cm, weight_kg, activity, goal_mode, goal_delta_kcal, unit_system)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		userID, p.Age, string(p.Sex), p.HeightCM, p.WeightKG, string(p.Activity),
		string(g.Mode), g.DeltaKcalPerDay, string(nutrition.Metric))
	if err != nil {
		return 0, fmt.Errorf("create profile: %w", err)
	}

	if _, err = tx.Exec(ctx,
		`INSERT INTO user_preferences (user_id, theme) VALUES ($1, 'light')`, userID); err != nil {
		return 0, fmt.Errorf("create preferences: %w", err)
	}

	return userID, tx.Commit(ctx)
}
