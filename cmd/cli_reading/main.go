package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"astro-reading/internal/config"
	"astro-reading/internal/domain"
	"astro-reading/internal/service"
)

func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	minDate, maxDate, err := cfg.BirthDateBounds()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	readingSvc := service.NewReadingService(
		logger,
		service.NewMemorySessionStore(),
		service.NewQuestionRateLimiter(cfg.QuestionRateWindow(), cfg.QuestionRateMax),
		service.DefaultQuestionAnswerer,
		service.ReadingOptions{SessionTTL: cfg.SessionTTL(), MinBirthDate: minDate, MaxBirthDate: maxDate},
	)

	fmt.Println("===== AI Astrologer =====")
	fmt.Println("Rule-based reading (no real ephemeris).")

	var reading domain.Reading
	for {
		details := domain.BirthDetails{
			Name:  prompt(reader, "Name: "),
			Date:  prompt(reader, "Date of Birth (YYYY-MM-DD): "),
			Time:  prompt(reader, "Time of Birth (HH:MM): "),
			Place: prompt(reader, "Place of Birth (City, Country): "),
		}
		reading, err = readingSvc.CreateReading(ctx, details)
		if err == nil {
			break
		}
		if errors.Is(err, service.ErrMissingField) {
			fmt.Println("Please fill all fields.")
			continue
		}
		fmt.Printf("Invalid input: %v\n", err)
	}

	printReading(os.Stdout, reading)

	for {
		q := prompt(reader, "\nAsk a question (empty line to quit): ")
		if q == "" {
			break
		}
		answer, err := readingSvc.AskQuestion(ctx, reading.SessionID, q)
		if err != nil {
			fmt.Printf("Could not answer: %v\n", err)
			continue
		}
		fmt.Println(answer.Text)
		fmt.Println(answer.Disclaimer)
	}

	if err := readingSvc.EndReading(ctx, reading.SessionID); err != nil {
		logger.Warn("end reading failed", zap.Error(err))
	}
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		fmt.Println()
		os.Exit(0)
	}
	return strings.TrimSpace(line)
}

func printReading(w io.Writer, reading domain.Reading) {
	p := reading.Profile
	fmt.Fprintln(w, "\n--- Your Profile ---")
	fmt.Fprintf(w, "Sun Sign: %s\n", p.Sign)
	fmt.Fprintf(w, "Element: %s\n", p.Element)
	fmt.Fprintf(w, "Strengths: %s\n", strings.Join(p.Strengths, ", "))
	fmt.Fprintf(w, "Growth Areas: %s\n", strings.Join(p.Growth, ", "))

	fmt.Fprintln(w, "\n--- Today’s Outlook ---")
	for _, category := range domain.OutlookCategories {
		fmt.Fprintf(w, "%s: %s\n", categoryTitle(category), reading.Outlook[category])
	}
}

func categoryTitle(category domain.Category) string {
	s := string(category)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
