package main

// Check a resume from the command line:
//   go run ./cmd/cvcheck -file resume.pdf
//   go run ./cmd/cvcheck -file resume.txt -profile strict -json

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"cvcheck-backend/internal/engine"
	"cvcheck-backend/internal/extract"
)

func main() {
	var (
		filePath    = flag.String("file", "", "resume file to check (PDF, DOCX or plain text); reads stdin when omitted")
		profileName = flag.String("profile", "default", "scoring profile: default or strict")
		asJSON      = flag.Bool("json", false, "print the full report as JSON")
	)
	flag.Parse()

	text, err := readInput(*filePath)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	result, err := engine.Analyze(text, engine.DefaultCatalog(), engine.ProfileByName(*profileName))
	if err != nil {
		log.Fatalf("analyze: %v", err)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			log.Fatalf("encode result: %v", err)
		}
		return
	}

	printSummary(result)
}

func readInput(filePath string) (string, error) {
	if filePath == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}
	mimeType := ""
	if strings.EqualFold(filepath.Ext(filePath), ".pdf") {
		mimeType = "application/pdf"
	}
	return extract.TextFromBytes(context.Background(), data, mimeType, filepath.Base(filePath))
}

func printSummary(result engine.FeedbackResult) {
	fmt.Printf("Overall: %d/100 (%s)\n", result.OverallScore, result.VerdictTier)
	fmt.Printf("  ATS %d  Readability %d  Impact %d  Design %d\n",
		result.Scores.ATS, result.Scores.Readability, result.Scores.Impact, result.Scores.Design)
	fmt.Println(result.Verdict)

	if len(result.Strengths) > 0 {
		fmt.Println("\nStrengths:")
		for _, s := range result.Strengths {
			fmt.Printf("  + %s\n", s)
		}
	}
	if len(result.QuickFixes) > 0 {
		fmt.Println("\nQuick fixes:")
		for _, issue := range result.QuickFixes {
			fmt.Printf("  - [%s] %s\n", issue.Priority, issue.Message)
			if issue.Fix != "" {
				fmt.Printf("    fix: %s\n", issue.Fix)
			}
		}
	}
	if len(result.AllIssues) > len(result.QuickFixes) {
		fmt.Printf("\n%d more issues; run with -json for the full report\n", len(result.AllIssues)-len(result.QuickFixes))
	}
}
