// seed_portfolio.go — standalone script to post sample initiatives to the Compass API.
//
// Usage:
//
//	go run scripts/seed_portfolio.go -api http://localhost:8700 -session demo
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
)

type evaluation struct {
	Title  string             `json:"title"`
	Owner  string             `json:"owner,omitempty"`
	Tags   string             `json:"tags,omitempty"`
	Scores map[string]float64 `json:"scores"`
}

var samples = []evaluation{
	{
		Title: "Invoice triage automation",
		Owner: "Finance Ops",
		Tags:  "NLP, automation",
		Scores: map[string]float64{
			"businessValue": 8, "strategicAlignment": 7, "technicalFeasibility": 6,
			"implementationEffort": 5, "changeImpact": 5, "ethicalRisk": 5,
		},
	},
	{
		Title: "Customer churn prediction",
		Owner: "Data Office",
		Tags:  "ml, retention",
		Scores: map[string]float64{
			"businessValue": 9, "strategicAlignment": 8, "technicalFeasibility": 7,
			"implementationEffort": 6, "changeImpact": 6, "ethicalRisk": 7,
		},
	},
	{
		Title: "Support chatbot pilot",
		Owner: "Service Desk",
		Tags:  "NLP, support, pilot",
		Scores: map[string]float64{
			"businessValue": 5, "strategicAlignment": 4, "technicalFeasibility": 8,
			"implementationEffort": 3, "changeImpact": 4, "ethicalRisk": 6,
		},
	},
	{
		Title: "Predictive maintenance rollout",
		Owner: "Plant Engineering",
		Tags:  "iot, maintenance",
		Scores: map[string]float64{
			"businessValue": 7, "strategicAlignment": 6, "technicalFeasibility": 4,
			"implementationEffort": 8, "changeImpact": 7, "ethicalRisk": 5,
		},
	},
}

func main() {
	apiURL := flag.String("api", "http://localhost:8700", "Compass API base URL")
	session := flag.String("session", "seed", "X-Session-ID header value")
	dryRun := flag.Bool("dry-run", false, "print evaluations without posting")
	flag.Parse()

	for _, ev := range samples {
		payload, err := json.Marshal(ev)
		if err != nil {
			log.Fatalf("marshal %q: %v", ev.Title, err)
		}

		if *dryRun {
			fmt.Println(string(payload))
			continue
		}

		req, err := http.NewRequest(http.MethodPost, *apiURL+"/api/v1/portfolio", bytes.NewReader(payload))
		if err != nil {
			log.Fatalf("build request: %v", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Session-ID", *session)

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			log.Fatalf("post %q: %v", ev.Title, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusCreated {
			log.Fatalf("post %q: unexpected status %d", ev.Title, resp.StatusCode)
		}
		fmt.Printf("saved %q\n", ev.Title)
	}
}
