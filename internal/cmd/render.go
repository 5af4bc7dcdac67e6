package cmd

import (
	"fmt"
	"strings"

	"predictBot/domain"
)

func renderPrediction(r domain.PredictionResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🎯 Prediction Based on Last Number %d:\n\n", r.LastObserved)
	b.WriteString("Top Predicted Numbers:\n")
	for i, c := range r.Shortlist {
		fmt.Fprintf(&b, "%d. %d (%s)\n", i+1, c.Number, c.Category.Label())
	}
	fmt.Fprintf(&b, "\n➡️ Prediction Bet on : %s\n", r.Category)

	return b.String()
}
