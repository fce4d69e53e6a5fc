package cli

import (
	"fmt"

	"github.com/Veraticus/smart-loan-advisor/internal/model"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// rupeePrinter groups digits the Indian way (12,34,567.00).
var rupeePrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatRupees renders an amount in rupees, rounded to paise.
func FormatRupees(amount float64) string {
	return "₹" + rupeePrinter.Sprintf("%.2f", model.Round2(amount))
}

// FormatRate renders an annual percentage rate.
func FormatRate(rate float64) string {
	return fmt.Sprintf("%.2f%% p.a.", rate)
}

// FormatTenure renders a tenure in years.
func FormatTenure(years int) string {
	if years == 1 {
		return "1 year"
	}
	return fmt.Sprintf("%d years", years)
}

func formatTrack(track model.Track) string {
	switch track {
	case model.TrackManufacturing:
		return "Manufacturing (special package)"
	case model.TrackNewBusiness:
		return "New business"
	case model.TrackUnemployed:
		return "Not applicable"
	default:
		return "General"
	}
}
