// Package parser extracts structured transactions from Arabic bank SMS bodies.
//
// Extraction is marker-anchored: each field value immediately follows a fixed
// Arabic label in the message (مبلغ for the amount, لدى for the vendor, في for
// the date and time, بطاقة for the card). Messages from other templates are
// rejected rather than partially parsed.
package parser

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/nalkhodair/rasid/internal/model"
)

// Status describes the outcome of parsing one SMS body.
type Status int

const (
	// StatusMatched means a complete transaction was extracted.
	StatusMatched Status = iota
	// StatusRejected means the text does not start with a recognized
	// transaction-type marker and is not a purchase at all.
	StatusRejected
	// StatusIncomplete means the type marker matched but one or more
	// field markers were absent; no partial transaction is produced.
	StatusIncomplete
)

// Result is the outcome of parsing one SMS body. Transaction is set only
// when Status is StatusMatched; Missing lists the absent field names when
// Status is StatusIncomplete.
type Result struct {
	Transaction *model.Transaction
	Missing     []string
	Status      Status
}

var (
	typeRe   = regexp.MustCompile(`^(شراء|بطاقة ائتمانية:تحويل)`)
	amountRe = regexp.MustCompile(`مبلغ:SAR ([\d.]+)`)
	vendorRe = regexp.MustCompile(`لدى:([\p{L}\p{N}_\s]+)`)
	dateRe   = regexp.MustCompile(`في:(\d{2}-\d{1,2}-\d{1,2})`)
	timeRe   = regexp.MustCompile(`في:[\d-]+ (\d{2}:\d{2})`)
	cardRe   = regexp.MustCompile(`بطاقة:(\d{4})`)
)

// datetimeLayout parses the two-digit-year date and 24h clock as sent by the
// bank, e.g. "25-2-2 06:44".
const datetimeLayout = "06-1-2 15:04"

// Parse extracts a transaction from one SMS body. Texts that do not start
// with a recognized type marker are rejected; texts where any field marker is
// absent yield an incomplete result. Both cases produce no transaction. An
// error is returned only when a captured value cannot be interpreted, such as
// a date that matches the surface pattern but is not a real date.
func Parse(text string) (Result, error) {
	typeMatch := typeRe.FindStringSubmatch(text)
	if typeMatch == nil {
		slog.Info("not a purchase transaction")
		return Result{Status: StatusRejected}, nil
	}

	fields := map[string]string{}
	var missing []string
	for _, f := range []struct {
		name string
		re   *regexp.Regexp
	}{
		{"amount", amountRe},
		{"vendor", vendorRe},
		{"date", dateRe},
		{"time", timeRe},
		{"card", cardRe},
	} {
		m := f.re.FindStringSubmatch(text)
		if m == nil {
			missing = append(missing, f.name)
			continue
		}
		fields[f.name] = m[1]
	}
	if len(missing) > 0 {
		slog.Debug("transaction fields missing", "missing", missing)
		return Result{Status: StatusIncomplete, Missing: missing}, nil
	}

	amount, err := strconv.ParseFloat(fields["amount"], 64)
	if err != nil {
		return Result{}, fmt.Errorf("failed to parse amount %q: %w", fields["amount"], err)
	}

	// The vendor character class is greedy across lines and can swallow the
	// following في marker; strip it after trimming.
	vendor := strings.TrimSpace(fields["vendor"])
	vendor = strings.ReplaceAll(vendor, "\nفي", "")

	timestamp, err := time.Parse(datetimeLayout, fields["date"]+" "+fields["time"])
	if err != nil {
		return Result{}, fmt.Errorf("failed to parse transaction datetime %q: %w",
			fields["date"]+" "+fields["time"], err)
	}

	return Result{
		Status: StatusMatched,
		Transaction: &model.Transaction{
			Type:       typeMatch[1],
			Amount:     amount,
			Vendor:     vendor,
			Category:   model.CategoryOther,
			CardNumber: fields["card"],
			Date:       timestamp.Format("2006-01-02"),
			Time:       fields["time"],
		},
	}, nil
}
