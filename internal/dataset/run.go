package dataset

import (
	"context"
	"fmt"
	"strings"

	"github.com/zarlcorp/sivgen/internal/linefile"
)

// Step records the outcome of one stage of a run.
type Step struct {
	Description string `json:"description"`
	Err         error  `json:"-"`
}

// Report summarizes a run.
type Report struct {
	Generated int      `json:"generated"`
	Emails    int      `json:"emails"`
	Combined  []string `json:"combined"`
	Steps     []Step   `json:"steps"`
}

// HasErrors returns true if any step failed.
func (r Report) HasErrors() bool {
	for _, s := range r.Steps {
		if s.Err != nil {
			return true
		}
	}
	return false
}

// Summary returns a human-readable summary of the run.
func (r Report) Summary() string {
	var b strings.Builder

	if r.HasErrors() {
		b.WriteString("run failed")
	} else {
		fmt.Fprintf(&b, "combined %d records", len(r.Combined))
	}

	for _, s := range r.Steps {
		if s.Err != nil {
			fmt.Fprintf(&b, "\n- %s: %v", s.Description, s.Err)
		} else {
			fmt.Fprintf(&b, "\n- %s", s.Description)
		}
	}

	return b.String()
}

func (r *Report) ok(format string, args ...any) {
	r.Steps = append(r.Steps, Step{Description: fmt.Sprintf(format, args...)})
}

func (r *Report) fail(err error, format string, args ...any) error {
	r.Steps = append(r.Steps, Step{Description: fmt.Sprintf(format, args...), Err: err})
	return err
}

// Run generates count UK plates, French plates and phone numbers, derives
// the emails file from the names file, then reads all four files back and
// combines them. The names file is checked before anything is generated.
// A zero count skips generation and combines whatever the
// files already hold. The first failing step stops the run; its error is
// returned and also recorded in the report.
func (d *Dataset) Run(ctx context.Context, count int) (Report, error) {
	var r Report

	if count < 0 {
		return r, r.fail(fmt.Errorf("negative count %d", count), "generate records")
	}

	if count > 0 {
		// emails are derived after generation; a missing names file must
		// fail the run before any record is appended
		if _, err := linefile.ReadLines(d.fs, d.paths.Names); err != nil {
			return r, r.fail(err, "derive emails from %s", d.paths.Names)
		}

		if err := d.generate(ctx, count); err != nil {
			return r, r.fail(err, "generate records")
		}
		r.Generated = count
		r.ok("generated %d UK plates, %d French plates, %d phone numbers", count, count, count)

		emails, err := d.DeriveEmails()
		if err != nil {
			return r, r.fail(err, "derive emails from %s", d.paths.Names)
		}
		r.Emails = len(emails)
		r.ok("derived %d emails", len(emails))
	}

	if err := ctx.Err(); err != nil {
		return r, r.fail(err, "read sources")
	}

	uk, french, phones, emails, err := d.Sources()
	if err != nil {
		return r, r.fail(err, "read sources")
	}
	r.ok("read %d UK plates, %d French plates, %d phone numbers, %d emails",
		len(uk), len(french), len(phones), len(emails))

	combined, err := d.Combine(uk, french, phones, emails)
	if err != nil {
		return r, r.fail(err, "combine into %s", d.paths.Combined)
	}
	r.Combined = combined
	r.ok("wrote %d records to %s", len(combined), d.paths.Combined)

	return r, nil
}

func (d *Dataset) generate(ctx context.Context, count int) error {
	for range count {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := d.FrenchPlate(); err != nil {
			return err
		}
		if _, err := d.UKPlate(); err != nil {
			return err
		}
		if _, err := d.FrenchPhone(); err != nil {
			return err
		}
	}
	d.log.Debug("records generated", "count", count)
	return nil
}
