// Package dataset writes generated records to their output files and merges
// those files into one shuffled list.
package dataset

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/sivgen/internal/linefile"
	"github.com/zarlcorp/sivgen/internal/record"
)

// default file names, relative to the dataset root
const (
	DefaultUKFile       = "UK_SIV.txt"
	DefaultFrenchFile   = "French_SIV.txt"
	DefaultPhoneFile    = "french_phone_numbers.txt"
	DefaultNamesFile    = "names.txt"
	DefaultEmailsFile   = "emails.txt"
	DefaultCombinedFile = "shuffled_output.txt"
)

// ErrTooManyLists is returned when Combine gets more than two optional lists.
var ErrTooManyLists = errors.New("combine accepts at most four lists")

// Paths names the files a Dataset reads and writes. Empty fields use the
// defaults.
type Paths struct {
	UK       string `json:"uk"`
	French   string `json:"french"`
	Phone    string `json:"phone"`
	Names    string `json:"names"`
	Emails   string `json:"emails"`
	Combined string `json:"combined"`
}

// DefaultPaths returns the standard file names.
func DefaultPaths() Paths {
	return Paths{
		UK:       DefaultUKFile,
		French:   DefaultFrenchFile,
		Phone:    DefaultPhoneFile,
		Names:    DefaultNamesFile,
		Emails:   DefaultEmailsFile,
		Combined: DefaultCombinedFile,
	}
}

func (p Paths) withDefaults() Paths {
	d := DefaultPaths()
	if p.UK == "" {
		p.UK = d.UK
	}
	if p.French == "" {
		p.French = d.French
	}
	if p.Phone == "" {
		p.Phone = d.Phone
	}
	if p.Names == "" {
		p.Names = d.Names
	}
	if p.Emails == "" {
		p.Emails = d.Emails
	}
	if p.Combined == "" {
		p.Combined = d.Combined
	}
	return p
}

// Dataset generates records into files on a filesystem.
type Dataset struct {
	fs    zfilesystem.ReadWriteFileFS
	gen   *record.Generator
	paths Paths
	log   *slog.Logger
}

// Option configures a Dataset.
type Option func(*Dataset)

// WithPaths overrides the file names.
func WithPaths(p Paths) Option {
	return func(d *Dataset) { d.paths = p.withDefaults() }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dataset) { d.log = l }
}

// New creates a dataset rooted at fsys.
func New(fsys zfilesystem.ReadWriteFileFS, gen *record.Generator, opts ...Option) *Dataset {
	d := &Dataset{
		fs:    fsys,
		gen:   gen,
		paths: DefaultPaths(),
		log:   slog.Default(),
	}
	for _, o := range opts {
		o(d)
	}
	if d.gen == nil {
		d.gen = record.New(nil)
	}
	return d
}

// Paths returns the resolved file names.
func (d *Dataset) Paths() Paths {
	return d.paths
}

// UKPlate appends a new UK plate to the UK file and returns it.
func (d *Dataset) UKPlate() (string, error) {
	return d.appendRecord(d.paths.UK, d.gen.UKPlate())
}

// FrenchPlate appends a new French plate to the French file and returns it.
func (d *Dataset) FrenchPlate() (string, error) {
	return d.appendRecord(d.paths.French, d.gen.FrenchPlate())
}

// FrenchPhone appends a new French mobile number to the phone file and
// returns it.
func (d *Dataset) FrenchPhone() (string, error) {
	return d.appendRecord(d.paths.Phone, d.gen.FrenchPhone())
}

func (d *Dataset) appendRecord(path, rec string) (string, error) {
	if err := linefile.AppendLine(d.fs, path, rec); err != nil {
		return "", err
	}
	d.log.Debug("record appended", "path", path, "record", rec)
	return rec, nil
}

// DeriveEmails reads the names file and overwrites the emails file with one
// address per name. Names with fewer than two words are skipped.
func (d *Dataset) DeriveEmails() ([]string, error) {
	names, err := linefile.ReadLines(d.fs, d.paths.Names)
	if err != nil {
		return nil, fmt.Errorf("derive emails: %w", err)
	}

	emails := make([]string, 0, len(names))
	for _, n := range names {
		if e, ok := record.Email(n); ok {
			emails = append(emails, e)
		}
	}

	if err := linefile.WriteLines(d.fs, d.paths.Emails, emails); err != nil {
		return nil, fmt.Errorf("derive emails: %w", err)
	}

	d.log.Debug("emails derived", "names", len(names), "emails", len(emails), "path", d.paths.Emails)
	return emails, nil
}

// SeedNames overwrites the names file with n random full names.
func (d *Dataset) SeedNames(n int) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("seed names: negative count %d", n)
	}

	names := make([]string, n)
	for i := range names {
		names[i] = d.gen.Name()
	}

	if err := linefile.WriteLines(d.fs, d.paths.Names, names); err != nil {
		return nil, fmt.Errorf("seed names: %w", err)
	}

	d.log.Debug("names seeded", "count", n, "path", d.paths.Names)
	return names, nil
}

// Combine concatenates a, b and up to two optional lists, shuffles the
// result uniformly and overwrites the combined file with it. Nil optional
// lists are ignored. The inputs are not modified.
func (d *Dataset) Combine(a, b []string, optional ...[]string) ([]string, error) {
	if len(optional) > 2 {
		return nil, ErrTooManyLists
	}

	size := len(a) + len(b)
	for _, l := range optional {
		size += len(l)
	}

	combined := make([]string, 0, size)
	combined = append(combined, a...)
	combined = append(combined, b...)
	for _, l := range optional {
		combined = append(combined, l...)
	}

	d.gen.Shuffle(combined)

	if err := linefile.WriteLines(d.fs, d.paths.Combined, combined); err != nil {
		return nil, fmt.Errorf("combine: %w", err)
	}

	d.log.Debug("lists combined", "count", len(combined), "path", d.paths.Combined)
	return combined, nil
}

// Sources reads back the UK, French, phone and email files in that order.
func (d *Dataset) Sources() (uk, french, phones, emails []string, err error) {
	if uk, err = linefile.ReadLines(d.fs, d.paths.UK); err != nil {
		return nil, nil, nil, nil, err
	}
	if french, err = linefile.ReadLines(d.fs, d.paths.French); err != nil {
		return nil, nil, nil, nil, err
	}
	if phones, err = linefile.ReadLines(d.fs, d.paths.Phone); err != nil {
		return nil, nil, nil, nil, err
	}
	if emails, err = linefile.ReadLines(d.fs, d.paths.Emails); err != nil {
		return nil, nil, nil, nil, err
	}
	return uk, french, phones, emails, nil
}
