// Package entry manages the in-progress "new transaction" form: draft
// fields, per-field validation and the submit workflow against the
// persistence gateway. One Draft serves one form at a time; the serving
// layer serializes interactions with it, so no locking happens here.
package entry

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"fintrack/internal/core"
	"fintrack/internal/gateway"
	"fintrack/internal/store"
)

const (
	StateEditing    State = "editing"
	StateSubmitting State = "submitting"
)

// ErrValidation is returned by Submit when the draft has field errors. The
// per-field breakdown is available via Errors.
var ErrValidation = errors.New("draft has invalid fields")

type (
	State string

	// FieldErrors is the per-field boolean error map surfaced inline next
	// to the form inputs. Fields validate independently; there are no
	// cross-field rules.
	FieldErrors struct {
		Source bool
		Amount bool
		Date   bool
	}

	Draft struct {
		direction core.Direction

		source string
		amount string // raw user input, parsed at submit time
		date   string
		icon   string

		errs  FieldErrors
		state State
	}
)

func (f FieldErrors) Any() bool {
	return f.Source || f.Amount || f.Date
}

// NewDraft returns an empty draft for the form of the given direction. The
// direction is fixed by which form opened the draft, never inferred from
// the entered amount.
func NewDraft(dir core.Direction) *Draft {
	return &Draft{
		direction: dir,
		icon:      dir.DefaultIcon(),
		state:     StateEditing,
	}
}

// Each setter clears only its own field's error flag.

func (d *Draft) SetSource(v string) {
	d.source = v
	d.errs.Source = false
}

func (d *Draft) SetAmount(v string) {
	d.amount = v
	d.errs.Amount = false
}

func (d *Draft) SetDate(v string) {
	d.date = v
	d.errs.Date = false
}

func (d *Draft) SetIcon(v string) {
	if v != "" {
		d.icon = v
	}
}

func (d *Draft) Source() string            { return d.source }
func (d *Draft) Amount() string            { return d.amount }
func (d *Draft) Date() string              { return d.date }
func (d *Draft) Icon() string              { return d.icon }
func (d *Draft) State() State              { return d.state }
func (d *Draft) Errors() FieldErrors       { return d.errs }
func (d *Draft) Direction() core.Direction { return d.direction }

// Validate checks each field independently and records the error map:
// source must be non-empty after trimming, amount must parse to a non-zero
// number, date must be non-empty.
func (d *Draft) Validate() FieldErrors {
	d.errs = FieldErrors{
		Source: strings.TrimSpace(d.source) == "",
		Date:   strings.TrimSpace(d.date) == "",
	}
	if _, err := core.ParseAmount(d.amount); err != nil {
		d.errs.Amount = true
	}
	return d.errs
}

// Transaction normalizes the draft into a persistable record. Expenses
// store -abs(amount), income +abs(amount). The id is locally generated for
// the optimistic insert; the gateway may replace it with a server-assigned
// one. Call only after Validate reported a clean draft.
func (d *Draft) Transaction() core.Transaction {
	parsed, _ := core.ParseAmount(d.amount)
	icon := d.icon
	if icon == "" {
		icon = d.direction.DefaultIcon()
	}
	return core.Transaction{
		ID:       uuid.NewString(),
		Source:   d.source,
		Amount:   d.direction.Normalize(parsed),
		Date:     d.date,
		Icon:     icon,
		Category: string(d.direction),
	}
}

// Submit runs the full workflow: validate, persist through the gateway,
// append to the store and reset. On validation failure it returns
// ErrValidation with the field map recorded. On gateway failure the draft
// fields are preserved so the user can retry without re-entering data, and
// the store is left untouched — the append only ever happens after a
// success signal, so no rollback path exists or is needed.
func (d *Draft) Submit(ctx context.Context, w gateway.TransactionWriter, s *store.Store) (core.Transaction, error) {
	if d.Validate().Any() {
		return core.Transaction{}, ErrValidation
	}

	d.state = StateSubmitting
	tx := d.Transaction()

	id, err := w.AddTransaction(ctx, tx)
	if err != nil {
		d.state = StateEditing
		return core.Transaction{}, err
	}

	// Reconcile with the server-assigned identifier when one came back,
	// so a later wholesale reload does not shift ids under the UI.
	tx.ID = id
	s.Append(tx)
	d.Reset()
	return tx, nil
}

// Reset returns the draft to its initial empty state, keeping the
// direction and its default icon.
func (d *Draft) Reset() {
	*d = *NewDraft(d.direction)
}
