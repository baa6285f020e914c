package repositories

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/myrjola/detectivequest/internal/errors"
	"github.com/myrjola/detectivequest/internal/models"
	"github.com/myrjola/detectivequest/internal/sqlite"
)

var ErrCasebookNotFound = errors.NewSentinel("casebook not found")

type CasebookRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func NewCasebookRepository(db *sqlite.Database, logger *slog.Logger) *CasebookRepository {
	return &CasebookRepository{
		db:     db,
		logger: logger.With("source", "CasebookRepository"),
	}
}

type roomRow struct {
	CasebookID string `db:"casebook_id"`
	Position   int    `db:"position"`
	models.RoomSpec
}

type associationRow struct {
	CasebookID string `db:"casebook_id"`
	Position   int    `db:"position"`
	models.Association
}

// Get reads the casebook with rooms and associations in the order they were saved.
func (r *CasebookRepository) Get(ctx context.Context, id string) (*models.Casebook, error) {
	var (
		cb  models.Casebook
		err error
	)

	stmt := `SELECT id, title, intro, root FROM casebooks WHERE id = ?`
	if err = r.db.ReadOnly.GetContext(ctx, &cb, stmt, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrap(ErrCasebookNotFound, "read casebook", slog.String("id", id))
		}
		return nil, errors.Wrap(err, "read casebook", slog.String("id", id))
	}

	stmt = `SELECT name, clue, left_room, right_room FROM rooms WHERE casebook_id = ? ORDER BY position`
	if err = r.db.ReadOnly.SelectContext(ctx, &cb.Rooms, stmt, id); err != nil {
		return nil, errors.Wrap(err, "read rooms", slog.String("id", id))
	}

	stmt = `SELECT clue, suspect FROM associations WHERE casebook_id = ? ORDER BY position`
	if err = r.db.ReadOnly.SelectContext(ctx, &cb.Associations, stmt, id); err != nil {
		return nil, errors.Wrap(err, "read associations", slog.String("id", id))
	}

	return &cb, nil
}

// List returns a summary of every stored casebook ordered by id.
func (r *CasebookRepository) List(ctx context.Context) ([]models.CasebookSummary, error) {
	var summaries []models.CasebookSummary
	stmt := `SELECT c.id, c.title, COUNT(r.position) AS rooms
FROM casebooks c
         LEFT JOIN rooms r ON r.casebook_id = c.id
GROUP BY c.id
ORDER BY c.id`
	if err := r.db.ReadOnly.SelectContext(ctx, &summaries, stmt); err != nil {
		return nil, errors.Wrap(err, "list casebooks")
	}
	return summaries, nil
}

// Save stores cb, replacing any casebook with the same id.
func (r *CasebookRepository) Save(ctx context.Context, cb *models.Casebook) (err error) {
	var tx *sqlx.Tx
	if tx, err = r.db.ReadWrite.BeginTxx(ctx, nil); err != nil {
		return errors.Wrap(err, "begin transaction")
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil {
			r.logger.LogAttrs(ctx, slog.LevelError, "failed to rollback transaction",
				errors.SlogError(errors.Wrap(rbErr, "rollback")))
		}
	}()

	// Rooms and associations cascade.
	if _, err = tx.ExecContext(ctx, `DELETE FROM casebooks WHERE id = ?`, cb.ID); err != nil {
		return errors.Wrap(err, "delete previous casebook", slog.String("id", cb.ID))
	}

	stmt := `INSERT INTO casebooks (id, title, intro, root) VALUES (:id, :title, :intro, :root)`
	if _, err = tx.NamedExecContext(ctx, stmt, cb); err != nil {
		return errors.Wrap(err, "insert casebook", slog.String("id", cb.ID))
	}

	if len(cb.Rooms) > 0 {
		rows := make([]roomRow, len(cb.Rooms))
		for i, room := range cb.Rooms {
			rows[i] = roomRow{CasebookID: cb.ID, Position: i, RoomSpec: room}
		}
		stmt = `INSERT INTO rooms (casebook_id, position, name, clue, left_room, right_room)
VALUES (:casebook_id, :position, :name, :clue, :left_room, :right_room)`
		if _, err = tx.NamedExecContext(ctx, stmt, rows); err != nil {
			return errors.Wrap(err, "insert rooms", slog.String("id", cb.ID))
		}
	}

	if len(cb.Associations) > 0 {
		rows := make([]associationRow, len(cb.Associations))
		for i, a := range cb.Associations {
			rows[i] = associationRow{CasebookID: cb.ID, Position: i, Association: a}
		}
		stmt = `INSERT INTO associations (casebook_id, position, clue, suspect)
VALUES (:casebook_id, :position, :clue, :suspect)`
		if _, err = tx.NamedExecContext(ctx, stmt, rows); err != nil {
			return errors.Wrap(err, "insert associations", slog.String("id", cb.ID))
		}
	}

	if err = tx.Commit(); err != nil {
		return errors.Wrap(err, "commit casebook", slog.String("id", cb.ID))
	}
	r.logger.LogAttrs(ctx, slog.LevelInfo, "saved casebook",
		slog.String("id", cb.ID),
		slog.Int("rooms", len(cb.Rooms)),
		slog.Int("associations", len(cb.Associations)))
	return nil
}
