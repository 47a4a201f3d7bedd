package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"brims/internal/domain"
	"brims/pkg/e"
)

type IncidentRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewIncidentRepo(pool *pgxpool.Pool, logger *slog.Logger) *IncidentRepo {
	return &IncidentRepo{pool: pool, logger: logger}
}

const incidentColumns = `
	id, title, description, location, barangay, incident_type, severity, status,
	incident_date, affected_families, affected_individuals, dead, injured, missing,
	admin_hold, created_at`

func scanIncident(row pgx.Row) (domain.Incident, error) {
	var (
		inc  domain.Incident
		id   uuid.UUID
		sev  string
		st   string
		hold bool
	)
	err := row.Scan(
		&id,
		&inc.Title,
		&inc.Description,
		&inc.Location,
		&inc.Barangay,
		&inc.IncidentType,
		&sev,
		&st,
		&inc.IncidentDate,
		&inc.AffectedFamilies,
		&inc.AffectedIndividuals,
		&inc.Casualties.Dead,
		&inc.Casualties.Injured,
		&inc.Casualties.Missing,
		&hold,
		&inc.CreatedAt,
	)
	if err != nil {
		return domain.Incident{}, err
	}
	inc.ID = id.String()
	inc.Severity = domain.Severity(sev)
	inc.Status = domain.IncidentStatus(st)
	inc.CreatedAt = inc.CreatedAt.UTC()

	// an administrative hold switches both actions off for every role
	editable := !hold
	deletable := !hold
	inc.ServerEditable = &editable
	inc.ServerDeletable = &deletable
	return inc, nil
}

func parseID(op, id string) (uuid.UUID, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: incident %q: %w", op, id, e.ErrNotFound)
	}
	return u, nil
}

func (r *IncidentRepo) List(ctx context.Context, scope domain.Scope) ([]domain.Incident, error) {
	const op = "postgres.Incident.List"

	query := `SELECT ` + incidentColumns + `
		FROM incidents
		WHERE ($1 = '' OR barangay = $1)
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, scope.Barangay)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	incidents := []domain.Incident{}
	for rows.Next() {
		inc, err := scanIncident(rows)
		if err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		incidents = append(incidents, inc)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return incidents, nil
}

func (r *IncidentRepo) Stats(ctx context.Context, scope domain.Scope) (domain.IncidentStats, error) {
	const op = "postgres.Incident.Stats"

	const query = `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'Reported'),
		       COUNT(*) FILTER (WHERE status = 'Investigating'),
		       COUNT(*) FILTER (WHERE status = 'Resolved'),
		       COUNT(*) FILTER (WHERE severity IN ('High', 'Critical'))
		FROM incidents
		WHERE ($1 = '' OR barangay = $1)`

	var s domain.IncidentStats
	err := r.pool.QueryRow(ctx, query, scope.Barangay).Scan(
		&s.Total,
		&s.Reported,
		&s.Investigating,
		&s.Resolved,
		&s.HighCritical,
	)
	if err != nil {
		r.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return domain.IncidentStats{}, e.WrapError(ctx, op, err)
	}
	return s, nil
}

func (r *IncidentRepo) Get(ctx context.Context, id string) (*domain.Incident, error) {
	const op = "postgres.Incident.Get"

	uid, err := parseID(op, id)
	if err != nil {
		return nil, err
	}

	inc, err := scanIncident(r.pool.QueryRow(ctx, `SELECT `+incidentColumns+` FROM incidents WHERE id = $1`, uid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		r.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id))
		return nil, e.WrapError(ctx, op, err)
	}
	return &inc, nil
}

// Create stores a new Reported incident and posts a notification about it in
// the same transaction.
func (r *IncidentRepo) Create(ctx context.Context, p domain.IncidentPayload) (*domain.Incident, error) {
	const op = "postgres.Incident.Create"

	id := uuid.New()
	now := time.Now().UTC()

	query := `
		INSERT INTO incidents (
			id, title, description, location, barangay, incident_type, severity, status,
			incident_date, affected_families, affected_individuals, dead, injured, missing, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + incidentColumns

	var created domain.Incident
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		inc, err := scanIncident(tx.QueryRow(ctx, query,
			id,
			p.Title,
			p.Description,
			p.Location,
			p.Barangay,
			p.IncidentType,
			string(p.Severity),
			string(domain.StatusReported),
			p.IncidentDate,
			p.AffectedFamilies,
			p.AffectedIndividuals,
			p.Casualties.Dead,
			p.Casualties.Injured,
			p.Casualties.Missing,
			now,
		))
		if err != nil {
			return err
		}
		created = inc

		_, err = tx.Exec(ctx,
			`INSERT INTO notifications (id, incident_id, message, created_at) VALUES ($1, $2, $3, $4)`,
			uuid.New(), id, fmt.Sprintf("New %s incident reported: %s", p.IncidentType, p.Title), now,
		)
		return err
	})
	if err != nil {
		r.logger.Error("db create failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return &created, nil
}

func optString[T ~string](v *T) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}

func (r *IncidentRepo) Update(ctx context.Context, id string, p domain.IncidentPatch) (*domain.Incident, error) {
	const op = "postgres.Incident.Update"

	uid, err := parseID(op, id)
	if err != nil {
		return nil, err
	}

	var dead, injured, missing *int
	if p.Casualties != nil {
		dead, injured, missing = &p.Casualties.Dead, &p.Casualties.Injured, &p.Casualties.Missing
	}

	query := `
		UPDATE incidents SET
			title                = COALESCE($2, title),
			description          = COALESCE($3, description),
			location             = COALESCE($4, location),
			incident_type        = COALESCE($5, incident_type),
			severity             = COALESCE($6, severity),
			status               = COALESCE($7, status),
			incident_date        = COALESCE($8, incident_date),
			affected_families    = COALESCE($9, affected_families),
			affected_individuals = COALESCE($10, affected_individuals),
			dead                 = COALESCE($11, dead),
			injured              = COALESCE($12, injured),
			missing              = COALESCE($13, missing)
		WHERE id = $1
		RETURNING ` + incidentColumns

	inc, err := scanIncident(r.pool.QueryRow(ctx, query,
		uid,
		p.Title,
		p.Description,
		p.Location,
		p.IncidentType,
		optString(p.Severity),
		optString(p.Status),
		p.IncidentDate,
		p.AffectedFamilies,
		p.AffectedIndividuals,
		dead,
		injured,
		missing,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		r.logger.Error("db update failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id))
		return nil, e.WrapError(ctx, op, err)
	}
	return &inc, nil
}

func (r *IncidentRepo) Delete(ctx context.Context, id string) error {
	const op = "postgres.Incident.Delete"

	uid, err := parseID(op, id)
	if err != nil {
		return err
	}

	cmd, err := r.pool.Exec(ctx, `DELETE FROM incidents WHERE id = $1`, uid)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

// SaveSubRecord upserts the population or infrastructure record attached to
// an incident.
func (r *IncidentRepo) SaveSubRecord(ctx context.Context, id string, kind domain.SubRecordKind, payload any) error {
	const op = "postgres.Incident.SaveSubRecord"

	uid, err := parseID(op, id)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%s: marshal payload: %w", op, e.ErrInvalidInput)
	}

	const query = `
		INSERT INTO incident_sub_records (incident_id, kind, payload, updated_at)
		SELECT $1, $2, $3, now()
		WHERE EXISTS (SELECT 1 FROM incidents WHERE id = $1)
		ON CONFLICT (incident_id, kind)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`

	cmd, err := r.pool.Exec(ctx, query, uid, string(kind), raw)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}
