package postgres

import (
	"database/sql"
	"time"

	"filescan/pkg/domain"

	"github.com/google/uuid"
)

type PgFileScan struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	Name        string `db:"name"`
	Size        int64  `db:"size"`
	Fingerprint string `db:"fingerprint"`

	Verdict    string         `db:"verdict"`
	ScanHandle sql.NullString `db:"scan_handle"`
	Degraded   bool           `db:"degraded"`

	Attempts  uint           `db:"attempts"   goqu:"skipinsert"`
	LastError sql.NullString `db:"last_error" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgFileScan) ToDomain() *domain.FileScan {
	return &domain.FileScan{
		ID:          domain.FileID(p.ID),
		UserID:      domain.UserID(p.UserID),
		Name:        p.Name,
		Size:        p.Size,
		Fingerprint: p.Fingerprint,
		Verdict:     domain.Verdict(p.Verdict),
		ScanHandle:  p.ScanHandle.String,
		Degraded:    p.Degraded,
		Attempts:    p.Attempts,
		LastError:   p.LastError.String,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
		DeletedAt:   p.DeletedAt.Time,
	}
}

func (p *PgFileScan) FromDomain(file domain.FileScan) {
	*p = PgFileScan{
		ID:          uuid.UUID(file.ID),
		UserID:      uuid.UUID(file.UserID),
		Name:        file.Name,
		Size:        file.Size,
		Fingerprint: file.Fingerprint,
		Verdict:     string(file.Verdict),
		ScanHandle: sql.NullString{
			String: file.ScanHandle,
			Valid:  file.ScanHandle != "",
		},
		Degraded: file.Degraded,
		Attempts: file.Attempts,
		LastError: sql.NullString{
			String: file.LastError,
			Valid:  file.LastError != "",
		},
		CreatedAt: file.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  file.UpdatedAt,
			Valid: !file.UpdatedAt.IsZero(),
		},
		DeletedAt: sql.NullTime{
			Time:  file.DeletedAt,
			Valid: !file.DeletedAt.IsZero(),
		},
	}
}

func domainFileScansToPg(files []domain.FileScan) []PgFileScan {
	out := make([]PgFileScan, len(files))
	for i := range out {
		out[i].FromDomain(files[i])
	}

	return out
}

func pgFileScansToDomain(files []PgFileScan) []domain.FileScan {
	out := make([]domain.FileScan, 0, len(files))
	for i := range files {
		out = append(out, *files[i].ToDomain())
	}

	return out
}
