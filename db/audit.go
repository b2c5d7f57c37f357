package db

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// InsertAuditEntry records a consumed lifecycle event in the audit log.
func (d *PeopleDB) InsertAuditEntry(entity string, entityID uuid.UUID, action string, occurredAt time.Time) error {
	tx, err := d.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	err = d.execQuery(tx, `
		INSERT INTO audit_log (id, entity, entity_id, action, occurred_at)
		VALUES ($1, $2, $3, $4, $5)`,
		uuid.New(), entity, entityID, action, occurredAt)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("error inserting audit entry: %w", err)
	}

	if err := d.CommitTransaction(tx); err != nil {
		return err
	}

	return nil
}
