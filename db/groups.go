package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/peoplehub/peoplehub-services/models"
)

// GetAllGroups retrieves every group record.
func (d *PeopleDB) GetAllGroups() ([]models.Group, error) {
	query := `SELECT id, name, user_id, created_at FROM groups`
	rows, err := d.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving groups: %w", err)
	}
	defer rows.Close()

	var groups []models.Group
	for rows.Next() {
		var g models.Group
		if err := rows.Scan(&g.ID, &g.Name, &g.UserID, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning groups: %w", err)
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

// GetGroupByAdminID retrieves the group owned by the given admin user, or
// nil when the admin owns no group.
func (d *PeopleDB) GetGroupByAdminID(userID uuid.UUID) (*models.Group, error) {
	query := `SELECT id, name, user_id, created_at FROM groups WHERE user_id = $1`
	row := d.DB.QueryRow(query, userID)

	var g models.Group
	if err := row.Scan(&g.ID, &g.Name, &g.UserID, &g.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("error scanning group: %w", err)
	}

	return &g, nil
}

// CreateGroup inserts a new group stamped with the server clock and returns
// the created record.
func (d *PeopleDB) CreateGroup(name string, userID uuid.UUID) (*models.Group, error) {
	tx, err := d.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}

	groupID := uuid.New()
	createdAt := time.Now().UTC()

	err = d.execQuery(tx, `
		INSERT INTO groups (id, name, user_id, created_at)
		VALUES ($1, $2, $3, $4)`,
		groupID, name, userID, createdAt)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := d.CommitTransaction(tx); err != nil {
		return nil, err
	}

	group := models.Group{
		ID:        groupID,
		Name:      name,
		UserID:    userID,
		CreatedAt: createdAt,
	}

	return &group, nil
}
