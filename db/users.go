package db

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/peoplehub/peoplehub-services/models"
)

// GetAllUsers retrieves every user record.
func (d *PeopleDB) GetAllUsers() ([]models.User, error) {
	query := `SELECT id, name, username, email, password, COALESCE(profile_image, '') FROM users`
	rows, err := d.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID,
			&u.Name,
			&u.Username,
			&u.Email,
			&u.Password,
			&u.ProfileImage); err != nil {
			return nil, fmt.Errorf("error scanning users: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// GetUserByID retrieves a single user. A missing user is not an error; the
// returned user is nil.
func (d *PeopleDB) GetUserByID(id uuid.UUID) (*models.User, error) {
	return d.getUser(`SELECT id, name, username, email, password, COALESCE(profile_image, '') FROM users WHERE id = $1`, id)
}

// GetUserByEmail retrieves the user owning the given email, or nil.
func (d *PeopleDB) GetUserByEmail(email string) (*models.User, error) {
	return d.getUser(`SELECT id, name, username, email, password, COALESCE(profile_image, '') FROM users WHERE email = $1`, email)
}

// GetUserByUsername retrieves the user owning the given username, or nil.
func (d *PeopleDB) GetUserByUsername(username string) (*models.User, error) {
	return d.getUser(`SELECT id, name, username, email, password, COALESCE(profile_image, '') FROM users WHERE username = $1`, username)
}

func (d *PeopleDB) getUser(query string, arg interface{}) (*models.User, error) {
	row := d.DB.QueryRow(query, arg)

	var u models.User
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Username,
		&u.Email,
		&u.Password,
		&u.ProfileImage); err != nil {
		if err == sql.ErrNoRows {
			// User does not exist, return nil user and nil error
			return nil, nil
		}

		return nil, fmt.Errorf("error scanning user: %w", err)
	}

	return &u, nil
}

// AddUser inserts a new user and returns the stored record.
func (d *PeopleDB) AddUser(user models.User) (*models.User, error) {
	tx, err := d.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}

	userID := uuid.New()

	err = d.execQuery(tx, `
		INSERT INTO users (id, name, username, email, password, profile_image)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		userID, user.Name, user.Username, user.Email, user.Password, user.ProfileImage)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := d.CommitTransaction(tx); err != nil {
		return nil, err
	}

	user.ID = userID
	return &user, nil
}

// UpdateUser persists the merged user record under the given ID.
func (d *PeopleDB) UpdateUser(id uuid.UUID, user models.User) error {
	tx, err := d.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	err = d.execQuery(tx, `
		UPDATE users
		SET name = $1, username = $2, email = $3, password = $4, profile_image = $5 WHERE id = $6`,
		user.Name, user.Username, user.Email, user.Password, user.ProfileImage, id)
	if err != nil {
		tx.Rollback()
		d.Log.Error().Err(err).Msg("error updating user")
		return err
	}

	if err := d.CommitTransaction(tx); err != nil {
		return err
	}

	return nil
}

// RemoveUser deletes a user by ID.
func (d *PeopleDB) RemoveUser(id uuid.UUID) error {
	tx, err := d.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	// Rollback transaction if an error occurs
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	err = d.execQuery(tx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error executing delete query: %w", err)
	}

	if err := d.CommitTransaction(tx); err != nil {
		return err
	}

	return nil
}
