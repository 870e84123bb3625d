package repository

import (
	"database/sql"
	"time"

	"cvscanner/models"
)

type PostgresUserRepo struct {
	DB *sql.DB
}

func NewPostgresUserRepo(db *sql.DB) *PostgresUserRepo {
	return &PostgresUserRepo{DB: db}
}

const userColumns = `id, username, email, password_hash, first_name, last_name, role, is_active, last_login`

// Exists reports whether any row matches the username or the email.
// Single round trip, covers both unique fields.
func (r *PostgresUserRepo) Exists(username, email string) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1 OR email = $2)`,
		username, email,
	).Scan(&exists)
	return exists, err
}

func (r *PostgresUserRepo) Create(user *models.User) error {
	_, err := r.DB.Exec(`
		INSERT INTO users (username, email, password_hash, first_name, last_name, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, user.Username, user.Email, user.PasswordHash, user.FirstName, user.LastName, user.Role, user.IsActive)
	return err
}

// GetByEmail fetches a user by email, nil if absent.
func (r *PostgresUserRepo) GetByEmail(email string) (*models.User, error) {
	row := r.DB.QueryRow(`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	user, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// GetHashByEmailActive returns the stored hash for an active user, or
// the empty string if no such user exists.
func (r *PostgresUserRepo) GetHashByEmailActive(email string) (string, error) {
	var hash string
	err := r.DB.QueryRow(
		`SELECT password_hash FROM users WHERE email = $1 AND is_active = TRUE`,
		email,
	).Scan(&hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", err
	}
	return hash, nil
}

func (r *PostgresUserRepo) UpdateLastLogin(email string) error {
	_, err := r.DB.Exec(`UPDATE users SET last_login = $1 WHERE email = $2`, time.Now().UTC(), email)
	return err
}

func (r *PostgresUserRepo) UpdatePassword(email, passwordHash string) error {
	_, err := r.DB.Exec(`UPDATE users SET password_hash = $1 WHERE email = $2`, passwordHash, email)
	return err
}

func (r *PostgresUserRepo) UpdateProfile(email, firstName, lastName string) (int64, error) {
	res, err := r.DB.Exec(
		`UPDATE users SET first_name = $1, last_name = $2 WHERE email = $3`,
		firstName, lastName, email,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Update rewrites every editable field of the row matching the email.
func (r *PostgresUserRepo) Update(user *models.User) (int64, error) {
	res, err := r.DB.Exec(`
		UPDATE users SET username = $1, first_name = $2, last_name = $3, role = $4, is_active = $5
		WHERE email = $6
	`, user.Username, user.FirstName, user.LastName, user.Role, user.IsActive, user.Email)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *PostgresUserRepo) Delete(email string) (int64, error) {
	res, err := r.DB.Exec(`DELETE FROM users WHERE email = $1`, email)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *PostgresUserRepo) List() ([]models.User, error) {
	rows, err := r.DB.Query(`SELECT ` + userColumns + ` FROM users ORDER BY username`)
	if err != nil {
		return nil, err
	}
	return collectUsers(rows)
}

// Search matches username, email, first or last name, case-insensitive.
func (r *PostgresUserRepo) Search(query string) ([]models.User, error) {
	pattern := "%" + query + "%"
	rows, err := r.DB.Query(`
		SELECT `+userColumns+` FROM users
		WHERE username ILIKE $1 OR email ILIKE $1 OR first_name ILIKE $1 OR last_name ILIKE $1
		ORDER BY username
	`, pattern)
	if err != nil {
		return nil, err
	}
	return collectUsers(rows)
}

func (r *PostgresUserRepo) FilterByRole(role string) ([]models.User, error) {
	rows, err := r.DB.Query(`SELECT `+userColumns+` FROM users WHERE role = $1 ORDER BY username`, role)
	if err != nil {
		return nil, err
	}
	return collectUsers(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	user := &models.User{}
	var lastLogin sql.NullTime
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.FirstName, &user.LastName, &user.Role, &user.IsActive, &lastLogin,
	)
	if err != nil {
		return nil, err
	}
	if lastLogin.Valid {
		t := lastLogin.Time
		user.LastLogin = &t
	}
	return user, nil
}

func collectUsers(rows *sql.Rows) ([]models.User, error) {
	defer rows.Close()
	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}
