package userservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"assetverse/apperror"
)

type UserRepository interface {
	RunInTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
	IsUserExists(ctx context.Context, email string) (bool, error)
	InsertUser(ctx context.Context, user User) error
	GetUserByEmail(ctx context.Context, email string) (User, error)
	UpdateUserProfile(ctx context.Context, email string, req UpdateUserReq) (int64, error)
	GetEmployeeHR(ctx context.Context, employeeEmail string) (*string, error)
	DetachEmployee(ctx context.Context, tx *sqlx.Tx, employeeEmail, hrEmail string) (int64, error)
	DecrementCurrentEmployees(ctx context.Context, tx *sqlx.Tx, hrEmail string) error
	GetTeamMembers(ctx context.Context, hrEmail string) ([]TeamMember, error)
	GetEmployeesByHR(ctx context.Context, hrEmail string, limit, offset int) ([]User, int, error)
}

type PostgresUserRepository struct {
	DB *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &PostgresUserRepository{DB: db}
}

func (r *PostgresUserRepository) RunInTx(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	err = fn(tx)
	return err
}

func (r *PostgresUserRepository) IsUserExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.DB.GetContext(ctx, &exists, `
		SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)
	`, email)
	if err != nil {
		return false, fmt.Errorf("failed to check existing user: %w", err)
	}
	return exists, nil
}

func (r *PostgresUserRepository) InsertUser(ctx context.Context, user User) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO users (
			email, name, photo_url, role, status, date_of_birth,
			company_name, company_logo, company_details,
			package_limit, current_employees, subscription
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, user.Email, user.Name, user.PhotoURL, user.Role, user.Status, user.DateOfBirth,
		user.CompanyName, user.CompanyLogo, user.CompanyDetails,
		user.PackageLimit, user.CurrentEmployees, user.Subscription)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *PostgresUserRepository) GetUserByEmail(ctx context.Context, email string) (User, error) {
	var user User
	err := r.DB.GetContext(ctx, &user, `
		SELECT email, name, photo_url, role, status,
		       to_char(date_of_birth, 'YYYY-MM-DD') AS date_of_birth,
		       company_name, company_logo, company_details, hr_email,
		       package_limit, current_employees, subscription
		FROM users
		WHERE email = $1
	`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, apperror.NotFound("user not found")
		}
		return User{}, fmt.Errorf("failed to fetch user by email: %w", err)
	}
	return user, nil
}

func (r *PostgresUserRepository) UpdateUserProfile(ctx context.Context, email string, req UpdateUserReq) (int64, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	appendSet := func(column, value string) {
		if value != "" {
			sets = append(sets, fmt.Sprintf("%s = $%d", column, argPos))
			args = append(args, value)
			argPos++
		}
	}
	appendSet("name", req.Name)
	appendSet("photo_url", req.PhotoURL)
	appendSet("date_of_birth", req.DateOfBirth)
	appendSet("company_name", req.CompanyName)
	appendSet("company_logo", req.CompanyLogo)
	appendSet("company_details", req.CompanyDetails)

	if len(sets) == 0 {
		return 0, apperror.Validation("at least one field must be provided for update")
	}

	query := fmt.Sprintf("UPDATE users SET %s WHERE email = $%d", strings.Join(sets, ", "), argPos)
	args = append(args, email)

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update user: %w", err)
	}
	modified, _ := result.RowsAffected()
	return modified, nil
}

func (r *PostgresUserRepository) GetEmployeeHR(ctx context.Context, employeeEmail string) (*string, error) {
	var hrEmail *string
	err := r.DB.GetContext(ctx, &hrEmail, `
		SELECT hr_email FROM users WHERE email = $1 AND role = 'employee'
	`, employeeEmail)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("employee not found")
		}
		return nil, fmt.Errorf("failed to fetch employee affiliation: %w", err)
	}
	return hrEmail, nil
}

// DetachEmployee clears the team affiliation. The user row and its request
// history stay untouched.
func (r *PostgresUserRepository) DetachEmployee(ctx context.Context, tx *sqlx.Tx, employeeEmail, hrEmail string) (int64, error) {
	result, err := tx.ExecContext(ctx, `
		UPDATE users SET hr_email = NULL
		WHERE email = $1 AND hr_email = $2 AND role = 'employee'
	`, employeeEmail, hrEmail)
	if err != nil {
		return 0, fmt.Errorf("failed to detach employee: %w", err)
	}
	modified, _ := result.RowsAffected()
	return modified, nil
}

func (r *PostgresUserRepository) DecrementCurrentEmployees(ctx context.Context, tx *sqlx.Tx, hrEmail string) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE users SET current_employees = GREATEST(current_employees - 1, 0)
		WHERE email = $1 AND role = 'hr'
	`, hrEmail)
	if err != nil {
		return fmt.Errorf("failed to decrement current employees: %w", err)
	}
	return nil
}

func (r *PostgresUserRepository) GetTeamMembers(ctx context.Context, hrEmail string) ([]TeamMember, error) {
	members := make([]TeamMember, 0)
	err := r.DB.SelectContext(ctx, &members, `
		SELECT u.email, u.name, u.photo_url,
		       to_char(u.date_of_birth, 'YYYY-MM-DD') AS date_of_birth,
		       hr.company_name
		FROM users u
		JOIN users hr ON hr.email = u.hr_email
		WHERE u.hr_email = $1 AND u.role = 'employee'
		ORDER BY u.name
	`, hrEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch team members: %w", err)
	}
	return members, nil
}

func (r *PostgresUserRepository) GetEmployeesByHR(ctx context.Context, hrEmail string, limit, offset int) ([]User, int, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, `
		SELECT count(*) FROM users WHERE hr_email = $1 AND role = 'employee'
	`, hrEmail)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	employees := make([]User, 0)
	err = r.DB.SelectContext(ctx, &employees, `
		SELECT email, name, photo_url, role, status,
		       to_char(date_of_birth, 'YYYY-MM-DD') AS date_of_birth,
		       company_name, company_logo, company_details, hr_email,
		       package_limit, current_employees, subscription
		FROM users
		WHERE hr_email = $1 AND role = 'employee'
		ORDER BY name
		LIMIT $2 OFFSET $3
	`, hrEmail, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch employees: %w", err)
	}
	return employees, count, nil
}
