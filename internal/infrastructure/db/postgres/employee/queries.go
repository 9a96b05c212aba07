package employee

const (
	userColumns = `id, username, email, first_name, last_name, document_number, date_of_birth, role, password_hash, manager_id, created_at, updated_at`

	SelectUserByID = `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`
	SelectUserByUsername = `
		SELECT ` + userColumns + `
		FROM users
		WHERE username = $1
	`
	SelectUserByDocumentNumber = `
		SELECT ` + userColumns + `
		FROM users
		WHERE document_number = $1
	`
	InsertUser = `
		INSERT INTO users (username, email, first_name, last_name, document_number, date_of_birth, role, password_hash, manager_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + userColumns + `
	`
	UpdateUserByID = `
		UPDATE users
		SET username = $1,
		    email = $2,
		    first_name = $3,
		    last_name = $4,
		    document_number = $5,
		    date_of_birth = $6,
		    role = $7,
		    password_hash = $8,
		    manager_id = $9,
		    updated_at = now()
		WHERE id = $10
		RETURNING ` + userColumns + `
	`
	DeleteUserByID = `DELETE FROM users WHERE id = $1`

	SelectPhoneNumbersByUserID = `
		SELECT id, number, user_id
		FROM phone_numbers
		WHERE user_id = $1
		ORDER BY id
	`
	SelectPhoneNumbersByUserIDs = `
		SELECT id, number, user_id
		FROM phone_numbers
		WHERE user_id = ANY($1)
		ORDER BY id
	`
	InsertPhoneNumber        = `INSERT INTO phone_numbers (number, user_id) VALUES ($1, $2) RETURNING id`
	DeletePhoneNumbersByUser = `DELETE FROM phone_numbers WHERE user_id = $1`
)
