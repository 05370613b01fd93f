package authRepository

const (
	queryCreateAdmin = `
		INSERT INTO admins (
			id,
			username,
			password,
			email,
			is_active,
			role,
			created_at,
			updated_at
		) VALUES (
			:id,
			:username,
			:password,
			:email,
			:is_active,
			:role,
			:created_at,
			:updated_at
		)
	`

	queryGetAdminByUsername = `
		SELECT
			id,
			username,
			password,
			email,
			is_active,
			role,
			last_login,
			active_token,
			created_at,
			updated_at
		FROM admins
		WHERE username = :username
	`

	queryGetAdminByID = `
		SELECT
			id,
			username,
			email,
			is_active,
			role,
			last_login,
			active_token,
			created_at,
			updated_at
		FROM admins
		WHERE id = :id
	`

	querySetActiveToken = `
		UPDATE admins
		SET
			active_token = :active_token,
			last_login = :last_login,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryClearActiveToken = `
		UPDATE admins
		SET
			active_token = NULL,
			updated_at = :updated_at
		WHERE id = :id
	`
)
