package domain

type User struct {
	ID           int64  `db:"id"`
	Email        string `db:"email"`
	PasswordHash []byte `db:"password_hash"`
	PasswordSalt []byte `db:"password_salt"`
	IsActive     bool   `db:"is_active"`
}
