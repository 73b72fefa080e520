package domain

import "time"

// User учетная запись владельца барбершопа.
// Пароль хранится и сверяется как непрозрачная строка.
// TODO: захешировать пароли (bcrypt) при следующей миграции схемы
type User struct {
	ID       int64
	Username string
	Phone    string
	Password string

	CreatedAt time.Time
}
