package entity

type AdminUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"` // In production, you'd store hashed passwords.
}

/*
Mysql Schema:

CREATE TABLE admin_users (
	id INT AUTO_INCREMENT PRIMARY KEY,
	username VARCHAR(50) NOT NULL,
	email VARCHAR(50) NOT NULL,
	password VARCHAR(255) NOT NULL
);

CREATE UNIQUE INDEX email_idx ON admin_users(email);
*/
