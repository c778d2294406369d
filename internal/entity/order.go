package entity

import "time"

type Order struct {
	ID            int        `json:"id"`
	CustomerName  string     `json:"customer_name"`
	Phone         string     `json:"phone"`
	Email         string     `json:"email"`
	Address       string     `json:"address"`
	Note          string     `json:"note"`
	Lines         []CartLine `json:"lines"`
	Total         string     `json:"total"`
	Status        string     `json:"status"` // e.g., "created", "confirmed", "cancelled"
	IdempotentKey string     `json:"idempotent_key"`
	CreatedAt     time.Time  `json:"created_at"`
}

/*
Mysql Table

CREATE TABLE orders (
	id INT AUTO_INCREMENT PRIMARY KEY,
	customer_name VARCHAR(100) NOT NULL,
	phone VARCHAR(50) NOT NULL,
	email VARCHAR(100) NOT NULL,
	address VARCHAR(255) NOT NULL,
	note TEXT NOT NULL,
	total VARCHAR(20) NOT NULL,
	status VARCHAR(20) NOT NULL,
	idempotent_key VARCHAR(255) UNIQUE NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE order_lines (
	id INT AUTO_INCREMENT PRIMARY KEY,
	order_id INT NOT NULL REFERENCES orders(id),
	line_id VARCHAR(100) NOT NULL,
	menu_item_id INT NOT NULL,
	name VARCHAR(100) NOT NULL,
	name_de VARCHAR(100) NOT NULL,
	price VARCHAR(20) NOT NULL,
	image VARCHAR(255) NOT NULL,
	quantity INT NOT NULL,
	size VARCHAR(20) NOT NULL,
	customization TEXT NOT NULL
);
*/
