package migrations

import (
	"database/sql"
	"time"
)

func execWithRetry(db *sql.DB, retries int, query string) error {
	_, err := db.Exec(query)
	if err != nil {
		// Retry creating the table
		for i := 0; i < retries; i++ {
			time.Sleep(1 * time.Second)
			_, err = db.Exec(query)
			if err == nil {
				break
			}
		}
	}
	return err
}

// AutoMigrateCatalog creates the menu_items and ingredients tables if they do
// not exist.
func AutoMigrateCatalog(retries int, db *sql.DB) error {
	menuQuery := `
		CREATE TABLE IF NOT EXISTS menu_items (
			id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			name_de VARCHAR(100) NOT NULL,
			description TEXT NOT NULL,
			price VARCHAR(20) NOT NULL DEFAULT '',
			price_small VARCHAR(20) NOT NULL DEFAULT '',
			price_standard VARCHAR(20) NOT NULL DEFAULT '',
			category VARCHAR(50) NOT NULL,
			image VARCHAR(255) NOT NULL DEFAULT '',
			available TINYINT(1) NOT NULL DEFAULT 1
		);
	`
	if err := execWithRetry(db, retries, menuQuery); err != nil {
		return err
	}

	ingredientQuery := `
		CREATE TABLE IF NOT EXISTS ingredients (
			id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			name_de VARCHAR(100) NOT NULL,
			type VARCHAR(20) NOT NULL,
			price VARCHAR(20) NOT NULL DEFAULT '',
			price_small VARCHAR(20) NOT NULL DEFAULT '',
			price_standard VARCHAR(20) NOT NULL DEFAULT '',
			extra_price VARCHAR(20) NOT NULL DEFAULT '',
			available TINYINT(1) NOT NULL DEFAULT 1
		);
	`
	return execWithRetry(db, retries, ingredientQuery)
}

// AutoMigrateOrders creates the orders and order_lines tables if they do not
// exist.
func AutoMigrateOrders(retries int, db *sql.DB) error {
	orderQuery := `
		CREATE TABLE IF NOT EXISTS orders (
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
	`
	if err := execWithRetry(db, retries, orderQuery); err != nil {
		return err
	}

	lineQuery := `
		CREATE TABLE IF NOT EXISTS order_lines (
			id INT AUTO_INCREMENT PRIMARY KEY,
			order_id INT NOT NULL,
			line_id VARCHAR(100) NOT NULL,
			menu_item_id INT NOT NULL,
			name VARCHAR(100) NOT NULL,
			name_de VARCHAR(100) NOT NULL,
			price VARCHAR(20) NOT NULL,
			image VARCHAR(255) NOT NULL DEFAULT '',
			quantity INT NOT NULL,
			size VARCHAR(20) NOT NULL DEFAULT '',
			customization TEXT NOT NULL,
			FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE
		);
	`
	return execWithRetry(db, retries, lineQuery)
}

// AutoMigrateReservations creates the reservations table if it does not exist.
func AutoMigrateReservations(retries int, db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS reservations (
			id INT AUTO_INCREMENT PRIMARY KEY,
			code VARCHAR(36) NOT NULL UNIQUE,
			name VARCHAR(100) NOT NULL,
			phone VARCHAR(50) NOT NULL,
			email VARCHAR(100) NOT NULL,
			date VARCHAR(20) NOT NULL,
			time VARCHAR(20) NOT NULL,
			guests INT NOT NULL,
			note TEXT NOT NULL,
			status VARCHAR(20) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`
	return execWithRetry(db, retries, query)
}

// AutoMigrateSite creates the gallery, content, settings, snapshot and admin
// user tables if they do not exist.
func AutoMigrateSite(retries int, db *sql.DB) error {
	queries := []string{
		`
		CREATE TABLE IF NOT EXISTS gallery_images (
			id INT AUTO_INCREMENT PRIMARY KEY,
			title VARCHAR(100) NOT NULL,
			url VARCHAR(255) NOT NULL,
			position INT NOT NULL DEFAULT 0
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS content_blocks (
			id INT AUTO_INCREMENT PRIMARY KEY,
			slug VARCHAR(100) NOT NULL UNIQUE,
			title VARCHAR(100) NOT NULL,
			body TEXT NOT NULL,
			body_de TEXT NOT NULL
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS settings (
			` + "`key`" + ` VARCHAR(50) PRIMARY KEY,
			value VARCHAR(255) NOT NULL
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS snapshots (
			id VARCHAR(36) PRIMARY KEY,
			label VARCHAR(100) NOT NULL,
			document LONGTEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS admin_users (
			id INT AUTO_INCREMENT PRIMARY KEY,
			username VARCHAR(50) NOT NULL,
			email VARCHAR(50) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL
		);
		`,
	}
	for _, q := range queries {
		if err := execWithRetry(db, retries, q); err != nil {
			return err
		}
	}
	return nil
}
