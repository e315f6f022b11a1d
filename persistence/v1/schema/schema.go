package schema

// statements are kept to the subset of SQL understood by MySQL and SQLite alike
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id        VARCHAR(26)  NOT NULL PRIMARY KEY,
		email     VARCHAR(320) NOT NULL,
		profile   TEXT         NOT NULL,
		createdAt DATETIME     NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS notes (
		id        VARCHAR(26)  NOT NULL PRIMARY KEY,
		email     VARCHAR(320) NOT NULL,
		title     TEXT         NOT NULL,
		content   TEXT         NOT NULL,
		category  VARCHAR(255) NOT NULL,
		photoLink TEXT         NOT NULL,
		createdAt DATETIME     NOT NULL,
		updatedAt DATETIME     NOT NULL
	)`,
}

var dropSchema = []string{
	`DROP TABLE IF EXISTS notes`,
	`DROP TABLE IF EXISTS users`,
}
