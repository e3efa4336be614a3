package postgres

// position preserves insertion order; the planner breaks APY ties by it.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id            UUID PRIMARY KEY,
		position      BIGSERIAL,
		name          TEXT NOT NULL,
		apy           NUMERIC(12, 8) NOT NULL DEFAULT 0,
		transfer_time INTEGER NOT NULL DEFAULT 0,
		is_main       BOOLEAN NOT NULL DEFAULT FALSE,
		balance       NUMERIC(20, 4) NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS credit_cards (
		id                 UUID PRIMARY KEY,
		position           BIGSERIAL,
		name               TEXT NOT NULL,
		due_day            INTEGER NOT NULL CHECK (due_day BETWEEN 1 AND 31),
		statement_day      INTEGER NOT NULL DEFAULT 0,
		balance            NUMERIC(20, 4) NOT NULL DEFAULT 0,
		payment_account_id UUID NULL
	)`,
	`CREATE TABLE IF NOT EXISTS recurring_expenses (
		id                 UUID PRIMARY KEY,
		position           BIGSERIAL,
		name               TEXT NOT NULL,
		amount             NUMERIC(20, 4) NOT NULL DEFAULT 0,
		due_day            INTEGER NOT NULL CHECK (due_day BETWEEN 1 AND 31),
		payment_account_id UUID NULL
	)`,
}
