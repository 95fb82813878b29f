//go:build integration

package containers

// Schema is the full relational schema, applied to throwaway container
// databases before each integration suite.
const Schema = `
CREATE TABLE users (
	id            BIGSERIAL PRIMARY KEY,
	email         TEXT NOT NULL,
	full_name     TEXT NOT NULL,
	phone         TEXT NOT NULL DEFAULT '',
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE UNIQUE INDEX users_email ON users (lower(email));

CREATE TABLE user_roles (
	user_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
	role    TEXT NOT NULL,
	PRIMARY KEY (user_id, role)
);

CREATE TABLE departments (
	id     BIGSERIAL PRIMARY KEY,
	name   TEXT NOT NULL,
	active BOOLEAN NOT NULL DEFAULT true
);

CREATE TABLE unit_types (
	id     BIGSERIAL PRIMARY KEY,
	name   TEXT NOT NULL,
	active BOOLEAN NOT NULL DEFAULT true
);

CREATE TABLE department_admins (
	id            BIGSERIAL PRIMARY KEY,
	user_id       BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
	department_id BIGINT NOT NULL REFERENCES departments (id),
	is_primary    BOOLEAN NOT NULL DEFAULT false,
	active        BOOLEAN NOT NULL DEFAULT true
);

CREATE TABLE properties (
	id            BIGSERIAL PRIMARY KEY,
	name          TEXT NOT NULL,
	description   TEXT NOT NULL DEFAULT '',
	address       TEXT NOT NULL DEFAULT '',
	latitude      DOUBLE PRECISION NOT NULL DEFAULT 0,
	longitude     DOUBLE PRECISION NOT NULL DEFAULT 0,
	base_price    NUMERIC(12,2) NOT NULL,
	max_guests    INT NOT NULL,
	bedrooms      INT NOT NULL,
	bathrooms     INT NOT NULL,
	department_id BIGINT NOT NULL REFERENCES departments (id),
	unit_type_id  BIGINT NOT NULL REFERENCES unit_types (id),
	image_keys    TEXT NOT NULL DEFAULT '[]',
	active        BOOLEAN NOT NULL DEFAULT true,
	verified      BOOLEAN NOT NULL DEFAULT false,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE property_admins (
	id          BIGSERIAL PRIMARY KEY,
	user_id     BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
	property_id BIGINT NOT NULL REFERENCES properties (id) ON DELETE CASCADE,
	active      BOOLEAN NOT NULL DEFAULT true,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (user_id, property_id)
);

CREATE TABLE availability_days (
	property_id BIGINT NOT NULL REFERENCES properties (id) ON DELETE CASCADE,
	date        DATE NOT NULL,
	price       NUMERIC(12,2) NOT NULL,
	available   BOOLEAN NOT NULL DEFAULT true,
	PRIMARY KEY (property_id, date)
);

CREATE TABLE registration_requests (
	id                  BIGSERIAL PRIMARY KEY,
	full_name           TEXT NOT NULL,
	email               TEXT NOT NULL,
	phone               TEXT NOT NULL,
	password_hash       TEXT NOT NULL,
	property_name       TEXT NOT NULL,
	description         TEXT NOT NULL DEFAULT '',
	address             TEXT NOT NULL DEFAULT '',
	latitude            DOUBLE PRECISION NOT NULL DEFAULT 0,
	longitude           DOUBLE PRECISION NOT NULL DEFAULT 0,
	base_price          NUMERIC(12,2) NOT NULL,
	max_guests          INT NOT NULL,
	bedrooms            INT NOT NULL,
	bathrooms           INT NOT NULL,
	department_id       BIGINT NOT NULL REFERENCES departments (id),
	unit_type_id        BIGINT NOT NULL REFERENCES unit_types (id),
	image_keys          TEXT NOT NULL DEFAULT '[]',
	image_count         INT NOT NULL DEFAULT 0,
	image_status        SMALLINT NOT NULL DEFAULT 0,
	image_error         TEXT,
	images_processed_at TIMESTAMPTZ,
	status              SMALLINT NOT NULL DEFAULT 0,
	submitted_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
	reviewed_at         TIMESTAMPTZ,
	reviewed_by         BIGINT REFERENCES users (id),
	rejection_reason    TEXT,
	created_user_id     BIGINT REFERENCES users (id),
	created_property_id BIGINT REFERENCES properties (id)
);
CREATE UNIQUE INDEX registration_requests_pending_email
	ON registration_requests (lower(email)) WHERE status = 0;
CREATE INDEX registration_requests_department
	ON registration_requests (department_id, status);

CREATE TABLE review_audit (
	id         BIGSERIAL PRIMARY KEY,
	request_id BIGINT NOT NULL,
	action     TEXT NOT NULL,
	actor_id   BIGINT NOT NULL,
	reason     TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// Seed inserts the reference rows most suites need.
const Seed = `
INSERT INTO departments (name, active) VALUES ('Coastal', true), ('Mountain', false);
INSERT INTO unit_types (name, active) VALUES ('Apartment', true), ('Villa', true), ('Hostel', false);
`
