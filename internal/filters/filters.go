// Package filters builds list-query scoping from URL parameters. It mirrors
// the search surface of the API: clients by name or email, contracts by
// client, creation date or amount, events by client or event date.
//
// Filtering decides which records a list returns; whether the list action is
// permitted at all is the gate's decision and happens before any of this.
package filters

import (
	"net/url"

	"gorm.io/gorm"
)

// Clients narrows a client query. Supported parameters:
// last_name, full_name (matches first or last name), email. Matches are
// case-insensitive and exact.
func Clients(q url.Values, db *gorm.DB) *gorm.DB {
	if v := q.Get("last_name"); v != "" {
		db = db.Where("LOWER(last_name) = LOWER(?)", v)
	}
	if v := q.Get("full_name"); v != "" {
		db = db.Where("LOWER(first_name) = LOWER(?) OR LOWER(last_name) = LOWER(?)", v, v)
	}
	if v := q.Get("email"); v != "" {
		db = db.Where("LOWER(email) = LOWER(?)", v)
	}
	return db
}

// Contracts narrows a contract query. Supported parameters:
// client_email, client_full_name, last_name (all against the owning client),
// date_created (YYYY-MM-DD), amount.
func Contracts(q url.Values, db *gorm.DB) *gorm.DB {
	db = withClientFilters(q, db, "contracts", false)
	if v := q.Get("date_created"); v != "" {
		db = db.Where("DATE(contracts.created_at) = ?", v)
	}
	if v := q.Get("amount"); v != "" {
		db = db.Where("contracts.amount_due = ?", v)
	}
	return db
}

// Events narrows an event query. Supported parameters:
// client_email (substring match), client_full_name, last_name,
// event_date (YYYY-MM-DD).
func Events(q url.Values, db *gorm.DB) *gorm.DB {
	db = withClientFilters(q, db, "events", true)
	if v := q.Get("event_date"); v != "" {
		db = db.Where("DATE(events.event_date) = ?", v)
	}
	return db
}

// withClientFilters applies the shared client-based parameters, joining the
// clients table exactly once when any of them is present. emailContains
// selects substring matching for client_email (the event search behaves that
// way; contracts match exactly).
func withClientFilters(q url.Values, db *gorm.DB, table string, emailContains bool) *gorm.DB {
	email := q.Get("client_email")
	fullName := q.Get("client_full_name")
	lastName := q.Get("last_name")
	if email == "" && fullName == "" && lastName == "" {
		return db
	}

	db = db.Joins("JOIN clients ON clients.id = " + table + ".client_id")
	if email != "" {
		if emailContains {
			db = db.Where("clients.email LIKE ?", "%"+email+"%")
		} else {
			db = db.Where("LOWER(clients.email) = LOWER(?)", email)
		}
	}
	if fullName != "" {
		db = db.Where("LOWER(clients.first_name) = LOWER(?) OR LOWER(clients.last_name) = LOWER(?)", fullName, fullName)
	}
	if lastName != "" {
		db = db.Where("LOWER(clients.last_name) = LOWER(?)", lastName)
	}
	return db
}
