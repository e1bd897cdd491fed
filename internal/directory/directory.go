// Package directory implements the list operations the admin screens share:
// client-side name filtering over a single fetched page, and removal by id
// after a confirmed delete.
package directory

import (
	"strings"

	"waiter/internal/models"
)

// FilterUsersByName keeps users whose employee name contains the query,
// case-insensitively. The server-side filter is not relied upon; the page
// is filtered again here. An empty query keeps everything.
func FilterUsersByName(users []models.User, query string) []models.User {
	if query == "" {
		return users
	}
	q := strings.ToLower(query)
	var out []models.User
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Employee.Name), q) {
			out = append(out, u)
		}
	}
	return out
}

// FilterProductsByName keeps products whose name contains the query,
// case-insensitively.
func FilterProductsByName(products []models.Product, query string) []models.Product {
	if query == "" {
		return products
	}
	q := strings.ToLower(query)
	var out []models.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}

// RemoveUser returns the list without the user carrying the given id.
// Called only after the backend confirmed the delete, so a failed delete
// never touches the displayed list.
func RemoveUser(users []models.User, id int) []models.User {
	out := users[:0:0]
	for _, u := range users {
		if u.ID != id {
			out = append(out, u)
		}
	}
	return out
}

// RemoveProduct returns the list without the product carrying the given id.
func RemoveProduct(products []models.Product, id int) []models.Product {
	out := products[:0:0]
	for _, p := range products {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}
