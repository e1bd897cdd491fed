package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"waiter/internal/api"
	"waiter/internal/models"
	"waiter/internal/session"
	"waiter/internal/workflow"
)

// Custom message types for the tea.Model. Fetch results carry the fetch
// generation they were issued under; stale generations are discarded in
// Update instead of overwriting a newer list.
type loggedInMsg struct {
	role session.Role
}

type cookItemsMsg struct {
	gen   int
	items []models.OrderItem
}

type deliveryItemsMsg struct {
	gen   int
	items []workflow.DeliveryItem
}

type usersMsg struct {
	gen   int
	users []models.User
}

type productsMsg struct {
	gen      int
	products []models.Product
}

type browseMsg struct {
	gen      int
	category models.Category
	products []models.Product
}

// itemAdvancedMsg signals that a status transition round-tripped; the board
// re-fetches regardless of the outcome, so it may carry an error alongside.
type itemAdvancedMsg struct {
	err error
}

type userDeletedMsg struct {
	id int
}

type productDeletedMsg struct {
	id int
}

type userCreatedMsg struct{}

type errorMsg struct {
	err string
}

func errMsgf(format string, args ...any) tea.Msg {
	return errorMsg{err: fmt.Sprintf(format, args...)}
}

// doLogin authenticates, persists the token, and decodes the role claim.
func doLogin(client *api.Client, sessions *session.Store, login, password string) tea.Cmd {
	return func() tea.Msg {
		token, err := client.Login(context.Background(), login, password)
		if err != nil {
			return errMsgf("Login failed: %v", err)
		}
		if err := sessions.Save(token); err != nil {
			return errMsgf("Could not store session: %v", err)
		}
		claims, err := session.Decode(token)
		if err != nil {
			return errMsgf("Server issued an unreadable token: %v", err)
		}
		if !claims.Role.Valid() {
			return errMsgf("Unknown role code %d in token", claims.Role)
		}
		return loggedInMsg{role: claims.Role}
	}
}

// fetchCookItems loads the kitchen board for the given status filter.
func fetchCookItems(client *api.Client, status models.Status, gen int) tea.Cmd {
	return func() tea.Msg {
		orders, err := client.ListOrders(context.Background(), status)
		if err != nil {
			return errMsgf("Error fetching orders: %v", err)
		}
		return cookItemsMsg{gen: gen, items: workflow.FilterItems(orders, status)}
	}
}

// fetchDeliveryItems loads the waiter's board: ready items joined with
// their table numbers.
func fetchDeliveryItems(client *api.Client, gen int) tea.Cmd {
	return func() tea.Msg {
		orders, err := client.ListOrders(context.Background(), models.StatusReady)
		if err != nil {
			return errMsgf("Error fetching orders: %v", err)
		}
		return deliveryItemsMsg{gen: gen, items: workflow.DeliveryItems(orders)}
	}
}

// advanceItem asks the backend to transition one item's status-control
// record to the target status.
func advanceItem(client *api.Client, controlID int, target models.Status) tea.Cmd {
	return func() tea.Msg {
		err := client.UpdateItemStatus(context.Background(), controlID, models.StatusUpdate{
			Description: "updated from terminal client",
			Status:      target,
		})
		return itemAdvancedMsg{err: err}
	}
}

func fetchUsers(client *api.Client, gen int) tea.Cmd {
	return func() tea.Msg {
		users, err := client.ListUsers(context.Background())
		if err != nil {
			return errMsgf("Error fetching users: %v", err)
		}
		return usersMsg{gen: gen, users: users}
	}
}

func fetchProducts(client *api.Client, gen int) tea.Cmd {
	return func() tea.Msg {
		products, err := client.ListProducts(context.Background())
		if err != nil {
			return errMsgf("Error fetching products: %v", err)
		}
		return productsMsg{gen: gen, products: products}
	}
}

func fetchCategory(client *api.Client, cat models.Category, gen int) tea.Cmd {
	return func() tea.Msg {
		products, err := client.ListProductsByCategory(context.Background(), cat)
		if err != nil {
			return errMsgf("Error loading products: %v", err)
		}
		return browseMsg{gen: gen, category: cat, products: products}
	}
}

func deleteUser(client *api.Client, id int) tea.Cmd {
	return func() tea.Msg {
		if err := client.DeleteUser(context.Background(), id); err != nil {
			return errMsgf("Error deleting user: %v", err)
		}
		return userDeletedMsg{id: id}
	}
}

func deleteProduct(client *api.Client, id int) tea.Cmd {
	return func() tea.Msg {
		if err := client.DeleteProduct(context.Background(), id); err != nil {
			return errMsgf("Error deleting product: %v", err)
		}
		return productDeletedMsg{id: id}
	}
}

func createUser(client *api.Client, user models.NewUser) tea.Cmd {
	return func() tea.Msg {
		if err := client.CreateUser(context.Background(), user); err != nil {
			return errMsgf("Error creating user: %v", err)
		}
		return userCreatedMsg{}
	}
}
