package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"

	"waiter/internal/directory"
	"waiter/internal/models"
	"waiter/internal/workflow"
)

// View renders the UI
func (m Model) View() string {
	switch m.currentView {
	case viewLogin:
		return docStyle.Render(m.loginView())
	case viewCookBoard:
		return docStyle.Render(m.cookBoardView())
	case viewWaiterMenu:
		return docStyle.Render(m.waiterMenu.View() + m.statusLine())
	case viewDeliveryBoard:
		return docStyle.Render(m.deliveryBoardView())
	case viewCreateOrder:
		return docStyle.Render(m.createOrderView())
	case viewBrowse:
		return docStyle.Render(m.browseView())
	case viewManagerMenu:
		return docStyle.Render(m.managerMenu.View() + m.statusLine())
	case viewUsersMenu:
		return docStyle.Render(m.usersMenu.View() + m.statusLine())
	case viewUserCreate:
		return docStyle.Render(m.userCreateView())
	case viewUserDelete:
		return docStyle.Render(m.entityDeleteView(true))
	case viewProductDelete:
		return docStyle.Render(m.entityDeleteView(false))
	default:
		return "Loading..."
	}
}

// statusLine renders the notice/error footer shared by every screen.
func (m Model) statusLine() string {
	var b strings.Builder
	if m.loading {
		b.WriteString("\n" + m.spinner.View() + " working...")
	}
	if m.errText != "" {
		b.WriteString("\n" + errorStyle.Render(m.errText))
	}
	if m.notice != "" {
		b.WriteString("\n" + successStyle.Render(m.notice))
	}
	return b.String()
}

func (m Model) loginView() string {
	view := titleStyle.Render("Waiter") + "\n"
	view += labelStyle.Render("The restaurant's own terminal client") + "\n\n"
	view += labelStyle.Render("E-mail") + "\n" + m.loginInputs[0].View() + "\n\n"
	view += labelStyle.Render("Password") + "\n" + m.loginInputs[1].View() + "\n"
	view += m.statusLine()
	view += helpStyle.Render("\n\ntab: switch field - enter: sign in - ctrl+c: quit")
	return view
}

func (m Model) cookBoardView() string {
	view := titleStyle.Render("Kitchen") + "\n\n"
	for _, status := range []models.Status{models.StatusToDo, models.StatusDoing} {
		label := string(status)
		if status == m.cookFilter {
			view += selectedStyle.Render("[ "+label+" ]") + "  "
		} else {
			view += labelStyle.Render("  "+label+"  ") + "  "
		}
	}
	view += "\n\n" + m.cookTable.View()
	if len(m.cookItems) == 0 && !m.loading {
		view += "\n" + labelStyle.Render("No items with this status.")
	}
	view += m.statusLine()
	view += helpStyle.Render("\n\nf: toggle status - enter: advance item - r: refresh - esc: logout")
	return view
}

func (m Model) deliveryBoardView() string {
	view := titleStyle.Render("Deliveries") + "\n\n"
	view += m.deliveryTable.View()
	if len(m.deliveryItems) == 0 && !m.loading {
		view += "\n" + labelStyle.Render("No items ready for delivery.")
	}
	view += m.statusLine()
	view += helpStyle.Render("\n\nenter: mark delivered - r: refresh - esc: back")
	return view
}

func (m Model) createOrderView() string {
	view := titleStyle.Render("New Order") + "\n\n"

	tableField := fmt.Sprintf("Table < %d >", m.pending.Table)
	tabField := fmt.Sprintf("Tab < %d >", m.pending.Tab)
	switch m.orderField {
	case 0:
		tableField = selectedStyle.Render(tableField)
		tabField = labelStyle.Render(tabField)
	case 1:
		tableField = labelStyle.Render(tableField)
		tabField = selectedStyle.Render(tabField)
	default:
		tableField = labelStyle.Render(tableField)
		tabField = labelStyle.Render(tabField)
	}
	view += tableField + "    " + tabField + "\n\n"

	view += infoStyle.Render("Add products:") + " "
	view += "[1] " + string(models.CategoryDish) + "  [2] " + string(models.CategoryDrink) + "  [3] " + string(models.CategoryDessert) + "\n\n"

	view += labelStyle.Render("Items:") + "\n"
	if m.pending.Empty() {
		view += "No items added yet\n"
	} else {
		for i, line := range m.pending.Summary() {
			if m.orderField == 2 && i == m.pendingCursor {
				view += selectedStyle.Render("> "+line) + "\n"
			} else {
				view += "  " + line + "\n"
			}
		}
	}

	view += m.statusLine()
	view += helpStyle.Render("\n\ntab: switch field - left/right: adjust - x: remove item - s: submit - esc: back")
	return view
}

func (m Model) browseView() string {
	view := m.browseList.View()
	if m.notingProduct != nil {
		view += "\n" + labelStyle.Render("Note for "+m.notingProduct.Name) + "\n" + m.noteInput.View()
		view += helpStyle.Render("\nenter: add to order - esc: cancel")
	} else {
		view += m.statusLine()
		view += helpStyle.Render("\n\nenter: pick product - esc: back")
	}
	return view
}

func (m Model) userCreateView() string {
	view := titleStyle.Render("Create User") + "\n\n"
	labels := []string{"Name", "E-mail", "Password", "CPF"}
	for i, input := range m.formInputs {
		view += labelStyle.Render(labels[i]) + "\n" + input.View() + "\n\n"
	}

	role := "< " + string(roleChoices[m.formRole]) + " >"
	if m.formFocus == len(m.formInputs) {
		role = selectedStyle.Render(role)
	} else {
		role = labelStyle.Render(role)
	}
	view += labelStyle.Render("Role") + "\n" + role + "\n"

	view += m.statusLine()
	view += helpStyle.Render("\n\ntab: next field - left/right: pick role - enter: submit - esc: back")
	return view
}

func (m Model) entityDeleteView(users bool) string {
	title := "Delete Product"
	tbl := m.productsTable
	count := len(m.visibleProducts)
	if users {
		title = "Delete User"
		tbl = m.usersTable
		count = len(m.visibleUsers)
	}

	view := titleStyle.Render(title) + "\n\n"
	view += m.searchInput.View() + "\n\n"
	view += tbl.View()
	if count == 0 && !m.loading {
		view += "\n" + labelStyle.Render("Nothing matches the search.")
	}

	if m.confirming {
		view += "\n" + errorStyle.Render(fmt.Sprintf("Really delete id %d? (y/n)", m.confirmingID))
	}

	view += m.statusLine()
	view += helpStyle.Render("\n\n/: search - enter: delete selected - esc: back")
	return view
}

// cookRows converts the kitchen board items to table rows.
func cookRows(items []models.OrderItem) []table.Row {
	rows := make([]table.Row, len(items))
	for i, it := range items {
		note := it.Note
		if note == "" {
			note = "no notes"
		}
		rows[i] = table.Row{it.Product.Name, note, it.StatusControl.Status.Description}
	}
	return rows
}

// deliveryRows converts the delivery items, table number included.
func deliveryRows(items []workflow.DeliveryItem) []table.Row {
	rows := make([]table.Row, len(items))
	for i, it := range items {
		note := it.Note
		if note == "" {
			note = "no notes"
		}
		rows[i] = table.Row{it.Product.Name, fmt.Sprint(it.Table), note}
	}
	return rows
}

func userRows(users []models.User) []table.Row {
	rows := make([]table.Row, len(users))
	for i, u := range users {
		rows[i] = table.Row{u.Employee.Name, u.Email, string(u.Employee.Role.Role)}
	}
	return rows
}

func productRows(products []models.Product) []table.Row {
	rows := make([]table.Row, len(products))
	for i, p := range products {
		rows[i] = table.Row{p.Name, fmt.Sprintf("R$ %.2f", p.Price), p.Type.Name}
	}
	return rows
}

// applyUserFilter recomputes the visible slice from the fetched page and
// the current search text.
func (m *Model) applyUserFilter() {
	m.visibleUsers = directory.FilterUsersByName(m.users, m.searchInput.Value())
	m.usersTable.SetRows(userRows(m.visibleUsers))
	m.usersTable.SetCursor(0)
}

func (m *Model) applyProductFilter() {
	m.visibleProducts = directory.FilterProductsByName(m.products, m.searchInput.Value())
	m.productsTable.SetRows(productRows(m.visibleProducts))
	m.productsTable.SetCursor(0)
}
